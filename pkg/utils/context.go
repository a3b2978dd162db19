package utils

import (
	"context"

	"inventory-system/pkg/contextkeys"
	apperrors "inventory-system/pkg/errors"
)

func GetEmployeeIDFromCtx(ctx context.Context) (uint64, error) {
	val := ctx.Value(contextkeys.EmployeeIDKey)
	if val == nil {
		return 0, apperrors.ErrEmployeeIDNotFoundInContext
	}
	id, ok := val.(uint64)
	if !ok || id == 0 {
		return 0, apperrors.ErrInvalidEmployeeID
	}
	return id, nil
}
