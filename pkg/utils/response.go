package utils

import (
	"errors"
	"net/http"

	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HttpResponse struct {
	Status     bool              `json:"status"`
	Body       interface{}       `json:"body,omitempty"`
	Message    string            `json:"message"`
	Pagination *types.Pagination `json:"pagination,omitempty"`
}

var errorList = map[error]int{
	apperrors.ErrNotFound:            http.StatusNotFound,
	apperrors.ErrReferenceNotFound:   http.StatusNotFound,
	apperrors.ErrBadRequest:          http.StatusBadRequest,
	apperrors.ErrConflict:            http.StatusConflict,
	apperrors.ErrInUse:               http.StatusConflict,
	apperrors.ErrUnauthorized:        http.StatusUnauthorized,
	apperrors.ErrInvalidCredentials:  http.StatusUnauthorized,
	apperrors.ErrEmptyAuthHeader:     http.StatusUnauthorized,
	apperrors.ErrInvalidAuthHeader:   http.StatusUnauthorized,
	apperrors.ErrInvalidToken:        http.StatusUnauthorized,
	apperrors.ErrTokenExpired:        http.StatusUnauthorized,
	apperrors.ErrTokenIsNotRefresh:   http.StatusUnauthorized,
	apperrors.ErrTokenIsNotAccess:    http.StatusUnauthorized,
	apperrors.ErrForbidden:           http.StatusForbidden,
	apperrors.ErrInvalidEmployeeID:   http.StatusUnauthorized,
	apperrors.ErrEmployeeIDNotFoundInContext: http.StatusUnauthorized,
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, total ...uint64) error {
	response := &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	}
	if len(total) > 0 {
		response.Pagination = &types.Pagination{TotalCount: total[0]}
	}
	return ctx.JSON(code, response)
}

// ErrorResponse определяет HTTP-статус по типу ошибки и отдает единый конверт.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	message := "Внутренняя ошибка сервера"
	code := http.StatusInternalServerError
	var details interface{}

	var httpErr *apperrors.HttpError
	var inputErr *apperrors.InvalidInputError
	var staleErr *apperrors.StaleSelectionError

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
		if httpErr.Details != nil {
			details = httpErr.Details
		}
	case errors.As(err, &staleErr):
		code = http.StatusConflict
		message = staleErr.Error()
		details = map[string]interface{}{"missing_ids": staleErr.MissingIDs}
	case errors.As(err, &inputErr):
		code = http.StatusUnprocessableEntity
		message = inputErr.Message
	default:
		for sentinel, statusCode := range errorList {
			if errors.Is(err, sentinel) {
				message = sentinel.Error()
				code = statusCode
				break
			}
		}
	}

	if code >= http.StatusInternalServerError && logger != nil {
		logger.Error("необработанная ошибка запроса",
			zap.String("uri", ctx.Request().RequestURI),
			zap.Error(err),
		)
	}

	response := &HttpResponse{
		Status:  false,
		Message: message,
	}
	if details != nil {
		response.Body = details
	}
	return ctx.JSON(code, response)
}
