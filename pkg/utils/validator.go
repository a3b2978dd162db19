package utils

import (
	"net/http"
	"strings"

	apperrors "inventory-system/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator адаптирует go-playground/validator под echo.Validator.
type EchoValidator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *EchoValidator {
	return &EchoValidator{validator: v}
}

func (ev *EchoValidator) Validate(i interface{}) error {
	if err := ev.validator.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		details := map[string]interface{}{}
		if ok := func() bool {
			var cast bool
			verrs, cast = err.(validator.ValidationErrors)
			return cast
		}(); ok {
			for _, fe := range verrs {
				details[strings.ToLower(fe.Field())] = "не прошло правило '" + fe.Tag() + "'"
			}
		}
		return apperrors.NewHttpError(http.StatusBadRequest, "Ошибка валидации данных", err, details)
	}
	return nil
}
