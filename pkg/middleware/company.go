package middleware

import (
	"context"
	"strconv"

	"inventory-system/pkg/contextkeys"

	"github.com/labstack/echo/v4"
)

// CompanyScope читает активную компанию из заголовка X-Company-ID.
// Заголовок необязателен: его отсутствие означает работу без фильтра по компании.
func CompanyScope() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if raw := c.Request().Header.Get("X-Company-ID"); raw != "" {
				if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id > 0 {
					ctx := context.WithValue(c.Request().Context(), contextkeys.CompanyIDKey, id)
					c.SetRequest(c.Request().WithContext(ctx))
				}
			}
			return next(c)
		}
	}
}

// CompanyIDFromContext возвращает активную компанию, если она выбрана.
func CompanyIDFromContext(ctx context.Context) *uint64 {
	if id, ok := ctx.Value(contextkeys.CompanyIDKey).(uint64); ok && id > 0 {
		return &id
	}
	return nil
}
