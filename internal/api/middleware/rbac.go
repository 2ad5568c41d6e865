package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/plantops/identity-service/internal/core/domain"
)

// RBAC enforces role-based access control as a flat membership test against
// the declared role set. There is no hierarchy: admin passes only where
// "admin" is listed.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !domain.Authorize(role, allowedRoles...) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
