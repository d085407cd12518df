package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/dpang/faq-service/internal/response"
)

// RequireRole returns a middleware that enforces that the authenticated
// caller holds one of the given roles. The roles correspond to the values
// stored in the JWT "role" claim, which JWTAuth must have extracted into
// the context beforehand. Requests with a missing or disallowed role are
// aborted with 403 Forbidden; the FAQ handlers behind the gate perform no
// role checks of their own.
func RequireRole(roles ...string) echo.MiddlewareFunc {
    allowed := make(map[string]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            role, ok := c.Get("role").(string)
            if !ok || !allowed[role] {
                return response.Fail(c, http.StatusForbidden, "forbidden")
            }
            return next(c)
        }
    }
}
