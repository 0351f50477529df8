package middleware

import (
	"net/http"
	"strings"

	"timesheet-service/pkg/jwtutil"
	"timesheet-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthMiddleware validates the JWT token from the Authorization header
// and stores the caller's identity in the request context. Authorization
// decisions beyond token validity belong to the issuing service.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing authorization header")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid authorization header format")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
		}

		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Warn("Invalid or expired token", zap.Error(err))
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("user_role", claims.Role)
		if claims.TenantID != nil {
			c.Set("tenant_id", *claims.TenantID)
		}

		log.Debug("JWT token validated successfully",
			zap.Uint("user_id", claims.UserID),
			zap.String("role", claims.Role))

		return next(c)
	}
}

// RequireTenantContext rejects requests whose token carries no tenant.
// Every aggregation query is tenant-scoped, so a tenantless token cannot
// address any data.
func RequireTenantContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := c.Get("tenant_id").(uint); !ok {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "tenant context required"})
		}
		return next(c)
	}
}
