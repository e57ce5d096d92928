package middleware

import (
	"net/http"

	"github.com/franciscosanchezn/gin-vehicle-api/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireRole is a middleware that checks if the user role belongs to the allowed set.
func RequireRole(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get role from JWT claims (set by JWTAuth middleware)
		value, exists := c.Get(ContextUserRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.NewAPIError(models.ErrUnauthorized, "User not authenticated"))
			return
		}

		role, ok := value.(models.Role)
		if !ok || !role.In(allowed...) {
			c.AbortWithStatusJSON(http.StatusForbidden, models.NewAPIError(
				models.ErrForbidden,
				"Insufficient permissions",
				map[string]interface{}{
					"required_roles": allowed,
					"user_role":      value,
				},
			))
			return
		}

		c.Next()
	}
}
