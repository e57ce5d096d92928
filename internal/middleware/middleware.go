package middleware

import (
	"net/http"
	"strings"

	"github.com/franciscosanchezn/gin-vehicle-api/internal/auth"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/models"
	"github.com/gin-gonic/gin"
)

// Context keys set by JWTAuth
const (
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

// TokenParser verifies bearer tokens
type TokenParser interface {
	Parse(tokenString string) (*auth.Claims, error)
}

// JWTAuth middleware validates the bearer token of the request (RFC 6750)
// and stores the email and role claims in the gin context
func JWTAuth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondWithBearerError(c, http.StatusUnauthorized, models.ErrInvalidRequest,
				"Missing Authorization header. A valid Bearer token is required.")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			respondWithBearerError(c, http.StatusUnauthorized, models.ErrInvalidRequest,
				"Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			respondWithBearerError(c, http.StatusUnauthorized, models.ErrInvalidToken,
				"Bearer token is empty")
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			log.WithError(err).Debug("Rejected bearer token")
			respondWithBearerError(c, http.StatusUnauthorized, models.ErrInvalidToken, err.Error())
			return
		}

		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

// respondWithBearerError responds with RFC 6750 compliant error format
func respondWithBearerError(c *gin.Context, status int, code, description string) {
	c.Header("WWW-Authenticate", `Bearer error="`+code+`"`)
	c.AbortWithStatusJSON(status, models.NewBearerError(code, description))
}
