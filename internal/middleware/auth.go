package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goshop-tools/goshop_backend/internal/auth"
)

// Context keys for storing authenticated member data
// #INTEGRATION_POINT: Handlers extract member data using these keys
const (
	ContextKeyMemberID   = "member_id"
	ContextKeyMemberName = "member_name"
	ContextKeyClaims     = "claims"
)

// Custom errors
var (
	ErrAuthHeaderMissing = errors.New("authorization header is required")
	ErrAuthHeaderFormat  = errors.New("authorization header format must be Bearer {token}")
	ErrInvalidToken      = errors.New("invalid or expired token")
)

// AuthMiddleware validates JWT tokens and extracts member claims
// #IMPLEMENTATION_DECISION: Bearer token authentication
func AuthMiddleware(jwtService auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": ErrAuthHeaderMissing.Error(),
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": ErrAuthHeaderFormat.Error(),
			})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateAccessToken(parts[1])
		if err != nil {
			message := ErrInvalidToken.Error()
			if errors.Is(err, auth.ErrTokenExpired) {
				message = "token has expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": message,
			})
			c.Abort()
			return
		}

		// Store claims in context for downstream handlers
		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyMemberID, claims.MemberID)
		c.Set(ContextKeyMemberName, claims.Name)

		c.Next()
	}
}

// GetMemberID extracts the authenticated member's ID from context
func GetMemberID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(ContextKeyMemberID)
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}

// GetMemberName extracts the authenticated member's name from context
func GetMemberName(c *gin.Context) (string, bool) {
	val, exists := c.Get(ContextKeyMemberName)
	if !exists {
		return "", false
	}
	name, ok := val.(string)
	return name, ok
}
