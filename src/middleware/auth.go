package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tuladigital/tula-directory/src/models"
	"github.com/tuladigital/tula-directory/src/services"
)

// Context keys for the authenticated identity
const (
	ContextAdminID    = "admin_id"
	ContextAdminEmail = "admin_email"
	ContextAdminRole  = "admin_role"
)

// bearerToken extracts the token from the Authorization header. A
// missing header, a non-Bearer scheme or an empty token all mean "no
// credential present".
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func setIdentity(c *gin.Context, claims *services.AdminClaims) {
	c.Set(ContextAdminID, claims.AdminID)
	c.Set(ContextAdminEmail, claims.Email)
	c.Set(ContextAdminRole, claims.Role)
}

// RequireAdmin rejects requests without a valid admin session token
func RequireAdmin(tokens services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication token"})
			c.Abort()
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAdmin lets anonymous requests through but still rejects a
// presented token that fails verification. Downgrading a bad token to
// anonymous would mask client bugs.
func OptionalAdmin(tokens services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// AdminIdentity returns the authenticated identity, if any
func AdminIdentity(c *gin.Context) (models.AdminIdentity, bool) {
	id, ok := c.Get(ContextAdminID)
	if !ok {
		return models.AdminIdentity{}, false
	}
	email, _ := c.Get(ContextAdminEmail)
	adminID, ok := id.(int64)
	if !ok {
		return models.AdminIdentity{}, false
	}
	emailStr, _ := email.(string)
	return models.AdminIdentity{ID: adminID, Email: emailStr}, true
}

// IsAdmin reports whether the request carries an admin identity
func IsAdmin(c *gin.Context) bool {
	role, ok := c.Get(ContextAdminRole)
	return ok && role == services.RoleAdmin
}
