package middleware

import (
	"net/http"
	"strings"

	"quotedesk/internal/domain/entities"
	"quotedesk/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// IdentityKey is the gin context key under which the caller identity is set.
const IdentityKey = "caller_identity"

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid credentials", http.StatusUnauthorized)

type identityClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// RequireIdentity extracts the caller identity from a Bearer token issued by
// the external auth system. This service does not register users or manage
// sessions; it only consumes the identity + role fact carried by the token.
// Any role other than "admin" is treated as sales.
func RequireIdentity(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		claims := &identityClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid || claims.Subject == "" {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		role := entities.RoleSales
		if claims.Role == string(entities.RoleAdmin) {
			role = entities.RoleAdmin
		}

		c.Set(IdentityKey, entities.Identity{UserID: claims.Subject, Role: role})
		c.Next()
	}
}

// WithIdentity injects a fixed identity; used by tests and internal tooling.
func WithIdentity(id entities.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(IdentityKey, id)
		c.Next()
	}
}

// CallerIdentity returns the identity set by RequireIdentity.
func CallerIdentity(c *gin.Context) (entities.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return entities.Identity{}, false
	}
	id, ok := v.(entities.Identity)
	return id, ok
}
