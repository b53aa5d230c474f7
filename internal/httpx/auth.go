package httpx

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/caja-pos/internal/user"
)

const userKey = "user"

type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*user.User, bool, error)
}

// BasicAuth resolves the staff member from HTTP Basic credentials.
func BasicAuth(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="pos"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, HTTPError{Error: "authentication required"})
			return
		}
		u, ok, err := a.Authenticate(c.Request.Context(), username, password)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, HTTPError{Error: "internal error"})
			return
		}
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="pos"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, HTTPError{Error: "invalid credentials"})
			return
		}
		c.Set(userKey, u)
		c.Next()
	}
}

// RequireRoles lets through authenticated users holding one of roles.
func RequireRoles(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, HTTPError{Error: "authentication required"})
			return
		}
		for _, r := range roles {
			if u.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, HTTPError{Error: "role " + string(u.Role) + " cannot do this"})
	}
}

func CurrentUser(c *gin.Context) (*user.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok
}

// UserID is the signed in user's id, or "" without authentication.
func UserID(c *gin.Context) string {
	if u, ok := CurrentUser(c); ok {
		return u.ID
	}
	return ""
}
