package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/chenghui/supervision-go/internal/config"
	"github.com/chenghui/supervision-go/internal/domain/user"
	"github.com/chenghui/supervision-go/internal/repository"
	"github.com/chenghui/supervision-go/pkg/response"
	"github.com/chenghui/supervision-go/pkg/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Auth resolves the authenticated account behind the token and gates routes
// by company position.
type Auth struct {
	repos *repository.Repos
}

func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// LoadUser fetches the full account for the token's subject and stores it as
// "currentUser". Role and project assignment always come from the database,
// never from the token, so demotions take effect immediately.
func (a *Auth) LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}

		usr, err := a.repos.User.GetUserByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unknown account"})
			return
		}

		c.Set("currentUser", usr)
		c.Next()
	}
}

// RequireRoles rejects callers whose position is not in the allow list.
func (a *Auth) RequireRoles(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}
		for _, r := range roles {
			if usr.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
	}
}

// CurrentUser returns the account loaded by LoadUser.
func CurrentUser(c *gin.Context) (user.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		return user.User{}, false
	}
	usr, ok := v.(user.User)
	return usr, ok
}

// LoggingMiddleware emits one structured line per request.
func LoggingMiddleware() gin.HandlerFunc {
	log := config.GetLogger()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(map[string]interface{}{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request")
	}
}

// CORSMiddleware allows the local dev origins the mobile/web clients use.
func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost:") ||
				strings.HasPrefix(origin, "http://127.0.0.1:")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	return cors.New(cfg)
}
