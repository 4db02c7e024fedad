package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ironclub/gym-server/internal/adapters/controller/http/response"
	"github.com/ironclub/gym-server/internal/domain/entity"
	"github.com/ironclub/gym-server/internal/domain/service"
)

// ContextUserID is the gin context key carrying the authenticated user ID.
const ContextUserID = "userID"

type sessionStorage interface {
	Get(ctx context.Context, token string) (string, error)
}

type userStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
}

type Auth struct {
	secret   []byte
	sessions sessionStorage
	users    userStorage
}

func NewAuth(secret []byte, sessions sessionStorage, users userStorage) *Auth {
	return &Auth{
		secret:   secret,
		sessions: sessions,
		users:    users,
	}
}

// Authenticate validates the bearer token and its server-side session.
// A valid JWT whose session was revoked is rejected.
func (a *Auth) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error{
				Code:    "NO_AUTH_HEADER",
				Message: "authorization required",
			})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return a.secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error{
				Code:    "INVALID_TOKEN",
				Message: "invalid or expired token",
			})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error{
				Code:    "INVALID_TOKEN_CLAIMS",
				Message: "cannot read token claims",
			})
			return
		}
		subject, _ := claims["sub"].(string)

		userID, err := a.sessions.Get(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error{
				Code:    "SESSION_ERROR",
				Message: "failed to check session",
			})
			return
		}
		if userID == "" || userID != subject {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error{
				Code:    "SESSION_REVOKED",
				Message: "session is no longer active",
			})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set("token", tokenString)
		c.Next()
	}
}

// RequireAdmin gates admin routes. Any failure to read the stored roles
// fails closed: the caller keeps the authenticated tier and is sent to
// the member landing instead of receiving admin access.
func (a *Auth) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)

		var roles []entity.Role
		user, err := a.users.Get(c.Request.Context(), userID)
		if err == nil {
			for _, r := range user.Roles {
				roles = append(roles, entity.Role(r))
			}
		}

		tier := service.ResolveAccess(true, roles, err)
		if tier != service.TierAdmin {
			c.Redirect(http.StatusSeeOther, service.DecideLanding(tier))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireStaff admits admins and professors. Same fail-closed rule as
// RequireAdmin: an unreadable role set never grants staff access.
func (a *Auth) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)

		user, err := a.users.Get(c.Request.Context(), userID)
		if err != nil {
			c.Redirect(http.StatusSeeOther, service.MemberLanding)
			c.Abort()
			return
		}
		if !user.HasRole(entity.Admin) && !user.HasRole(entity.Professor) {
			c.Redirect(http.StatusSeeOther, service.MemberLanding)
			c.Abort()
			return
		}
		c.Next()
	}
}
