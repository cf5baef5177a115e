package middleware

import (
	"strings"

	"vagaspg_backend/internal/auth"
	"vagaspg_backend/internal/logger"
	"vagaspg_backend/internal/models"
	"vagaspg_backend/pkg/apperrors"
	"vagaspg_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// SessionParser turns a bearer token into a session.
type SessionParser interface {
	ParseSession(token string) (*auth.Session, error)
}

// SessionMiddleware attaches a session to every request: the token's session
// when a valid bearer token is sent, the anonymous one when none is. An invalid
// token is rejected.
func SessionMiddleware(parser SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := auth.Anonymous()

		if header := c.GetHeader("Authorization"); header != "" {
			if !strings.HasPrefix(header, "Bearer ") {
				apperrors.HandleError(c, apperrors.ErrInvalidToken)
				return
			}
			parsed, err := parser.ParseSession(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				apperrors.HandleError(c, apperrors.ErrInvalidToken)
				return
			}
			session = parsed

			ctx := logger.WithUserID(c.Request.Context(), session.ProfileID())
			ctx = logger.WithRole(ctx, string(session.Role()))
			c.Request = c.Request.WithContext(ctx)
		}

		c.Set(string(contextkeys.SessionContextKey), session)
		c.Next()
	}
}

// GetSession returns the request's session, anonymous when none was attached.
func GetSession(c *gin.Context) *auth.Session {
	val, ok := c.Get(string(contextkeys.SessionContextKey))
	if !ok {
		return auth.Anonymous()
	}
	session, ok := val.(*auth.Session)
	if !ok || session == nil {
		return auth.Anonymous()
	}
	return session
}

// RequireAuth rejects anonymous requests.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetSession(c).IsAuthenticated() {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Sign in to continue"))
			return
		}
		c.Next()
	}
}

// RequireRoles rejects sessions whose role is not listed.
func RequireRoles(roles ...models.ProfileRole) gin.HandlerFunc {
	roleSet := make(map[models.ProfileRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		session := GetSession(c)
		if !session.IsAuthenticated() {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Sign in to continue"))
			return
		}
		if !roleSet[session.Role()] {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}
