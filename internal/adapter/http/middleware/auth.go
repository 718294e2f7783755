package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jongwon/todo-app/internal/core/domain"
	"github.com/jongwon/todo-app/internal/core/ports"
	"github.com/jongwon/todo-app/pkg/apierrors"
)

const callerKey = "caller"

// SessionToken reads the session token from the cookie, or from an
// "Authorization: Bearer" header for non-browser clients.
func SessionToken(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return ""
}

// SessionAuth rejects requests without a live session and stores the
// resolved caller for the handlers.
func SessionAuth(auth ports.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		caller, err := auth.Authenticate(c.Request.Context(), SessionToken(c, cookieName))
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				c.AbortWithStatusJSON(
					http.StatusUnauthorized,
					apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthenticated, lang),
				)
				return
			}

			zap.L().Error("failed to authenticate session", zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailAuthenticate, lang),
			)
			return
		}

		c.Set(callerKey, caller)
		c.Next()
	}
}

// GetCaller returns the identity stored by SessionAuth. Routes outside the
// authenticated group get an empty identity, which services reject.
func GetCaller(c *gin.Context) domain.CallerIdentity {
	caller, _ := lookupCaller(c)
	return caller
}

func lookupCaller(c *gin.Context) (domain.CallerIdentity, bool) {
	value, exists := c.Get(callerKey)
	if !exists {
		return domain.CallerIdentity{}, false
	}
	caller, ok := value.(domain.CallerIdentity)
	return caller, ok
}
