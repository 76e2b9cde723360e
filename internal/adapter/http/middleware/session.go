package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Timomoulin/Todo0/internal/adapter/security"
	"github.com/Timomoulin/Todo0/internal/core/domain"
	"github.com/Timomoulin/Todo0/pkg/requestctx"
)

const (
	SessionCookie = "TODOAPP_SESSION"
	principalKey  = "principal"
)

// SessionMiddleware restores the principal from the session cookie. An
// invalid or expired cookie is dropped and the request continues
// anonymously.
func SessionMiddleware(codec *security.SessionCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		principal, err := codec.Decode(token)
		if err != nil {
			zap.L().Debug("discarding session cookie", zap.Error(err))
			ClearSession(c)
			c.Next()
			return
		}

		c.Set(principalKey, &principal)
		c.Request = c.Request.WithContext(requestctx.WithUsername(c.Request.Context(), principal.Name))
		c.Next()
	}
}

// GetPrincipal returns the authenticated principal, or nil for anonymous
// requests.
func GetPrincipal(c *gin.Context) *domain.Principal {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	principal, _ := value.(*domain.Principal)
	return principal
}

func StartSession(c *gin.Context, codec *security.SessionCodec, principal domain.Principal) error {
	token, err := codec.Encode(principal)
	if err != nil {
		return err
	}
	setCookie(c, SessionCookie, token, int(codec.TTL().Seconds()))
	return nil
}

func ClearSession(c *gin.Context) {
	setCookie(c, SessionCookie, "", -1)
}

func setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", c.Request.TLS != nil, true)
}
