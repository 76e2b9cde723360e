package middleware

import (
	"encoding/gob"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	FlashCookie = "TODOAPP_FLASH"
	flashKey    = "flash"

	FlashSuccess = "success"
	FlashError   = "error"

	flashMaxAge = 60
)

// Flash is a message shown once on the page following a redirect. The
// message id is translated at render time.
type Flash struct {
	Kind      string
	MessageID string
	Name      string
}

func init() {
	gob.Register(Flash{})
}

// NewFlashStore returns the signed cookie store backing flash messages.
func NewFlashStore(secret []byte) sessions.Store {
	store := cookie.NewStore(secret)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   flashMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

// FlashSessions loads the flash cookie. It must run before FlashMiddleware.
func FlashSessions(store sessions.Store) gin.HandlerFunc {
	return sessions.Sessions(FlashCookie, store)
}

// FlashMiddleware consumes a pending flash into the context. The emptied
// session is written back so the message is shown only once.
func FlashMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if flashes := session.Flashes(); len(flashes) > 0 {
			if flash, ok := flashes[len(flashes)-1].(Flash); ok && flash.MessageID != "" {
				c.Set(flashKey, flash)
			}
			if err := session.Save(); err != nil {
				zap.L().Warn("failed to clear flash", zap.Error(err))
			}
		}
		c.Next()
	}
}

func SetFlash(c *gin.Context, kind, messageID, name string) {
	session := sessions.Default(c)
	session.AddFlash(Flash{Kind: kind, MessageID: messageID, Name: name})
	if err := session.Save(); err != nil {
		zap.L().Warn("failed to store flash", zap.String("message_id", messageID), zap.Error(err))
	}
}

func GetFlash(c *gin.Context) *Flash {
	value, exists := c.Get(flashKey)
	if !exists {
		return nil
	}
	flash, ok := value.(Flash)
	if !ok {
		return nil
	}
	return &flash
}
