// Package flashmessages bir sonraki isteğe taşınan tek seferlik mesajları yönetir.
package flashmessages

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"

	// SessionStoreLocalsKey router middleware'inin session store'u koyduğu locals anahtarı.
	SessionStoreLocalsKey = "session_store"
)

// ErrNoSessionStore locals içinde session store bulunamadığında döner.
var ErrNoSessionStore = errors.New("session store bulunamadı")

// Messages okunan flash mesajları.
type Messages struct {
	Success string
	Error   string
}

func sessionFor(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals(SessionStoreLocalsKey).(*session.Store)
	if !ok || store == nil {
		return nil, ErrNoSessionStore
	}
	return store.Get(c)
}

// SetFlashMessage verilen anahtarla bir mesaj kaydeder.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := sessionFor(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages mesajları okur ve session'dan siler.
func GetFlashMessages(c *fiber.Ctx) (Messages, error) {
	var msgs Messages
	sess, err := sessionFor(c)
	if err != nil {
		return msgs, err
	}

	changed := false
	if v, ok := sess.Get(FlashSuccessKey).(string); ok {
		msgs.Success = v
		sess.Delete(FlashSuccessKey)
		changed = true
	}
	if v, ok := sess.Get(FlashErrorKey).(string); ok {
		msgs.Error = v
		sess.Delete(FlashErrorKey)
		changed = true
	}
	if changed {
		return msgs, sess.Save()
	}
	return msgs, nil
}
