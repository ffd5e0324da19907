// Package renderer şablonları ortak verilerle birlikte layout içinde render eder.
package renderer

import (
	"errors"
	"net/http"

	"cardcatalog.app/configs/configslog"
	"cardcatalog.app/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Şablonlarda kullanılan flash anahtarları
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// SetFlashMessages okunan flash mesajlarını şablon verisine ekler.
// Handler'ın zaten koyduğu bir mesaj ezilmez.
func SetFlashMessages(data fiber.Map, msgs flashmessages.Messages) {
	if msgs.Success != "" {
		if _, exists := data[FlashSuccessKeyView]; !exists {
			data[FlashSuccessKeyView] = msgs.Success
		}
	}
	if msgs.Error != "" {
		if _, exists := data[FlashErrorKeyView]; !exists {
			data[FlashErrorKeyView] = msgs.Error
		}
	}
}

// Render şablonu layout ile render eder. Durum kodu verilmezse 200 kullanılır.
func Render(c *fiber.Ctx, template, layout string, data fiber.Map, statusCode ...int) error {
	if data == nil {
		data = fiber.Map{}
	}

	msgs, err := flashmessages.GetFlashMessages(c)
	if err != nil && !errors.Is(err, flashmessages.ErrNoSessionStore) {
		configslog.Log.Warn("Flash messages could not be read", zap.String("path", c.Path()), zap.Error(err))
	}
	SetFlashMessages(data, msgs)

	if _, ok := data["Title"]; !ok {
		data["Title"] = "Card Catalog"
	}

	status := http.StatusOK
	if len(statusCode) > 0 {
		status = statusCode[0]
	}
	return c.Status(status).Render(template, data, layout)
}
