package configs

import (
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession flash mesajları için cookie tabanlı session store oluşturur.
func SetupSession(cfg AppConfig) *session.Store {
	return session.New(session.Config{
		Expiration:     cfg.SessionExpiration,
		KeyLookup:      "cookie:catalog_session",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.IsProduction(),
		CookieSameSite: "Lax",
	})
}
