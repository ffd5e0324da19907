package routes

import (
	"cardcatalog.app/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, db *gorm.DB, sessionStore *session.Store) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(sessionLocals(sessionStore))

	// --- Rota Grupları ---
	registerCatalogRoutes(app, db) // /catalog rotaları

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/catalog", fiber.StatusFound)
	})

	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

// sessionLocals session store'u flash mesajları için locals'a koyar.
func sessionLocals(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if store != nil {
			c.Locals(flashmessages.SessionStoreLocalsKey, store)
		}
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("text/html", "application/json")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found"})
	default:
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	}
}
