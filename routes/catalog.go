package routes

import (
	handlers "cardcatalog.app/handlers/catalog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// registerCatalogRoutes /catalog altındaki rotaları tanımlar.
// Sabit yollar (create, delete, update) :id detay rotasından önce kaydedilmelidir.
func registerCatalogRoutes(app *fiber.App, db *gorm.DB) {
	homeHandler := handlers.NewHomeHandler(db)
	cardHandler := handlers.NewCardHandler(db)
	elementTypeHandler := handlers.NewElementTypeHandler(db)
	cardInstanceHandler := handlers.NewCardInstanceHandler(db)

	catalog := app.Group("/catalog")

	catalog.Get("/", homeHandler.Index) // GET /catalog

	// --- Kartlar ---
	catalog.Get("/card/create", cardHandler.ShowCreateCard)     // GET /catalog/card/create
	catalog.Post("/card/create", cardHandler.CreateCard)        // POST /catalog/card/create
	catalog.Get("/card/:id/delete", cardHandler.ShowDeleteCard) // GET /catalog/card/{id}/delete
	catalog.Post("/card/:id/delete", cardHandler.DeleteCard)    // POST /catalog/card/{id}/delete
	catalog.Get("/card/:id/update", cardHandler.ShowUpdateCard) // GET /catalog/card/{id}/update
	catalog.Post("/card/:id/update", cardHandler.UpdateCard)    // POST /catalog/card/{id}/update
	catalog.Get("/card/:id", cardHandler.ShowCard)              // GET /catalog/card/{id}
	catalog.Get("/cards", cardHandler.ListCards)                // GET /catalog/cards

	// --- Element Türleri ---
	catalog.Get("/elementtype/create", elementTypeHandler.ShowCreateElementType)
	catalog.Post("/elementtype/create", elementTypeHandler.CreateElementType)
	catalog.Get("/elementtype/:id/delete", elementTypeHandler.ShowDeleteElementType)
	catalog.Post("/elementtype/:id/delete", elementTypeHandler.DeleteElementType)
	catalog.Get("/elementtype/:id/update", elementTypeHandler.ShowUpdateElementType)
	catalog.Post("/elementtype/:id/update", elementTypeHandler.UpdateElementType)
	catalog.Get("/elementtype/:id", elementTypeHandler.ShowElementType)
	catalog.Get("/elementtypes", elementTypeHandler.ListElementTypes)

	// --- Kart Kopyaları ---
	catalog.Get("/cardinstance/create", cardInstanceHandler.ShowCreateCardInstance)
	catalog.Post("/cardinstance/create", cardInstanceHandler.CreateCardInstance)
	catalog.Get("/cardinstance/:id/delete", cardInstanceHandler.ShowDeleteCardInstance)
	catalog.Post("/cardinstance/:id/delete", cardInstanceHandler.DeleteCardInstance)
	catalog.Get("/cardinstance/:id/update", cardInstanceHandler.ShowUpdateCardInstance)
	catalog.Post("/cardinstance/:id/update", cardInstanceHandler.UpdateCardInstance)
	catalog.Get("/cardinstance/:id", cardInstanceHandler.ShowCardInstance)
	catalog.Get("/cardinstances", cardInstanceHandler.ListCardInstances)
}
