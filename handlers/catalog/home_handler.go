package handlers

import (
	"cardcatalog.app/configs/configslog"
	"cardcatalog.app/pkg/renderer"
	"cardcatalog.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HomeHandler struct {
	service services.ICatalogService
}

func NewHomeHandler(db *gorm.DB) *HomeHandler {
	return &HomeHandler{service: services.NewCatalogService(db)}
}

// Index katalog sayaçlarını gösterir. Alınamayan sayaçlar sayfayı engellemez.
func (h *HomeHandler) Index(c *fiber.Ctx) error {
	counts, err := h.service.GetCounts(c.UserContext())

	data := fiber.Map{
		"Title":  "Pokemon Index Home",
		"Counts": counts,
	}
	if err != nil {
		configslog.Log.Error("Catalog counts could not be loaded", zap.Error(err))
		data["CountsError"] = err.Error()
	}
	return renderer.Render(c, "catalog/index", mainLayout, data)
}
