// Package handlers katalog sayfalarının Fiber handler'larını içerir.
package handlers

import (
	"cardcatalog.app/pkg/formvalidation"

	"github.com/gofiber/fiber/v2"
)

const mainLayout = "layouts/main"

// parseIDParam URL'deki :id değerini çözer; geçersizse 404 döner.
func parseIDParam(c *fiber.Ctx, notFoundMessage string) (uint, error) {
	id, err := formvalidation.ParseID(c.Params("id"))
	if err != nil {
		return 0, fiber.NewError(fiber.StatusNotFound, notFoundMessage)
	}
	return id, nil
}

func fieldError(field, message string) []formvalidation.FieldError {
	return []formvalidation.FieldError{{Field: field, Message: message}}
}
