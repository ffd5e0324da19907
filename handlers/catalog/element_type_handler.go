package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"cardcatalog.app/pkg/flashmessages"
	"cardcatalog.app/pkg/formvalidation"
	"cardcatalog.app/pkg/renderer"
	"cardcatalog.app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const elementTypeListPath = "/catalog/elementtypes"

// ElementTypeHandler element türü sayfaları için handler.
type ElementTypeHandler struct {
	service services.IElementTypeService
}

// NewElementTypeHandler yeni bir ElementTypeHandler örneği oluşturur.
func NewElementTypeHandler(db *gorm.DB) *ElementTypeHandler {
	return &ElementTypeHandler{service: services.NewElementTypeService(db)}
}

func (h *ElementTypeHandler) ListElementTypes(c *fiber.Ctx) error {
	elementTypes, err := h.service.ListElementTypes(c.UserContext())
	if err != nil {
		return err
	}
	return renderer.Render(c, "elementtype/list", mainLayout, fiber.Map{
		"Title":        "Element Type List",
		"ElementTypes": elementTypes,
	})
}

func (h *ElementTypeHandler) ShowElementType(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "Element Type not found")
	if err != nil {
		return err
	}

	detail, err := h.service.GetElementTypeDetail(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrElementTypeNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Element Type not found")
		}
		return err
	}

	return renderer.Render(c, "elementtype/detail", mainLayout, fiber.Map{
		"Title":       "Element Type Detail",
		"ElementType": detail.ElementType,
		"Cards":       detail.Cards,
	})
}

func renderElementTypeForm(c *fiber.Ctx, title, action string, input services.ElementTypeInput, fieldErrors []formvalidation.FieldError, status int) error {
	return renderer.Render(c, "elementtype/form", mainLayout, fiber.Map{
		"Title":  title,
		"Action": action,
		"Input":  input,
		"Errors": fieldErrors,
	}, status)
}

func (h *ElementTypeHandler) ShowCreateElementType(c *fiber.Ctx) error {
	return renderElementTypeForm(c, "Create Element Type", "/catalog/elementtype/create", services.ElementTypeInput{}, nil, http.StatusOK)
}

// CreateElementType aynı isimde kayıt varsa ona, yoksa yeni kayda yönlendirir.
func (h *ElementTypeHandler) CreateElementType(c *fiber.Ctx) error {
	const title, action = "Create Element Type", "/catalog/elementtype/create"

	var input services.ElementTypeInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}

	sanitized, candidate, fieldErrors := services.PrepareElementType(input, services.ElementTypeCreateMessages)
	if len(fieldErrors) > 0 {
		return renderElementTypeForm(c, title, action, sanitized, fieldErrors, http.StatusUnprocessableEntity)
	}

	elementType, _, err := h.service.FindOrCreateElementType(c.UserContext(), candidate)
	if err != nil {
		return err
	}
	return c.Redirect(elementType.URL(), fiber.StatusSeeOther)
}

func (h *ElementTypeHandler) ShowUpdateElementType(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "Element Type not found")
	if err != nil {
		return err
	}

	elementType, err := h.service.GetElementType(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrElementTypeNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Element Type not found")
		}
		return err
	}

	return renderElementTypeForm(c, "Update Element Type", fmt.Sprintf("/catalog/elementtype/%d/update", id),
		services.ElementTypeInputFromModel(*elementType), nil, http.StatusOK)
}

func (h *ElementTypeHandler) UpdateElementType(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "Element Type not found")
	if err != nil {
		return err
	}
	if _, err := h.service.GetElementType(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrElementTypeNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Element Type not found")
		}
		return err
	}
	const title = "Update Element Type"
	action := fmt.Sprintf("/catalog/elementtype/%d/update", id)

	var input services.ElementTypeInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}

	sanitized, candidate, fieldErrors := services.PrepareElementType(input, services.ElementTypeUpdateMessages)
	if len(fieldErrors) > 0 {
		return renderElementTypeForm(c, title, action, sanitized, fieldErrors, http.StatusUnprocessableEntity)
	}

	elementType, err := h.service.UpdateElementType(c.UserContext(), id, candidate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrElementTypeNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Element Type not found")
		case errors.Is(err, services.ErrElementTypeNameTaken):
			return renderElementTypeForm(c, title, action, sanitized,
				fieldError("name", "An element type with this name already exists"), http.StatusUnprocessableEntity)
		}
		return err
	}

	return c.Redirect(elementType.URL(), fiber.StatusSeeOther)
}

func (h *ElementTypeHandler) ShowDeleteElementType(c *fiber.Ctx) error {
	id, err := formvalidation.ParseID(c.Params("id"))
	if err != nil {
		return c.Redirect(elementTypeListPath)
	}

	detail, err := h.service.GetElementTypeDetail(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrElementTypeNotFound) {
			return c.Redirect(elementTypeListPath)
		}
		return err
	}

	return renderer.Render(c, "elementtype/delete", mainLayout, fiber.Map{
		"Title":       "Delete Element Type",
		"ElementType": detail.ElementType,
		"Cards":       detail.Cards,
	})
}

// DeleteElementType bağlı kart yoksa element türünü siler.
func (h *ElementTypeHandler) DeleteElementType(c *fiber.Ctx) error {
	id, err := formvalidation.ParseID(c.Params("id"))
	if err != nil {
		return c.Redirect(elementTypeListPath, fiber.StatusSeeOther)
	}

	detail, err := h.service.DeleteElementType(c.UserContext(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrElementTypeNotFound):
			return c.Redirect(elementTypeListPath, fiber.StatusSeeOther)
		case errors.Is(err, services.ErrElementTypeInUse):
			return renderer.Render(c, "elementtype/delete", mainLayout, fiber.Map{
				"Title":       "Delete Element Type",
				"ElementType": detail.ElementType,
				"Cards":       detail.Cards,
			})
		}
		return err
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Element type deleted.")
	return c.Redirect(elementTypeListPath, fiber.StatusSeeOther)
}
