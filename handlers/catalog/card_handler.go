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

const cardListPath = "/catalog/cards"

// CardHandler kart sayfaları için handler.
type CardHandler struct {
	service services.ICardService
}

// NewCardHandler yeni bir CardHandler örneği oluşturur.
func NewCardHandler(db *gorm.DB) *CardHandler {
	return &CardHandler{service: services.NewCardService(db)}
}

// ListCards tüm kartları başlık sırasıyla listeler.
func (h *CardHandler) ListCards(c *fiber.Ctx) error {
	cards, err := h.service.ListCards(c.UserContext())
	if err != nil {
		return err
	}
	return renderer.Render(c, "card/list", mainLayout, fiber.Map{
		"Title": "Card List",
		"Cards": cards,
	})
}

// ShowCard kartı, element türlerini ve kopyalarını gösterir.
func (h *CardHandler) ShowCard(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "Card not found")
	if err != nil {
		return err
	}

	detail, err := h.service.GetCardDetail(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Card not found")
		}
		return err
	}

	return renderer.Render(c, "card/detail", mainLayout, fiber.Map{
		"Title":     detail.Card.Title,
		"Card":      detail.Card,
		"Instances": detail.Instances,
	})
}

// renderForm kart formunu güncel element türü seçenekleriyle render eder.
func (h *CardHandler) renderForm(c *fiber.Ctx, title, action string, input services.CardInput, selected []uint, fieldErrors []formvalidation.FieldError, status int) error {
	options, err := h.service.ElementTypeOptions(c.UserContext(), selected)
	if err != nil {
		return err
	}
	return renderer.Render(c, "card/form", mainLayout, fiber.Map{
		"Title":        title,
		"Action":       action,
		"Input":        input,
		"ElementTypes": options,
		"Errors":       fieldErrors,
	}, status)
}

// ShowCreateCard boş kart formunu gösterir.
func (h *CardHandler) ShowCreateCard(c *fiber.Ctx) error {
	return h.renderForm(c, "Create Card", "/catalog/card/create", services.CardInput{}, nil, nil, http.StatusOK)
}

// CreateCard formu doğrular ve yeni kartı kaydeder.
func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	const title, action = "Create Card", "/catalog/card/create"

	var input services.CardInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}

	sanitized, card, fieldErrors := services.PrepareCard(input)
	if len(fieldErrors) > 0 {
		return h.renderForm(c, title, action, sanitized, card.ElementTypeIDs(), fieldErrors, http.StatusUnprocessableEntity)
	}

	if err := h.service.CreateCard(c.UserContext(), &card); err != nil {
		if errors.Is(err, services.ErrUnknownElementType) {
			return h.renderForm(c, title, action, sanitized, card.ElementTypeIDs(),
				fieldError(services.ElementTypeSelectionField, err.Error()), http.StatusUnprocessableEntity)
		}
		return err
	}

	return c.Redirect(card.URL(), fiber.StatusSeeOther)
}

// ShowUpdateCard mevcut kartla doldurulmuş formu gösterir.
func (h *CardHandler) ShowUpdateCard(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "Card not found")
	if err != nil {
		return err
	}

	card, err := h.service.GetCard(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Card not found")
		}
		return err
	}

	return h.renderForm(c, "Update Card", fmt.Sprintf("/catalog/card/%d/update", id),
		services.CardInputFromModel(*card), card.ElementTypeIDs(), nil, http.StatusOK)
}

// UpdateCard formu doğrular ve kartı aynı ID ile günceller.
// Kart yoksa form doğrulanmadan 404 döner.
func (h *CardHandler) UpdateCard(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "Card not found")
	if err != nil {
		return err
	}
	if _, err := h.service.GetCard(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Card not found")
		}
		return err
	}
	const title = "Update Card"
	action := fmt.Sprintf("/catalog/card/%d/update", id)

	var input services.CardInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}

	sanitized, card, fieldErrors := services.PrepareCard(input)
	if len(fieldErrors) > 0 {
		return h.renderForm(c, title, action, sanitized, card.ElementTypeIDs(), fieldErrors, http.StatusUnprocessableEntity)
	}

	if err := h.service.UpdateCard(c.UserContext(), id, &card); err != nil {
		switch {
		case errors.Is(err, services.ErrCardNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Card not found")
		case errors.Is(err, services.ErrUnknownElementType):
			return h.renderForm(c, title, action, sanitized, card.ElementTypeIDs(),
				fieldError(services.ElementTypeSelectionField, err.Error()), http.StatusUnprocessableEntity)
		}
		return err
	}

	return c.Redirect(card.URL(), fiber.StatusSeeOther)
}

// ShowDeleteCard silme onay sayfasını kartın kopyalarıyla birlikte gösterir.
func (h *CardHandler) ShowDeleteCard(c *fiber.Ctx) error {
	id, err := formvalidation.ParseID(c.Params("id"))
	if err != nil {
		return c.Redirect(cardListPath)
	}

	detail, err := h.service.GetCardDetail(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return c.Redirect(cardListPath)
		}
		return err
	}

	return renderer.Render(c, "card/delete", mainLayout, fiber.Map{
		"Title":     "Delete Card",
		"Card":      detail.Card,
		"Instances": detail.Instances,
	})
}

// DeleteCard kopyası yoksa kartı siler. Hedef ID her zaman URL'den alınır.
func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	id, err := formvalidation.ParseID(c.Params("id"))
	if err != nil {
		return c.Redirect(cardListPath, fiber.StatusSeeOther)
	}

	detail, err := h.service.DeleteCard(c.UserContext(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCardNotFound):
			return c.Redirect(cardListPath, fiber.StatusSeeOther)
		case errors.Is(err, services.ErrCardInUse):
			return renderer.Render(c, "card/delete", mainLayout, fiber.Map{
				"Title":     "Delete Card",
				"Card":      detail.Card,
				"Instances": detail.Instances,
			})
		}
		return err
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Card deleted.")
	return c.Redirect(cardListPath, fiber.StatusSeeOther)
}
