package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"cardcatalog.app/models"
	"cardcatalog.app/pkg/flashmessages"
	"cardcatalog.app/pkg/formvalidation"
	"cardcatalog.app/pkg/renderer"
	"cardcatalog.app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const cardInstanceListPath = "/catalog/cardinstances"

// CardInstanceHandler kart kopyası sayfaları için handler.
type CardInstanceHandler struct {
	service services.ICardInstanceService
}

// NewCardInstanceHandler yeni bir CardInstanceHandler örneği oluşturur.
func NewCardInstanceHandler(db *gorm.DB) *CardInstanceHandler {
	return &CardInstanceHandler{service: services.NewCardInstanceService(db)}
}

func (h *CardInstanceHandler) ListCardInstances(c *fiber.Ctx) error {
	instances, err := h.service.ListCardInstances(c.UserContext())
	if err != nil {
		return err
	}
	return renderer.Render(c, "cardinstance/list", mainLayout, fiber.Map{
		"Title":     "Card Instance List",
		"Instances": instances,
	})
}

func (h *CardInstanceHandler) ShowCardInstance(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "Card copy not found")
	if err != nil {
		return err
	}

	instance, err := h.service.GetCardInstance(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrCardInstanceNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Card copy not found")
		}
		return err
	}

	return renderer.Render(c, "cardinstance/detail", mainLayout, fiber.Map{
		"Title":    "Card: " + instance.Card.Title,
		"Instance": instance,
	})
}

func (h *CardInstanceHandler) renderForm(c *fiber.Ctx, title, action string, input services.CardInstanceInput, selected uint, fieldErrors []formvalidation.FieldError, status int) error {
	options, err := h.service.CardOptions(c.UserContext(), selected)
	if err != nil {
		return err
	}
	return renderer.Render(c, "cardinstance/form", mainLayout, fiber.Map{
		"Title":    title,
		"Action":   action,
		"Input":    input,
		"Cards":    options,
		"Statuses": models.CardInstanceStatuses,
		"Errors":   fieldErrors,
	}, status)
}

func (h *CardInstanceHandler) ShowCreateCardInstance(c *fiber.Ctx) error {
	input := services.CardInstanceInput{Status: string(models.CardInstanceStatusAvailable)}
	return h.renderForm(c, "Create CardInstance", "/catalog/cardinstance/create", input, 0, nil, http.StatusOK)
}

func (h *CardInstanceHandler) CreateCardInstance(c *fiber.Ctx) error {
	const title, action = "Create CardInstance", "/catalog/cardinstance/create"

	var input services.CardInstanceInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}

	sanitized, instance, fieldErrors := services.PrepareCardInstance(input)
	if len(fieldErrors) > 0 {
		return h.renderForm(c, title, action, sanitized, instance.CardID, fieldErrors, http.StatusUnprocessableEntity)
	}

	if err := h.service.CreateCardInstance(c.UserContext(), &instance); err != nil {
		if errors.Is(err, services.ErrCardInstanceUnknownCard) {
			return h.renderForm(c, title, action, sanitized, 0, fieldError("card", err.Error()), http.StatusUnprocessableEntity)
		}
		return err
	}

	return c.Redirect(instance.URL(), fiber.StatusSeeOther)
}

func (h *CardInstanceHandler) ShowUpdateCardInstance(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "Card copy not found")
	if err != nil {
		return err
	}

	instance, err := h.service.GetCardInstance(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrCardInstanceNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Card copy not found")
		}
		return err
	}

	return h.renderForm(c, "Update CardInstance", fmt.Sprintf("/catalog/cardinstance/%d/update", id),
		services.CardInstanceInputFromModel(*instance), instance.CardID, nil, http.StatusOK)
}

func (h *CardInstanceHandler) UpdateCardInstance(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "Card copy not found")
	if err != nil {
		return err
	}
	if _, err := h.service.GetCardInstance(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrCardInstanceNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Card copy not found")
		}
		return err
	}
	const title = "Update CardInstance"
	action := fmt.Sprintf("/catalog/cardinstance/%d/update", id)

	var input services.CardInstanceInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}

	sanitized, instance, fieldErrors := services.PrepareCardInstance(input)
	if len(fieldErrors) > 0 {
		return h.renderForm(c, title, action, sanitized, instance.CardID, fieldErrors, http.StatusUnprocessableEntity)
	}

	if err := h.service.UpdateCardInstance(c.UserContext(), id, &instance); err != nil {
		switch {
		case errors.Is(err, services.ErrCardInstanceNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Card copy not found")
		case errors.Is(err, services.ErrCardInstanceUnknownCard):
			return h.renderForm(c, title, action, sanitized, 0, fieldError("card", err.Error()), http.StatusUnprocessableEntity)
		}
		return err
	}

	return c.Redirect(instance.URL(), fiber.StatusSeeOther)
}

func (h *CardInstanceHandler) ShowDeleteCardInstance(c *fiber.Ctx) error {
	id, err := formvalidation.ParseID(c.Params("id"))
	if err != nil {
		return c.Redirect(cardInstanceListPath)
	}

	instance, err := h.service.GetCardInstance(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrCardInstanceNotFound) {
			return c.Redirect(cardInstanceListPath)
		}
		return err
	}

	return renderer.Render(c, "cardinstance/delete", mainLayout, fiber.Map{
		"Title":    "Delete CardInstance",
		"Instance": instance,
	})
}

// DeleteCardInstance kopyayı koşulsuz siler. Hedef ID her zaman URL'den alınır.
func (h *CardInstanceHandler) DeleteCardInstance(c *fiber.Ctx) error {
	id, err := formvalidation.ParseID(c.Params("id"))
	if err != nil {
		return c.Redirect(cardInstanceListPath, fiber.StatusSeeOther)
	}

	if _, err := h.service.DeleteCardInstance(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrCardInstanceNotFound) {
			return c.Redirect(cardInstanceListPath, fiber.StatusSeeOther)
		}
		return err
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Card instance deleted.")
	return c.Redirect(cardInstanceListPath, fiber.StatusSeeOther)
}
