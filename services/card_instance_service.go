package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"cardcatalog.app/configs/configslog"
	"cardcatalog.app/models"
	"cardcatalog.app/pkg/formvalidation"
	"cardcatalog.app/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CardInstanceServiceError özel servis hataları
type CardInstanceServiceError string

func (e CardInstanceServiceError) Error() string { return string(e) }

const (
	ErrCardInstanceNotFound       CardInstanceServiceError = "card instance not found"
	ErrCardInstanceUnknownCard    CardInstanceServiceError = "Card must be specified"
	ErrCardInstanceCreationFailed CardInstanceServiceError = "card instance could not be created"
	ErrCardInstanceUpdateFailed   CardInstanceServiceError = "card instance could not be updated"
	ErrCardInstanceDeletionFailed CardInstanceServiceError = "card instance could not be deleted"
)

// CardInstanceInput kart kopyası formunun alanları.
// Fiyat formdan metin olarak gelir; doğrulamadan sonra sayıya çevrilir.
type CardInstanceInput struct {
	Card      string `form:"card" validate:"required"`
	CardPrice string `form:"card_price" validate:"required,numeric"`
	Status    string `form:"status" validate:"omitempty,oneof='Available' 'Not Available'"`
}

var CardInstanceMessages = formvalidation.Messages{
	"Card":               "Card must be specified",
	"CardPrice.required": "Price must be specified",
	"CardPrice.numeric":  "Price must be a number",
	"Status":             "Status must be Available or Not Available",
}

const (
	priceNegativeMessage = "Price must not be negative"
	priceTooLargeMessage = "Price must not exceed 9999999999.99"
)

// maxCardPrice numeric(12,2) sütununa sığan en büyük fiyattır.
const maxCardPrice = 9999999999.99

// PrepareCardInstance girdiyi temizler, doğrular ve aday kopyayı kurar.
// Boş durum Available kabul edilir.
func PrepareCardInstance(input CardInstanceInput) (CardInstanceInput, models.CardInstance, []formvalidation.FieldError) {
	input.Card = formvalidation.Trim(input.Card)
	input.CardPrice = formvalidation.Trim(input.CardPrice)
	input.Status = formvalidation.Trim(input.Status)
	if input.Status == "" {
		input.Status = string(models.CardInstanceStatusAvailable)
	}

	fieldErrors := formvalidation.Validate(input, CardInstanceMessages)
	failed := make(map[string]bool, len(fieldErrors))
	for _, fe := range fieldErrors {
		failed[fe.Field] = true
	}

	instance := models.CardInstance{Status: models.CardInstanceStatus(input.Status)}

	if !failed["card"] {
		cardID, err := formvalidation.ParseID(input.Card)
		if err != nil {
			fieldErrors = append(fieldErrors, formvalidation.FieldError{Field: "card", Message: CardInstanceMessages["Card"]})
		}
		instance.CardID = cardID
	}

	if !failed["card_price"] {
		price, err := strconv.ParseFloat(input.CardPrice, 64)
		switch {
		case err != nil:
			fieldErrors = append(fieldErrors, formvalidation.FieldError{Field: "card_price", Message: CardInstanceMessages["CardPrice.numeric"]})
		case price < 0:
			fieldErrors = append(fieldErrors, formvalidation.FieldError{Field: "card_price", Message: priceNegativeMessage})
		case price > maxCardPrice:
			fieldErrors = append(fieldErrors, formvalidation.FieldError{Field: "card_price", Message: priceTooLargeMessage})
		default:
			instance.CardPrice = price
		}
	}

	input.Card = formvalidation.Escape(input.Card)
	input.CardPrice = formvalidation.Escape(input.CardPrice)
	input.Status = formvalidation.Escape(input.Status)
	return input, instance, fieldErrors
}

// CardInstanceInputFromModel güncelleme formunu mevcut kopyayla doldurur.
func CardInstanceInputFromModel(instance models.CardInstance) CardInstanceInput {
	return CardInstanceInput{
		Card:      strconv.FormatUint(uint64(instance.CardID), 10),
		CardPrice: strconv.FormatFloat(instance.CardPrice, 'f', -1, 64),
		Status:    string(instance.Status),
	}
}

// CardOption kopya formundaki kart seçeneği.
type CardOption struct {
	Card     models.Card
	Selected bool
}

// ICardInstanceService kart kopyası işlemleri için arayüz.
type ICardInstanceService interface {
	ListCardInstances(ctx context.Context) ([]models.CardInstance, error)
	GetCardInstance(ctx context.Context, id uint) (*models.CardInstance, error)
	CardOptions(ctx context.Context, selected uint) ([]CardOption, error)
	CreateCardInstance(ctx context.Context, instance *models.CardInstance) error
	UpdateCardInstance(ctx context.Context, id uint, instance *models.CardInstance) error
	DeleteCardInstance(ctx context.Context, id uint) (*models.CardInstance, error)
}

// CardInstanceService ICardInstanceService arayüzünü uygular.
type CardInstanceService struct {
	repo     repositories.ICardInstanceRepository
	cardRepo repositories.ICardRepository
	db       *gorm.DB
}

// NewCardInstanceService yeni bir CardInstanceService örneği oluşturur.
func NewCardInstanceService(db *gorm.DB) ICardInstanceService {
	return &CardInstanceService{
		repo:     repositories.NewCardInstanceRepository(db),
		cardRepo: repositories.NewCardRepository(db),
		db:       db,
	}
}

// ListCardInstances tüm kopyaları kartlarıyla birlikte döndürür.
func (s *CardInstanceService) ListCardInstances(ctx context.Context) ([]models.CardInstance, error) {
	instances, err := s.repo.FindAllWithCard(ctx)
	if err != nil {
		return nil, fmt.Errorf("kart kopyaları listelenemedi: %w", err)
	}
	return instances, nil
}

// GetCardInstance kopyayı kartıyla birlikte getirir.
func (s *CardInstanceService) GetCardInstance(ctx context.Context, id uint) (*models.CardInstance, error) {
	instance, err := s.repo.FindWithCard(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardInstanceNotFound
		}
		return nil, err
	}
	return instance, nil
}

// CardOptions tüm kartları başlık sırasıyla, seçili olanı işaretleyerek döndürür.
func (s *CardInstanceService) CardOptions(ctx context.Context, selected uint) ([]CardOption, error) {
	cards, err := s.cardRepo.FindAllByTitle(ctx)
	if err != nil {
		return nil, fmt.Errorf("kartlar alınamadı: %w", err)
	}
	options := make([]CardOption, 0, len(cards))
	for _, card := range cards {
		options = append(options, CardOption{Card: card, Selected: selected != 0 && card.ID == selected})
	}
	return options, nil
}

func (s *CardInstanceService) verifyCard(txCtx context.Context, cardID uint) error {
	exists, err := s.cardRepo.Exists(txCtx, cardID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCardInstanceUnknownCard
	}
	return nil
}

// CreateCardInstance kartın varlığını doğrulayıp yeni kopyayı kaydeder.
func (s *CardInstanceService) CreateCardInstance(ctx context.Context, instance *models.CardInstance) error {
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)
		if err := s.verifyCard(txCtx, instance.CardID); err != nil {
			return err
		}
		return s.repo.Create(txCtx, instance)
	})

	if txErr != nil {
		if errors.Is(txErr, ErrCardInstanceUnknownCard) || errors.Is(txErr, gorm.ErrForeignKeyViolated) {
			return ErrCardInstanceUnknownCard
		}
		configslog.Log.Error("Card instance could not be created", zap.Uint("card_id", instance.CardID), zap.Error(txErr))
		return fmt.Errorf("%w: %v", ErrCardInstanceCreationFailed, txErr)
	}

	configslog.SLog.Infof("Card instance created: ID %d, card %d", instance.ID, instance.CardID)
	return nil
}

// UpdateCardInstance kopyanın kart, fiyat ve durumunu ID'yi koruyarak değiştirir.
func (s *CardInstanceService) UpdateCardInstance(ctx context.Context, id uint, instance *models.CardInstance) error {
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)

		exists, err := s.repo.Exists(txCtx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrCardInstanceNotFound
		}
		if err := s.verifyCard(txCtx, instance.CardID); err != nil {
			return err
		}

		instance.ID = id
		return s.repo.Update(txCtx, id, map[string]interface{}{
			"card_id":    instance.CardID,
			"card_price": instance.CardPrice,
			"status":     instance.Status,
		})
	})

	if txErr != nil {
		switch {
		case errors.Is(txErr, ErrCardInstanceNotFound), errors.Is(txErr, repositories.ErrNotFound):
			return ErrCardInstanceNotFound
		case errors.Is(txErr, ErrCardInstanceUnknownCard), errors.Is(txErr, gorm.ErrForeignKeyViolated):
			return ErrCardInstanceUnknownCard
		}
		configslog.Log.Error("Card instance could not be updated", zap.Uint("id", id), zap.Error(txErr))
		return fmt.Errorf("%w: %v", ErrCardInstanceUpdateFailed, txErr)
	}

	configslog.SLog.Infof("Card instance updated: ID %d", id)
	return nil
}

// DeleteCardInstance kopyayı siler ve silinen kaydı döndürür.
func (s *CardInstanceService) DeleteCardInstance(ctx context.Context, id uint) (*models.CardInstance, error) {
	instance, err := s.repo.FindWithCard(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardInstanceNotFound
		}
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardInstanceNotFound
		}
		configslog.Log.Error("Card instance could not be deleted", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCardInstanceDeletionFailed, err)
	}

	configslog.SLog.Infof("Card instance deleted: ID %d", id)
	return instance, nil
}

var _ ICardInstanceService = (*CardInstanceService)(nil)
