package services

import (
	"context"
	"errors"
	"fmt"

	"cardcatalog.app/configs/configslog"
	"cardcatalog.app/models"
	"cardcatalog.app/pkg/formvalidation"
	"cardcatalog.app/repositories"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// CardServiceError özel servis hataları
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotFound       CardServiceError = "card not found"
	ErrCardInUse          CardServiceError = "card still has instances"
	ErrUnknownElementType CardServiceError = "Selected element type does not exist."
	ErrCardCreationFailed CardServiceError = "card could not be created"
	ErrCardUpdateFailed   CardServiceError = "card could not be updated"
	ErrCardDeletionFailed CardServiceError = "card could not be deleted"
)

// ElementTypeSelectionField element türü seçim hatalarının form alanı.
const ElementTypeSelectionField = "element_type"

// CardInput kart formunun alanları. element_type tekrarlanan bir form alanıdır.
type CardInput struct {
	Title        string   `form:"title" validate:"required"`
	Summary      string   `form:"summary" validate:"required"`
	ElementTypes []string `form:"element_type"`
}

var CardMessages = formvalidation.Messages{
	"Title":   "Title must not be empty.",
	"Summary": "Summary must not be empty.",
}

// PrepareCard girdiyi temizler, doğrular ve aday kartı seçilen element türü sırasıyla kurar.
func PrepareCard(input CardInput) (CardInput, models.Card, []formvalidation.FieldError) {
	if input.ElementTypes == nil {
		input.ElementTypes = []string{}
	}
	input.Title = formvalidation.Trim(input.Title)
	input.Summary = formvalidation.Trim(input.Summary)

	fieldErrors := formvalidation.Validate(input, CardMessages)

	input.Title = formvalidation.Escape(input.Title)
	input.Summary = formvalidation.Escape(input.Summary)

	ids, invalid := formvalidation.ParseIDs(input.ElementTypes)
	if len(invalid) > 0 {
		fieldErrors = append(fieldErrors, formvalidation.FieldError{
			Field:   ElementTypeSelectionField,
			Message: string(ErrUnknownElementType),
		})
	}

	card := models.Card{Title: input.Title, Summary: input.Summary}
	card.SetElementTypeIDs(ids)
	return input, card, fieldErrors
}

// CardInputFromModel güncelleme formunu mevcut kartla doldurur.
func CardInputFromModel(card models.Card) CardInput {
	ids := card.ElementTypeIDs()
	selected := make([]string, 0, len(ids))
	for _, id := range ids {
		selected = append(selected, fmt.Sprint(id))
	}
	return CardInput{Title: card.Title, Summary: card.Summary, ElementTypes: selected}
}

// CardDetail kart detay ve silme sayfalarında gösterilen veri.
type CardDetail struct {
	Card      models.Card
	Instances []models.CardInstance
}

// ElementTypeOption kart formundaki bir element türü onay kutusu.
type ElementTypeOption struct {
	ElementType models.ElementType
	Checked     bool
}

// ICardService kart işlemleri için arayüz.
type ICardService interface {
	ListCards(ctx context.Context) ([]models.Card, error)
	GetCard(ctx context.Context, id uint) (*models.Card, error)
	GetCardDetail(ctx context.Context, id uint) (*CardDetail, error)
	ElementTypeOptions(ctx context.Context, selected []uint) ([]ElementTypeOption, error)
	CreateCard(ctx context.Context, card *models.Card) error
	UpdateCard(ctx context.Context, id uint, card *models.Card) error
	DeleteCard(ctx context.Context, id uint) (*CardDetail, error)
}

// CardService ICardService arayüzünü uygular.
type CardService struct {
	repo            repositories.ICardRepository
	elementTypeRepo repositories.IElementTypeRepository
	instanceRepo    repositories.ICardInstanceRepository
	db              *gorm.DB // Transaction yönetimi için
}

// NewCardService yeni bir CardService örneği oluşturur.
func NewCardService(db *gorm.DB) ICardService {
	return &CardService{
		repo:            repositories.NewCardRepository(db),
		elementTypeRepo: repositories.NewElementTypeRepository(db),
		instanceRepo:    repositories.NewCardInstanceRepository(db),
		db:              db,
	}
}

// ListCards tüm kartları başlık sırasıyla döndürür.
func (s *CardService) ListCards(ctx context.Context) ([]models.Card, error) {
	cards, err := s.repo.FindAllByTitle(ctx)
	if err != nil {
		return nil, fmt.Errorf("kartlar listelenemedi: %w", err)
	}
	return cards, nil
}

// GetCard kartı sıralı element türleriyle birlikte getirir.
func (s *CardService) GetCard(ctx context.Context, id uint) (*models.Card, error) {
	card, err := s.repo.FindWithElementTypes(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}

// GetCardDetail kartı ve kopyalarını paralel olarak getirir.
func (s *CardService) GetCardDetail(ctx context.Context, id uint) (*CardDetail, error) {
	var (
		card      *models.Card
		instances []models.CardInstance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		card, err = s.repo.FindWithElementTypes(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		instances, err = s.instanceRepo.FindByCard(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	return &CardDetail{Card: *card, Instances: instances}, nil
}

// ElementTypeOptions tüm element türlerini isim sırasıyla, seçili olanları işaretleyerek döndürür.
func (s *CardService) ElementTypeOptions(ctx context.Context, selected []uint) ([]ElementTypeOption, error) {
	elementTypes, err := s.elementTypeRepo.FindAllByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("element türleri alınamadı: %w", err)
	}

	checked := make(map[uint]struct{}, len(selected))
	for _, id := range selected {
		checked[id] = struct{}{}
	}

	options := make([]ElementTypeOption, 0, len(elementTypes))
	for _, et := range elementTypes {
		_, ok := checked[et.ID]
		options = append(options, ElementTypeOption{ElementType: et, Checked: ok})
	}
	return options, nil
}

// verifyElementTypes seçilen tüm element türlerinin hala var olduğunu kontrol eder.
func (s *CardService) verifyElementTypes(txCtx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	count, err := s.elementTypeRepo.CountExisting(txCtx, ids)
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return ErrUnknownElementType
	}
	return nil
}

// CreateCard kartı ve element türü bağlantılarını tek transaction içinde oluşturur.
func (s *CardService) CreateCard(ctx context.Context, card *models.Card) error {
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)
		if err := s.verifyElementTypes(txCtx, card.ElementTypeIDs()); err != nil {
			return err
		}
		return s.repo.CreateWithElementTypes(txCtx, card)
	})

	if txErr != nil {
		if errors.Is(txErr, ErrUnknownElementType) || errors.Is(txErr, gorm.ErrForeignKeyViolated) {
			return ErrUnknownElementType
		}
		configslog.Log.Error("Card could not be created", zap.String("title", card.Title), zap.Error(txErr))
		return fmt.Errorf("%w: %v", ErrCardCreationFailed, txErr)
	}

	configslog.SLog.Infof("Card created: ID %d, title %q", card.ID, card.Title)
	return nil
}

// UpdateCard kartın başlık, özet ve element türlerini ID'yi koruyarak değiştirir.
func (s *CardService) UpdateCard(ctx context.Context, id uint, card *models.Card) error {
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)

		if _, err := s.repo.FindByIDForUpdate(txCtx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCardNotFound
			}
			return err
		}
		if err := s.verifyElementTypes(txCtx, card.ElementTypeIDs()); err != nil {
			return err
		}

		card.ID = id
		return s.repo.UpdateWithElementTypes(txCtx, card)
	})

	if txErr != nil {
		switch {
		case errors.Is(txErr, ErrCardNotFound), errors.Is(txErr, repositories.ErrNotFound):
			return ErrCardNotFound
		case errors.Is(txErr, ErrUnknownElementType), errors.Is(txErr, gorm.ErrForeignKeyViolated):
			return ErrUnknownElementType
		}
		configslog.Log.Error("Card could not be updated", zap.Uint("id", id), zap.Error(txErr))
		return fmt.Errorf("%w: %v", ErrCardUpdateFailed, txErr)
	}

	configslog.SLog.Infof("Card updated: ID %d", id)
	return nil
}

// DeleteCard kopyası olmayan kartı bağlantılarıyla birlikte siler.
// Kopya varsa hiçbir şey silinmez; güncel kopya listesi ErrCardInUse ile döner.
func (s *CardService) DeleteCard(ctx context.Context, id uint) (*CardDetail, error) {
	var detail *CardDetail

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)

		card, err := s.repo.FindByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCardNotFound
			}
			return err
		}

		instances, err := s.instanceRepo.FindByCard(txCtx, id)
		if err != nil {
			return err
		}
		detail = &CardDetail{Card: *card, Instances: instances}
		if len(instances) > 0 {
			return ErrCardInUse
		}

		return s.repo.DeleteWithLinks(txCtx, id)
	})

	if txErr != nil {
		switch {
		case errors.Is(txErr, ErrCardNotFound):
			return nil, txErr
		case errors.Is(txErr, ErrCardInUse):
			return detail, txErr
		case errors.Is(txErr, gorm.ErrForeignKeyViolated):
			// Kontrol ile silme arasında bir kopya eklendi
			// Yalnızca Postgres: sqlite sürücüsü FK hatasını çevirmez, orada tek bağlantı yarışı zaten engeller
			fresh, err := s.GetCardDetail(ctx, id)
			if err != nil {
				return nil, err
			}
			return fresh, ErrCardInUse
		}
		configslog.Log.Error("Card could not be deleted", zap.Uint("id", id), zap.Error(txErr))
		return nil, fmt.Errorf("%w: %v", ErrCardDeletionFailed, txErr)
	}

	configslog.SLog.Infof("Card deleted: ID %d", id)
	return detail, nil
}

var _ ICardService = (*CardService)(nil)
