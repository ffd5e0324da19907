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

// ElementTypeServiceError özel servis hataları
type ElementTypeServiceError string

func (e ElementTypeServiceError) Error() string { return string(e) }

const (
	ErrElementTypeNotFound       ElementTypeServiceError = "element type not found"
	ErrElementTypeNameTaken      ElementTypeServiceError = "an element type with this name already exists"
	ErrElementTypeInUse          ElementTypeServiceError = "element type is still referenced by cards"
	ErrElementTypeCreationFailed ElementTypeServiceError = "element type could not be created"
	ErrElementTypeUpdateFailed   ElementTypeServiceError = "element type could not be updated"
	ErrElementTypeDeletionFailed ElementTypeServiceError = "element type could not be deleted"
)

// ElementTypeInput element türü formunun alanları.
type ElementTypeInput struct {
	Name string `form:"name" validate:"min=3,max=100"`
}

var (
	// Oluşturma ve güncelleme formlarındaki mesajlar bilinçli olarak farklıdır.
	ElementTypeCreateMessages = formvalidation.Messages{
		"Name.min": "Element_Type name must contain at least 3 characters",
		"Name.max": "Element Type name must not exceed 100 characters",
	}
	ElementTypeUpdateMessages = formvalidation.Messages{
		"Name.min": "Element Type name must contain at least 3 characters",
		"Name.max": "Element Type name must not exceed 100 characters",
	}
)

// PrepareElementType girdiyi temizler, doğrular ve kaydedilecek aday modeli kurar.
func PrepareElementType(input ElementTypeInput, messages formvalidation.Messages) (ElementTypeInput, models.ElementType, []formvalidation.FieldError) {
	input.Name = formvalidation.Trim(input.Name)
	fieldErrors := formvalidation.Validate(input, messages)
	input.Name = formvalidation.Escape(input.Name)
	return input, models.ElementType{Name: input.Name}, fieldErrors
}

// ElementTypeInputFromModel güncelleme formunu mevcut kayıtla doldurur.
func ElementTypeInputFromModel(elementType models.ElementType) ElementTypeInput {
	return ElementTypeInput{Name: elementType.Name}
}

// ElementTypeDetail detay ve silme sayfalarında gösterilen veri.
type ElementTypeDetail struct {
	ElementType models.ElementType
	Cards       []models.Card
}

// IElementTypeService element türü işlemleri için arayüz.
type IElementTypeService interface {
	ListElementTypes(ctx context.Context) ([]models.ElementType, error)
	GetElementType(ctx context.Context, id uint) (*models.ElementType, error)
	GetElementTypeDetail(ctx context.Context, id uint) (*ElementTypeDetail, error)
	FindOrCreateElementType(ctx context.Context, candidate models.ElementType) (*models.ElementType, bool, error)
	UpdateElementType(ctx context.Context, id uint, candidate models.ElementType) (*models.ElementType, error)
	DeleteElementType(ctx context.Context, id uint) (*ElementTypeDetail, error)
}

// ElementTypeService IElementTypeService arayüzünü uygular.
type ElementTypeService struct {
	repo     repositories.IElementTypeRepository
	cardRepo repositories.ICardRepository
	db       *gorm.DB // Transaction yönetimi için
}

// NewElementTypeService yeni bir ElementTypeService örneği oluşturur.
func NewElementTypeService(db *gorm.DB) IElementTypeService {
	return &ElementTypeService{
		repo:     repositories.NewElementTypeRepository(db),
		cardRepo: repositories.NewCardRepository(db),
		db:       db,
	}
}

// ListElementTypes tüm element türlerini isim sırasıyla döndürür.
func (s *ElementTypeService) ListElementTypes(ctx context.Context) ([]models.ElementType, error) {
	elementTypes, err := s.repo.FindAllByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("element türleri listelenemedi: %w", err)
	}
	return elementTypes, nil
}

// GetElementType element türünü ID ile getirir.
func (s *ElementTypeService) GetElementType(ctx context.Context, id uint) (*models.ElementType, error) {
	elementType, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrElementTypeNotFound
		}
		return nil, err
	}
	return elementType, nil
}

// GetElementTypeDetail element türünü ve ona bağlı kartları paralel olarak getirir.
func (s *ElementTypeService) GetElementTypeDetail(ctx context.Context, id uint) (*ElementTypeDetail, error) {
	var (
		elementType *models.ElementType
		cards       []models.Card
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		elementType, err = s.repo.FindByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		cards, err = s.cardRepo.FindByElementType(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrElementTypeNotFound
		}
		return nil, err
	}

	return &ElementTypeDetail{ElementType: *elementType, Cards: cards}, nil
}

// FindOrCreateElementType aynı isimde kayıt varsa onu, yoksa yeni oluşturulan kaydı döndürür.
// İkinci dönüş değeri yeni kayıt oluşturulup oluşturulmadığını belirtir.
func (s *ElementTypeService) FindOrCreateElementType(ctx context.Context, candidate models.ElementType) (*models.ElementType, bool, error) {
	var (
		result  *models.ElementType
		created bool
	)

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)

		existing, err := s.repo.FindByName(txCtx, candidate.Name)
		if err == nil {
			result = existing
			return nil
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}

		if err := s.repo.Create(txCtx, &candidate); err != nil {
			return err
		}
		result = &candidate
		created = true
		return nil
	})

	if txErr != nil {
		// Eşzamanlı aynı isimli ekleme: unique index kazananı belirler
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			existing, err := s.repo.FindByName(ctx, candidate.Name)
			if err == nil {
				configslog.Log.Info("Element type created concurrently, using existing record",
					zap.String("name", candidate.Name), zap.Uint("id", existing.ID))
				return existing, false, nil
			}
		}
		configslog.Log.Error("Element type could not be created", zap.String("name", candidate.Name), zap.Error(txErr))
		return nil, false, fmt.Errorf("%w: %v", ErrElementTypeCreationFailed, txErr)
	}

	if created {
		configslog.SLog.Infof("Element type created: ID %d, name %q", result.ID, result.Name)
	}
	return result, created, nil
}

// UpdateElementType mevcut kaydın ismini ID'yi koruyarak günceller.
func (s *ElementTypeService) UpdateElementType(ctx context.Context, id uint, candidate models.ElementType) (*models.ElementType, error) {
	var updated *models.ElementType

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)

		existing, err := s.repo.FindByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrElementTypeNotFound
			}
			return err
		}

		taken, err := s.repo.NameTakenByOther(txCtx, candidate.Name, id)
		if err != nil {
			return err
		}
		if taken {
			return ErrElementTypeNameTaken
		}

		if err := s.repo.Update(txCtx, id, map[string]interface{}{"name": candidate.Name}); err != nil {
			return err
		}
		existing.Name = candidate.Name
		updated = existing
		return nil
	})

	if txErr != nil {
		switch {
		case errors.Is(txErr, ErrElementTypeNotFound), errors.Is(txErr, ErrElementTypeNameTaken):
			return nil, txErr
		case errors.Is(txErr, gorm.ErrDuplicatedKey):
			return nil, ErrElementTypeNameTaken
		}
		configslog.Log.Error("Element type could not be updated", zap.Uint("id", id), zap.Error(txErr))
		return nil, fmt.Errorf("%w: %v", ErrElementTypeUpdateFailed, txErr)
	}

	configslog.SLog.Infof("Element type updated: ID %d", id)
	return updated, nil
}

// DeleteElementType bağlı kart yoksa element türünü siler.
// Bağlı kart varsa hiçbir şey silinmez; güncel kart listesi ErrElementTypeInUse ile döner.
func (s *ElementTypeService) DeleteElementType(ctx context.Context, id uint) (*ElementTypeDetail, error) {
	var detail *ElementTypeDetail

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)

		elementType, err := s.repo.FindByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrElementTypeNotFound
			}
			return err
		}

		cards, err := s.cardRepo.FindByElementType(txCtx, id)
		if err != nil {
			return err
		}
		detail = &ElementTypeDetail{ElementType: *elementType, Cards: cards}
		if len(cards) > 0 {
			return ErrElementTypeInUse
		}

		return s.repo.Delete(txCtx, id)
	})

	if txErr != nil {
		switch {
		case errors.Is(txErr, ErrElementTypeNotFound):
			return nil, txErr
		case errors.Is(txErr, ErrElementTypeInUse):
			return detail, txErr
		case errors.Is(txErr, gorm.ErrForeignKeyViolated):
			// Kontrol ile silme arasında bir kart bağlandı
			// Yalnızca Postgres: sqlite sürücüsü FK hatasını çevirmez, orada tek bağlantı yarışı zaten engeller
			fresh, err := s.GetElementTypeDetail(ctx, id)
			if err != nil {
				return nil, err
			}
			return fresh, ErrElementTypeInUse
		}
		configslog.Log.Error("Element type could not be deleted", zap.Uint("id", id), zap.Error(txErr))
		return nil, fmt.Errorf("%w: %v", ErrElementTypeDeletionFailed, txErr)
	}

	configslog.SLog.Infof("Element type deleted: ID %d", id)
	return detail, nil
}

var _ IElementTypeService = (*ElementTypeService)(nil)
