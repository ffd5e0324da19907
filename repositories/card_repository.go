package repositories

import (
	"context"
	"errors"

	"cardcatalog.app/configs/configslog"
	"cardcatalog.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ICardRepository kart veritabanı işlemleri için arayüz.
type ICardRepository interface {
	IBaseRepository[models.Card]
	FindAllByTitle(ctx context.Context) ([]models.Card, error)
	FindWithElementTypes(ctx context.Context, id uint) (*models.Card, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*models.Card, error)
	FindByElementType(ctx context.Context, elementTypeID uint) ([]models.Card, error)
	CountByElementType(ctx context.Context, elementTypeID uint) (int64, error)
	CreateWithElementTypes(ctx context.Context, card *models.Card) error
	UpdateWithElementTypes(ctx context.Context, card *models.Card) error
	DeleteWithLinks(ctx context.Context, id uint) error
}

// CardRepository ICardRepository arayüzünü uygular.
// Element türü bağlantıları (card_element_types) burada yönetilir.
type CardRepository struct {
	*BaseRepository[models.Card]
	db *gorm.DB
}

// NewCardRepository yeni bir CardRepository örneği oluşturur.
func NewCardRepository(db *gorm.DB) ICardRepository {
	return &CardRepository{
		BaseRepository: NewBaseRepository[models.Card](db),
		db:             db,
	}
}

// withElementTypes bağlantıları pozisyon sırasıyla ve element türleriyle birlikte yükler.
func withElementTypes(db *gorm.DB) *gorm.DB {
	return db.
		Preload("ElementTypeLinks", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Preload("ElementTypeLinks.ElementType")
}

// FindAllByTitle tüm kartları başlığa göre artan sırada listeler.
func (r *CardRepository) FindAllByTitle(ctx context.Context) ([]models.Card, error) {
	return r.FindAll(ctx, "title ASC")
}

// FindWithElementTypes kartı sıralı element türleriyle birlikte getirir.
func (r *CardRepository) FindWithElementTypes(ctx context.Context, id uint) (*models.Card, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var card models.Card
	err := withElementTypes(getDB(ctx, r.db)).First(&card, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CardRepository.FindWithElementTypes: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// FindByIDForUpdate kartı transaction içinde kilitleyerek getirir.
func (r *CardRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.Card, error) {
	var card models.Card
	err := LockForUpdate(getDB(ctx, r.db)).First(&card, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CardRepository.FindByIDForUpdate: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// FindByElementType verilen element türüne bağlı kartları başlık sırasıyla döndürür.
func (r *CardRepository) FindByElementType(ctx context.Context, elementTypeID uint) ([]models.Card, error) {
	var cards []models.Card
	err := getDB(ctx, r.db).
		Joins("JOIN card_element_types ON card_element_types.card_id = cards.id").
		Where("card_element_types.element_type_id = ?", elementTypeID).
		Order("cards.title ASC").
		Find(&cards).Error
	if err != nil {
		configslog.Log.Error("CardRepository.FindByElementType: DB error", zap.Uint("element_type_id", elementTypeID), zap.Error(err))
		return nil, err
	}
	return cards, nil
}

// CountByElementType verilen element türüne bağlı kart sayısını döndürür.
func (r *CardRepository) CountByElementType(ctx context.Context, elementTypeID uint) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&models.CardElementType{}).
		Where("element_type_id = ?", elementTypeID).
		Count(&count).Error
	return count, err
}

// CreateWithElementTypes kartı ve sıralı bağlantılarını birlikte oluşturur.
// Çağıran taraf bir transaction açmalıdır; aksi halde iki ayrı yazma yapılır.
func (r *CardRepository) CreateWithElementTypes(ctx context.Context, card *models.Card) error {
	if card == nil {
		return errors.New("oluşturulacak kart nil olamaz")
	}
	db := getDB(ctx, r.db)
	ids := card.ElementTypeIDs()
	if err := db.Omit(clause.Associations).Create(card).Error; err != nil {
		return err
	}
	card.SetElementTypeIDs(ids)
	return r.insertLinks(db, card.ElementTypeLinks)
}

// UpdateWithElementTypes başlık ve özeti günceller, bağlantıları baştan yazar.
func (r *CardRepository) UpdateWithElementTypes(ctx context.Context, card *models.Card) error {
	if card == nil || card.ID == 0 {
		return ErrNotFound
	}
	db := getDB(ctx, r.db)
	err := r.Update(ctx, card.ID, map[string]interface{}{
		"title":   card.Title,
		"summary": card.Summary,
	})
	if err != nil {
		return err
	}
	if err := db.Where("card_id = ?", card.ID).Delete(&models.CardElementType{}).Error; err != nil {
		return err
	}
	card.SetElementTypeIDs(card.ElementTypeIDs())
	return r.insertLinks(db, card.ElementTypeLinks)
}

// DeleteWithLinks önce bağlantıları sonra kartı siler.
func (r *CardRepository) DeleteWithLinks(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)
	if err := db.Where("card_id = ?", id).Delete(&models.CardElementType{}).Error; err != nil {
		return err
	}
	return r.Delete(ctx, id)
}

func (r *CardRepository) insertLinks(db *gorm.DB, links []models.CardElementType) error {
	if len(links) == 0 {
		return nil
	}
	return db.Omit(clause.Associations).Create(&links).Error
}

// Arayüz uyumluluğu kontrolü
var _ ICardRepository = (*CardRepository)(nil)
