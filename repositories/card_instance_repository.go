package repositories

import (
	"context"
	"errors"

	"cardcatalog.app/configs/configslog"
	"cardcatalog.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICardInstanceRepository kart kopyası veritabanı işlemleri için arayüz.
type ICardInstanceRepository interface {
	IBaseRepository[models.CardInstance]
	FindAllWithCard(ctx context.Context) ([]models.CardInstance, error)
	FindWithCard(ctx context.Context, id uint) (*models.CardInstance, error)
	FindByCard(ctx context.Context, cardID uint) ([]models.CardInstance, error)
	CountByCard(ctx context.Context, cardID uint) (int64, error)
	CountByStatus(ctx context.Context, status models.CardInstanceStatus) (int64, error)
}

// CardInstanceRepository ICardInstanceRepository arayüzünü uygular.
type CardInstanceRepository struct {
	*BaseRepository[models.CardInstance]
	db *gorm.DB
}

// NewCardInstanceRepository yeni bir CardInstanceRepository örneği oluşturur.
func NewCardInstanceRepository(db *gorm.DB) ICardInstanceRepository {
	return &CardInstanceRepository{
		BaseRepository: NewBaseRepository[models.CardInstance](db),
		db:             db,
	}
}

// FindAllWithCard tüm kopyaları bağlı kartlarıyla birlikte listeler.
func (r *CardInstanceRepository) FindAllWithCard(ctx context.Context) ([]models.CardInstance, error) {
	return r.FindAll(ctx, "id ASC", "Card")
}

// FindWithCard kopyayı bağlı kartıyla birlikte getirir.
func (r *CardInstanceRepository) FindWithCard(ctx context.Context, id uint) (*models.CardInstance, error) {
	return r.FindByID(ctx, id, "Card")
}

// FindByCard bir karta ait tüm kopyaları döndürür.
func (r *CardInstanceRepository) FindByCard(ctx context.Context, cardID uint) ([]models.CardInstance, error) {
	var instances []models.CardInstance
	err := getDB(ctx, r.db).Where("card_id = ?", cardID).Order("id ASC").Find(&instances).Error
	if err != nil {
		configslog.Log.Error("CardInstanceRepository.FindByCard: DB error", zap.Uint("card_id", cardID), zap.Error(err))
		return nil, err
	}
	return instances, nil
}

// CountByCard bir karta ait kopya sayısını döndürür.
func (r *CardInstanceRepository) CountByCard(ctx context.Context, cardID uint) (int64, error) {
	return r.Count(ctx, "card_id = ?", cardID)
}

// CountByStatus belirli durumdaki kopya sayısını döndürür.
func (r *CardInstanceRepository) CountByStatus(ctx context.Context, status models.CardInstanceStatus) (int64, error) {
	if !status.IsValid() {
		return 0, errors.New("geçersiz kopya durumu: " + string(status))
	}
	return r.Count(ctx, "status = ?", status)
}

// Arayüz uyumluluğu kontrolü
var _ ICardInstanceRepository = (*CardInstanceRepository)(nil)
