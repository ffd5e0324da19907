package repositories

import (
	"context"
	"errors"

	"cardcatalog.app/configs/configslog"
	"cardcatalog.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IElementTypeRepository element türü veritabanı işlemleri için arayüz.
type IElementTypeRepository interface {
	IBaseRepository[models.ElementType]
	FindAllByName(ctx context.Context) ([]models.ElementType, error)
	FindByName(ctx context.Context, name string) (*models.ElementType, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*models.ElementType, error)
	NameTakenByOther(ctx context.Context, name string, exceptID uint) (bool, error)
	CountExisting(ctx context.Context, ids []uint) (int64, error)
}

// ElementTypeRepository IElementTypeRepository arayüzünü uygular.
type ElementTypeRepository struct {
	*BaseRepository[models.ElementType]
	db *gorm.DB
}

// NewElementTypeRepository yeni bir ElementTypeRepository örneği oluşturur.
func NewElementTypeRepository(db *gorm.DB) IElementTypeRepository {
	return &ElementTypeRepository{
		BaseRepository: NewBaseRepository[models.ElementType](db),
		db:             db,
	}
}

// FindAllByName tüm element türlerini isme göre artan sırada döndürür.
func (r *ElementTypeRepository) FindAllByName(ctx context.Context) ([]models.ElementType, error) {
	return r.FindAll(ctx, "name ASC")
}

// FindByName isimle birebir eşleşen element türünü bulur.
func (r *ElementTypeRepository) FindByName(ctx context.Context, name string) (*models.ElementType, error) {
	if name == "" {
		return nil, ErrNotFound
	}
	return r.FindOneWhere(ctx, "name = ?", name)
}

// FindByIDForUpdate kaydı transaction içinde kilitleyerek getirir.
func (r *ElementTypeRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.ElementType, error) {
	var elementType models.ElementType
	err := LockForUpdate(getDB(ctx, r.db)).First(&elementType, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ElementTypeRepository.FindByIDForUpdate: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &elementType, nil
}

// NameTakenByOther aynı ismi başka bir kaydın kullanıp kullanmadığını kontrol eder.
func (r *ElementTypeRepository) NameTakenByOther(ctx context.Context, name string, exceptID uint) (bool, error) {
	count, err := r.Count(ctx, "name = ? AND id <> ?", name, exceptID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountExisting verilen ID'lerden kaç tanesinin veritabanında bulunduğunu sayar.
func (r *ElementTypeRepository) CountExisting(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return r.Count(ctx, "id IN ?", ids)
}

// Arayüz uyumluluğu kontrolü
var _ IElementTypeRepository = (*ElementTypeRepository)(nil)
