package repositories

import (
	"context"
	"errors"

	"cardcatalog.app/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound kayıt bulunamadığında repository katmanının döndürdüğü hatadır.
var ErrNotFound = errors.New("kayıt bulunamadı")

type txContextKey struct{}

// ContextWithTx transaction'ı context'e ekler; repository'ler getDB ile onu kullanır.
func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// getDB context'te transaction varsa onu, yoksa ana bağlantıyı context ile döndürür.
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}

// LockForUpdate satır kilidini destekleyen sürücülerde SELECT ... FOR UPDATE uygular.
// SQLite zaten tek yazıcılı olduğu için kilit eklenmez.
func LockForUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// IBaseRepository tüm modeller için ortak CRUD işlemleri.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint, preloads ...string) (*T, error)
	FindAll(ctx context.Context, orderBy string, preloads ...string) ([]T, error)
	FindOneWhere(ctx context.Context, query interface{}, args ...interface{}) (*T, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, conds ...interface{}) (int64, error)
}

// BaseRepository IBaseRepository'nin generic GORM uygulamasıdır.
type BaseRepository[T any] struct {
	db *gorm.DB
}

// NewBaseRepository verilen bağlantıyla yeni bir BaseRepository oluşturur.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db}
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("oluşturulacak kayıt nil olamaz")
	}
	return getDB(ctx, r.db).Omit(clause.Associations).Create(entity).Error
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint, preloads ...string) (*T, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var entity T
	query := getDB(ctx, r.db)
	for _, p := range preloads {
		query = query.Preload(p)
	}
	if err := query.First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("BaseRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &entity, nil
}

func (r *BaseRepository[T]) FindAll(ctx context.Context, orderBy string, preloads ...string) ([]T, error) {
	var results []T
	query := getDB(ctx, r.db)
	for _, p := range preloads {
		query = query.Preload(p)
	}
	if orderBy != "" {
		query = query.Order(orderBy)
	}
	if err := query.Find(&results).Error; err != nil {
		configslog.Log.Error("BaseRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return results, nil
}

func (r *BaseRepository[T]) FindOneWhere(ctx context.Context, query interface{}, args ...interface{}) (*T, error) {
	var entity T
	if err := getDB(ctx, r.db).Where(query, args...).Take(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *BaseRepository[T]) Exists(ctx context.Context, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	var count int64
	if err := getDB(ctx, r.db).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update belirli bir ID'ye sahip kaydı map ile günceller.
// Kayıt yoksa ErrNotFound döner.
func (r *BaseRepository[T]) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	if id == 0 {
		return ErrNotFound
	}
	if len(data) == 0 {
		return errors.New("güncellenecek veri boş olamaz")
	}
	db := getDB(ctx, r.db)
	result := db.Model(new(T)).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		exists, err := r.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
	}
	return nil
}

func (r *BaseRepository[T]) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrNotFound
	}
	result := getDB(ctx, r.db).Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count koşullara uyan kayıt sayısını döndürür. Koşul yoksa tüm tabloyu sayar.
func (r *BaseRepository[T]) Count(ctx context.Context, conds ...interface{}) (int64, error) {
	var count int64
	query := getDB(ctx, r.db).Model(new(T))
	if len(conds) > 0 {
		query = query.Where(conds[0], conds[1:]...)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Arayüz uyumluluğu kontrolü
var _ IBaseRepository[struct{}] = (*BaseRepository[struct{}])(nil)
