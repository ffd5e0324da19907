package services

import (
	"context"

	"cardcatalog.app/configs/configslog"
	"cardcatalog.app/models"
	"cardcatalog.app/repositories"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// CatalogCounts ana sayfadaki sayaçlar. Alınamayan sayaç nil kalır.
type CatalogCounts struct {
	Cards              *int64
	CardInstances      *int64
	AvailableInstances *int64
	ElementTypes       *int64
}

// ICatalogService katalog özet işlemleri için arayüz.
type ICatalogService interface {
	GetCounts(ctx context.Context) (CatalogCounts, error)
}

// CatalogService ICatalogService arayüzünü uygular.
type CatalogService struct {
	cardRepo        repositories.ICardRepository
	instanceRepo    repositories.ICardInstanceRepository
	elementTypeRepo repositories.IElementTypeRepository
}

// NewCatalogService yeni bir CatalogService örneği oluşturur.
func NewCatalogService(db *gorm.DB) ICatalogService {
	return &CatalogService{
		cardRepo:        repositories.NewCardRepository(db),
		instanceRepo:    repositories.NewCardInstanceRepository(db),
		elementTypeRepo: repositories.NewElementTypeRepository(db),
	}
}

// GetCounts dört sayacı paralel olarak alır.
// Bir sayaç başarısız olsa da diğerleri doldurulur; dönen hata ilk başarısızlıktır.
func (s *CatalogService) GetCounts(ctx context.Context) (CatalogCounts, error) {
	var (
		counts CatalogCounts
		g      errgroup.Group
	)

	count := func(dst **int64, name string, fn func() (int64, error)) {
		g.Go(func() error {
			n, err := fn()
			if err != nil {
				configslog.Log.Warn("Catalog count failed", zap.String("count", name), zap.Error(err))
				return err
			}
			*dst = &n
			return nil
		})
	}

	count(&counts.Cards, "cards", func() (int64, error) {
		return s.cardRepo.Count(ctx)
	})
	count(&counts.CardInstances, "card_instances", func() (int64, error) {
		return s.instanceRepo.Count(ctx)
	})
	count(&counts.AvailableInstances, "available_instances", func() (int64, error) {
		return s.instanceRepo.CountByStatus(ctx, models.CardInstanceStatusAvailable)
	})
	count(&counts.ElementTypes, "element_types", func() (int64, error) {
		return s.elementTypeRepo.Count(ctx)
	})

	err := g.Wait()
	return counts, err
}

var _ ICatalogService = (*CatalogService)(nil)
