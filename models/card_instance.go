package models

import "fmt"

// CardInstanceStatus stoktaki kopyanın satış durumudur.
type CardInstanceStatus string

const (
	CardInstanceStatusAvailable    CardInstanceStatus = "Available"
	CardInstanceStatusNotAvailable CardInstanceStatus = "Not Available"
)

// CardInstanceStatuses formda gösterilecek sırayla geçerli durumlar.
var CardInstanceStatuses = []CardInstanceStatus{
	CardInstanceStatusAvailable,
	CardInstanceStatusNotAvailable,
}

// IsValid durumun tanımlı değerlerden biri olup olmadığını kontrol eder.
func (s CardInstanceStatus) IsValid() bool {
	switch s {
	case CardInstanceStatusAvailable, CardInstanceStatusNotAvailable:
		return true
	}
	return false
}

// CardInstance bir kartın fiyatlandırılmış, stokta tutulan kopyasıdır.
type CardInstance struct {
	BaseModel
	CardID    uint               `gorm:"not null;index"`
	CardPrice float64            `gorm:"type:numeric(12,2);not null"`
	Status    CardInstanceStatus `gorm:"type:varchar(20);not null;default:'Available';index;check:chkCardInstanceStatus,status IN ('Available','Not Available')"`

	Card Card `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

// URL detay sayfasının kanonik adresini döndürür.
func (ci CardInstance) URL() string {
	return fmt.Sprintf("/catalog/cardinstance/%d", ci.ID)
}
