package models

import "fmt"

// Card katalogdaki bir kartın ana kaydıdır.
type Card struct {
	BaseModel
	Title   string `gorm:"type:varchar(255);not null;index"`
	Summary string `gorm:"type:text;not null"`

	// Sıralı element türü listesi; Position gönderim sırasını korur.
	ElementTypeLinks []CardElementType `gorm:"foreignKey:CardID"`
}

// CardElementType kart ile element türü arasındaki sıralı bağlantıdır.
type CardElementType struct {
	CardID        uint `gorm:"primaryKey"`
	ElementTypeID uint `gorm:"primaryKey;index"`
	Position      int  `gorm:"not null;default:0"`

	ElementType ElementType `gorm:"foreignKey:ElementTypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

// URL detay sayfasının kanonik adresini döndürür.
func (c Card) URL() string {
	return fmt.Sprintf("/catalog/card/%d", c.ID)
}

// ElementTypes bağlantılar üzerinden yüklenmiş element türlerini sırasıyla döndürür.
func (c Card) ElementTypes() []ElementType {
	types := make([]ElementType, 0, len(c.ElementTypeLinks))
	for _, link := range c.ElementTypeLinks {
		if link.ElementType.ID != 0 {
			types = append(types, link.ElementType)
		}
	}
	return types
}

// ElementTypeIDs bağlı element türü ID'lerini sırasıyla döndürür.
func (c Card) ElementTypeIDs() []uint {
	ids := make([]uint, 0, len(c.ElementTypeLinks))
	for _, link := range c.ElementTypeLinks {
		ids = append(ids, link.ElementTypeID)
	}
	return ids
}

// SetElementTypeIDs bağlantıları verilen sırayla yeniden kurar.
func (c *Card) SetElementTypeIDs(ids []uint) {
	c.ElementTypeLinks = make([]CardElementType, 0, len(ids))
	for i, id := range ids {
		c.ElementTypeLinks = append(c.ElementTypeLinks, CardElementType{
			CardID:        c.ID,
			ElementTypeID: id,
			Position:      i,
		})
	}
}

// HasElementType kartın verilen türe bağlı olup olmadığını söyler.
func (c Card) HasElementType(id uint) bool {
	for _, link := range c.ElementTypeLinks {
		if link.ElementTypeID == id {
			return true
		}
	}
	return false
}
