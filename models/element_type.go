package models

import "fmt"

const (
	ElementTypeNameMinLength = 3
	ElementTypeNameMaxLength = 100
)

// ElementType kartların bağlı olduğu element türüdür (Fire, Water...).
type ElementType struct {
	BaseModel
	Name string `gorm:"type:text;uniqueIndex;not null"` // kaçışlı (escaped) haliyle saklanır
}

// URL detay sayfasının kanonik adresini döndürür.
func (e ElementType) URL() string {
	return fmt.Sprintf("/catalog/elementtype/%d", e.ID)
}
