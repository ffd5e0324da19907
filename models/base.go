package models

import "time"

// BaseModel tüm tablolarda ortak olan alanları içerir.
// Kayıtlar kalıcı olarak silinir; bağımlılık kontrolü FK kısıtlarına dayanır.
type BaseModel struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
