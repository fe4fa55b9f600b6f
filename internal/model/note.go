package model

import "time"

// Note — основная запись с содержимым. Может ссылаться на одну категорию.
type Note struct {
	ID      string `gorm:"primaryKey;type:uuid" json:"id"`
	Title   string `gorm:"size:100;not null" json:"title"`
	Content string `gorm:"not null" json:"content"`

	CategoryID *string   `gorm:"type:uuid;index" json:"category_id"`
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"category,omitempty"`

	// UserID — владелец. Без FK на users: удаление пользователя
	// не трогает его заметки.
	UserID int64 `gorm:"not null;index" json:"user_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
