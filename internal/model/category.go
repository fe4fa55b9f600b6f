package model

import "time"

// DefaultCategoryColor используется, когда клиент не передал цвет.
const DefaultCategoryColor = "#3498db"

// Category — именованная группа заметок, принадлежит ровно одному пользователю.
// Имя уникально в пределах пользователя (составной индекс с user_id).
type Category struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string `gorm:"size:50;not null;uniqueIndex:idx_category_user_name" json:"name"`
	Description string `gorm:"size:200" json:"description,omitempty"`
	Color       string `gorm:"not null" json:"color"`

	// UserID — владелец. Без FK на users: удаление пользователя
	// не трогает его категории.
	UserID int64 `gorm:"not null;uniqueIndex:idx_category_user_name" json:"user_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
