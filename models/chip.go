package models

import "time"

// Chip is a tag scoped to one folder, attached to bookmarks for filtering.
type Chip struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	FolderID  uint      `gorm:"not null;index" json:"folder_id"`
	IsDeleted bool      `gorm:"column:isdeleted;not null;default:false;index" json:"-"`
	CreatedBy string    `gorm:"type:varchar(50);not null" json:"created_by"`
	UpdatedBy string    `gorm:"type:varchar(50);not null" json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
