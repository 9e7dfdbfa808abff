package models

import "time"

// Folder rows form a tree per user through the nullable FolderID parent
// pointer. A nil FolderID marks a top-level folder.
type Folder struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	ImageID   uint      `gorm:"not null;default:0" json:"image_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	FolderID  *uint     `gorm:"index" json:"folder_id"`
	IsDeleted bool      `gorm:"column:isdeleted;not null;default:false;index" json:"-"`
	CreatedBy string    `gorm:"type:varchar(50);not null" json:"created_by"`
	UpdatedBy string    `gorm:"type:varchar(50);not null" json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
