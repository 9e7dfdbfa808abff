package models

import "time"

const (
	ImageTypeUser     = "user"
	ImageTypeFolder   = "folder"
	ImageTypeBookmark = "bookmark"
)

type Image struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	URL       string    `gorm:"type:varchar(1000);not null" json:"url"`
	Type      string    `gorm:"type:varchar(10);not null" json:"type"`
	IsDeleted bool      `gorm:"column:isdeleted;not null;default:false;index" json:"-"`
	CreatedBy string    `gorm:"type:varchar(50);not null" json:"created_by"`
	UpdatedBy string    `gorm:"type:varchar(50);not null" json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
