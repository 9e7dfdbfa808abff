package models

import "time"

type Bookmark struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string     `gorm:"type:varchar(255);not null" json:"title"`
	URL       string     `gorm:"type:varchar(1000);not null" json:"url"`
	Date      time.Time  `gorm:"not null" json:"date"`
	ImageID   uint       `gorm:"not null;default:0" json:"image_id"`
	FolderID  uint       `gorm:"not null;index" json:"folder_id"`
	ChipID    uint       `gorm:"not null;index" json:"chip_id"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	ClickDate *time.Time `gorm:"index" json:"click_date"`
	IsDeleted bool       `gorm:"column:isdeleted;not null;default:false;index" json:"-"`
	CreatedBy string     `gorm:"type:varchar(50);not null" json:"created_by"`
	UpdatedBy string     `gorm:"type:varchar(50);not null" json:"updated_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
