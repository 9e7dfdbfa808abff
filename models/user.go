package models

import "time"

const (
	RoleNormal = "normal"
	RoleAdmin  = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"type:varchar(50);not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	ImageID   uint      `gorm:"not null;default:0" json:"image_id"`
	Role      string    `gorm:"type:varchar(10);not null;default:normal" json:"role"`
	IsDeleted bool      `gorm:"column:isdeleted;not null;default:false;index" json:"-"`
	CreatedBy string    `gorm:"type:varchar(50);not null" json:"created_by"`
	UpdatedBy string    `gorm:"type:varchar(50);not null" json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
