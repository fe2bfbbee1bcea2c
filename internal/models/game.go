package models

import "time"

type Game struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title      string    `json:"title" gorm:"uniqueIndex;not null;size:200"`
	Year       int       `json:"year" gorm:"not null;default:2000"`
	CategoryID int64     `json:"category_id" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE;"`
}

func (Game) TableName() string {
	return "games"
}
