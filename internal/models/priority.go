package models

import "time"

// Wish levels a user can attach to a game. Zero is a deliberate
// choice, not an absent value.
const (
	WishNotInterested = 0
	WishMaybe         = 1
	WishWant          = 2
	WishMust          = 3
)

type Priority struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_priority_user_game"`
	GameID    int64     `json:"game_id" gorm:"not null;uniqueIndex:idx_priority_user_game"`
	Wish      int       `json:"wish" gorm:"not null;default:0;check:wish >= 0 AND wish <= 3"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Game Game `json:"game,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}

func (Priority) TableName() string {
	return "priorities"
}
