package repository

import (
	"gamewish/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Upsert(rating *models.Rating) error
	GetByUserAndGame(userID string, gameID int64) (*models.Rating, error)
	CalculateAverage(gameID int64) (float64, error)
	CountByGame(gameID int64) (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert writes the user's rating for a game. The composite unique
// index on (user_id, game_id) makes concurrent submissions collapse
// into a single row instead of racing read-then-write.
func (r *ratingRepository) Upsert(rating *models.Rating) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "game_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "updated_at"}),
	}).Create(rating).Error
}

func (r *ratingRepository) GetByUserAndGame(userID string, gameID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// CalculateAverage returns the mean rate over all users, 0 when the
// game has never been rated.
func (r *ratingRepository) CalculateAverage(gameID int64) (float64, error) {
	var avg struct {
		Average float64
	}
	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(rate), 0) as average").
		Where("game_id = ?", gameID).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg.Average, nil
}

func (r *ratingRepository) CountByGame(gameID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).Where("game_id = ?", gameID).Count(&count).Error
	return count, err
}
