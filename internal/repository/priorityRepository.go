package repository

import (
	"context"
	"fmt"

	"gamewish/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PriorityRepository interface {
	Upsert(ctx context.Context, priority *models.Priority) error
	GetByID(ctx context.Context, id int64) (*models.Priority, error)
	ListByUser(ctx context.Context, userID string, descending bool) ([]models.Priority, error)
	Delete(ctx context.Context, id int64) error
}

type priorityRepository struct {
	db *gorm.DB
}

func NewPriorityRepository(db *gorm.DB) PriorityRepository {
	return &priorityRepository{db: db}
}

// Upsert keeps at most one wish per (user, game) pair, same discipline
// as the rating upsert.
func (r *priorityRepository) Upsert(ctx context.Context, priority *models.Priority) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "game_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"wish", "updated_at"}),
	}).Create(priority).Error
}

func (r *priorityRepository) GetByID(ctx context.Context, id int64) (*models.Priority, error) {
	var p models.Priority
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *priorityRepository) ListByUser(ctx context.Context, userID string, descending bool) ([]models.Priority, error) {
	order := "wish asc"
	if descending {
		order = "wish desc"
	}
	var list []models.Priority
	if err := r.db.WithContext(ctx).
		Preload("Game").
		Preload("Game.Category").
		Where("user_id = ?", userID).
		Order(order).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list priorities: %w", err)
	}
	return list, nil
}

func (r *priorityRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Priority{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete priority: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
