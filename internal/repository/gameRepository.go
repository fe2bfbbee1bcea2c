package repository

import (
	"context"
	"fmt"

	"gamewish/internal/models"

	"gorm.io/gorm"
)

type GameRepo struct {
	db *gorm.DB
}

func NewGameRepo(db *gorm.DB) *GameRepo {
	return &GameRepo{db: db}
}

// GetAll returns every game ordered by title ascending,
// optionally restricted to one category.
func (r *GameRepo) GetAll(ctx context.Context, categoryID *int64) ([]models.Game, error) {
	var list []models.Game
	q := r.db.WithContext(ctx).Preload("Category").Order("title asc")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return list, nil
}

func (r *GameRepo) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	var g models.Game
	if err := r.db.WithContext(ctx).Preload("Category").First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GameRepo) Create(ctx context.Context, g *models.Game) error {
	// GORM populates g.ID and g.CreatedAt
	return r.db.WithContext(ctx).Create(g).Error
}

// Delete removes a game together with its priorities, comments and
// ratings in one transaction.
func (r *GameRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var g models.Game
		if err := tx.First(&g, id).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", id).Delete(&models.Priority{}).Error; err != nil {
			return fmt.Errorf("delete priorities: %w", err)
		}
		if err := tx.Where("game_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		if err := tx.Where("game_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return fmt.Errorf("delete ratings: %w", err)
		}
		if err := tx.Delete(&models.Game{}, id).Error; err != nil {
			return fmt.Errorf("delete game: %w", err)
		}
		return nil
	})
}
