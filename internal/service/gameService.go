package service

import (
	"context"
	"errors"
	"math"

	"gamewish/internal/dto"
	"gamewish/internal/models"
	"gamewish/internal/repository"

	"gorm.io/gorm"
)

// GameDetails is the context rendered on a game's page. Rated is false
// when no one has rated the game yet ("no rating").
type GameDetails struct {
	Game        models.Game
	Comments    []models.Comment
	Average     float64
	Rated       bool
	RatingCount int64
}

type GameService interface {
	Details(ctx context.Context, id int64) (*GameDetails, error)
	AddComment(ctx context.Context, userID string, gameID int64, opinion string) error
	SubmitRating(ctx context.Context, userID string, gameID int64, rate float64) error
	SubmitWish(ctx context.Context, userID string, gameID int64, label string) error
}

type gameService struct {
	gameRepo     *repository.GameRepo
	commentRepo  repository.CommentRepository
	ratingRepo   repository.RatingRepository
	priorityRepo repository.PriorityRepository
}

func NewGameService(
	gameRepo *repository.GameRepo,
	commentRepo repository.CommentRepository,
	ratingRepo repository.RatingRepository,
	priorityRepo repository.PriorityRepository,
) GameService {
	return &gameService{
		gameRepo:     gameRepo,
		commentRepo:  commentRepo,
		ratingRepo:   ratingRepo,
		priorityRepo: priorityRepo,
	}
}

func (s *gameService) Details(ctx context.Context, id int64) (*GameDetails, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepo.GetByGame(id)
	if err != nil {
		return nil, err
	}

	count, err := s.ratingRepo.CountByGame(id)
	if err != nil {
		return nil, err
	}

	details := &GameDetails{
		Game:        *game,
		Comments:    comments,
		RatingCount: count,
	}
	if count > 0 {
		avg, err := s.ratingRepo.CalculateAverage(id)
		if err != nil {
			return nil, err
		}
		details.Average = round2(avg)
		details.Rated = true
	}
	return details, nil
}

func (s *gameService) AddComment(ctx context.Context, userID string, gameID int64, opinion string) error {
	if err := s.ensureGame(ctx, gameID); err != nil {
		return err
	}
	return s.commentRepo.Create(&models.Comment{
		UserID:  userID,
		GameID:  gameID,
		Opinion: opinion,
	})
}

// SubmitRating upserts the user's rating. Valid rates are the half
// steps from 0.5 to 10.0.
func (s *gameService) SubmitRating(ctx context.Context, userID string, gameID int64, rate float64) error {
	if rate < 0.5 || rate > 10.0 || math.Mod(rate*2, 1) != 0 {
		return ErrInvalidRate
	}
	if err := s.ensureGame(ctx, gameID); err != nil {
		return err
	}
	return s.ratingRepo.Upsert(&models.Rating{
		UserID: userID,
		GameID: gameID,
		Rate:   rate,
	})
}

// SubmitWish upserts the user's wish level for a game. Every known
// label counts, including "Not interested" (level 0).
func (s *gameService) SubmitWish(ctx context.Context, userID string, gameID int64, label string) error {
	wish, ok := dto.WishLevels[label]
	if !ok {
		return ErrUnknownWish
	}
	if err := s.ensureGame(ctx, gameID); err != nil {
		return err
	}
	return s.priorityRepo.Upsert(ctx, &models.Priority{
		UserID: userID,
		GameID: gameID,
		Wish:   wish,
	})
}

func (s *gameService) ensureGame(ctx context.Context, gameID int64) error {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
