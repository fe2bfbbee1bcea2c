package service

import (
	"context"
	"errors"

	"gamewish/internal/models"
	"gamewish/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GameRow pairs a game with its average rating for the listing pages.
type GameRow struct {
	Game    models.Game
	Average float64
}

type CatalogService interface {
	ListGames(ctx context.Context, categoryName string) ([]GameRow, error)
	Categories(ctx context.Context) ([]models.Category, error)
	CreateGame(ctx context.Context, title string, year int, categoryID int64) (*models.Game, error)
	DeleteGame(ctx context.Context, id int64) error
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
}

type catalogService struct {
	gameRepo     *repository.GameRepo
	categoryRepo repository.CategoryRepository
	ratingRepo   repository.RatingRepository
}

func NewCatalogService(
	gameRepo *repository.GameRepo,
	categoryRepo repository.CategoryRepository,
	ratingRepo repository.RatingRepository,
) CatalogService {
	return &catalogService{
		gameRepo:     gameRepo,
		categoryRepo: categoryRepo,
		ratingRepo:   ratingRepo,
	}
}

// ListGames returns the catalog ordered by title ascending, each game
// with its average rating (0.0 for unrated games). A non-empty
// categoryName restricts the listing to that category.
func (s *catalogService) ListGames(ctx context.Context, categoryName string) ([]GameRow, error) {
	var categoryID *int64
	if categoryName != "" {
		category, err := s.categoryRepo.GetByName(ctx, categoryName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		categoryID = &category.ID
	}

	games, err := s.gameRepo.GetAll(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	rows := make([]GameRow, 0, len(games))
	for _, game := range games {
		avg, err := s.ratingRepo.CalculateAverage(game.ID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, GameRow{Game: game, Average: round2(avg)})
	}
	return rows, nil
}

func (s *catalogService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

func (s *catalogService) CreateGame(ctx context.Context, title string, year int, categoryID int64) (*models.Game, error) {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if year == 0 {
		year = 2000
	}

	game := &models.Game{Title: title, Year: year, CategoryID: categoryID}
	if err := s.gameRepo.Create(ctx, game); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrTitleTaken
		}
		return nil, err
	}
	return game, nil
}

func (s *catalogService) DeleteGame(ctx context.Context, id int64) error {
	if err := s.gameRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *catalogService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// isUniqueViolation recognizes a duplicate-key failure from either the
// postgres driver (SQLSTATE 23505) or GORM's translated error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
