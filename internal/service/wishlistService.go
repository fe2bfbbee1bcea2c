package service

import (
	"context"
	"errors"

	"gamewish/internal/models"
	"gamewish/internal/repository"

	"gorm.io/gorm"
)

// WishRow pairs a wishlist entry (with its game preloaded) with the
// game's average rating.
type WishRow struct {
	Priority models.Priority
	Average  float64
}

// Profile is the context rendered on a user's profile page.
type Profile struct {
	User models.User
	Rows []WishRow
}

type WishlistService interface {
	Profile(ctx context.Context, userID string, descending bool) (*Profile, error)
	DeletePriority(ctx context.Context, actorID string, priorityID int64) error
}

type wishlistService struct {
	userRepo     repository.UserRepository
	priorityRepo repository.PriorityRepository
	ratingRepo   repository.RatingRepository
}

func NewWishlistService(
	userRepo repository.UserRepository,
	priorityRepo repository.PriorityRepository,
	ratingRepo repository.RatingRepository,
) WishlistService {
	return &wishlistService{
		userRepo:     userRepo,
		priorityRepo: priorityRepo,
		ratingRepo:   ratingRepo,
	}
}

// Profile loads a user's wishlist sorted by wish level, each row
// carrying the linked game's average rating.
func (s *wishlistService) Profile(ctx context.Context, userID string, descending bool) (*Profile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	priorities, err := s.priorityRepo.ListByUser(ctx, userID, descending)
	if err != nil {
		return nil, err
	}

	rows := make([]WishRow, 0, len(priorities))
	for _, p := range priorities {
		avg, err := s.ratingRepo.CalculateAverage(p.GameID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, WishRow{Priority: p, Average: round2(avg)})
	}
	return &Profile{User: *user, Rows: rows}, nil
}

// DeletePriority removes a wishlist row. Only the row's owner may
// delete it.
func (s *wishlistService) DeletePriority(ctx context.Context, actorID string, priorityID int64) error {
	priority, err := s.priorityRepo.GetByID(ctx, priorityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if priority.UserID != actorID {
		return ErrForbidden
	}
	return s.priorityRepo.Delete(ctx, priorityID)
}
