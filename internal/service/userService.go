package service

import (
	"errors"

	"gamewish/internal/models"
	"gamewish/internal/repository"

	"gorm.io/gorm"
)

type UserService interface {
	List() ([]models.User, error)
	Get(id string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *userService) Get(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
