package service

import (
	"context"
	"errors"

	"github.com/natividadesusana/drivenpass-go/internal/domain"
	"github.com/natividadesusana/drivenpass-go/internal/repository"
	"github.com/natividadesusana/drivenpass-go/internal/security"
)

// UserService is the account directory: creation with password hashing,
// lookups, and the final row deletion during erasure. It never touches
// secret records.
type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create registers a new account. The email conflict is pre-checked here to
// produce a user-facing error, and the unique index backstops the race: a
// concurrent duplicate create fails with the same conflict.
func (s *UserService) Create(ctx context.Context, email, password string) (*domain.User, error) {
	if _, err := s.repo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}
	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{Email: email, PasswordHash: hash}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateRecord) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(email)
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	return s.repo.FindByID(id)
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteByID(id)
}
