package service

import (
	"context"

	"github.com/natividadesusana/drivenpass-go/internal/domain"
)

type AuthServiceInterface interface {
	SignUp(ctx context.Context, email, password string) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (string, error)
}

// Vault is the operation set every secret-record kind exposes. R is the
// pointer form of the record (e.g. *domain.Card).
type Vault[R domain.SecretRecord] interface {
	Create(ctx context.Context, rec R) error
	List(ctx context.Context, ownerID uint) ([]R, error)
	GetByID(ctx context.Context, id, callerID uint) (R, error)
	DeleteByID(ctx context.Context, id, callerID uint) error
	DeleteAllForOwner(ctx context.Context, ownerID uint) error
}

// OwnerPurger is the slice of Vault the erasure orchestrator needs.
type OwnerPurger interface {
	DeleteAllForOwner(ctx context.Context, ownerID uint) error
}

type EraseServiceInterface interface {
	EraseAccount(ctx context.Context, email, password string) error
}
