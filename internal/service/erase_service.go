package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/natividadesusana/drivenpass-go/internal/observability"
	"github.com/natividadesusana/drivenpass-go/internal/security"
)

// EraseService irreversibly removes an account and everything it owns. The
// caller is already token-authenticated, but the password is re-verified
// anyway as defense against stolen long-lived tokens.
type EraseService struct {
	users   *UserService
	purgers []OwnerPurger
}

// NewEraseService takes one purger per secret-record kind (cards,
// credentials, notes).
func NewEraseService(users *UserService, purgers ...OwnerPurger) *EraseService {
	return &EraseService{users: users, purgers: purgers}
}

// EraseAccount deletes every secret record across all kinds concurrently and
// only then removes the user row. The three bulk deletes have no
// cross-references, so order among them does not matter; what matters is
// that the user row survives unless all of them succeeded. Partial deletions
// are not rolled back; re-deleting them is harmless.
//
// A missing user here is a consistency bug, not a client error: the email
// came out of a verified token.
func (s *EraseService) EraseAccount(ctx context.Context, email, password string) error {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordAuthOperation(ctx, "erase", outcome, time.Since(start)) }()

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		outcome = "error"
		return fmt.Errorf("lookup of authenticated account %q: %w", email, err)
	}
	ok, err := security.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		outcome = "error"
		return err
	}
	if !ok {
		outcome = "unauthorized"
		return ErrInvalidPassword
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, purger := range s.purgers {
		g.Go(func() error { return purger.DeleteAllForOwner(gctx, user.ID) })
	}
	if err := g.Wait(); err != nil {
		outcome = "error"
		return fmt.Errorf("purge secret records: %w", err)
	}
	if err := s.users.Delete(ctx, user.ID); err != nil {
		outcome = "error"
		return err
	}
	return nil
}
