package service

import (
	"context"
	"errors"
	"time"

	"github.com/natividadesusana/drivenpass-go/internal/domain"
	"github.com/natividadesusana/drivenpass-go/internal/observability"
	"github.com/natividadesusana/drivenpass-go/internal/repository"
)

// CreateGuard is an extra uniqueness check run before a record is persisted,
// used by kinds with constraints beyond the per-owner title (card numbers).
type CreateGuard[R domain.SecretRecord] func(ctx context.Context, rec R) error

// VaultService implements create/read/delete for one secret-record kind. All
// three kinds share this one implementation; what varies is the record type,
// which fields its Seal/Open touch, and any extra create guards.
type VaultService[R domain.SecretRecord] struct {
	kind   string
	repo   repository.VaultRepository[R]
	cipher domain.Cipher
	guards []CreateGuard[R]
}

func NewVaultService[R domain.SecretRecord](kind string, repo repository.VaultRepository[R], cipher domain.Cipher, guards ...CreateGuard[R]) *VaultService[R] {
	return &VaultService[R]{kind: kind, repo: repo, cipher: cipher, guards: guards}
}

// Create persists a new record for its owner. The title is pre-checked so a
// duplicate fails before any write, but the unique index remains the
// authority: a concurrent duplicate that slips past the pre-check comes back
// from the repository as ErrDuplicateRecord and surfaces as the same
// conflict. Secret fields are sealed in place, and the created record is
// returned to the caller still sealed.
func (s *VaultService[R]) Create(ctx context.Context, rec R) error {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordVaultOperation(ctx, s.kind, "create", outcome, time.Since(start)) }()

	_, err := s.repo.FindByOwnerAndTitle(rec.OwnerID(), rec.RecordTitle())
	if err == nil {
		outcome = "conflict"
		return ErrTitleTaken
	}
	if !errors.Is(err, repository.ErrRecordNotFound) {
		outcome = "error"
		return err
	}
	for _, guard := range s.guards {
		if err := guard(ctx, rec); err != nil {
			outcome = "conflict"
			return err
		}
	}
	if err := rec.Seal(s.cipher); err != nil {
		outcome = "error"
		return err
	}
	if err := s.repo.Create(rec); err != nil {
		if errors.Is(err, repository.ErrDuplicateRecord) {
			outcome = "conflict"
		} else {
			outcome = "error"
		}
		return err
	}
	return nil
}

// List returns every record the caller owns, secret fields opened.
func (s *VaultService[R]) List(ctx context.Context, ownerID uint) ([]R, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordVaultOperation(ctx, s.kind, "list", outcome, time.Since(start)) }()

	recs, err := s.repo.ListByOwner(ownerID)
	if err != nil {
		outcome = "error"
		return nil, err
	}
	for _, rec := range recs {
		if err := rec.Open(s.cipher); err != nil {
			outcome = "error"
			return nil, err
		}
	}
	return recs, nil
}

// GetByID looks the record up by id alone, then applies the ownership guard:
// absent is NotFound, present-but-foreign is Forbidden. Only after both pass
// are the secret fields opened.
func (s *VaultService[R]) GetByID(ctx context.Context, id, callerID uint) (R, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordVaultOperation(ctx, s.kind, "get", outcome, time.Since(start)) }()

	var zero R
	rec, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			outcome = "not_found"
		} else {
			outcome = "error"
		}
		return zero, err
	}
	if err := authorizeOwner(rec, callerID); err != nil {
		outcome = "forbidden"
		return zero, err
	}
	if err := rec.Open(s.cipher); err != nil {
		outcome = "error"
		return zero, err
	}
	return rec, nil
}

// DeleteByID follows the same guard protocol as GetByID before removing the
// record.
func (s *VaultService[R]) DeleteByID(ctx context.Context, id, callerID uint) error {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordVaultOperation(ctx, s.kind, "delete", outcome, time.Since(start)) }()

	rec, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			outcome = "not_found"
		} else {
			outcome = "error"
		}
		return err
	}
	if err := authorizeOwner(rec, callerID); err != nil {
		outcome = "forbidden"
		return err
	}
	if err := s.repo.DeleteByID(id); err != nil {
		outcome = "error"
		return err
	}
	return nil
}

// DeleteAllForOwner unconditionally removes every record the owner has. It is
// only reachable through the erasure orchestrator and is idempotent.
func (s *VaultService[R]) DeleteAllForOwner(ctx context.Context, ownerID uint) error {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordVaultOperation(ctx, s.kind, "delete_all", outcome, time.Since(start)) }()

	if err := s.repo.DeleteByOwner(ownerID); err != nil {
		outcome = "error"
		return err
	}
	return nil
}
