package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/natividadesusana/drivenpass-go/internal/domain"
	"github.com/natividadesusana/drivenpass-go/internal/repository"
)

// reversibleCipher is a trivially invertible stand-in for the AES field
// cipher so tests can assert seal/open behavior without key material.
type reversibleCipher struct{}

func (reversibleCipher) Encrypt(plaintext string) (string, error) { return "enc:" + plaintext, nil }

func (reversibleCipher) Decrypt(ciphertext string) (string, error) {
	if !strings.HasPrefix(ciphertext, "enc:") {
		return "", errors.New("value was not sealed")
	}
	return strings.TrimPrefix(ciphertext, "enc:"), nil
}

type stubNoteRepo struct {
	byID   map[uint]*domain.Note
	nextID uint
	err    error
}

func newStubNoteRepo() *stubNoteRepo {
	return &stubNoteRepo{byID: map[uint]*domain.Note{}, nextID: 1}
}

func (r *stubNoteRepo) Create(rec *domain.Note) error {
	if r.err != nil {
		return r.err
	}
	rec.ID = r.nextID
	r.nextID++
	stored := *rec
	r.byID[rec.ID] = &stored
	return nil
}

func (r *stubNoteRepo) FindByID(id uint) (*domain.Note, error) {
	rec, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	copied := *rec
	return &copied, nil
}

func (r *stubNoteRepo) FindByOwnerAndTitle(ownerID uint, title string) (*domain.Note, error) {
	for _, rec := range r.byID {
		if rec.UserID == ownerID && rec.Title == title {
			copied := *rec
			return &copied, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (r *stubNoteRepo) ListByOwner(ownerID uint) ([]*domain.Note, error) {
	var out []*domain.Note
	for _, rec := range r.byID {
		if rec.UserID == ownerID {
			copied := *rec
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *stubNoteRepo) DeleteByID(id uint) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubNoteRepo) DeleteByOwner(ownerID uint) error {
	for id, rec := range r.byID {
		if rec.UserID == ownerID {
			delete(r.byID, id)
		}
	}
	return nil
}

type stubCredentialRepo struct {
	byID   map[uint]*domain.Credential
	nextID uint
}

func newStubCredentialRepo() *stubCredentialRepo {
	return &stubCredentialRepo{byID: map[uint]*domain.Credential{}, nextID: 1}
}

func (r *stubCredentialRepo) Create(rec *domain.Credential) error {
	rec.ID = r.nextID
	r.nextID++
	stored := *rec
	r.byID[rec.ID] = &stored
	return nil
}

func (r *stubCredentialRepo) FindByID(id uint) (*domain.Credential, error) {
	rec, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	copied := *rec
	return &copied, nil
}

func (r *stubCredentialRepo) FindByOwnerAndTitle(ownerID uint, title string) (*domain.Credential, error) {
	for _, rec := range r.byID {
		if rec.UserID == ownerID && rec.Title == title {
			copied := *rec
			return &copied, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (r *stubCredentialRepo) ListByOwner(ownerID uint) ([]*domain.Credential, error) {
	var out []*domain.Credential
	for _, rec := range r.byID {
		if rec.UserID == ownerID {
			copied := *rec
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *stubCredentialRepo) DeleteByID(id uint) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubCredentialRepo) DeleteByOwner(ownerID uint) error {
	for id, rec := range r.byID {
		if rec.UserID == ownerID {
			delete(r.byID, id)
		}
	}
	return nil
}

func TestVaultServiceSealsAtRestOpensOnRead(t *testing.T) {
	repo := newStubCredentialRepo()
	svc := NewVaultService[*domain.Credential]("credential", repo, reversibleCipher{})

	cred := &domain.Credential{UserID: 1, Title: "Email", URL: "u", Username: "n", Password: "plain-secret"}
	if err := svc.Create(context.Background(), cred); err != nil {
		t.Fatalf("create: %v", err)
	}
	// The caller's record is left sealed after create.
	if cred.Password != "enc:plain-secret" {
		t.Fatalf("expected sealed password after create, got %q", cred.Password)
	}
	// The stored row is sealed too.
	if repo.byID[cred.ID].Password != "enc:plain-secret" {
		t.Fatalf("expected sealed password at rest, got %q", repo.byID[cred.ID].Password)
	}

	got, err := svc.GetByID(context.Background(), cred.ID, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Password != "plain-secret" {
		t.Fatalf("expected opened password on read, got %q", got.Password)
	}

	list, err := svc.List(context.Background(), 1)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v %d", err, len(list))
	}
	if list[0].Password != "plain-secret" {
		t.Fatalf("expected opened password in list, got %q", list[0].Password)
	}
}

func TestVaultServiceCreateChecksTitle(t *testing.T) {
	repo := newStubNoteRepo()
	svc := NewVaultService[*domain.Note]("note", repo, reversibleCipher{})

	if err := svc.Create(context.Background(), &domain.Note{UserID: 1, Title: "T", Annotation: "a"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := svc.Create(context.Background(), &domain.Note{UserID: 1, Title: "T", Annotation: "b"})
	if !errors.Is(err, ErrTitleTaken) {
		t.Fatalf("expected ErrTitleTaken, got %v", err)
	}
	// Another owner may reuse the title.
	if err := svc.Create(context.Background(), &domain.Note{UserID: 2, Title: "T", Annotation: "c"}); err != nil {
		t.Fatalf("create for other owner: %v", err)
	}
}

func TestVaultServiceOwnershipGuard(t *testing.T) {
	repo := newStubNoteRepo()
	svc := NewVaultService[*domain.Note]("note", repo, reversibleCipher{})

	note := &domain.Note{UserID: 1, Title: "Mine", Annotation: "text"}
	if err := svc.Create(context.Background(), note); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.GetByID(context.Background(), note.ID, 2); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner for foreign read, got %v", err)
	}
	if err := svc.DeleteByID(context.Background(), note.ID, 2); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner for foreign delete, got %v", err)
	}
	if _, err := svc.GetByID(context.Background(), 999, 1); !errors.Is(err, repository.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for absent id, got %v", err)
	}

	got, err := svc.GetByID(context.Background(), note.ID, 1)
	if err != nil {
		t.Fatalf("owner read: %v", err)
	}
	if got.Annotation != "text" {
		t.Fatalf("unexpected annotation: %q", got.Annotation)
	}
	if err := svc.DeleteByID(context.Background(), note.ID, 1); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}

func TestVaultServicePassesDuplicateThrough(t *testing.T) {
	repo := newStubNoteRepo()
	repo.err = repository.ErrDuplicateRecord
	svc := NewVaultService[*domain.Note]("note", repo, reversibleCipher{})

	err := svc.Create(context.Background(), &domain.Note{UserID: 1, Title: "Race", Annotation: "a"})
	if !errors.Is(err, repository.ErrDuplicateRecord) {
		t.Fatalf("expected duplicate passthrough, got %v", err)
	}
}

func TestVaultServiceGuardRuns(t *testing.T) {
	repo := newStubNoteRepo()
	guardErr := errors.New("guard says no")
	guard := func(ctx context.Context, rec *domain.Note) error { return guardErr }
	svc := NewVaultService[*domain.Note]("note", repo, reversibleCipher{}, guard)

	err := svc.Create(context.Background(), &domain.Note{UserID: 1, Title: "T", Annotation: "a"})
	if !errors.Is(err, guardErr) {
		t.Fatalf("expected guard error, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatal("guard rejection must prevent persistence")
	}
}
