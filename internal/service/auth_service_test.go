package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/natividadesusana/drivenpass-go/internal/domain"
	"github.com/natividadesusana/drivenpass-go/internal/repository"
	"github.com/natividadesusana/drivenpass-go/internal/security"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
	nextID  uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: map[string]*domain.User{}, nextID: 1}
}

func (r *stubUserRepo) FindByID(id uint) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *stubUserRepo) Create(user *domain.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return repository.ErrDuplicateRecord
	}
	user.ID = r.nextID
	r.nextID++
	stored := *user
	r.byEmail[user.Email] = &stored
	return nil
}

func (r *stubUserRepo) DeleteByID(id uint) error {
	for email, u := range r.byEmail {
		if u.ID == id {
			delete(r.byEmail, email)
			return nil
		}
	}
	return repository.ErrUserNotFound
}

func newAuthServiceForTest() (*AuthService, *stubUserRepo, *security.JWTManager) {
	repo := newStubUserRepo()
	jwt := security.NewJWTManager("DrivenPass", "users", strings.Repeat("s", 32), time.Hour)
	return NewAuthService(NewUserService(repo), jwt), repo, jwt
}

func TestSignUpPasswordPolicy(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	rejected := []string{
		"Sh0rt@a",          // too short
		"alllowercase1@",   // no uppercase
		"ALLUPPERCASE1@",   // no lowercase
		"NoDigitsHere@",    // no digit
		"NoSpecial12345aA", // no special character
		"Bad*Char123456a",  // special character outside the allowed set
	}
	for _, password := range rejected {
		if _, err := svc.SignUp(context.Background(), "user@example.com", password); !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword for %q, got %v", password, err)
		}
	}

	user, err := svc.SignUp(context.Background(), "user@example.com", "Str0ng@Passw0rd")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.PasswordHash == "Str0ng@Passw0rd" || user.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
}

func TestSignUpEmailValidation(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	for _, email := range []string{"", "plainstring", "a@", "Display Name <a@b.com>"} {
		if _, err := svc.SignUp(context.Background(), email, "Str0ng@Passw0rd"); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail for %q, got %v", email, err)
		}
	}

	if _, err := svc.SignUp(context.Background(), "ok@example.com", "Str0ng@Passw0rd"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := svc.SignUp(context.Background(), "ok@example.com", "Str0ng@Passw0rd"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestSignInUniformRejection(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	if _, err := svc.SignUp(context.Background(), "user@example.com", "Str0ng@Passw0rd"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, err := svc.SignIn(context.Background(), "unknown@example.com", "Str0ng@Passw0rd"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
	if _, err := svc.SignIn(context.Background(), "user@example.com", "Wrong@Passw0rd1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
}

func TestSignInIssuesToken(t *testing.T) {
	svc, _, jwt := newAuthServiceForTest()

	user, err := svc.SignUp(context.Background(), "user@example.com", "Str0ng@Passw0rd")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	token, err := svc.SignIn(context.Background(), "user@example.com", "Str0ng@Passw0rd")
	if err != nil {
		t.Fatalf("signin: %v", err)
	}
	claims, err := jwt.Parse(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	id, err := claims.UserID()
	if err != nil || id != user.ID {
		t.Fatalf("token subject mismatch: %v %v", id, err)
	}
	if claims.Email != "user@example.com" {
		t.Fatalf("token email mismatch: %q", claims.Email)
	}
}
