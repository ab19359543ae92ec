package service

import (
	"context"
	"net/mail"
	"regexp"
	"time"

	"github.com/natividadesusana/drivenpass-go/internal/domain"
	"github.com/natividadesusana/drivenpass-go/internal/observability"
	"github.com/natividadesusana/drivenpass-go/internal/repository"
	"github.com/natividadesusana/drivenpass-go/internal/security"

	"errors"
)

var (
	digitRe     = regexp.MustCompile(`[0-9]`)
	lowercaseRe = regexp.MustCompile(`[a-z]`)
	uppercaseRe = regexp.MustCompile(`[A-Z]`)
	specialRe   = regexp.MustCompile(`[@#$%^&+=!]`)
)

// AuthService handles sign-up, sign-in and token issuance. It owns no
// persistence of its own; accounts live in the user directory.
type AuthService struct {
	users  *UserService
	tokens *security.JWTManager
}

func NewAuthService(users *UserService, tokens *security.JWTManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// SignUp validates the email and the password policy, then delegates to the
// user directory. Email matching is exact; no case folding.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordAuthOperation(ctx, "signup", outcome, time.Since(start)) }()

	if err := validateEmail(email); err != nil {
		outcome = "bad_request"
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		outcome = "bad_request"
		return nil, err
	}
	user, err := s.users.Create(ctx, email, password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			outcome = "conflict"
		} else {
			outcome = "error"
		}
		return nil, err
	}
	return user, nil
}

// SignIn verifies the credentials and issues a bearer token. Unknown email
// and wrong password both fail with the same ErrInvalidCredentials so the
// response never reveals which check failed.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordAuthOperation(ctx, "signin", outcome, time.Since(start)) }()

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			outcome = "unauthorized"
			return "", ErrInvalidCredentials
		}
		outcome = "error"
		return "", err
	}
	ok, err := security.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		outcome = "error"
		return "", err
	}
	if !ok {
		outcome = "unauthorized"
		return "", ErrInvalidCredentials
	}
	token, err := s.tokens.Sign(user.ID, user.Email)
	if err != nil {
		outcome = "error"
		return "", err
	}
	return token, nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

// validatePassword enforces the sign-up policy: at least 10 characters with a
// digit, a lowercase letter, an uppercase letter and one of @#$%^&+=!.
func validatePassword(password string) error {
	if len(password) < 10 ||
		!digitRe.MatchString(password) ||
		!lowercaseRe.MatchString(password) ||
		!uppercaseRe.MatchString(password) ||
		!specialRe.MatchString(password) {
		return ErrWeakPassword
	}
	return nil
}
