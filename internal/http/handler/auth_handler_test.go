package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/natividadesusana/drivenpass-go/internal/domain"
	"github.com/natividadesusana/drivenpass-go/internal/service"
)

type stubAuthService struct {
	signUpUser *domain.User
	signUpErr  error
	signInTok  string
	signInErr  error
}

func (s *stubAuthService) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	return s.signUpUser, s.signUpErr
}

func (s *stubAuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	return s.signInTok, s.signInErr
}

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestAuthHandlerSignUp(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *stubAuthService
		wantStatus int
		wantCode   string
	}{
		{
			name:       "created",
			body:       `{"email":"a@b.com","password":"Str0ng@Passw0rd"}`,
			svc:        &stubAuthService{signUpUser: &domain.User{ID: 1, Email: "a@b.com"}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid json",
			body:       "{",
			svc:        &stubAuthService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "weak password",
			body:       `{"email":"a@b.com","password":"short"}`,
			svc:        &stubAuthService{signUpErr: service.ErrWeakPassword},
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "invalid email",
			body:       `{"email":"nope","password":"Str0ng@Passw0rd"}`,
			svc:        &stubAuthService{signUpErr: service.ErrInvalidEmail},
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "email taken",
			body:       `{"email":"a@b.com","password":"Str0ng@Passw0rd"}`,
			svc:        &stubAuthService{signUpErr: service.ErrEmailTaken},
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(tt.svc)
			req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.SignUp(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			env := decodeEnvelope(t, rec)
			if tt.wantCode == "" {
				if !env.Success {
					t.Fatal("expected success envelope")
				}
				return
			}
			if env.Success || env.Error == nil || env.Error.Code != tt.wantCode {
				t.Fatalf("unexpected error envelope: %+v", env)
			}
		})
	}
}

func TestAuthHandlerSignIn(t *testing.T) {
	t.Run("issues token", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{signInTok: "tok-123"})
		req := httptest.NewRequest(http.MethodPost, "/auth/signin",
			strings.NewReader(`{"email":"a@b.com","password":"Str0ng@Passw0rd"}`))
		rec := httptest.NewRecorder()

		h.SignIn(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		env := decodeEnvelope(t, rec)
		var data map[string]string
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if data["token"] != "tok-123" {
			t.Fatalf("token = %q", data["token"])
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{})
		req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{"email":"a@b.com"}`))
		rec := httptest.NewRecorder()

		h.SignIn(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{signInErr: service.ErrInvalidCredentials})
		req := httptest.NewRequest(http.MethodPost, "/auth/signin",
			strings.NewReader(`{"email":"a@b.com","password":"wrong"}`))
		rec := httptest.NewRecorder()

		h.SignIn(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		env := decodeEnvelope(t, rec)
		if env.Error == nil || env.Error.Code != "UNAUTHORIZED" {
			t.Fatalf("unexpected envelope: %+v", env)
		}
	})
}
