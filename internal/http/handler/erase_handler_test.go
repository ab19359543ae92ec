package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/natividadesusana/drivenpass-go/internal/service"
)

type stubEraseService struct {
	err       error
	gotEmail  string
	gotSecret string
}

func (s *stubEraseService) EraseAccount(ctx context.Context, email, password string) error {
	s.gotEmail = email
	s.gotSecret = password
	return s.err
}

func TestEraseHandler(t *testing.T) {
	t.Run("deletes account", func(t *testing.T) {
		svc := &stubEraseService{}
		h := NewEraseHandler(svc)
		rec := httptest.NewRecorder()
		body := strings.NewReader(`{"password":"Str0ng@Passw0rd"}`)

		h.Erase(rec, authedRequest(http.MethodDelete, "/erase", "", body))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if svc.gotEmail != "owner@example.com" || svc.gotSecret != "Str0ng@Passw0rd" {
			t.Fatalf("service called with %q/%q", svc.gotEmail, svc.gotSecret)
		}
		env := decodeEnvelope(t, rec)
		var data map[string]string
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if data["message"] != "Account successfully deleted" {
			t.Fatalf("message = %q", data["message"])
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		h := NewEraseHandler(&stubEraseService{err: service.ErrInvalidPassword})
		rec := httptest.NewRecorder()
		body := strings.NewReader(`{"password":"wrong"}`)

		h.Erase(rec, authedRequest(http.MethodDelete, "/erase", "", body))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		env := decodeEnvelope(t, rec)
		if env.Error == nil || env.Error.Message != "password not valid" {
			t.Fatalf("unexpected envelope: %+v", env)
		}
	})

	t.Run("missing password", func(t *testing.T) {
		h := NewEraseHandler(&stubEraseService{})
		rec := httptest.NewRecorder()

		h.Erase(rec, authedRequest(http.MethodDelete, "/erase", "", strings.NewReader(`{}`)))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}
