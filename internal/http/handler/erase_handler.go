package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/natividadesusana/drivenpass-go/internal/http/response"
	"github.com/natividadesusana/drivenpass-go/internal/service"
)

type EraseHandler struct {
	svc service.EraseServiceInterface
}

func NewEraseHandler(svc service.EraseServiceInterface) *EraseHandler {
	return &EraseHandler{svc: svc}
}

type eraseRequest struct {
	Password string `json:"password"`
}

// Erase deletes the caller's account and every record it owns. The caller
// must re-prove the account password even though the request already
// carries a valid token.
func (h *EraseHandler) Erase(w http.ResponseWriter, r *http.Request) {
	_, claims, ok := caller(r)
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing caller identity", nil)
		return
	}
	var req eraseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	if req.Password == "" {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "password is required", nil)
		return
	}

	if err := h.svc.EraseAccount(r.Context(), claims.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "password not valid", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to erase account", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]string{"message": "Account successfully deleted"})
}
