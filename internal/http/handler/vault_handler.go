package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/natividadesusana/drivenpass-go/internal/domain"
	"github.com/natividadesusana/drivenpass-go/internal/http/response"
	"github.com/natividadesusana/drivenpass-go/internal/repository"
	"github.com/natividadesusana/drivenpass-go/internal/service"
)

// VaultHandler carries the read and delete endpoints shared by all three
// secret-record kinds. Create stays per-kind because the request bodies
// differ.
type VaultHandler[R domain.SecretRecord] struct {
	kind string
	svc  service.Vault[R]
}

func (h *VaultHandler[R]) List(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := caller(r)
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing caller identity", nil)
		return
	}
	recs, err := h.svc.List(r.Context(), callerID)
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to list "+h.kind+"s", nil)
		return
	}
	if recs == nil {
		recs = []R{}
	}
	response.JSON(w, r, http.StatusOK, recs)
}

func (h *VaultHandler[R]) GetByID(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := caller(r)
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing caller identity", nil)
		return
	}
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	rec, err := h.svc.GetByID(r.Context(), id, callerID)
	if err != nil {
		writeVaultError(w, r, h.kind, err)
		return
	}
	// Single-record reads respond with an array of one element.
	response.JSON(w, r, http.StatusOK, []R{rec})
}

func (h *VaultHandler[R]) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := caller(r)
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing caller identity", nil)
		return
	}
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	if err := h.svc.DeleteByID(r.Context(), id, callerID); err != nil {
		writeVaultError(w, r, h.kind, err)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{"deleted": true})
}

func writeVaultError(w http.ResponseWriter, r *http.Request, kind string, err error) {
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", kind+" not found", nil)
	case errors.Is(err, service.ErrNotOwner):
		response.Error(w, r, http.StatusForbidden, "FORBIDDEN", kind+" belongs to another user", nil)
	case errors.Is(err, service.ErrTitleTaken),
		errors.Is(err, service.ErrCardNumberTaken),
		errors.Is(err, repository.ErrDuplicateRecord):
		response.Error(w, r, http.StatusConflict, "CONFLICT", err.Error(), nil)
	default:
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "operation on "+kind+" failed", nil)
	}
}
