package handler

import (
	"encoding/json"
	"net/http"

	"github.com/natividadesusana/drivenpass-go/internal/domain"
	"github.com/natividadesusana/drivenpass-go/internal/http/response"
	"github.com/natividadesusana/drivenpass-go/internal/service"
)

type NoteHandler struct {
	VaultHandler[*domain.Note]
}

func NewNoteHandler(svc service.Vault[*domain.Note]) *NoteHandler {
	return &NoteHandler{VaultHandler[*domain.Note]{kind: "note", svc: svc}}
}

type createNoteRequest struct {
	Title      string `json:"title"`
	Annotation string `json:"annotation"`
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := caller(r)
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing caller identity", nil)
		return
	}
	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	if req.Title == "" || req.Annotation == "" {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "title and annotation are required", nil)
		return
	}

	note := &domain.Note{
		UserID:     callerID,
		Title:      req.Title,
		Annotation: req.Annotation,
	}
	if err := h.svc.Create(r.Context(), note); err != nil {
		writeVaultError(w, r, h.kind, err)
		return
	}
	response.JSON(w, r, http.StatusCreated, note)
}
