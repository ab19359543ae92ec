package handler

import (
	"encoding/json"
	"net/http"

	"github.com/natividadesusana/drivenpass-go/internal/domain"
	"github.com/natividadesusana/drivenpass-go/internal/http/response"
	"github.com/natividadesusana/drivenpass-go/internal/service"
)

type CredentialHandler struct {
	VaultHandler[*domain.Credential]
}

func NewCredentialHandler(svc service.Vault[*domain.Credential]) *CredentialHandler {
	return &CredentialHandler{VaultHandler[*domain.Credential]{kind: "credential", svc: svc}}
}

type createCredentialRequest struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *CredentialHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := caller(r)
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing caller identity", nil)
		return
	}
	var req createCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	if req.Title == "" || req.URL == "" || req.Username == "" || req.Password == "" {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "title, url, username and password are required", nil)
		return
	}

	cred := &domain.Credential{
		UserID:   callerID,
		Title:    req.Title,
		URL:      req.URL,
		Username: req.Username,
		Password: req.Password,
	}
	if err := h.svc.Create(r.Context(), cred); err != nil {
		writeVaultError(w, r, h.kind, err)
		return
	}
	response.JSON(w, r, http.StatusCreated, cred)
}
