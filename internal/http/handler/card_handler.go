package handler

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/natividadesusana/drivenpass-go/internal/domain"
	"github.com/natividadesusana/drivenpass-go/internal/http/response"
	"github.com/natividadesusana/drivenpass-go/internal/service"
)

var cardNumberRe = regexp.MustCompile(`^[0-9]{13,19}$`)

type CardHandler struct {
	VaultHandler[*domain.Card]
}

func NewCardHandler(svc service.Vault[*domain.Card]) *CardHandler {
	return &CardHandler{VaultHandler[*domain.Card]{kind: "card", svc: svc}}
}

type createCardRequest struct {
	Title    string `json:"title"`
	Number   string `json:"number"`
	Name     string `json:"name"`
	CVV      string `json:"cvv"`
	Exp      string `json:"exp"`
	Password string `json:"password"`
	// Pointers so that an omitted flag is distinguishable from an
	// explicit false.
	IsVirtual *bool `json:"is_virtual"`
	IsCredit  *bool `json:"is_credit"`
	IsDebit   *bool `json:"is_debit"`
}

func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := caller(r)
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing caller identity", nil)
		return
	}
	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	if req.Title == "" || req.Number == "" || req.Name == "" || req.CVV == "" ||
		req.Exp == "" || req.Password == "" ||
		req.IsVirtual == nil || req.IsCredit == nil || req.IsDebit == nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "all card fields are required", nil)
		return
	}
	if !cardNumberRe.MatchString(req.Number) {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "card number must be 13 to 19 digits", nil)
		return
	}

	card := &domain.Card{
		UserID:    callerID,
		Title:     req.Title,
		Number:    req.Number,
		Name:      req.Name,
		CVV:       req.CVV,
		Exp:       req.Exp,
		Password:  req.Password,
		IsVirtual: *req.IsVirtual,
		IsCredit:  *req.IsCredit,
		IsDebit:   *req.IsDebit,
	}
	if err := h.svc.Create(r.Context(), card); err != nil {
		writeVaultError(w, r, h.kind, err)
		return
	}
	response.JSON(w, r, http.StatusCreated, card)
}
