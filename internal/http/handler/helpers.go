package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/natividadesusana/drivenpass-go/internal/http/middleware"
	"github.com/natividadesusana/drivenpass-go/internal/security"
)

// parsePathID validates that a path id is a positive integer before any
// storage is touched.
func parsePathID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("id must be a positive integer")
	}
	return uint(id), nil
}

// caller extracts the authenticated identity placed in the context by the
// auth middleware. A missing or malformed claim set after the middleware ran
// means the route was wired wrong, so callers treat !ok as 401.
func caller(r *http.Request) (uint, *security.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return 0, nil, false
	}
	id, err := claims.UserID()
	if err != nil {
		return 0, nil, false
	}
	return id, claims, true
}
