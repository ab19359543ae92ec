package service

import "github.com/natividadesusana/drivenpass-go/internal/domain"

// authorizeOwner is the ownership half of the read-by-id/delete-by-id
// protocol: the record was already found, so a mismatch is Forbidden, never
// NotFound. Keeping this a single function means every record kind fails the
// same way.
func authorizeOwner(rec domain.SecretRecord, callerID uint) error {
	if rec.OwnerID() != callerID {
		return ErrNotOwner
	}
	return nil
}
