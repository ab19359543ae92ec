package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/natividadesusana/drivenpass-go/internal/domain"
	"github.com/natividadesusana/drivenpass-go/internal/security"
)

// SeedReport summarizes what the development seed actually changed, so the
// seed command can run repeatedly without surprises.
type SeedReport struct {
	CreatedUser    bool `json:"created_user"`
	CreatedRecords int  `json:"created_records"`
	Noop           bool `json:"noop"`
}

// Seed provisions a development account with one record of each kind.
// Secret fields are sealed with the same cipher the API uses, so the
// seeded rows are indistinguishable from rows created through the API.
func Seed(db *gorm.DB, cipher domain.Cipher, email, password string) (*SeedReport, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("seed email and password are required")
	}

	report := &SeedReport{}

	var user domain.User
	err := db.Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, hashErr := security.HashPassword(password)
		if hashErr != nil {
			return nil, fmt.Errorf("hash seed password: %w", hashErr)
		}
		user = domain.User{Email: email, PasswordHash: hash}
		if err := db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("create seed user: %w", err)
		}
		report.CreatedUser = true
	case err != nil:
		return nil, fmt.Errorf("look up seed user: %w", err)
	}

	credential := &domain.Credential{
		UserID:   user.ID,
		Title:    "Example login",
		URL:      "https://example.com",
		Username: "demo",
		Password: uuid.NewString(),
	}
	card := &domain.Card{
		UserID:    user.ID,
		Title:     "Example card",
		Number:    "4111111111111111",
		Name:      "DEMO USER",
		CVV:       "123",
		Exp:       "12/30",
		Password:  "4321",
		IsVirtual: false,
		IsCredit:  true,
		IsDebit:   false,
	}
	note := &domain.Note{
		UserID:     user.ID,
		Title:      "Example note",
		Annotation: "Seeded development note " + uuid.NewString(),
	}

	for _, rec := range []domain.SecretRecord{credential, card, note} {
		created, err := seedRecord(db, cipher, rec)
		if err != nil {
			return nil, err
		}
		if created {
			report.CreatedRecords++
		}
	}

	report.Noop = !report.CreatedUser && report.CreatedRecords == 0
	return report, nil
}

func seedRecord(db *gorm.DB, cipher domain.Cipher, rec domain.SecretRecord) (bool, error) {
	var count int64
	if err := db.Model(rec).
		Where("user_id = ? AND title = ?", rec.OwnerID(), rec.RecordTitle()).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("look up seed record %q: %w", rec.RecordTitle(), err)
	}
	if count > 0 {
		return false, nil
	}
	if err := rec.Seal(cipher); err != nil {
		return false, fmt.Errorf("seal seed record %q: %w", rec.RecordTitle(), err)
	}
	if err := db.Create(rec).Error; err != nil {
		return false, fmt.Errorf("create seed record %q: %w", rec.RecordTitle(), err)
	}
	return true, nil
}
