package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/natividadesusana/drivenpass-go/internal/domain"
)

// VaultRepository is the persistence contract shared by every secret-record
// kind. R is the pointer form of a record (e.g. *domain.Credential). All
// lookups by id deliberately ignore the owner; ownership is the service
// layer's concern so that "not found" and "not yours" stay distinguishable.
type VaultRepository[R domain.SecretRecord] interface {
	Create(rec R) error
	FindByID(id uint) (R, error)
	FindByOwnerAndTitle(ownerID uint, title string) (R, error)
	ListByOwner(ownerID uint) ([]R, error)
	DeleteByID(id uint) error
	DeleteByOwner(ownerID uint) error
}

// record ties a value type to its pointer form implementing SecretRecord.
type record[T any] interface {
	*T
	domain.SecretRecord
}

// GormVaultRepository is the single gorm-backed implementation behind all
// three record kinds.
type GormVaultRepository[T any, R record[T]] struct{ db *gorm.DB }

func NewCredentialRepository(db *gorm.DB) VaultRepository[*domain.Credential] {
	return &GormVaultRepository[domain.Credential, *domain.Credential]{db: db}
}

func NewNoteRepository(db *gorm.DB) VaultRepository[*domain.Note] {
	return &GormVaultRepository[domain.Note, *domain.Note]{db: db}
}

func (r *GormVaultRepository[T, R]) Create(rec R) error {
	if err := r.db.Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateRecord
		}
		return err
	}
	return nil
}

func (r *GormVaultRepository[T, R]) FindByID(id uint) (R, error) {
	var zero R
	var rec T
	if err := r.db.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, ErrRecordNotFound
		}
		return zero, err
	}
	return R(&rec), nil
}

func (r *GormVaultRepository[T, R]) FindByOwnerAndTitle(ownerID uint, title string) (R, error) {
	var zero R
	var rec T
	err := r.db.Where("user_id = ? AND title = ?", ownerID, title).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, ErrRecordNotFound
		}
		return zero, err
	}
	return R(&rec), nil
}

func (r *GormVaultRepository[T, R]) ListByOwner(ownerID uint) ([]R, error) {
	var recs []R
	if err := r.db.Where("user_id = ?", ownerID).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *GormVaultRepository[T, R]) DeleteByID(id uint) error {
	res := r.db.Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// DeleteByOwner removes every record owned by ownerID. Zero matches is fine;
// the account-erasure path relies on this being idempotent.
func (r *GormVaultRepository[T, R]) DeleteByOwner(ownerID uint) error {
	return r.db.Where("user_id = ?", ownerID).Delete(new(T)).Error
}
