package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/natividadesusana/drivenpass-go/internal/domain"
)

// CardRepository adds the number lookup cards need for their global
// uniqueness rule on top of the shared vault contract.
type CardRepository interface {
	VaultRepository[*domain.Card]
	FindByNumber(number string) (*domain.Card, error)
}

type GormCardRepository struct {
	GormVaultRepository[domain.Card, *domain.Card]
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &GormCardRepository{GormVaultRepository[domain.Card, *domain.Card]{db: db}}
}

func (r *GormCardRepository) FindByNumber(number string) (*domain.Card, error) {
	var card domain.Card
	if err := r.db.Where("number = ?", number).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &card, nil
}
