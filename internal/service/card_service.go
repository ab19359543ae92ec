package service

import (
	"context"
	"errors"

	"github.com/natividadesusana/drivenpass-go/internal/domain"
	"github.com/natividadesusana/drivenpass-go/internal/repository"
)

// CardService is the shared vault service plus the card-specific create
// guard: card numbers are unique across all accounts, not per owner like
// titles are.
type CardService struct {
	*VaultService[*domain.Card]
}

func NewCardService(repo repository.CardRepository, cipher domain.Cipher) *CardService {
	return &CardService{
		VaultService: NewVaultService[*domain.Card]("card", repo, cipher, cardNumberGuard(repo)),
	}
}

func cardNumberGuard(repo repository.CardRepository) CreateGuard[*domain.Card] {
	return func(_ context.Context, card *domain.Card) error {
		_, err := repo.FindByNumber(card.Number)
		if err == nil {
			return ErrCardNumberTaken
		}
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil
		}
		return err
	}
}
