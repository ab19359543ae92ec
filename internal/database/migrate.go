package database

import (
	"github.com/natividadesusana/drivenpass-go/internal/domain"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Credential{},
		&domain.Card{},
		&domain.Note{},
	)
}
