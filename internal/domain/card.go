package domain

import "time"

// Card is a stored payment card. CVV and password are encrypted at rest. The
// title is unique per owner, but the card number is unique across the whole
// table: the same physical card may not be registered twice even by different
// accounts.
type Card struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cards_owner_title" json:"user_id"`
	Title     string    `gorm:"size:255;not null;uniqueIndex:idx_cards_owner_title" json:"title"`
	Number    string    `gorm:"size:19;not null;uniqueIndex" json:"number"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CVV       string    `gorm:"size:1024;not null" json:"cvv"`
	Exp       string    `gorm:"size:16;not null" json:"exp"`
	Password  string    `gorm:"size:1024;not null" json:"password"`
	IsVirtual bool      `gorm:"not null" json:"is_virtual"`
	IsCredit  bool      `gorm:"not null" json:"is_credit"`
	IsDebit   bool      `gorm:"not null" json:"is_debit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Card) OwnerID() uint       { return c.UserID }
func (c *Card) RecordTitle() string { return c.Title }

func (c *Card) Seal(cipher Cipher) error {
	cvv, err := cipher.Encrypt(c.CVV)
	if err != nil {
		return err
	}
	password, err := cipher.Encrypt(c.Password)
	if err != nil {
		return err
	}
	c.CVV = cvv
	c.Password = password
	return nil
}

func (c *Card) Open(cipher Cipher) error {
	cvv, err := cipher.Decrypt(c.CVV)
	if err != nil {
		return err
	}
	password, err := cipher.Decrypt(c.Password)
	if err != nil {
		return err
	}
	c.CVV = cvv
	c.Password = password
	return nil
}
