package domain

import "time"

// Credential is a stored website login. Password is kept encrypted at rest;
// the title is unique per owner.
type Credential struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_credentials_owner_title" json:"user_id"`
	Title     string    `gorm:"size:255;not null;uniqueIndex:idx_credentials_owner_title" json:"title"`
	Username  string    `gorm:"size:255;not null" json:"username"`
	Password  string    `gorm:"size:1024;not null" json:"password"`
	URL       string    `gorm:"size:1024;not null" json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Credential) OwnerID() uint       { return c.UserID }
func (c *Credential) RecordTitle() string { return c.Title }

func (c *Credential) Seal(cipher Cipher) error {
	enc, err := cipher.Encrypt(c.Password)
	if err != nil {
		return err
	}
	c.Password = enc
	return nil
}

func (c *Credential) Open(cipher Cipher) error {
	dec, err := cipher.Decrypt(c.Password)
	if err != nil {
		return err
	}
	c.Password = dec
	return nil
}
