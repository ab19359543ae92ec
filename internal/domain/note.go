package domain

import "time"

// Note is a free-form annotation. Notes carry no secret fields, so Seal and
// Open are no-ops; they exist to satisfy SecretRecord.
type Note struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_notes_owner_title" json:"user_id"`
	Title      string    `gorm:"size:255;not null;uniqueIndex:idx_notes_owner_title" json:"title"`
	Annotation string    `gorm:"size:4096;not null" json:"annotation"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (n *Note) OwnerID() uint       { return n.UserID }
func (n *Note) RecordTitle() string { return n.Title }

func (n *Note) Seal(Cipher) error { return nil }
func (n *Note) Open(Cipher) error { return nil }
