package domain

// Cipher reversibly transforms a single secret field. The concrete
// implementation lives in the security package; domain types only ever see
// this narrow interface so the key-management strategy can change without
// touching them.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SecretRecord is implemented by every user-owned vault record kind
// (Credential, Card, Note). Seal encrypts the record's secret fields in place
// before persistence; Open reverses it on authorized read paths. Kinds without
// secret fields implement both as no-ops.
type SecretRecord interface {
	OwnerID() uint
	RecordTitle() string
	Seal(c Cipher) error
	Open(c Cipher) error
}
