package session

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks an email/password pair. Implementations report
// only pass/fail; they never distinguish an unknown user from a wrong
// password.
type CredentialVerifier interface {
	Verify(email, password string) bool
}

// StaticVerifier accepts exactly one account. It stands in for a real
// directory lookup: a production deployment replaces this with a verifier
// backed by a user store, keeping the bcrypt comparison.
type StaticVerifier struct {
	email        string
	passwordHash []byte
}

// NewStaticVerifier hashes the configured password once at construction so
// no plaintext is retained.
func NewStaticVerifier(email, password string) (*StaticVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &StaticVerifier{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: hash,
	}, nil
}

func (v *StaticVerifier) Verify(email, password string) bool {
	if strings.ToLower(strings.TrimSpace(email)) != v.email {
		// Burn a comparison anyway so timing does not reveal whether the
		// email matched.
		_ = bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)) == nil
}
