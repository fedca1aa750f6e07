package auth

import (
	"crypto/subtle"
	"errors"
)

// Sentinel errors returned by SecretValidator.
var (
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidCredential = errors.New("invalid credential")
)

// BearerScheme prefixes the shared secret in the Authorization header.
const BearerScheme = "Bearer "

// SecretValidator checks Authorization headers against a single shared
// secret. It is immutable and safe for concurrent use.
type SecretValidator struct {
	expected []byte
}

// NewSecretValidator creates a validator for secret. An empty secret
// disables authentication.
func NewSecretValidator(secret string) *SecretValidator {
	if secret == "" {
		return &SecretValidator{}
	}
	return &SecretValidator{expected: []byte(BearerScheme + secret)}
}

// Enabled reports whether a secret is configured.
func (v *SecretValidator) Enabled() bool {
	return len(v.expected) > 0
}

// Validate checks a raw Authorization header value. The whole value must
// equal "Bearer <secret>"; the comparison runs in constant time.
func (v *SecretValidator) Validate(header string) error {
	if !v.Enabled() {
		return nil
	}
	if header == "" {
		return ErrMissingCredential
	}
	if subtle.ConstantTimeCompare([]byte(header), v.expected) != 1 {
		return ErrInvalidCredential
	}
	return nil
}
