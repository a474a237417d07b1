package domain

import (
	"unicode"

	"taskhub/pkg/serrors"
)

// minPasswordLength is the minimum number of runes a password must contain.
const minPasswordLength = 8

// maskedPassword is what String and fmt verbs render instead of the plaintext.
const maskedPassword = "***HIDDEN***"

// Password holds a plaintext password candidate that satisfied the strength
// rules. It exists only in memory between request decoding and hashing and is
// never persisted. String conversions return a masked constant so the
// plaintext cannot leak through logging; use Value to read it.
type Password struct {
	value string
}

// NewPassword validates the strength rules (at least 8 characters with at
// least one uppercase letter, one lowercase letter and one digit) and returns
// the password. A violation yields a validation error.
func NewPassword(plain string) (Password, error) {
	var hasUpper, hasLower, hasDigit bool
	length := 0
	for _, r := range plain {
		length++
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if length < minPasswordLength || !hasUpper || !hasLower || !hasDigit {
		return Password{}, serrors.With(serrors.ErrInvalidArgument,
			"password must be at least 8 characters long and contain at least "+
				"one uppercase letter, one lowercase letter, and one digit")
	}

	return Password{value: plain}, nil
}

// Value returns the plaintext. Callers must only pass it to the credential
// hasher, never to logs or responses.
func (p Password) Value() string { return p.value }

// String returns a masked constant, never the plaintext.
func (p Password) String() string { return maskedPassword }
