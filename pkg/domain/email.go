package domain

import (
	"regexp"

	"taskhub/pkg/serrors"
)

// emailPattern accepts the common mailbox@domain.tld shape. Exotic but
// technically valid addresses are rejected on purpose so stored emails stay
// predictable.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is a validated email address. The zero value is not a valid address;
// use NewEmail to construct one.
type Email string

// NewEmail validates the given address and returns it as an Email.
func NewEmail(address string) (Email, error) {
	if !emailPattern.MatchString(address) {
		return "", serrors.With(serrors.ErrInvalidArgument, "invalid email format: %s", address)
	}

	return Email(address), nil
}

// String returns the raw address.
func (e Email) String() string { return string(e) }
