package domain_test

import (
	"taskhub/pkg/domain"
	"taskhub/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		address string
		valid   bool
	}{
		{"simple", "a@b.com", true},
		{"subdomain", "user@mail.example.org", true},
		{"plus and dots", "first.last+tag@example.co", true},
		{"digits and percent", "user%42@ex-ample.com", true},
		{"missing at", "nobody.example.com", false},
		{"missing tld", "user@example", false},
		{"missing domain", "user@.com", false},
		{"embedded space", "us er@example.com", false},
		{"empty", "", false},
		{"two ats", "a@b@c.com", false},
		{"single letter tld", "user@example.c", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			email, err := domain.NewEmail(tt.address)
			if !tt.valid {
				require.Error(t, err)
				require.ErrorIs(t, err, serrors.ErrInvalidArgument)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.address, email.String())
		})
	}
}
