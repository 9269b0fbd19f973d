//go:build unit

package user_test

import (
	"testing"

	"order-ledger/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	email, err := user.NewEmail("member@example.com")
	require.NoError(t, err)

	t.Run("adds points", func(t *testing.T) {
		p := user.ReconstructProfile(uuid.New(), email, 100, false)
		p.AddPoints(500)
		assert.Equal(t, int64(600), p.LoyaltyPoints())
	})

	t.Run("subtraction stops at zero", func(t *testing.T) {
		p := user.ReconstructProfile(uuid.New(), email, 100, false)
		p.AddPoints(-500)
		assert.Equal(t, int64(0), p.LoyaltyPoints())

		p.AddPoints(-500)
		assert.Equal(t, int64(0), p.LoyaltyPoints())
	})

	t.Run("negative stored balance reconstructs as zero", func(t *testing.T) {
		p := user.ReconstructProfile(uuid.New(), email, -20, true)
		assert.Equal(t, int64(0), p.LoyaltyPoints())
		assert.True(t, p.SpinEligible())
	})
}

func TestEmail(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		valid bool
	}{
		{"valid address", "valid@example.com", true},
		{"surrounding whitespace is trimmed", "  valid@example.com ", true},
		{"empty is rejected", "", false},
		{"malformed is rejected", "invalid-email", false},
		{"missing at sign is rejected", "invalidemail.com", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := user.NewEmail(c.in)
			if !c.valid {
				require.ErrorIs(t, err, user.ErrInvalidEmail)
				assert.True(t, e.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "valid@example.com", e.Value())
		})
	}
}

func TestRole(t *testing.T) {
	for _, s := range []string{"customer", "operator", "admin"} {
		r, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s == "admin", r.IsAdmin())
	}

	_, err := user.NewRole("viewer")
	require.ErrorIs(t, err, user.ErrInvalidRole)
}
