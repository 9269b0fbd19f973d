//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"order-ledger/internal/pkg/errs"
	"order-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 15, 987654321, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	// microsecond precision matches timestamptz
	assert.True(t, at.Truncate(time.Microsecond).Equal(gotAt))
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	enc := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }

	cases := map[string]string{
		"empty":         "",
		"not base64":    "%%%",
		"wrong version": enc("v0:1700000000000000-" + uuid.NewString()),
		"missing id":    enc("v1:1700000000000000"),
		"bad timestamp": enc("v1:soon-" + uuid.NewString()),
		"bad uuid":      enc("v1:1700000000000000-nope"),
	}
	for name, cursor := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(cursor)
			require.Error(t, err)
			assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 1, queries.ValidateLimit(1))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
