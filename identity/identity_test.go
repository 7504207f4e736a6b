package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsRandomV4(t *testing.T) {
	t.Parallel()
	id := New()

	assert.False(t, id.IsZero())
	assert.Equal(t, uuid.Version(4), id.UUID().Version())
	assert.Equal(t, uuid.RFC4122, id.UUID().Variant())
}

func TestNew_NoCollisions(t *testing.T) {
	t.Parallel()
	seen := make(map[ID]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := New()
		_, dup := seen[id]
		require.False(t, dup, "duplicate identity %s", id)
		seen[id] = struct{}{}
	}
}

func TestString_IsCompact(t *testing.T) {
	t.Parallel()
	id := New()

	text := id.String()
	assert.Len(t, text, 22)
	assert.NotContains(t, text, "=")
	assert.NotContains(t, text, "+")
	assert.NotContains(t, text, "/")
}

func TestString_Stable(t *testing.T) {
	t.Parallel()
	u := uuid.MustParse("abcdef12-3456-7890-abcd-ef1234567890")
	id := FromUUID(u)

	assert.Equal(t, "q83vEjRWeJCrze8SNFZ4kA", id.String())
	assert.Equal(t, id.String(), id.String())
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()
	id := New()

	parsed, err := Parse(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParse_InvalidEncoding(t *testing.T) {
	t.Parallel()
	_, err := Parse("not base64!!")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestParse_InvalidLength(t *testing.T) {
	t.Parallel()
	_, err := Parse("AAAA")
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestBytes_ReturnsCopy(t *testing.T) {
	t.Parallel()
	id := New()

	b := id.Bytes()
	require.Len(t, b, 16)
	b[0] ^= 0xFF
	assert.NotEqual(t, b[0], id.UUID()[0])
}

func TestZeroValue(t *testing.T) {
	t.Parallel()
	var id ID
	assert.True(t, id.IsZero())
	assert.Equal(t, "AAAAAAAAAAAAAAAAAAAAAA", id.String())
}
