package identity

import (
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

// encoding renders IDs as unpadded URL-safe base64 so they can be used in
// log fields, span attributes and URLs without escaping.
var encoding = base64.RawURLEncoding

// ID is the 128-bit correlation identity of a channel instance.
// The zero value is reserved and never produced by New.
type ID struct {
	u uuid.UUID
}

// New returns a fresh random identity.
func New() ID {
	return ID{u: uuid.New()}
}

// FromUUID wraps an existing UUID.
func FromUUID(u uuid.UUID) ID {
	return ID{u: u}
}

// Parse decodes the text produced by ID.String.
//
// Returns:
//   - ErrInvalidEncoding if text is not unpadded URL-safe base64
//   - ErrInvalidLength if the decoded value is not exactly 16 bytes
func Parse(text string) (ID, error) {
	raw, err := encoding.DecodeString(text)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	u, err := uuid.FromBytes(raw)
	if err != nil {
		return ID{}, fmt.Errorf("%w: got %d", ErrInvalidLength, len(raw))
	}
	return ID{u: u}, nil
}

// String returns the compact base64 rendering used in trace events.
func (id ID) String() string {
	return encoding.EncodeToString(id.u[:])
}

// UUID returns the underlying UUID.
func (id ID) UUID() uuid.UUID {
	return id.u
}

// Bytes returns a copy of the 16 raw bytes.
func (id ID) Bytes() []byte {
	b := make([]byte, len(id.u))
	copy(b, id.u[:])
	return b
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool {
	return id.u == uuid.Nil
}
