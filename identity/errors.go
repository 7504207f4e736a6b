package identity

import "errors"

var (
	// ErrInvalidLength is returned by Parse when the decoded text is not 16 bytes long
	ErrInvalidLength = errors.New("identity: decoded value is not 16 bytes")

	// ErrInvalidEncoding is returned by Parse when the text is not valid base64
	ErrInvalidEncoding = errors.New("identity: invalid base64 text")
)
