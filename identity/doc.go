// Package identity provides the correlation identity attached to every
// channel created by the mpsc and oneshot packages.
//
// An ID is a random (version 4) UUID generated once per channel. Both halves
// of a channel, and every clone of an mpsc sender, carry the same ID, so all
// trace events emitted by either endpoint can be grouped together.
//
// # Text Form
//
// Log lines favour a short rendering, so String encodes the 16 raw bytes with
// unpadded URL-safe base64 (22 characters). The encoding is reversible:
//
//	id := identity.New()
//	text := id.String()            // e.g. "q83vEjRWeJCrze8SNFZ4kA"
//	same, err := identity.Parse(text)
//
// The canonical hyphenated UUID form remains available through UUID().String().
package identity
