package utils

import (
    "crypto/rand"  // secure random number generation
    "encoding/hex" // hex encoding of the random bytes
)

// shareTokenBytes is the entropy of a share token (64 hex chars).
const shareTokenBytes = 32

// NewShareToken returns an opaque, URL safe token for a public gig link.
func NewShareToken() (string, error) {
    return randomHex(shareTokenBytes)
}

// randomHex returns a hex‑encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
    buf := make([]byte, n)
    if _, err := rand.Read(buf); err != nil {
        return "", err
    }
    return hex.EncodeToString(buf), nil
}
