// Package password derives and verifies the stored credential digests.
// Only the digest ever leaves this package; plaintext is never retained.
package password

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash - returns the SHA-256 digest of the plaintext as lowercase hex.
// Deterministic: the same plaintext always yields the same digest.
func Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Verify - recomputes the digest and compares it to the stored one.
// The hex comparison ignores case, any input string is valid.
func Verify(plaintext string, digest string) bool {
	return strings.EqualFold(Hash(plaintext), digest)
}
