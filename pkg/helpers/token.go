package helpers

import (
	"crypto/rand"
	"encoding/hex"
)

// GenTokenSecret returns a hex-encoded secret with 32 bytes of entropy,
// used for verification and password-reset links. Secrets are embedded in
// outbound email links only and must never be logged.
func GenTokenSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
