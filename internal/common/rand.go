package common

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString returns a random hexadecimal string built from size
// random bytes (the result is twice as long as size).
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
