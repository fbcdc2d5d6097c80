package utils

import (
	"crypto/rand"
	"fmt"
)

// RandomHex returns nBytes of crypto/rand output, hex encoded and uppercased.
// RandomHex(2) yields a 4-character suffix such as "A1F0".
func RandomHex(nBytes int) (string, error) {
	if nBytes <= 0 {
		return "", fmt.Errorf("nBytes must be positive")
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return fmt.Sprintf("%X", b), nil
}
