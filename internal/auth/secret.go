package auth

import (
	"encoding/hex"
	"fmt"
	"io"
)

const SecretKeyBytes = 32

// MakeSecretKey returns SecretKeyBytes bytes read from r as lowercase hex.
func MakeSecretKey(r io.Reader) (string, error) {
	key := make([]byte, SecretKeyBytes)
	if _, err := io.ReadFull(r, key); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}
	return hex.EncodeToString(key), nil
}
