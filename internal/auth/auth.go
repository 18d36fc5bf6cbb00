package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	DefaultIterations = 1000000
	DefaultSaltLength = 16

	methodPBKDF2 = "pbkdf2"
	defaultHash  = "sha256"
	saltChars    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	ErrMismatch      = errors.New("password does not match")
	ErrMalformedHash = errors.New("malformed password hash")
)

var digests = map[string]func() hash.Hash{
	"sha256": sha256.New,
	"sha512": sha512.New,
}

func HashPassword(password string) (string, error) {
	return HashPasswordWith(rand.Reader, password, DefaultIterations, DefaultSaltLength)
}

// HashPasswordWith hashes password as pbkdf2:sha256:<iterations>$<salt>$<digest>,
// drawing the salt from r.
func HashPasswordWith(r io.Reader, password string, iterations, saltLength int) (string, error) {
	if iterations < 1 {
		return "", fmt.Errorf("invalid iteration count: %d", iterations)
	}
	salt, err := genSalt(r, saltLength)
	if err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}
	digest := derive(password, salt, iterations, sha256.New)
	method := methodPBKDF2 + ":" + defaultHash + ":" + strconv.Itoa(iterations)
	return method + "$" + salt + "$" + hex.EncodeToString(digest), nil
}

// CheckPasswordHash returns nil when password matches encoded, ErrMismatch when
// it does not, and an error wrapping ErrMalformedHash when encoded cannot be parsed.
func CheckPasswordHash(encoded, password string) error {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[1] == "" {
		return fmt.Errorf("%w: expected method$salt$digest", ErrMalformedHash)
	}
	newHash, iterations, err := parseMethod(parts[0])
	if err != nil {
		return err
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil || len(want) == 0 {
		return fmt.Errorf("%w: digest is not hex", ErrMalformedHash)
	}
	got := derive(password, parts[1], iterations, newHash)
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrMismatch
	}
	return nil
}

// parseMethod accepts pbkdf2, pbkdf2:<hash> and pbkdf2:<hash>:<iterations>.
func parseMethod(method string) (func() hash.Hash, int, error) {
	fields := strings.Split(method, ":")
	if fields[0] != methodPBKDF2 || len(fields) > 3 {
		return nil, 0, fmt.Errorf("%w: unsupported method %q", ErrMalformedHash, method)
	}
	name := defaultHash
	if len(fields) > 1 {
		name = fields[1]
	}
	newHash, ok := digests[name]
	if !ok {
		return nil, 0, fmt.Errorf("%w: unsupported digest %q", ErrMalformedHash, name)
	}
	iterations := DefaultIterations
	if len(fields) == 3 {
		n, err := strconv.Atoi(fields[2])
		if err != nil || n < 1 {
			return nil, 0, fmt.Errorf("%w: bad iteration count %q", ErrMalformedHash, fields[2])
		}
		iterations = n
	}
	return newHash, iterations, nil
}

func derive(password, salt string, iterations int, newHash func() hash.Hash) []byte {
	return pbkdf2.Key([]byte(password), []byte(salt), iterations, newHash().Size(), newHash)
}

// genSalt picks length characters from saltChars. Bytes at or above the largest
// multiple of len(saltChars) are discarded so every character is equally likely.
func genSalt(r io.Reader, length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("invalid salt length: %d", length)
	}
	limit := 256 - 256%len(saltChars)
	salt := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(salt) < length {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			salt = append(salt, saltChars[int(b)%len(saltChars)])
			if len(salt) == length {
				break
			}
		}
	}
	return string(salt), nil
}
