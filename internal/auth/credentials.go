package auth

import (
	"crypto/rand"
	"io"
)

type Credentials struct {
	PasswordHash string
	SecretKey    string
}

// GenerationError reports which step of Generate failed and why.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Generator derives a password hash and an unrelated secret key. Zero fields
// fall back to crypto/rand.Reader, DefaultIterations and DefaultSaltLength.
type Generator struct {
	Rand       io.Reader
	Iterations int
	SaltLength int
}

// Generate hashes password and draws a fresh secret key. The key comes from
// the random source only, never from the password or the salt.
func (g Generator) Generate(password string) (Credentials, error) {
	r := g.Rand
	if r == nil {
		r = rand.Reader
	}
	iterations := g.Iterations
	if iterations == 0 {
		iterations = DefaultIterations
	}
	saltLength := g.SaltLength
	if saltLength == 0 {
		saltLength = DefaultSaltLength
	}

	passwordHash, err := HashPasswordWith(r, password, iterations, saltLength)
	if err != nil {
		return Credentials{}, &GenerationError{Op: "hash password", Err: err}
	}
	secretKey, err := MakeSecretKey(r)
	if err != nil {
		return Credentials{}, &GenerationError{Op: "make secret key", Err: err}
	}
	return Credentials{PasswordHash: passwordHash, SecretKey: secretKey}, nil
}

func Generate(password string) (Credentials, error) {
	return Generator{}.Generate(password)
}
