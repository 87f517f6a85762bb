package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Hashes use the pbkdf2:sha256:iterations$salt$digest layout so records
// written by the previous deployment keep verifying.
const (
	hashMethod     = "pbkdf2:sha256"
	hashIterations = 600000
	saltLen        = 16
	keyLen         = 32
)

var ErrMismatch = errors.New("password does not match")

// HashPassword derives a salted PBKDF2-SHA256 hash of the given password.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen/2)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)
	key := pbkdf2.Key([]byte(password), []byte(saltHex), hashIterations, keyLen, sha256.New)
	return fmt.Sprintf("%s:%d$%s$%s", hashMethod, hashIterations, saltHex, hex.EncodeToString(key)), nil
}

// CheckPassword verifies a plaintext password against a stored hash. It
// returns ErrMismatch when the password is wrong and a descriptive error when
// the stored value is not in a recognized format.
func CheckPassword(password, encoded string) error {
	method, rest, ok := strings.Cut(encoded, "$")
	if !ok {
		return fmt.Errorf("malformed password hash")
	}
	prefix, iterStr, ok := strings.Cut(method, ":sha256:")
	if !ok || prefix != "pbkdf2" {
		return fmt.Errorf("unsupported hash method %q", method)
	}
	iterations, err := strconv.Atoi(iterStr)
	if err != nil || iterations <= 0 {
		return fmt.Errorf("malformed iteration count %q", iterStr)
	}
	salt, digestHex, ok := strings.Cut(rest, "$")
	if !ok {
		return fmt.Errorf("malformed password hash")
	}
	digest, err := hex.DecodeString(digestHex)
	if err != nil {
		return fmt.Errorf("malformed password digest")
	}
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, len(digest), sha256.New)
	if subtle.ConstantTimeCompare(key, digest) != 1 {
		return ErrMismatch
	}
	return nil
}
