package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Prefix     = "$pbkdf2"
	pbkdf2Iterations = 100000
	pbkdf2KeyLen     = sha256.Size
)

// HashPassword returns "$pbkdf2$<iterations>$<salt>$<hex digest>". The salt is
// hex text and is fed to the KDF as those text bytes.
func HashPassword(password string) (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	salt := hex.EncodeToString(raw)
	digest := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return fmt.Sprintf("%s$%d$%s$%s", pbkdf2Prefix, pbkdf2Iterations, salt, hex.EncodeToString(digest)), nil
}

// VerifyPassword checks password against a pbkdf2 or bcrypt hash. Unknown or
// malformed hashes never verify.
func VerifyPassword(password, hashed string) bool {
	switch {
	case strings.HasPrefix(hashed, pbkdf2Prefix+"$"):
		return verifyPBKDF2(password, hashed)
	case strings.HasPrefix(hashed, "$2a$"), strings.HasPrefix(hashed, "$2b$"), strings.HasPrefix(hashed, "$2y$"):
		return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
	default:
		return false
	}
}

func verifyPBKDF2(password, hashed string) bool {
	// "", "pbkdf2", iterations, salt, digest
	parts := strings.Split(hashed, "$")
	if len(parts) != 5 {
		return false
	}
	iterations, err := strconv.Atoi(parts[2])
	if err != nil || iterations <= 0 {
		return false
	}
	stored, err := hex.DecodeString(parts[4])
	if err != nil || len(stored) == 0 {
		return false
	}
	digest := pbkdf2.Key([]byte(password), []byte(parts[3]), iterations, len(stored), sha256.New)
	return hmac.Equal(digest, stored)
}
