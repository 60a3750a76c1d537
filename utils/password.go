package utils

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"hash"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

const (
	AlgorithmPBKDF2SHA256 = "pbkdf2_sha256"
	AlgorithmPBKDF2SHA1   = "pbkdf2_sha1"
	AlgorithmBcrypt       = "bcrypt"

	bcryptMaxPasswordBytes = 72

	saltLength = 22
	saltChars  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	ErrUnknownHashAlgorithm = errors.New("unknown password hash algorithm")
	ErrPasswordTooLong      = errors.New("password longer than 72 bytes")
)

// PasswordHasher produces and verifies salted hashes in the
// "<algorithm>$<iterations>$<salt>$<hash>" layout already stored in the
// Usuario table, so existing accounts keep working.
type PasswordHasher struct {
	Algorithm  string
	Iterations int
	BcryptCost int
}

func NewPasswordHasher(algorithm string, iterations int) PasswordHasher {
	return PasswordHasher{
		Algorithm:  algorithm,
		Iterations: iterations,
		BcryptCost: bcrypt.DefaultCost,
	}
}

// Hash encodes password with the configured algorithm and a fresh salt.
func (h PasswordHasher) Hash(password string) (string, error) {
	switch h.Algorithm {
	case AlgorithmPBKDF2SHA256, AlgorithmPBKDF2SHA1:
		salt, err := randomSalt()
		if err != nil {
			return "", err
		}
		return encodePBKDF2(h.Algorithm, password, salt, h.Iterations), nil
	case AlgorithmBcrypt:
		if len(password) > bcryptMaxPasswordBytes {
			return "", ErrPasswordTooLong
		}
		cost := h.BcryptCost
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return "", err
		}
		return AlgorithmBcrypt + "$" + string(hashed), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownHashAlgorithm, h.Algorithm)
}

// Check reports whether password matches encoded. The algorithm and
// iteration count are read from encoded, not from the hasher settings.
// Unusable hashes ("!...") and malformed values never match.
func (h PasswordHasher) Check(password, encoded string) bool {
	if encoded == "" || strings.HasPrefix(encoded, "!") {
		return false
	}
	if strings.HasPrefix(encoded, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
	}

	algorithm, rest, ok := strings.Cut(encoded, "$")
	if !ok {
		return false
	}
	switch algorithm {
	case AlgorithmBcrypt:
		return bcrypt.CompareHashAndPassword([]byte(rest), []byte(password)) == nil
	case AlgorithmPBKDF2SHA256, AlgorithmPBKDF2SHA1:
		parts := strings.Split(rest, "$")
		if len(parts) != 3 {
			return false
		}
		iterations, err := strconv.Atoi(parts[0])
		if err != nil || iterations <= 0 {
			return false
		}
		candidate := encodePBKDF2(algorithm, password, parts[1], iterations)
		return subtle.ConstantTimeCompare([]byte(candidate), []byte(encoded)) == 1
	}
	return false
}

func encodePBKDF2(algorithm, password, salt string, iterations int) string {
	var digest func() hash.Hash = sha256.New
	size := sha256.Size
	if algorithm == AlgorithmPBKDF2SHA1 {
		digest, size = sha1.New, sha1.Size
	}
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, size, digest)
	return fmt.Sprintf("%s$%d$%s$%s", algorithm, iterations, salt, base64.StdEncoding.EncodeToString(key))
}

func randomSalt() (string, error) {
	max := big.NewInt(int64(len(saltChars)))
	var b strings.Builder
	for i := 0; i < saltLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(saltChars[n.Int64()])
	}
	return b.String(), nil
}
