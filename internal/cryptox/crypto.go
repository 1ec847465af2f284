// Package cryptox hashes and verifies account passwords with argon2id.
//
// Hashed passwords are stored as a single string so they fit the plain
// "password" field of a user record:
//
//	argon2id$<hex salt>$<hex key>
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/dmitrijs2005/habitkeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

// Scheme is the prefix of every hashed password.
const Scheme = "argon2id"

const saltSize = 16

var ErrMalformedHash = errors.New("malformed password hash")

// DeriveKey stretches password with salt into a 32-byte key.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// HashPassword derives a key from password and a fresh random salt and
// returns the encoded form.
func HashPassword(password []byte) string {
	salt := common.GenerateRandByteArray(saltSize)
	key := DeriveKey(password, salt)
	return Scheme + "$" + hex.EncodeToString(salt) + "$" + hex.EncodeToString(key)
}

// IsHashed reports whether stored looks like a value produced by HashPassword.
func IsHashed(stored string) bool {
	return strings.HasPrefix(stored, Scheme+"$")
}

// VerifyPassword checks password against an encoded hash in constant time.
func VerifyPassword(stored string, password []byte) (bool, error) {
	parts := strings.Split(stored, "$")
	if len(parts) != 3 || parts[0] != Scheme {
		return false, ErrMalformedHash
	}

	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false, ErrMalformedHash
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil || len(want) == 0 {
		return false, ErrMalformedHash
	}

	got := DeriveKey(password, salt)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
