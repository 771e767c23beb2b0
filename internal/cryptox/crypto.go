// Package cryptox turns plaintext passwords into the digests stored in the
// users table.
//
// Digests are deterministic and unsalted: login re-hashes the supplied
// password and compares it with the stored value.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Supported digest algorithms.
const (
	AlgorithmSHA256     = "sha256"
	AlgorithmSHA3256    = "sha3-256"
	AlgorithmBLAKE2b256 = "blake2b-256"
)

var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// HashFunc maps a plaintext password to a lowercase hex digest.
type HashFunc func(plaintext string) string

// HashPassword returns the SHA-256 digest of plaintext as 64 lowercase hex chars.
func HashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

func hashSHA3(plaintext string) string {
	sum := sha3.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

func hashBLAKE2b(plaintext string) string {
	sum := blake2b.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// NewHasher returns the HashFunc registered under algorithm.
func NewHasher(algorithm string) (HashFunc, error) {
	switch algorithm {
	case AlgorithmSHA256:
		return HashPassword, nil
	case AlgorithmSHA3256:
		return hashSHA3, nil
	case AlgorithmBLAKE2b256:
		return hashBLAKE2b, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// DigestsEqual compares two digests in constant time.
func DigestsEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
