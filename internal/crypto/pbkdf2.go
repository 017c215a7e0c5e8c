// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	hashMethod = "pbkdf2:sha256"

	// DefaultIterations follows the OWASP (2023) recommendation for
	// PBKDF2-HMAC-SHA256.
	DefaultIterations = 600_000

	keyBytes  = 16
	saltBytes = 16
	hashBytes = 32
)

// pbkdf2Hasher is the private implementation of [KeyHasher].
type pbkdf2Hasher struct {
	iterations int
	random     io.Reader
}

// NewPBKDF2Hasher constructs a [KeyHasher] using PBKDF2-HMAC-SHA256 with the
// given iteration count. A non-positive count falls back to
// [DefaultIterations].
func NewPBKDF2Hasher(iterations int) KeyHasher {
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	return &pbkdf2Hasher{
		iterations: iterations,
		random:     rand.Reader,
	}
}

// GenerateKey implements [KeyHasher]. It reads 16 bytes from the OS CSPRNG.
func (p *pbkdf2Hasher) GenerateKey() (string, error) {
	key := make([]byte, keyBytes)
	if _, err := io.ReadFull(p.random, key); err != nil {
		return "", fmt.Errorf("error generating api key: %w", err)
	}

	return hex.EncodeToString(key), nil
}

// Hash implements [KeyHasher].
func (p *pbkdf2Hasher) Hash(key string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := io.ReadFull(p.random, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	derived := pbkdf2.Key([]byte(key), salt, p.iterations, hashBytes, sha256.New)

	return fmt.Sprintf("%s:%d$%s$%s",
		hashMethod,
		p.iterations,
		hex.EncodeToString(salt),
		hex.EncodeToString(derived),
	), nil
}

// Compare implements [KeyHasher]. The iteration count is taken from the
// encoded value, so hashes produced under an older configuration keep
// verifying after the configured count changes.
func (p *pbkdf2Hasher) Compare(encoded, key string) (bool, error) {
	iterations, salt, expected, err := parseEncodedHash(encoded)
	if err != nil {
		return false, err
	}

	derived := pbkdf2.Key([]byte(key), salt, iterations, len(expected), sha256.New)

	return subtle.ConstantTimeCompare(derived, expected) == 1, nil
}

// parseEncodedHash splits "pbkdf2:sha256:<iterations>$<salt>$<hash>".
func parseEncodedHash(encoded string) (int, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 {
		return 0, nil, nil, ErrMalformedHash
	}

	method, iterationsRaw, found := strings.Cut(parts[0], hashMethod+":")
	if !found || method != "" {
		if strings.HasPrefix(parts[0], "pbkdf2:") || strings.Count(parts[0], ":") == 2 {
			return 0, nil, nil, ErrUnsupportedHashMethod
		}
		return 0, nil, nil, ErrMalformedHash
	}

	iterations, err := strconv.Atoi(iterationsRaw)
	if err != nil || iterations <= 0 {
		return 0, nil, nil, ErrMalformedHash
	}

	salt, err := hex.DecodeString(parts[1])
	if err != nil || len(salt) == 0 {
		return 0, nil, nil, ErrMalformedHash
	}

	expected, err := hex.DecodeString(parts[2])
	if err != nil || len(expected) == 0 {
		return 0, nil, nil, ErrMalformedHash
	}

	return iterations, salt, expected, nil
}
