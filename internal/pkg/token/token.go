package token

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Mobile clients authenticate with an opaque bearer token:
//
//	base64(employeeID:issuedAtUnix:hex(sha256(employeeID:issuedAtUnix:passwordHash)))
//
// The signature binds the token to the stored password hash, so a
// password change invalidates every outstanding token.

var (
	ErrMalformed        = errors.New("malformed token")
	ErrExpired          = errors.New("token expired")
	ErrInvalidSignature = errors.New("invalid token signature")
)

// DefaultValidity is the token lifetime measured from issuance.
const DefaultValidity = 24 * time.Hour

func signature(employeeID string, issuedAt int64, passwordHash string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%d:%s", employeeID, issuedAt, passwordHash)))
	return hex.EncodeToString(sum[:])
}

// Generate issues a token for the employee, bound to their stored
// password hash.
func Generate(employeeID string, issuedAt time.Time, passwordHash string) string {
	ts := issuedAt.Unix()
	raw := fmt.Sprintf("%s:%d:%s", employeeID, ts, signature(employeeID, ts, passwordHash))
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// Parse decodes a token without verifying it.
func Parse(tok string) (employeeID string, issuedAt time.Time, sig string, err error) {
	decoded, err := base64.StdEncoding.DecodeString(tok)
	if err != nil {
		return "", time.Time{}, "", ErrMalformed
	}

	parts := strings.Split(string(decoded), ":")
	if len(parts) != 3 {
		return "", time.Time{}, "", ErrMalformed
	}

	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", time.Time{}, "", ErrMalformed
	}

	return parts[0], time.Unix(ts, 0), parts[2], nil
}

// Verify checks the token against the stored password hash and the
// validity window, returning the employee id on success. The signature
// comparison is constant time.
func Verify(tok string, passwordHash string, validity time.Duration, now time.Time) (string, error) {
	employeeID, issuedAt, sig, err := Parse(tok)
	if err != nil {
		return "", err
	}

	if now.Sub(issuedAt) > validity || issuedAt.After(now.Add(time.Minute)) {
		return "", ErrExpired
	}

	expected := signature(employeeID, issuedAt.Unix(), passwordHash)
	if subtle.ConstantTimeCompare([]byte(sig), []byte(expected)) != 1 {
		return "", ErrInvalidSignature
	}

	return employeeID, nil
}
