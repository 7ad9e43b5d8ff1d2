package token

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPasswordHash = "$2a$10$abcdefghijklmnopqrstuv"

func TestGenerateVerify(t *testing.T) {
	issued := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tok := Generate("emp-123", issued, testPasswordHash)

	got, err := Verify(tok, testPasswordHash, DefaultValidity, issued.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "emp-123", got)
}

func TestVerifyExpired(t *testing.T) {
	issued := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tok := Generate("emp-123", issued, testPasswordHash)

	// One second past the 24h window
	_, err := Verify(tok, testPasswordHash, DefaultValidity, issued.Add(DefaultValidity+time.Second))
	assert.ErrorIs(t, err, ErrExpired)

	// Exactly at the window edge is still valid
	_, err = Verify(tok, testPasswordHash, DefaultValidity, issued.Add(DefaultValidity))
	assert.NoError(t, err)
}

func TestVerifyWrongPasswordHash(t *testing.T) {
	issued := time.Now()
	tok := Generate("emp-123", issued, testPasswordHash)

	// A password change invalidates outstanding tokens
	_, err := Verify(tok, "$2a$10$differenthashvalue", DefaultValidity, issued.Add(time.Minute))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyTampered(t *testing.T) {
	issued := time.Now()
	tok := Generate("emp-123", issued, testPasswordHash)

	// Swap the employee id inside the envelope
	decoded, err := base64.StdEncoding.DecodeString(tok)
	require.NoError(t, err)
	tampered := base64.StdEncoding.EncodeToString(
		append([]byte("emp-999"), decoded[len("emp-123"):]...))

	_, err = Verify(tampered, testPasswordHash, DefaultValidity, issued.Add(time.Minute))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyMalformed(t *testing.T) {
	cases := []string{
		"",
		"not-base64!!!",
		base64.StdEncoding.EncodeToString([]byte("no-separators")),
		base64.StdEncoding.EncodeToString([]byte("id:notanumber:sig")),
	}
	for _, tok := range cases {
		_, err := Verify(tok, testPasswordHash, DefaultValidity, time.Now())
		assert.ErrorIs(t, err, ErrMalformed, "token %q", tok)
	}
}

func TestParseRoundTrip(t *testing.T) {
	issued := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tok := Generate("emp-42", issued, testPasswordHash)

	id, at, sig, err := Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "emp-42", id)
	assert.True(t, at.Equal(issued))
	assert.Len(t, sig, 64) // hex-encoded sha256
}
