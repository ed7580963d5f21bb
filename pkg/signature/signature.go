// Package signature verifies webhook payload authenticity.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

var (
	// ErrMissingSignature means the request carried no signature header.
	ErrMissingSignature = errors.New("missing webhook signature")
	// ErrInvalidSignature means the computed HMAC did not match.
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// Verify checks a hex-encoded HMAC-SHA256 signature over the exact raw
// request bytes. A mismatch is a normal reject outcome, reported as
// ErrInvalidSignature; an absent signature is ErrMissingSignature so callers
// can log the two cases apart. Comparison is constant time.
func Verify(rawBody []byte, received, secret string) error {
	received = strings.TrimSpace(received)
	if received == "" {
		return ErrMissingSignature
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(received))) {
		return ErrInvalidSignature
	}
	return nil
}
