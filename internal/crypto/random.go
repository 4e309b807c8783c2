package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
)

// NewSessionID returns an opaque 256-bit identifier for server-side sessions.
func NewSessionID() (string, error) {
	return randomToken()
}

// NewPlaceholderSecret returns a random secret used to fill the password slot
// of accounts created through the federated flow. It is hashed before storage
// and never revealed, so those accounts cannot log in with a password.
func NewPlaceholderSecret() (string, error) {
	return randomToken()
}

// NewStateToken returns the CSRF state value for the federated redirect.
func NewStateToken() (string, error) {
	return randomToken()
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// SignValue computes an HMAC-SHA256 tag over value, base64url-encoded.
func SignValue(secret, value string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// VerifyValue checks a tag produced by SignValue in constant time.
func VerifyValue(secret, value, tag string) bool {
	expected := SignValue(secret, value)
	return hmac.Equal([]byte(expected), []byte(tag))
}
