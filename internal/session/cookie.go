package session

import (
	"strings"

	"github.com/devanshuguptaa/Stylo/internal/crypto"
)

// CookieName is the session cookie set at the federated callback.
const CookieName = "sid"

// Codec signs session ids before they go into the cookie so a forged id is
// rejected without a store round-trip. The wire form is "<id>.<tag>".
type Codec struct {
	secret string
}

func NewCodec(secret string) Codec {
	return Codec{secret: secret}
}

func (c Codec) Encode(id string) string {
	return id + "." + crypto.SignValue(c.secret, id)
}

// Decode returns the session id, or false when the value is malformed or the
// signature does not verify.
func (c Codec) Decode(value string) (string, bool) {
	idx := strings.LastIndexByte(value, '.')
	if idx <= 0 || idx == len(value)-1 {
		return "", false
	}
	id, tag := value[:idx], value[idx+1:]
	if !crypto.VerifyValue(c.secret, id, tag) {
		return "", false
	}
	return id, true
}
