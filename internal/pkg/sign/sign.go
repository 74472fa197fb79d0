// Package sign derives the opaque exposure token that gates the execution
// endpoint. The token is a keyed digest of the sale id, so it cannot be
// guessed before the exposure endpoint hands it out, and it is never stored:
// verification recomputes it.
package sign

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

type Signer struct {
	secret []byte
}

func New(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign is deterministic: the same sale id always yields the same token for a
// given secret. The sale window, checked at execution time, is the effective
// expiry.
func (s *Signer) Sign(saleID int64) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(strconv.FormatInt(saleID, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares in constant time to avoid leaking digest prefixes.
func (s *Signer) Verify(saleID int64, token string) bool {
	if token == "" {
		return false
	}
	return hmac.Equal([]byte(s.Sign(saleID)), []byte(token))
}
