package blofin

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Signer produces BloFin API request signatures. It stores the secret as
// []byte so it can be wiped from memory on shutdown.
//
// BloFin prehash format:
//
//	prehash   = path + METHOD + timestamp + nonce + body
//	signature = Base64( hex(HMAC-SHA256(secret, prehash)) )
//
// The base64 step encodes the ASCII hex digest, not the raw MAC bytes.
// BloFin verifies byte-for-byte; any deviation is rejected as unauthorized.
type Signer struct {
	secret []byte
	now    func() time.Time
	nonce  func() string
}

func NewSigner(secret string) *Signer {
	return &Signer{
		secret: []byte(secret),
		now:    time.Now,
		nonce:  uuid.NewString,
	}
}

// Wipe clears the secret from memory.
func (s *Signer) Wipe() {
	if s == nil {
		return
	}
	for i := range s.secret {
		s.secret[i] = 0
	}
}

// Sign returns the signature, timestamp and nonce for one request. The
// timestamp is epoch milliseconds as a decimal string and the nonce is a
// fresh UUID, generated once per call and never reused. body must be the
// exact bytes sent on the wire, or empty for bodiless requests.
func (s *Signer) Sign(method, path string, body []byte) (signature, timestamp, nonce string) {
	timestamp = strconv.FormatInt(s.now().UnixMilli(), 10)
	nonce = s.nonce()

	prehash := path + strings.ToUpper(method) + timestamp + nonce
	if len(body) > 0 {
		prehash += string(body)
	}

	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(prehash))
	hexDigest := hex.EncodeToString(mac.Sum(nil))
	signature = base64.StdEncoding.EncodeToString([]byte(hexDigest))
	return signature, timestamp, nonce
}

func (s *Signer) hasSecret() bool {
	return len(s.secret) > 0
}
