package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// CookieName is the admin session cookie.
const CookieName = "admin_session"

// Manager issues and verifies signed admin session tokens. A token is
// "<unix-expiry>.<hex hmac-sha256(secret, expiry)>", so there is no
// server-side session state to keep.
type Manager struct {
	secret  []byte
	ttl     time.Duration
	nowFunc func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret:  []byte(secret),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue creates a token valid until now+ttl.
func (m *Manager) Issue() string {
	exp := strconv.FormatInt(m.nowFunc().Add(m.ttl).Unix(), 10)
	return exp + "." + m.sign(exp)
}

// Verify reports whether token is well-formed, signed by us, and unexpired.
func (m *Manager) Verify(token string) bool {
	exp, sig, ok := strings.Cut(token, ".")
	if !ok {
		return false
	}
	expiry, err := strconv.ParseInt(exp, 10, 64)
	if err != nil {
		return false
	}
	if m.nowFunc().Unix() >= expiry {
		return false
	}
	return hmac.Equal([]byte(m.sign(exp)), []byte(sig))
}

func (m *Manager) sign(payload string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
