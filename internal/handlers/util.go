package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
)

func getBearerToken(r *http.Request) string {
	val := r.Header.Get("Authorization")
	if val == "" {
		return ""
	}
	const prefix = "Bearer "
	if len(val) <= len(prefix) {
		return ""
	}
	if val[:len(prefix)] != prefix {
		return ""
	}
	return val[len(prefix):]
}

// A single admin session at a time; issuing a new token invalidates the
// previous one when Redis is wired.
func sessionKey() string {
	return "session:admin"
}

func breakStreamKey() string {
	return "game:breaks"
}

var errInvalidSession = errors.New("invalid session")

func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "fallback-session"
	}
	return hex.EncodeToString(b)
}
