// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

const (
	// FlashCookie holds pending flash messages between a redirect and the next page
	FlashCookie = "todolists_flash"

	// maxFlashes caps the pending queue so the cookie stays well under 4KB
	maxFlashes = 10
)

var ErrInvalidSignature = errors.New("invalid signature")

// Sign encodes payload as URL-safe base64 and appends an HMAC-SHA256
// signature keyed by secret: "<payload>.<signature>"
func Sign(secret, payload []byte) string {
	p := base64.RawURLEncoding.EncodeToString(payload)
	return p + "." + signature(secret, p)
}

// Verify checks a value produced by Sign and returns the decoded payload
func Verify(secret []byte, value string) ([]byte, error) {
	p, sig, ok := strings.Cut(value, ".")
	if !ok {
		return nil, ErrInvalidSignature
	}
	if !hmac.Equal([]byte(sig), []byte(signature(secret, p))) {
		return nil, ErrInvalidSignature
	}
	raw, err := base64.RawURLEncoding.DecodeString(p)
	if err != nil {
		return nil, fmt.Errorf("invalid payload: %w", err)
	}
	return raw, nil
}

func signature(secret []byte, p string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(p))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Flasher stores one-shot messages in a signed cookie
type Flasher struct {
	secret []byte
}

func NewFlasher(secret string) *Flasher {
	return &Flasher{secret: []byte(secret)}
}

// AddFlash queues msg for the next rendered page
func (f *Flasher) AddFlash(w http.ResponseWriter, r *http.Request, msg string) {
	pending := f.read(r)
	pending = append(pending, msg)
	if len(pending) > maxFlashes {
		pending = pending[len(pending)-maxFlashes:]
	}

	payload, err := json.Marshal(pending)
	if err != nil {
		slog.Error("failed to encode flashes", "error", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    Sign(f.secret, payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flashes returns and clears every pending message.
// Tampered or malformed cookies count as no messages.
func (f *Flasher) Flashes(w http.ResponseWriter, r *http.Request) []string {
	if _, err := r.Cookie(FlashCookie); err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return f.read(r)
}

func (f *Flasher) read(r *http.Request) []string {
	c, err := r.Cookie(FlashCookie)
	if err != nil || c.Value == "" {
		return nil
	}

	raw, err := Verify(f.secret, c.Value)
	if err != nil {
		slog.Warn("ignoring flash cookie", "error", err)
		return nil
	}

	var msgs []string
	if err := json.Unmarshal(raw, &msgs); err != nil {
		slog.Warn("ignoring flash cookie", "error", err)
		return nil
	}
	return msgs
}
