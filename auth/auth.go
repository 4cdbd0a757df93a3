// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var ErrMissingSalt = errors.New("voter hash salt is empty")

// HashVoter creates a one-way fingerprint of a client for vote records.
// Includes salt to prevent rainbow table attacks.
func HashVoter(ip, userAgent, salt string) (string, error) {
	if salt == "" {
		return "", ErrMissingSalt
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	h.Write([]byte{0})
	h.Write([]byte(userAgent))
	sum := h.Sum(nil)
	// First 16 hex chars (64 bits) are enough to group repeat clients
	return hex.EncodeToString(sum[:8]), nil
}
