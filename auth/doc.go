// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides privacy-preserving client fingerprints.

# Voter Hashing

Votes carry an HMAC-SHA256 fingerprint of the client IP and user agent:

	hash, err := auth.HashVoter(ip, userAgent, salt)

Returns the first 8 bytes (16 hex chars) of the MAC. The raw IP is never
stored. Fingerprints are informational only: nothing rejects a second vote
from the same client.
*/
package auth
