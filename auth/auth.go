// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials is the single user allowed to use the application
type Credentials struct {
	Username string
	Password string
}

// Enabled reports whether credentials are configured at all
func (c Credentials) Enabled() bool {
	return c.Username != "" && c.Password != ""
}

// Validate checks a username and password against the configured pair.
// Both values are always compared so timing does not reveal which one was wrong.
func (c Credentials) Validate(username, password string) error {
	userOK := secureCompare(username, c.Username)
	passOK := secureCompare(password, c.Password)
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}

// secureCompare compares two strings in constant time.
// Hashing first keeps the comparison independent of the input lengths.
func secureCompare(a, b string) bool {
	ha := sha256.Sum256([]byte(a))
	hb := sha256.Sum256([]byte(b))
	return hmac.Equal(ha[:], hb[:])
}
