// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrInvalidPassword = errors.New("invalid admin password")

// Validator checks admin credentials against the configured secret.
// The secret is injected at construction; nothing in this package reads
// process-wide state.
type Validator struct {
	password string
}

func NewValidator(password string) *Validator {
	return &Validator{password: password}
}

// Check compares the supplied password against the configured one in
// constant time. A missing password fails like a wrong one.
func (v *Validator) Check(password string) error {
	if !hmac.Equal([]byte(password), []byte(v.password)) {
		return ErrInvalidPassword
	}
	return nil
}

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateSessionID creates a voter session identifier. Sessions are
// anonymous; the ID only groups a participant's votes together.
func GenerateSessionID() string {
	return uuid.NewString()
}
