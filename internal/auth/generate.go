package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"
)

const (
	// VerificationTokenTTL is how long an email verification code stays valid.
	VerificationTokenTTL = 24 * time.Hour

	// ResetTokenTTL is how long a password-reset token stays valid.
	ResetTokenTTL = time.Hour

	// resetTokenBytes gives 160 bits of randomness, hex-encoded to 40 chars.
	resetTokenBytes = 20
)

// NewVerificationCode generates a random 6-digit numeric verification code.
func NewVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generating verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// NewResetToken generates an opaque random password-reset token.
func NewResetToken() (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating reset token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
