package models

import "time"

// User is the persisted identity record. Token and expiry fields travel in
// pairs: both set while a verification or reset is pending, both cleared when
// the token is consumed.
type User struct {
	ID           string `bson:"_id,omitempty" json:"id"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Name         string `bson:"name" json:"name"`
	IsVerified   bool   `bson:"isVerified" json:"isVerified"`

	VerificationToken          string     `bson:"verificationToken,omitempty" json:"-"`
	VerificationTokenExpiresAt *time.Time `bson:"verificationTokenExpiresAt,omitempty" json:"-"`

	ResetPasswordToken     string     `bson:"resetPasswordToken,omitempty" json:"-"`
	ResetPasswordExpiresAt *time.Time `bson:"resetPasswordExpiresAt,omitempty" json:"-"`

	LastLogin *time.Time `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// SetVerificationToken stores a pending verification code on the user.
func (u *User) SetVerificationToken(code string, expiresAt time.Time) {
	u.VerificationToken = code
	u.VerificationTokenExpiresAt = &expiresAt
}

// ClearVerificationToken removes a consumed verification code.
func (u *User) ClearVerificationToken() {
	u.VerificationToken = ""
	u.VerificationTokenExpiresAt = nil
}

// SetResetToken stores a pending password-reset token on the user.
// A later call supersedes any earlier pending token.
func (u *User) SetResetToken(token string, expiresAt time.Time) {
	u.ResetPasswordToken = token
	u.ResetPasswordExpiresAt = &expiresAt
}

// ClearResetToken removes a consumed password-reset token.
func (u *User) ClearResetToken() {
	u.ResetPasswordToken = ""
	u.ResetPasswordExpiresAt = nil
}
