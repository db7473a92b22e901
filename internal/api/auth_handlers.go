package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/novalis-io/identity/internal/auth"
	"github.com/novalis-io/identity/internal/models"
	"github.com/novalis-io/identity/internal/store"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type verifyEmailRequest struct {
	Code string `json:"code"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignupHandler registers a new account and starts email verification.
func (api *Api) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" || req.Name == "" {
		fail(w, http.StatusBadRequest, "All fields are required")
		return
	}

	ctx := r.Context()
	if _, err := api.Store.GetByEmail(ctx, email); err == nil {
		fail(w, http.StatusBadRequest, "User already exists")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("[AUTH] signup lookup for %s failed: %v", email, err)
		fail(w, http.StatusBadRequest, "Unable to create account")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("[AUTH] password hashing failed: %v", err)
		fail(w, http.StatusBadRequest, "Unable to create account")
		return
	}

	code, err := auth.NewVerificationCode()
	if err != nil {
		log.Printf("[AUTH] verification code generation failed: %v", err)
		fail(w, http.StatusBadRequest, "Unable to create account")
		return
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         req.Name,
	}
	user.SetVerificationToken(code, time.Now().Add(auth.VerificationTokenTTL))

	if err := api.Store.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			fail(w, http.StatusBadRequest, "User already exists")
			return
		}
		log.Printf("[AUTH] creating user %s failed: %v", email, err)
		fail(w, http.StatusBadRequest, "Unable to create account")
		return
	}

	token, err := api.Tokens.Generate(user.ID, auth.SessionDuration)
	if err != nil {
		log.Printf("[AUTH] session token generation failed: %v", err)
		fail(w, http.StatusBadRequest, "Unable to create account")
		return
	}
	api.setSessionCookie(w, token)

	// The account is already committed at this point. A failed send fails the
	// request but does not roll the account back; the user can ask for the
	// code again by signing up once the mail provider recovers.
	if err := api.Mailer.SendVerificationEmail(ctx, user.Email, user.Name, code); err != nil {
		log.Printf("[AUTH] verification email to %s failed: %v", user.Email, err)
		fail(w, http.StatusBadRequest, "Unable to send verification email")
		return
	}

	succeed(w, http.StatusCreated, "User created successfully", user)
}

// VerifyEmailHandler consumes a verification code and marks the account
// verified. Wrong and expired codes are deliberately indistinguishable.
func (api *Api) VerifyEmailHandler(w http.ResponseWriter, r *http.Request) {
	var req verifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		fail(w, http.StatusBadRequest, "Verification code is required")
		return
	}

	ctx := r.Context()
	user, err := api.Store.GetByVerificationToken(ctx, req.Code, time.Now())
	if errors.Is(err, store.ErrNotFound) {
		fail(w, http.StatusBadRequest, "Invalid or expired verification code")
		return
	}
	if err != nil {
		log.Printf("[AUTH] verification lookup failed: %v", err)
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}

	user.IsVerified = true
	user.ClearVerificationToken()
	if err := api.Store.Update(ctx, user); err != nil {
		log.Printf("[AUTH] saving verified user %s failed: %v", user.Email, err)
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}

	if err := api.Mailer.SendWelcomeEmail(ctx, user.Email, user.Name); err != nil {
		log.Printf("[AUTH] welcome email to %s failed: %v", user.Email, err)
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}

	succeed(w, http.StatusOK, "Email verified successfully", user)
}

// LoginHandler validates credentials and issues a session. An unknown email
// and a wrong password produce identical responses to prevent account
// enumeration.
func (api *Api) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := r.Context()
	user, err := api.Store.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		fail(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		fail(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := api.Tokens.Generate(user.ID, auth.SessionDuration)
	if err != nil {
		log.Printf("[AUTH] session token generation failed: %v", err)
		fail(w, http.StatusBadRequest, "Unable to log in")
		return
	}
	api.setSessionCookie(w, token)

	now := time.Now()
	user.LastLogin = &now
	if err := api.Store.Update(ctx, user); err != nil {
		log.Printf("[AUTH] saving last login for %s failed: %v", user.Email, err)
		fail(w, http.StatusBadRequest, "Unable to log in")
		return
	}

	succeed(w, http.StatusOK, "Logged in successfully", user)
}

// LogoutHandler clears the session cookie. Sessions are stateless, so a
// previously issued token stays cryptographically valid until its own expiry.
func (api *Api) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	api.clearSessionCookie(w)
	succeed(w, http.StatusOK, "Logged out successfully", nil)
}

// ForgotPasswordHandler stores a reset token on the account and mails a
// reset link. A new request supersedes any earlier pending token.
func (api *Api) ForgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || normalizeEmail(req.Email) == "" {
		fail(w, http.StatusBadRequest, "Email is required")
		return
	}

	ctx := r.Context()
	user, err := api.Store.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		fail(w, http.StatusBadRequest, "User not found")
		return
	}

	token, err := auth.NewResetToken()
	if err != nil {
		log.Printf("[AUTH] reset token generation failed: %v", err)
		fail(w, http.StatusBadRequest, "Unable to send reset email")
		return
	}
	user.SetResetToken(token, time.Now().Add(auth.ResetTokenTTL))

	if err := api.Store.Update(ctx, user); err != nil {
		log.Printf("[AUTH] saving reset token for %s failed: %v", user.Email, err)
		fail(w, http.StatusBadRequest, "Unable to send reset email")
		return
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", strings.TrimSuffix(api.Config.ClientURL, "/"), token)
	if err := api.Mailer.SendPasswordResetEmail(ctx, user.Email, user.Name, resetURL); err != nil {
		log.Printf("[AUTH] reset email to %s failed: %v", user.Email, err)
		fail(w, http.StatusBadRequest, "Unable to send reset email")
		return
	}

	succeed(w, http.StatusOK, "Password reset link sent to your email", nil)
}

// ResetPasswordHandler consumes a reset token and stores a new password hash.
func (api *Api) ResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
		fail(w, http.StatusBadRequest, "Password is required")
		return
	}

	ctx := r.Context()
	user, err := api.Store.GetByResetToken(ctx, token, time.Now())
	if err != nil {
		fail(w, http.StatusBadRequest, "Invalid or expired reset token")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("[AUTH] password hashing failed: %v", err)
		fail(w, http.StatusBadRequest, "Unable to reset password")
		return
	}

	user.PasswordHash = hash
	user.ClearResetToken()
	if err := api.Store.Update(ctx, user); err != nil {
		log.Printf("[AUTH] saving new password for %s failed: %v", user.Email, err)
		fail(w, http.StatusBadRequest, "Unable to reset password")
		return
	}

	if err := api.Mailer.SendResetSuccessEmail(ctx, user.Email, user.Name); err != nil {
		log.Printf("[AUTH] reset confirmation email to %s failed: %v", user.Email, err)
		fail(w, http.StatusBadRequest, "Unable to reset password")
		return
	}

	succeed(w, http.StatusOK, "Password reset successful", nil)
}

// CheckAuthHandler returns the account of the already-authenticated caller.
func (api *Api) CheckAuthHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		fail(w, http.StatusUnauthorized, "Unauthorized - no token provided")
		return
	}

	user, err := api.Store.GetByID(r.Context(), userID)
	if err != nil {
		fail(w, http.StatusBadRequest, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, response{Success: true, User: user})
}
