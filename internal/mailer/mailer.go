// Package mailer renders and delivers the transactional emails of the
// identity service. Delivery is pluggable: the Mailer renders a template and
// hands the message to an injected send function.
package mailer

import (
	"context"
	"fmt"
	"strings"
	"text/template"
)

// Sender is the interface the request handlers depend on.
type Sender interface {
	SendVerificationEmail(ctx context.Context, to, name, code string) error
	SendWelcomeEmail(ctx context.Context, to, name string) error
	SendPasswordResetEmail(ctx context.Context, to, name, resetURL string) error
	SendResetSuccessEmail(ctx context.Context, to, name string) error
}

// SendFunc delivers a rendered message to a single recipient.
type SendFunc func(ctx context.Context, to, subject, body string) error

// Mailer implements Sender by rendering text templates and delivering them
// through a SendFunc.
type Mailer struct {
	send SendFunc
}

func NewMailer(send SendFunc) *Mailer {
	if send == nil {
		panic("send must be provided")
	}
	return &Mailer{send: send}
}

// templateParams is passed as data when executing a mail template.
type templateParams struct {
	Name     string
	Code     string
	ResetURL string
}

func (m *Mailer) SendVerificationEmail(ctx context.Context, to, name, code string) error {
	return m.sendTemplate(ctx, to, "Verify your email", verificationTemplate, templateParams{Name: name, Code: code})
}

func (m *Mailer) SendWelcomeEmail(ctx context.Context, to, name string) error {
	return m.sendTemplate(ctx, to, "Welcome aboard", welcomeTemplate, templateParams{Name: name})
}

func (m *Mailer) SendPasswordResetEmail(ctx context.Context, to, name, resetURL string) error {
	return m.sendTemplate(ctx, to, "Reset your password", passwordResetTemplate, templateParams{Name: name, ResetURL: resetURL})
}

func (m *Mailer) SendResetSuccessEmail(ctx context.Context, to, name string) error {
	return m.sendTemplate(ctx, to, "Your password was changed", resetSuccessTemplate, templateParams{Name: name})
}

func (m *Mailer) sendTemplate(ctx context.Context, to, subject string, tmpl *template.Template, params templateParams) error {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, params); err != nil {
		return fmt.Errorf("rendering %s email: %w", tmpl.Name(), err)
	}
	if err := m.send(ctx, to, subject, sb.String()); err != nil {
		return fmt.Errorf("sending %s email: %w", tmpl.Name(), err)
	}
	return nil
}
