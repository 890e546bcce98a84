// Package mail sends transactional email through the Resend HTTP API, with
// an SMTP fallback for self-hosted deployments. When neither transport is
// configured, sends are logged and dropped so local development works without
// credentials.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/smtp"
	"time"

	"syncnotes.app/api-server/core/config"
)

// Mailer delivers transactional email.
type Mailer interface {
	SendOTP(ctx context.Context, to, name, code string) error
	SendInvitation(ctx context.Context, to, orgName, inviterName, role string) error
}

type mailer struct {
	cfg    config.MailConfig
	appURL string
	client *http.Client
}

func New(cfg config.MailConfig, appURL string) Mailer {
	return &mailer{
		cfg:    cfg,
		appURL: appURL,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *mailer) SendOTP(ctx context.Context, to, name, code string) error {
	subject := "Your SyncNotes verification code"
	html := fmt.Sprintf(
		`<p>Hi %s,</p>`+
			`<p>Your verification code is:</p>`+
			`<p style="font-size:24px;font-weight:bold;letter-spacing:4px">%s</p>`+
			`<p>This code expires in 10 minutes. If you did not request it, you can ignore this email.</p>`,
		name, code,
	)
	return m.send(ctx, to, subject, html)
}

func (m *mailer) SendInvitation(ctx context.Context, to, orgName, inviterName, role string) error {
	subject := fmt.Sprintf("You've been invited to %s on SyncNotes", orgName)
	html := fmt.Sprintf(
		`<p>%s invited you to join <strong>%s</strong> as %s.</p>`+
			`<p><a href="%s/invitations">View your invitations</a></p>`+
			`<p>This invitation expires in 7 days.</p>`,
		inviterName, orgName, role, m.appURL,
	)
	return m.send(ctx, to, subject, html)
}

func (m *mailer) send(ctx context.Context, to, subject, html string) error {
	switch {
	case m.cfg.ResendEnabled():
		return m.sendViaResend(ctx, to, subject, html)
	case m.cfg.SMTPEnabled():
		return m.sendViaSMTP(to, subject, html)
	default:
		slog.InfoContext(ctx, "mail transport not configured, dropping email",
			"to", to,
			"subject", subject,
		)
		return nil
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *mailer) sendViaResend(ctx context.Context, to, subject, html string) error {
	body := resendRequest{
		From:    m.cfg.FromEmail,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.cfg.ResendAPIKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("resend API error: status %d", resp.StatusCode)
	}

	return nil
}

func (m *mailer) sendViaSMTP(to, subject, html string) error {
	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort

	msg := "From: " + m.cfg.FromEmail + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		html

	var auth smtp.Auth
	if m.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPassword, m.cfg.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.SMTPUser, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}
