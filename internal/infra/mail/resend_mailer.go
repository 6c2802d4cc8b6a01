package mail

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"thames/config"
	"thames/internal/domain/service"

	"github.com/resend/resend-go/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

// ResendMailer sends transactional email through the Resend API.
// When the config disables email (test runs) every send is suppressed and
// reported as successful so callers behave identically. A missing API key
// without the disable flag is a misconfiguration and reports failure.
type ResendMailer struct {
	client *resend.Client
	cfg    *config.EmailConfig
	logger *slog.Logger
}

// NewResendMailer creates a Mailer backed by Resend.
func NewResendMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	emailCfg := cfg.Email
	if emailCfg == nil {
		emailCfg = &config.EmailConfig{Disabled: true}
	}

	var client *resend.Client
	if !emailCfg.Disabled && emailCfg.APIKey != "" {
		client = resend.NewClient(emailCfg.APIKey)
	}

	return &ResendMailer{
		client: client,
		cfg:    emailCfg,
		logger: logger,
	}
}

func (m *ResendMailer) SendTierRequestReceived(ctx context.Context, email service.TierRequestEmail) service.EmailResult {
	subject := fmt.Sprintf("We received your %s request", email.RequestType)

	return m.send(ctx, email.VendorEmail, subject, "tier_request_received.html", m.tierRequestVars(email))
}

func (m *ResendMailer) SendTierRequestAdminAlert(ctx context.Context, email service.TierRequestEmail) service.EmailResult {
	subject := fmt.Sprintf("New tier %s request from %s", email.RequestType, email.VendorName)

	return m.send(ctx, m.cfg.AdminAddress, subject, "tier_request_admin_alert.html", m.tierRequestVars(email))
}

func (m *ResendMailer) SendTierRequestApproved(ctx context.Context, email service.TierRequestEmail) service.EmailResult {
	subject := fmt.Sprintf("Your %s request was approved", email.RequestType)

	return m.send(ctx, email.VendorEmail, subject, "tier_request_approved.html", m.tierRequestVars(email))
}

func (m *ResendMailer) SendTierRequestRejected(ctx context.Context, email service.TierRequestEmail) service.EmailResult {
	subject := fmt.Sprintf("Your %s request was not approved", email.RequestType)

	return m.send(ctx, email.VendorEmail, subject, "tier_request_rejected.html", m.tierRequestVars(email))
}

func (m *ResendMailer) SendAccountApproved(ctx context.Context, email service.AccountEmail) service.EmailResult {
	vars := m.accountVars(email)

	return m.send(ctx, email.Email, "Your account has been approved", "account_approved.html", vars)
}

func (m *ResendMailer) SendAccountRejected(ctx context.Context, email service.AccountEmail) service.EmailResult {
	vars := m.accountVars(email)

	return m.send(ctx, email.Email, "Your account application was not approved", "account_rejected.html", vars)
}

func (m *ResendMailer) send(ctx context.Context, to, subject, template string, vars map[string]string) service.EmailResult {
	if m.cfg.Disabled {
		m.logger.Debug("Email suppressed",
			slog.String("to", to),
			slog.String("subject", subject))

		return service.EmailResult{Success: true}
	}

	// Suppression is deliberate and succeeds; a missing key is a
	// misconfiguration and must surface as a failed dispatch.
	if m.client == nil {
		return service.EmailResult{Error: "email not configured: missing API key"}
	}

	if to == "" {
		return service.EmailResult{Error: "no recipient address"}
	}

	html, err := m.render(template, vars)
	if err != nil {
		return service.EmailResult{Error: err.Error()}
	}

	_, err = m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.cfg.FromAddress,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return service.EmailResult{Error: err.Error()}
	}

	return service.EmailResult{Success: true}
}

func (m *ResendMailer) render(name string, vars map[string]string) (string, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", name, err)
	}

	pairs := make([]string, 0, len(vars)*2)
	for key, value := range vars {
		pairs = append(pairs, "{{"+key+"}}", value)
	}

	return strings.NewReplacer(pairs...).Replace(string(raw)), nil
}

func (m *ResendMailer) tierRequestVars(email service.TierRequestEmail) map[string]string {
	notes := email.VendorNotes
	if notes == "" {
		notes = "No notes provided."
	}

	return map[string]string{
		"VENDOR_NAME":      email.VendorName,
		"VENDOR_EMAIL":     email.VendorEmail,
		"REQUEST_TYPE":     string(email.RequestType),
		"CURRENT_TIER":     string(email.CurrentTier),
		"REQUESTED_TIER":   string(email.RequestedTier),
		"VENDOR_NOTES":     notes,
		"REJECTION_REASON": email.RejectionReason,
		"BENEFITS":         benefitListHTML(email.Benefits),
		"BASE_URL":         m.cfg.BaseURL,
	}
}

func benefitListHTML(benefits []string) string {
	if len(benefits) == 0 {
		return ""
	}

	var b strings.Builder
	for _, benefit := range benefits {
		b.WriteString("<li>")
		b.WriteString(benefit)
		b.WriteString("</li>")
	}

	return b.String()
}

func (m *ResendMailer) accountVars(email service.AccountEmail) map[string]string {
	return map[string]string{
		"NAME":             email.Name,
		"REJECTION_REASON": email.RejectionReason,
		"BASE_URL":         m.cfg.BaseURL,
	}
}
