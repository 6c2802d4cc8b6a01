package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"thames/config"
	"thames/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResendMailer_SuppressedWhenDisabled(t *testing.T) {
	mailer := NewResendMailer(&config.Config{
		Email: &config.EmailConfig{Disabled: true},
	}, discardLogger())

	result := mailer.SendTierRequestReceived(context.Background(), service.TierRequestEmail{
		VendorName:  "Riviera Charters",
		VendorEmail: "owner@riviera.example",
	})

	// Suppression reports success so callers behave identically under test.
	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
}

func TestResendMailer_MissingAPIKeyReportsFailure(t *testing.T) {
	// Not disabled, but no key either: this is a misconfiguration, and the
	// result must say so rather than pretend the mail went out.
	mailer := NewResendMailer(&config.Config{
		Email: &config.EmailConfig{Disabled: false, APIKey: ""},
	}, discardLogger())

	result := mailer.SendAccountApproved(context.Background(), service.AccountEmail{
		Name:  "Alex",
		Email: "owner@riviera.example",
	})
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "missing API key")
}

func TestResendMailer_NilEmailConfig(t *testing.T) {
	mailer := NewResendMailer(&config.Config{}, discardLogger())

	result := mailer.SendAccountRejected(context.Background(), service.AccountEmail{
		Email: "owner@riviera.example",
	})
	assert.True(t, result.Success)
}

func TestResendMailer_RenderSubstitutesPlaceholders(t *testing.T) {
	m := NewResendMailer(&config.Config{
		Email: &config.EmailConfig{Disabled: true, BaseURL: "https://app.example"},
	}, discardLogger()).(*ResendMailer)

	html, err := m.render("tier_request_approved.html", m.tierRequestVars(service.TierRequestEmail{
		VendorName:    "Riviera Charters",
		RequestType:   "upgrade",
		CurrentTier:   "free",
		RequestedTier: "tier2",
	}))
	require.NoError(t, err)
	assert.Contains(t, html, "Riviera Charters")
	assert.Contains(t, html, "tier2")
	assert.NotContains(t, html, "{{VENDOR_NAME}}")
	assert.NotContains(t, html, "{{REQUESTED_TIER}}")
}

func TestResendMailer_ApprovalEmailListsBenefits(t *testing.T) {
	m := NewResendMailer(&config.Config{
		Email: &config.EmailConfig{Disabled: true},
	}, discardLogger()).(*ResendMailer)

	html, err := m.render("tier_request_approved.html", m.tierRequestVars(service.TierRequestEmail{
		VendorName:    "Riviera Charters",
		RequestedTier: "tier2",
		Benefits:      []string{"Up to 10 locations", "Excel import"},
	}))
	require.NoError(t, err)
	assert.Contains(t, html, "<li>Up to 10 locations</li>")
	assert.Contains(t, html, "<li>Excel import</li>")
	assert.NotContains(t, html, "{{BENEFITS}}")
}

func TestBenefitListHTML_Empty(t *testing.T) {
	assert.Empty(t, benefitListHTML(nil))
}

func TestResendMailer_AllTemplatesRender(t *testing.T) {
	m := NewResendMailer(&config.Config{
		Email: &config.EmailConfig{Disabled: true},
	}, discardLogger()).(*ResendMailer)

	templates := []string{
		"tier_request_received.html",
		"tier_request_admin_alert.html",
		"tier_request_approved.html",
		"tier_request_rejected.html",
	}
	for _, name := range templates {
		html, err := m.render(name, m.tierRequestVars(service.TierRequestEmail{}))
		require.NoError(t, err, name)
		assert.NotEmpty(t, html, name)
	}

	for _, name := range []string{"account_approved.html", "account_rejected.html"} {
		html, err := m.render(name, m.accountVars(service.AccountEmail{}))
		require.NoError(t, err, name)
		assert.NotEmpty(t, html, name)
	}
}
