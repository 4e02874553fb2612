package notify

import (
	"context"
	"fmt"

	"github.com/matratecnologia/site-backend/internal/leads"
	"github.com/matratecnologia/site-backend/pkg/logging"
)

// LeadNotifier emails the configured operator whenever the public form
// stores a new lead. Delivery is best-effort: failures are logged and
// never reach the submitter.
type LeadNotifier struct {
	email    EmailSender
	operator string
	logger   *logging.Logger
}

// NewLeadNotifier creates a notifier, or nil when either the sender or
// the operator address is missing.
func NewLeadNotifier(email EmailSender, operator string, logger *logging.Logger) *LeadNotifier {
	if email == nil || operator == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &LeadNotifier{email: email, operator: operator, logger: logger}
}

// LeadReceived implements leads.Notifier.
func (n *LeadNotifier) LeadReceived(ctx context.Context, lead *leads.Lead) {
	body := fmt.Sprintf("Nome: %s\nTelefone: %s\nOrigem: %s\n\n%s", lead.Name, lead.Phone, lead.Origin, lead.Message)
	if lead.Email != nil {
		body = fmt.Sprintf("Nome: %s\nEmail: %s\nTelefone: %s\nOrigem: %s\n\n%s",
			lead.Name, *lead.Email, lead.Phone, lead.Origin, lead.Message)
	}

	msg := EmailMessage{
		To:      n.operator,
		Subject: "Novo lead: " + lead.Name,
		Body:    body,
	}
	if err := n.email.Send(ctx, msg); err != nil {
		n.logger.Error("lead notification failed", "error", err, "lead_id", lead.ID)
	}
}
