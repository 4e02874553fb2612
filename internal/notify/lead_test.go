package notify

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matratecnologia/site-backend/internal/leads"
	"github.com/matratecnologia/site-backend/pkg/logging"
)

type fakeSender struct {
	sent []EmailMessage
	err  error
}

func (f *fakeSender) Send(ctx context.Context, msg EmailMessage) error {
	f.sent = append(f.sent, msg)
	return f.err
}

func sampleLead() *leads.Lead {
	email := "ana@example.com"
	return &leads.Lead{
		ID:        "lead-1",
		Name:      "Ana",
		Email:     &email,
		Phone:     "43999990000",
		Message:   "Quero um orcamento",
		Origin:    "site",
		Status:    leads.StatusNovo,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestLeadReceivedSendsEmail(t *testing.T) {
	sender := &fakeSender{}
	n := NewLeadNotifier(sender, "vendas@matra.com.br", logging.Default())

	n.LeadReceived(context.Background(), sampleLead())

	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sender.sent))
	}
	msg := sender.sent[0]
	if msg.To != "vendas@matra.com.br" {
		t.Errorf("unexpected recipient: %s", msg.To)
	}
	if !strings.Contains(msg.Subject, "Ana") {
		t.Errorf("expected lead name in subject, got %q", msg.Subject)
	}
	if !strings.Contains(msg.Body, "ana@example.com") || !strings.Contains(msg.Body, "Quero um orcamento") {
		t.Errorf("expected contact details in body, got %q", msg.Body)
	}
}

func TestLeadReceivedSwallowsSendErrors(t *testing.T) {
	sender := &fakeSender{err: errors.New("sendgrid down")}
	n := NewLeadNotifier(sender, "vendas@matra.com.br", logging.Default())

	// Must not panic and must not propagate anything to the caller.
	n.LeadReceived(context.Background(), sampleLead())
}

func TestNewLeadNotifierUnconfigured(t *testing.T) {
	if NewLeadNotifier(nil, "vendas@matra.com.br", nil) != nil {
		t.Fatal("expected nil notifier without a sender")
	}
	if NewLeadNotifier(&fakeSender{}, "", nil) != nil {
		t.Fatal("expected nil notifier without an operator address")
	}
}
