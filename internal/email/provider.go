// Package email abstracts transactional email delivery. Exactly one transport
// is selected when the Provider is constructed: SendGrid when an API key is
// configured, an internal HTTP relay when a relay URL is configured, and a
// logging simulation otherwise. The simulation still reports success so the
// rest of the pipeline behaves identically without network access.
package email

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// ErrDelivery wraps every transport failure: non-2xx responses, network
// errors, and malformed relay replies. Callers match it with errors.Is.
var ErrDelivery = errors.New("email: delivery failed")

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Result reports which transport delivered the message.
type Result struct {
	Provider  string // "sendgrid", "relay", or "simulation"
	MessageID string
}

// Provider is the interface the orchestrator and dispatcher send through.
// Tests inject a stub that records calls without hitting the network.
type Provider interface {
	Send(ctx context.Context, msg Message) (Result, error)
	Name() string
}

// Config carries the transport credentials. Selection never reads the
// environment; the caller resolves configuration up front.
type Config struct {
	SendGridAPIKey string
	RelayURL       string
	FromAddr       string // defaults to noreply@reviewloop.io
	FromName       string // defaults to ReviewLoop
}

// New selects the transport for this process.
func New(cfg Config, logger *slog.Logger) Provider {
	if cfg.FromAddr == "" {
		cfg.FromAddr = "noreply@reviewloop.io"
	}
	if cfg.FromName == "" {
		cfg.FromName = "ReviewLoop"
	}

	client := &http.Client{Timeout: 15 * time.Second}

	switch {
	case cfg.SendGridAPIKey != "":
		return &sendGridProvider{
			apiKey:     cfg.SendGridAPIKey,
			fromAddr:   cfg.FromAddr,
			fromName:   cfg.FromName,
			endpoint:   sendGridEndpoint,
			httpClient: client,
		}
	case cfg.RelayURL != "":
		return &relayProvider{
			url:        cfg.RelayURL,
			httpClient: client,
		}
	default:
		return &simulationProvider{logger: logger}
	}
}
