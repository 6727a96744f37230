package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const sendGridEndpoint = "https://api.sendgrid.com/v3/mail/send"

// sendGridProvider delivers via the SendGrid v3 mail send API.
type sendGridProvider struct {
	apiKey     string
	fromAddr   string
	fromName   string
	endpoint   string
	httpClient *http.Client
}

// ─── SENDGRID API SHAPES ──────────────────────────────────────────────────────

type sendGridAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendGridPersonalization struct {
	To      []sendGridAddress `json:"to"`
	Subject string            `json:"subject"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridRequest struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridAddress           `json:"from"`
	Content          []sendGridContent         `json:"content"`
}

// ─── PROVIDER IMPLEMENTATION ──────────────────────────────────────────────────

func (p *sendGridProvider) Name() string { return "sendgrid" }

func (p *sendGridProvider) Send(ctx context.Context, msg Message) (Result, error) {
	reqBody := sendGridRequest{
		Personalizations: []sendGridPersonalization{{
			To:      []sendGridAddress{{Email: msg.To}},
			Subject: msg.Subject,
		}},
		From: sendGridAddress{Email: p.fromAddr, Name: p.fromName},
		Content: []sendGridContent{
			{Type: "text/html", Value: msg.HTML},
			{Type: "text/plain", Value: msg.Text},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return Result{}, fmt.Errorf("email: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return Result{}, fmt.Errorf("email: build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: sendgrid: %v", ErrDelivery, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return Result{}, fmt.Errorf("%w: sendgrid: read response: %v", ErrDelivery, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, fmt.Errorf("%w: sendgrid: status %d: %.200s", ErrDelivery, resp.StatusCode, string(respBytes))
	}

	// SendGrid answers 202 with an empty body; the id lives in a header.
	messageID := resp.Header.Get("X-Message-Id")
	if messageID == "" {
		messageID = "unknown"
	}

	return Result{Provider: p.Name(), MessageID: messageID}, nil
}
