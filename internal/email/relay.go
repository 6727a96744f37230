package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// relayProvider forwards the message to an internal delivery relay over HTTP.
// The relay owns the actual provider credentials.
type relayProvider struct {
	url        string
	httpClient *http.Client
}

type relayRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

type relayResponse struct {
	Success   bool   `json:"success"`
	Provider  string `json:"provider"`
	MessageID string `json:"messageId"`
	Error     string `json:"error"`
}

func (p *relayProvider) Name() string { return "relay" }

func (p *relayProvider) Send(ctx context.Context, msg Message) (Result, error) {
	bodyBytes, err := json.Marshal(relayRequest{
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return Result{}, fmt.Errorf("email: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(bodyBytes))
	if err != nil {
		return Result{}, fmt.Errorf("email: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: relay: %v", ErrDelivery, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return Result{}, fmt.Errorf("%w: relay: read response: %v", ErrDelivery, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, fmt.Errorf("%w: relay: status %d: %.200s", ErrDelivery, resp.StatusCode, string(respBytes))
	}

	var parsed relayResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return Result{}, fmt.Errorf("%w: relay: unmarshal response: %v", ErrDelivery, err)
	}
	if !parsed.Success {
		return Result{}, fmt.Errorf("%w: relay: %s", ErrDelivery, parsed.Error)
	}

	return Result{Provider: p.Name(), MessageID: parsed.MessageID}, nil
}
