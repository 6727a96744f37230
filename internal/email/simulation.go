package email

import (
	"context"
	"log/slog"
)

// simulationProvider logs the message instead of delivering it. It reports
// success so callers transition jobs and logs exactly as they would in
// production; the whole pipeline runs without credentials or network access.
type simulationProvider struct {
	logger *slog.Logger
}

func (p *simulationProvider) Name() string { return "simulation" }

func (p *simulationProvider) Send(ctx context.Context, msg Message) (Result, error) {
	p.logger.InfoContext(ctx, "email simulated",
		"to", msg.To,
		"subject", msg.Subject,
		"text_bytes", len(msg.Text),
	)
	return Result{Provider: p.Name(), MessageID: "simulated"}, nil
}
