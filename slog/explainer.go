package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/riinguist"
	"github.com/google/uuid"
)

// Ensure LoggingExplainer implements riinguist.Explainer.
var _ riinguist.Explainer = (*LoggingExplainer)(nil)

// LoggingExplainer wraps an Explainer with per-request logging.
type LoggingExplainer struct {
	next   riinguist.Explainer
	logger *slog.Logger
}

// NewLoggingExplainer creates a new LoggingExplainer.
func NewLoggingExplainer(next riinguist.Explainer, logger *slog.Logger) *LoggingExplainer {
	return &LoggingExplainer{next: next, logger: logger}
}

// Explain delegates to the wrapped explainer and logs the query together
// with whether it resolved to a glossary entry.
func (e *LoggingExplainer) Explain(ctx context.Context, query string) (reply string) {
	defer func(begin time.Time) {
		e.logger.Info("explain",
			"request", uuid.NewString(),
			"query", query,
			"outcome", outcome(reply),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Explain(ctx, query)
}

func outcome(reply string) string {
	switch reply {
	case riinguist.PromptMessage:
		return "empty"
	case riinguist.NotFoundMessage:
		return "not_found"
	default:
		return "found"
	}
}
