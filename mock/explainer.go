package mock

import (
	"context"

	"github.com/fwojciec/riinguist"
)

var _ riinguist.Explainer = (*Explainer)(nil)

// Explainer is a mock implementation of riinguist.Explainer.
type Explainer struct {
	ExplainFn func(ctx context.Context, query string) string
}

func (e *Explainer) Explain(ctx context.Context, query string) string {
	return e.ExplainFn(ctx, query)
}
