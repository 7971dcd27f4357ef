package mock

import "github.com/fwojciec/riinguist"

var _ riinguist.DefinitionExtractor = (*DefinitionExtractor)(nil)

// DefinitionExtractor is a mock implementation of riinguist.DefinitionExtractor.
type DefinitionExtractor struct {
	ExtractFn func(html string) ([]riinguist.Definition, error)
}

func (e *DefinitionExtractor) Extract(html string) ([]riinguist.Definition, error) {
	return e.ExtractFn(html)
}
