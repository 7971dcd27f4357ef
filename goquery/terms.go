package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/riinguist"
)

var _ riinguist.DefinitionExtractor = (*TermExtractor)(nil)

// TermExtractor extracts definitions from the alphabetical terminology
// page. Every table on that page holds one term: the first cell carries
// the term in bold and an optional pronunciation in italics, the second
// cell carries the description.
type TermExtractor struct{}

// NewTermExtractor creates a new TermExtractor.
func NewTermExtractor() *TermExtractor {
	return &TermExtractor{}
}

// Extract implements riinguist.DefinitionExtractor.
func (e *TermExtractor) Extract(raw string) ([]riinguist.Definition, error) {
	doc, err := parse(raw)
	if err != nil {
		return nil, riinguist.Errorf(riinguist.EINVALID, "failed to parse HTML: %v", err)
	}

	var defs []riinguist.Definition
	var extractErr error
	doc.Find("table").EachWithBreak(func(i int, table *goquery.Selection) bool {
		def, err := extractTerm(i, table)
		if err != nil {
			extractErr = err
			return false
		}
		defs = append(defs, def)
		return true
	})
	if extractErr != nil {
		return nil, extractErr
	}

	return defs, nil
}

func extractTerm(i int, table *goquery.Selection) (riinguist.Definition, error) {
	cells := table.Find("td")

	head := cells.Eq(0)
	name := head.Find("b").First()
	if name.Length() == 0 {
		return riinguist.Definition{}, riinguist.Errorf(riinguist.EINVALID, "term table %d: missing bold term", i)
	}

	body := cells.Eq(1)
	if body.Length() == 0 {
		return riinguist.Definition{}, riinguist.Errorf(riinguist.EINVALID, "term table %d: missing description cell", i)
	}

	def := riinguist.Definition{
		Name:        Text(name),
		Description: Text(body),
	}
	if italic := head.Find("i").First(); italic.Length() > 0 {
		details := strings.ToLower(Text(italic))
		def.Details = &details
	}
	return def, nil
}
