package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/riinguist"
)

// Layout of the yaku page: the first h2/table element is the table of
// contents, and the yaku listing ends after 47 further elements. Both
// numbers describe the page as published and must be re-checked if the
// page is restructured.
const (
	PatternSkip  = 1
	PatternLimit = 47
)

var _ riinguist.DefinitionExtractor = (*PatternExtractor)(nil)

// PatternExtractor extracts yaku definitions from the yaku page.
//
// The page groups yaku tables under h2 headings naming their han value
// ("One han", "Two han", ...). The extractor walks headings and tables in
// document order and tags each yaku with the most recent heading.
type PatternExtractor struct {
	skip  int
	limit int
}

// NewPatternExtractor creates a new PatternExtractor for the published
// page layout.
func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{skip: PatternSkip, limit: PatternLimit}
}

// Extract implements riinguist.DefinitionExtractor.
func (e *PatternExtractor) Extract(raw string) ([]riinguist.Definition, error) {
	doc, err := parse(raw)
	if err != nil {
		return nil, riinguist.Errorf(riinguist.EINVALID, "failed to parse HTML: %v", err)
	}

	elems := doc.Find("table, h2")
	end := min(elems.Length(), e.skip+e.limit)

	var defs []riinguist.Definition
	var section string
	for i := e.skip; i < end; i++ {
		elem := elems.Eq(i)

		if goquery.NodeName(elem) == "h2" {
			section = strings.ReplaceAll(Text(elem), "One han closed only", "One han")
			continue
		}

		def, err := extractPattern(i, elem, section)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	return defs, nil
}

func extractPattern(i int, table *goquery.Selection, section string) (riinguist.Definition, error) {
	name := table.Find("b").First()
	if name.Length() == 0 {
		return riinguist.Definition{}, riinguist.Errorf(riinguist.EINVALID, "yaku element %d: missing bold name", i)
	}

	value := table.Find("dd").Eq(1)
	if value.Length() == 0 {
		return riinguist.Definition{}, riinguist.Errorf(riinguist.EINVALID, "yaku element %d: missing value detail", i)
	}

	body := table.Find("td").Eq(1)
	if body.Length() == 0 {
		return riinguist.Definition{}, riinguist.Errorf(riinguist.EINVALID, "yaku element %d: missing description cell", i)
	}

	// "2 han (closed only)" becomes "2 han, closed only".
	detail := strings.ReplaceAll(Text(value), " (", ", ")
	detail = strings.ReplaceAll(detail, ")", "")
	detail = strings.TrimPrefix(detail, "(")

	details := strings.ToLower(section + ", " + detail)
	return riinguist.Definition{
		Name:        Text(name),
		Details:     &details,
		Description: Text(body),
	}, nil
}
