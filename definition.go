package riinguist

import "strings"

// Definition is a single glossary record scraped from a source page,
// before it is rendered into the glossary.
type Definition struct {
	// Name is the display form of the term (e.g. "Riichi").
	Name string `json:"name"`

	// Details is an optional parenthetical qualifier: a pronunciation for
	// terminology entries, "<han value>, <closed/open>" for yaku.
	Details *string `json:"details,omitempty"`

	Description string `json:"description"`
}

// Validate returns an error if the definition contains invalid fields.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "definition name required")
	}
	if d.Description == "" {
		return Errorf(EINVALID, "definition %q description required", d.Name)
	}
	return nil
}

// Key returns the normalized glossary key for the definition.
func (d *Definition) Key() string {
	return strings.ToLower(d.Name)
}

// Render formats the definition as a chat message: the name in bold,
// the details in parentheses when present, and the description on the
// following line.
func (d *Definition) Render() string {
	var sb strings.Builder
	sb.WriteString("**")
	sb.WriteString(d.Name)
	sb.WriteString("**")
	if d.Details != nil {
		sb.WriteString(" (")
		sb.WriteString(*d.Details)
		sb.WriteString(")")
	}
	sb.WriteString("\n")
	sb.WriteString(d.Description)
	return sb.String()
}

// DefinitionExtractor parses one source page into definitions.
type DefinitionExtractor interface {
	// Extract parses raw HTML and returns definitions in document order.
	// Returns EINVALID if the page layout does not match what the
	// extractor expects.
	Extract(html string) ([]Definition, error)
}
