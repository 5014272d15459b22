package schema

import (
	"encoding/json"
	"fmt"
	"os"
)

// ItemClass is the classification vocabulary for page items.
type ItemClass string

const (
	ClassProse    ItemClass = "prose"
	ClassVerse    ItemClass = "verse"
	ClassAd       ItemClass = "ad"
	ClassParatext ItemClass = "paratext"
	ClassUnknown  ItemClass = "unknown"
)

// Classes lists the label vocabulary in canonical order.
var Classes = []ItemClass{ClassProse, ClassVerse, ClassAd, ClassParatext, ClassUnknown}

// Valid reports whether c is one of the five known classes.
func (c ItemClass) Valid() bool {
	switch c {
	case ClassProse, ClassVerse, ClassAd, ClassParatext, ClassUnknown:
		return true
	}
	return false
}

// Item is a discrete text block on a page: a contribution, an advertisement,
// or a paratextual element such as a masthead or running header.
//
// The continuation flags are true-only: an item that does not continue simply
// omits the field, and an explicit false is never written. omitempty on a
// plain bool gives exactly that round-trip behavior.
type Item struct {
	Class               ItemClass `json:"item_class"`
	TextRaw             string    `json:"item_text_raw"`
	Title               string    `json:"item_title,omitempty"`
	Author              string    `json:"item_author,omitempty"`
	IsContinuation      bool      `json:"is_continuation,omitempty"`
	ContinuesOnNextPage bool      `json:"continues_on_next_page,omitempty"`
}

// Page is a complete page-level extraction: page metadata plus all text
// items in reading order. The metadata fields are carried through loading
// and persistence but are not consumed by the evaluators.
type Page struct {
	MagTitle   string `json:"mag_title,omitempty"`
	IssueLabel string `json:"issue_label,omitempty"`
	DateString string `json:"date_string,omitempty"`
	PageRef    string `json:"page_ref,omitempty"`
	Items      []Item `json:"items"`
}

// Validate checks the invariants downstream evaluators assume: an items list
// is present (empty is fine for blank pages) and every item carries one of
// the five known classes.
func (p *Page) Validate() error {
	if p.Items == nil {
		return fmt.Errorf("page is missing its items list")
	}
	for i, item := range p.Items {
		if !item.Class.Valid() {
			return fmt.Errorf("item %d: unknown item_class %q", i, item.Class)
		}
	}
	return nil
}

// ParsePage decodes and validates a page from raw JSON.
func ParsePage(data []byte) (*Page, error) {
	var page Page
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("failed to decode page JSON: %w", err)
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return &page, nil
}

// LoadPage reads and validates a page JSON file.
func LoadPage(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page file: %w", err)
	}
	page, err := ParsePage(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return page, nil
}

// SavePage writes a page as indented JSON.
func SavePage(page *Page, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create page file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(page); err != nil {
		return fmt.Errorf("failed to encode page: %w", err)
	}
	return nil
}
