// Package goquery implements the cratedoc.Extractor using CSS selectors
// over generated rustdoc markup. One shape-polymorphic extraction routine
// serves all six entity kinds, driven by a small per-kind configuration
// of selectors and promoted listings.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rdocs/cratedoc"
)

// Ensure Extractor implements cratedoc.Extractor at compile time.
var _ cratedoc.Extractor = (*Extractor)(nil)

// Extractor parses fetched documentation pages into structured documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the page for the candidate's kind. Method kinds anchor
// into a shared owner page and report found=false when the anchor is
// missing; the other kinds report found=false when the page lacks the
// markup the kind depends on.
func (e *Extractor) Extract(html string, candidate cratedoc.Candidate) (*cratedoc.Document, bool, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, false, cratedoc.Errorf(cratedoc.EINVALID, "parse page: %v", err)
	}

	switch candidate.Kind {
	case cratedoc.KindMethod, cratedoc.KindTraitMethod:
		return e.extractMethod(doc, candidate)
	default:
		return e.extractPage(doc, candidate)
	}
}

// Page-level selectors, shared by every kind that owns its page.
const (
	portabilitySelector = "#main > .stability .stab.portability"
	stabilitySelector   = "#main > .stability .stab.unstable"
	deprecatedSelector  = "#main > .stability .stab.deprecated"
	definitionSelector  = "pre"
	docblockSelector    = "div.docblock:not(.type-decl)"
)

// extractPage handles Module, Function, Struct and Trait pages: fixed
// markup locations for the header fields, a single backward pass over
// the docblock for description and sections, then the kind's promoted
// listings.
func (e *Extractor) extractPage(doc *goquery.Document, candidate cratedoc.Candidate) (*cratedoc.Document, bool, error) {
	out := &cratedoc.Document{
		Kind: candidate.Kind,
		Path: candidate.Path(),
	}

	out.Portability = strings.TrimSpace(doc.Find(portabilitySelector).First().Text())
	out.Stability = strings.TrimSpace(doc.Find(stabilitySelector).First().Text())
	out.Deprecated = doc.Find(deprecatedSelector).Length() > 0

	if candidate.Kind != cratedoc.KindModule {
		pre := doc.Find(definitionSelector).First()
		if pre.Length() == 0 {
			// An item page always carries its definition block; a page
			// without one is not this kind of page.
			return nil, false, nil
		}
		out.Definition = codeBlock(reflowCode(pre.Nodes[0]))
	}

	if block := doc.Find(docblockSelector).First(); block.Length() > 0 {
		out.Description, out.Sections = splitSections(block.Nodes[0])
	}

	for _, spec := range listingSpecs(candidate.Kind) {
		items := extractListing(doc, spec)
		if len(items) == 0 {
			continue
		}
		out.Listings = append(out.Listings, cratedoc.Listing{
			Key:     spec.key,
			Heading: spec.heading,
			Items:   items,
		})
	}

	return out, true, nil
}

// extractMethod handles Method and TraitMethod: locate the defining
// anchor by exact id, then walk forward siblings for an optional
// stability block and an optional docblock. A missing anchor means the
// candidate does not exist on this page; a missing docblock is an
// undocumented method, not a failure.
func (e *Extractor) extractMethod(doc *goquery.Document, candidate cratedoc.Candidate) (*cratedoc.Document, bool, error) {
	var anchor *goquery.Selection
	for _, id := range candidate.Anchors() {
		if s := doc.Find(`[id="` + id + `"]`); s.Length() > 0 {
			anchor = s.First()
			break
		}
	}
	if anchor == nil {
		return nil, false, nil
	}

	code := anchor.Find("code").First()
	if code.Length() == 0 {
		return nil, false, nil
	}

	out := &cratedoc.Document{
		Kind:       candidate.Kind,
		Path:       candidate.Path(),
		Definition: codeBlock(reflowCode(code.Nodes[0])),
	}

	next := nextElement(anchor.Nodes[0].NextSibling)
	if next != nil && hasClass(next, "stability") {
		out.Portability = strings.TrimSpace(textOfClass(next, "portability"))
		out.Stability = strings.TrimSpace(textOfClass(next, "unstable"))
		out.Deprecated = findClass(next, "deprecated") != nil
		next = nextElement(next.NextSibling)
	}
	if next != nil && hasClass(next, "docblock") {
		out.Description, out.Sections = splitSections(next)
	}

	return out, true, nil
}

// extractListing maps every row matched by the listing's selector
// through the row-to-summary extraction.
func extractListing(doc *goquery.Document, spec listingSpec) []cratedoc.ItemSummary {
	var items []cratedoc.ItemSummary
	doc.Find(spec.selector).Each(func(_ int, row *goquery.Selection) {
		switch spec.rows {
		case tableRows:
			item, ok := tableRowSummary(row)
			if ok {
				items = append(items, item)
			}
		case codeNames:
			name := strings.TrimSpace(row.Text())
			if name != "" {
				items = append(items, cratedoc.ItemSummary{Name: name})
			}
		}
	})
	return items
}

// tableRowSummary extracts one module member table row: name cell,
// deprecation and portability markers, and the short description.
func tableRowSummary(row *goquery.Selection) (cratedoc.ItemSummary, bool) {
	name := strings.TrimSpace(row.Find("td").First().Text())
	if name == "" {
		return cratedoc.ItemSummary{}, false
	}
	item := cratedoc.ItemSummary{
		Name:        name,
		Deprecated:  row.Find(".deprecated").Length() > 0,
		Portability: strings.TrimSpace(row.Find(".portability").First().Text()),
		Stability:   strings.TrimSpace(row.Find(".unstable").First().Text()),
	}
	if short := row.Find(".docblock-short > p").First(); short.Length() > 0 {
		if inner, err := short.Html(); err == nil {
			item.Summary = strings.TrimSpace(stripDanglingLinks(inner))
		}
	}
	return item, true
}
