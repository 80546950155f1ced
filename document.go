package cratedoc

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Document is the structured representation of one documentation page,
// extracted for a specific candidate kind.
type Document struct {
	Kind        Kind   `json:"kind"`
	Path        string `json:"path"`        // full :: path, used as the title
	Definition  string `json:"definition"`  // rendered code block; empty for modules
	Portability string `json:"portability"` // e.g. "This is supported on Unix only."
	Stability   string `json:"stability"`   // e.g. "Experimental"
	Deprecated  bool   `json:"deprecated"`
	Description string `json:"description"` // prose before the first sub-heading

	// Sections are the page's headed sections in document order.
	Sections []Section `json:"sections"`

	// Listings are kind-specific listings (a module's member tables, a
	// struct's method index, ...) promoted out of the generic sections so
	// a fixed selector can reach them directly.
	Listings []Listing `json:"listings"`
}

// Section is one headed region of a document.
type Section struct {
	Heading string
	Body    Body
}

// Body is the content of a section: either prose or a listing of
// sub-document summaries.
type Body interface {
	isBody()
}

// Prose is free-form section content, rendered as-is.
type Prose string

func (Prose) isBody() {}

// Items is a listing-style section body.
type Items []ItemSummary

func (Items) isBody() {}

// ItemSummary is one entry of a listing: a named sub-document with its
// inline markers and optional one-line summary.
type ItemSummary struct {
	Name        string `json:"name"`
	Deprecated  bool   `json:"deprecated,omitempty"`
	Portability string `json:"portability,omitempty"`
	Stability   string `json:"stability,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// Listing is a promoted, directly addressable listing.
type Listing struct {
	Key     string        `json:"key"`
	Heading string        `json:"heading"`
	Items   []ItemSummary `json:"items"`
}

// Fixed listing keys. The module keys mirror the fixed taxonomy of a
// crate's top-level index; the rest are the struct and trait indexes.
const (
	ListModules         = "modules"
	ListStructs         = "structs"
	ListTraits          = "traits"
	ListEnums           = "enums"
	ListMacros          = "macros"
	ListFunctions       = "functions"
	ListAttributes      = "attributes"
	ListConstants       = "constants"
	ListMethods         = "methods"
	ListImplementations = "implementations"
	ListRequiredMethods = "required-methods"
	ListProvidedMethods = "provided-methods"
	ListImplementors    = "implementors"
)

// Slice maps a follow-up selector to a (heading, body) pair. A selector
// is either a fixed listing key or a numeric index into the generic
// sections. Listing keys take precedence, so "methods" always reaches
// the promoted method index even when a generic section is titled
// "Methods". Returns ok=false for anything unresolvable.
func (d *Document) Slice(selector string) (string, Body, bool) {
	for _, l := range d.Listings {
		if l.Key == selector {
			return l.Heading, Items(l.Items), true
		}
	}
	if i, err := strconv.Atoi(selector); err == nil && i >= 0 && i < len(d.Sections) {
		return d.Sections[i].Heading, d.Sections[i].Body, true
	}
	return "", nil, false
}

// SectionRef pairs a selector with its display label, for building the
// drill-down button layout.
type SectionRef struct {
	Selector string
	Label    string
}

// SectionRefs returns one ref per navigable section: the generic sections
// by index first, then the promoted listings by key.
func (d *Document) SectionRefs() []SectionRef {
	refs := make([]SectionRef, 0, len(d.Sections)+len(d.Listings))
	for i, s := range d.Sections {
		refs = append(refs, SectionRef{Selector: strconv.Itoa(i), Label: s.Heading})
	}
	for _, l := range d.Listings {
		refs = append(refs, SectionRef{Selector: l.Key, Label: l.Heading})
	}
	return refs
}

// sectionJSON is the serialized form of Section. Exactly one of Text and
// Items is set, mirroring the two body variants.
type sectionJSON struct {
	Heading string        `json:"heading"`
	Text    *string       `json:"text,omitempty"`
	Items   []ItemSummary `json:"items,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (s Section) MarshalJSON() ([]byte, error) {
	out := sectionJSON{Heading: s.Heading}
	switch body := s.Body.(type) {
	case Prose:
		text := string(body)
		out.Text = &text
	case Items:
		out.Items = body
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Section) UnmarshalJSON(data []byte) error {
	var in sectionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	s.Heading = in.Heading
	if in.Text != nil {
		s.Body = Prose(*in.Text)
	} else if in.Items != nil {
		s.Body = Items(in.Items)
	}
	return nil
}

// EscapeEntities escapes the HTML entities &, < and > in user-supplied
// text picked up verbatim from documentation markup.
func EscapeEntities(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
