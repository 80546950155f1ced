package cratedoc

import "strings"

// Kind identifies which documentation entity a path might denote.
type Kind int

// The six entity kinds, in disambiguation priority order. When more than
// one speculative candidate resolves for the same path, the lowest value
// wins.
const (
	KindModule Kind = iota
	KindFunction
	KindStruct
	KindTrait
	KindMethod
	KindTraitMethod
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindFunction:
		return "function"
	case KindStruct:
		return "struct"
	case KindTrait:
		return "trait"
	case KindMethod:
		return "method"
	case KindTraitMethod:
		return "trait method"
	}
	return "unknown"
}

// ParsePath splits a symbol path into its segments. Both "::" and "."
// are accepted as separators. Returns EINVALID for an empty path or a
// path containing empty segments.
func ParsePath(path string) ([]string, error) {
	normalized := strings.ReplaceAll(path, "::", ".")
	if normalized == "" {
		return nil, Errorf(EINVALID, "empty symbol path")
	}
	segments := strings.Split(normalized, ".")
	for _, s := range segments {
		if s == "" {
			return nil, Errorf(EINVALID, "symbol path %q contains an empty segment", path)
		}
	}
	return segments, nil
}

// Candidate is a speculative pairing of a path with one entity kind,
// tried during disambiguation. Constructed transiently per resolution.
type Candidate struct {
	Kind   Kind
	Module []string // module segments, starting with the crate name
	Owner  string   // owning struct or trait name for method kinds
	Name   string   // item name; empty for modules
}

// Path returns the full "::"-joined symbol path of the candidate.
func (c Candidate) Path() string {
	parts := make([]string, 0, len(c.Module)+2)
	parts = append(parts, c.Module...)
	if c.Owner != "" {
		parts = append(parts, c.Owner)
	}
	if c.Name != "" {
		parts = append(parts, c.Name)
	}
	return strings.Join(parts, "::")
}

// PageURL builds the documentation page URL for the candidate relative
// to the crate's origin. The crate name segment is dropped: the origin
// already points at the crate root.
func (c Candidate) PageURL(origin Origin) string {
	var sb strings.Builder
	sb.WriteString(origin.BaseURL)
	for _, seg := range c.Module[1:] {
		sb.WriteString(seg)
		sb.WriteByte('/')
	}
	switch c.Kind {
	case KindModule:
		sb.WriteString("index.html")
	case KindFunction:
		sb.WriteString("fn." + c.Name + ".html")
	case KindStruct:
		sb.WriteString("struct." + c.Name + ".html")
	case KindTrait:
		sb.WriteString("trait." + c.Name + ".html")
	case KindMethod:
		sb.WriteString("struct." + c.Owner + ".html")
	case KindTraitMethod:
		sb.WriteString("trait." + c.Owner + ".html")
	}
	return sb.String()
}

// Anchors returns the in-page anchor ids that identify the candidate on
// a shared page, in the order they should be tried. Empty for kinds that
// own their page outright.
func (c Candidate) Anchors() []string {
	switch c.Kind {
	case KindMethod:
		return []string{"method." + c.Name}
	case KindTraitMethod:
		return []string{"tymethod." + c.Name, "method." + c.Name}
	}
	return nil
}

// Candidates enumerates every syntactically plausible candidate for the
// given path segments, in fixed priority order. Which kinds are plausible
// is purely a function of segment count: a single segment can only be a
// module; two segments add the owner-less item kinds; three or more add
// the method kinds with the second-to-last segment as owner.
func Candidates(segments []string) []Candidate {
	n := len(segments)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []Candidate{{Kind: KindModule, Module: segments}}
	}
	candidates := []Candidate{
		{Kind: KindModule, Module: segments},
		{Kind: KindFunction, Module: segments[:n-1], Name: segments[n-1]},
		{Kind: KindStruct, Module: segments[:n-1], Name: segments[n-1]},
		{Kind: KindTrait, Module: segments[:n-1], Name: segments[n-1]},
	}
	if n >= 3 {
		candidates = append(candidates,
			Candidate{Kind: KindMethod, Module: segments[:n-2], Owner: segments[n-2], Name: segments[n-1]},
			Candidate{Kind: KindTraitMethod, Module: segments[:n-2], Owner: segments[n-2], Name: segments[n-1]},
		)
	}
	return candidates
}
