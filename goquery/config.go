package goquery

import "github.com/rdocs/cratedoc"

// rowKind selects how a listing selector's matches become summaries:
// module member tables carry name, markers and a short description per
// row; method and impl indexes are bare code signatures.
type rowKind int

const (
	tableRows rowKind = iota
	codeNames
)

// listingSpec describes one promoted listing: its fixed selector key,
// display heading, and the CSS selector that finds its rows.
type listingSpec struct {
	key      string
	heading  string
	selector string
	rows     rowKind
}

// moduleListings is the fixed taxonomy of a crate or module index page.
var moduleListings = []listingSpec{
	{cratedoc.ListModules, "Modules", "#modules + table tr", tableRows},
	{cratedoc.ListStructs, "Structs", "#structs + table tr", tableRows},
	{cratedoc.ListTraits, "Traits", "#traits + table tr", tableRows},
	{cratedoc.ListEnums, "Enums", "#enums + table tr", tableRows},
	{cratedoc.ListMacros, "Macros", "#macros + table tr", tableRows},
	{cratedoc.ListFunctions, "Functions", "#functions + table tr", tableRows},
	{cratedoc.ListAttributes, "Attributes", "#attributes + table tr", tableRows},
	{cratedoc.ListConstants, "Constants", "#consts + table tr", tableRows},
}

// structListings are the method and impl indexes of a struct page.
var structListings = []listingSpec{
	{cratedoc.ListMethods, "Methods", "#impl + .impl-items h4 > code", codeNames},
	{cratedoc.ListImplementations, "Implementations", "#implementations-list .in-band", codeNames},
}

// traitListings are the method and implementor indexes of a trait page.
var traitListings = []listingSpec{
	{cratedoc.ListRequiredMethods, "Required Methods", "#required-methods + .methods .method > code", codeNames},
	{cratedoc.ListProvidedMethods, "Provided Methods", "#provided-methods + .methods .method > code", codeNames},
	{cratedoc.ListImplementations, "Implementations", "#main > .impl .in-band", codeNames},
	{cratedoc.ListImplementors, "Implementors", "#implementors-list .in-band", codeNames},
}

// listingSpecs returns the promoted listings for the kind. Functions and
// method kinds have none.
func listingSpecs(kind cratedoc.Kind) []listingSpec {
	switch kind {
	case cratedoc.KindModule:
		return moduleListings
	case cratedoc.KindStruct:
		return structListings
	case cratedoc.KindTrait:
		return traitListings
	}
	return nil
}
