package cratedoc_test

import (
	"encoding/json"
	"testing"

	"github.com/rdocs/cratedoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Slice(t *testing.T) {
	t.Parallel()

	doc := &cratedoc.Document{
		Kind: cratedoc.KindStruct,
		Path: "std::vec::Vec",
		Sections: []cratedoc.Section{
			{Heading: "Examples", Body: cratedoc.Prose("let v = vec![];")},
			{Heading: "Methods", Body: cratedoc.Prose("a generic section that happens to share the name")},
		},
		Listings: []cratedoc.Listing{
			{Key: cratedoc.ListMethods, Heading: "Methods", Items: []cratedoc.ItemSummary{{Name: "push"}}},
		},
	}

	t.Run("numeric selector indexes generic sections", func(t *testing.T) {
		t.Parallel()

		heading, body, ok := doc.Slice("0")
		require.True(t, ok)
		assert.Equal(t, "Examples", heading)
		assert.Equal(t, cratedoc.Prose("let v = vec![];"), body)
	})

	t.Run("listing key wins over same-named generic section", func(t *testing.T) {
		t.Parallel()

		heading, body, ok := doc.Slice("methods")
		require.True(t, ok)
		assert.Equal(t, "Methods", heading)
		items, isItems := body.(cratedoc.Items)
		require.True(t, isItems)
		require.Len(t, items, 1)
		assert.Equal(t, "push", items[0].Name)
	})

	t.Run("out-of-range index is unresolvable", func(t *testing.T) {
		t.Parallel()

		_, _, ok := doc.Slice("7")
		assert.False(t, ok)
	})

	t.Run("negative index is unresolvable", func(t *testing.T) {
		t.Parallel()

		_, _, ok := doc.Slice("-1")
		assert.False(t, ok)
	})

	t.Run("unknown key is unresolvable", func(t *testing.T) {
		t.Parallel()

		_, _, ok := doc.Slice("implementors")
		assert.False(t, ok)
	})
}

func TestDocument_SectionRefs(t *testing.T) {
	t.Parallel()

	doc := &cratedoc.Document{
		Sections: []cratedoc.Section{
			{Heading: "Examples", Body: cratedoc.Prose("x")},
		},
		Listings: []cratedoc.Listing{
			{Key: cratedoc.ListMethods, Heading: "Methods"},
			{Key: cratedoc.ListImplementations, Heading: "Implementations"},
		},
	}

	refs := doc.SectionRefs()
	require.Len(t, refs, 3)
	assert.Equal(t, cratedoc.SectionRef{Selector: "0", Label: "Examples"}, refs[0])
	assert.Equal(t, cratedoc.SectionRef{Selector: "methods", Label: "Methods"}, refs[1])
	assert.Equal(t, cratedoc.SectionRef{Selector: "implementations", Label: "Implementations"}, refs[2])
}

func TestSection_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("prose body", func(t *testing.T) {
		t.Parallel()

		in := cratedoc.Section{Heading: "Examples", Body: cratedoc.Prose("some text")}
		data, err := json.Marshal(in)
		require.NoError(t, err)

		var out cratedoc.Section
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("listing body", func(t *testing.T) {
		t.Parallel()

		in := cratedoc.Section{
			Heading: "Modules",
			Body: cratedoc.Items{
				{Name: "vec", Summary: "A growable array"},
				{Name: "old", Deprecated: true, Portability: "unix only"},
			},
		}
		data, err := json.Marshal(in)
		require.NoError(t, err)

		var out cratedoc.Section
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("document round-trips field for field", func(t *testing.T) {
		t.Parallel()

		in := cratedoc.Document{
			Kind:        cratedoc.KindTrait,
			Path:        "serde::Deserialize",
			Definition:  "<pre><code class=\"language-rust\">pub trait Deserialize</code></pre>",
			Portability: "unix",
			Deprecated:  true,
			Description: "A data structure that can be deserialized.",
			Sections: []cratedoc.Section{
				{Heading: "Examples", Body: cratedoc.Prose("x")},
			},
			Listings: []cratedoc.Listing{
				{Key: cratedoc.ListRequiredMethods, Heading: "Required Methods", Items: []cratedoc.ItemSummary{{Name: "deserialize"}}},
			},
		}
		data, err := json.Marshal(in)
		require.NoError(t, err)

		var out cratedoc.Document
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})
}

func TestEscapeEntities(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Box&lt;dyn Error&gt; &amp; more", cratedoc.EscapeEntities("Box<dyn Error> & more"))
	assert.Equal(t, "plain", cratedoc.EscapeEntities("plain"))
}

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := cratedoc.Errorf(cratedoc.ENOTFOUND, "crate %q not found", "serde")
	assert.Equal(t, cratedoc.ENOTFOUND, cratedoc.ErrorCode(err))
	assert.Equal(t, `crate "serde" not found`, cratedoc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cratedoc.ErrorCode(nil))
}
