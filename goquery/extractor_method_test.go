package goquery_test

import (
	"testing"

	"github.com/rdocs/cratedoc"
	"github.com/rdocs/cratedoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownerStructPage = `<!DOCTYPE html>
<html><body><section id="main">
<h1 class="fqn">Struct std::vec::Vec</h1>
<pre class="rust struct">pub struct Vec&lt;T&gt;</pre>
<div class="docblock"><p>A contiguous growable array type.</p></div>
<h3 id="impl" class="impl">impl&lt;T&gt; Vec&lt;T&gt;</h3>
<div class="impl-items">
	<h4 id="method.push" class="method"><code>pub fn push(&amp;mut self, value: T)</code></h4>
	<div class="stability"><div class="stab portability"><strong>This is supported on alloc only.</strong></div></div>
	<div class="docblock">
		<p>Appends an element to the back of a collection.</p>
		<h1 id="panics">Panics</h1>
		<p>Panics if the new capacity exceeds isize::MAX bytes.</p>
	</div>
	<h4 id="method.pop" class="method"><code>pub fn pop(&amp;mut self) -&gt; Option&lt;T&gt;</code></h4>
	<h4 id="method.len" class="method"><code>pub fn len(&amp;self) -&gt; usize</code></h4>
	<div class="docblock"><p>Returns the number of elements.</p></div>
</div>
</section></body></html>`

func TestExtractor_Method(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()

	t.Run("anchored method with stability block and docblock", func(t *testing.T) {
		t.Parallel()

		candidate := cratedoc.Candidate{Kind: cratedoc.KindMethod, Module: []string{"std", "vec"}, Owner: "Vec", Name: "push"}
		doc, found, err := e.Extract(ownerStructPage, candidate)
		require.NoError(t, err)
		require.True(t, found)

		assert.Equal(t, "std::vec::Vec::push", doc.Path)
		assert.Equal(t,
			"<pre><code class=\"language-rust\">pub fn push(&amp;mut self, value: T)</code></pre>",
			doc.Definition)
		assert.Equal(t, "This is supported on alloc only.", doc.Portability)
		assert.Equal(t, "Appends an element to the back of a collection.", doc.Description)
		require.Len(t, doc.Sections, 1)
		assert.Equal(t, "Panics", doc.Sections[0].Heading)
	})

	t.Run("undocumented method yields empty description, not absent", func(t *testing.T) {
		t.Parallel()

		candidate := cratedoc.Candidate{Kind: cratedoc.KindMethod, Module: []string{"std", "vec"}, Owner: "Vec", Name: "pop"}
		doc, found, err := e.Extract(ownerStructPage, candidate)
		require.NoError(t, err)
		require.True(t, found)

		assert.Empty(t, doc.Description)
		assert.Empty(t, doc.Sections)
		assert.Contains(t, doc.Definition, "pub fn pop(&amp;mut self) -&gt; Option&lt;T&gt;")
	})

	t.Run("docblock without stability block", func(t *testing.T) {
		t.Parallel()

		candidate := cratedoc.Candidate{Kind: cratedoc.KindMethod, Module: []string{"std", "vec"}, Owner: "Vec", Name: "len"}
		doc, found, err := e.Extract(ownerStructPage, candidate)
		require.NoError(t, err)
		require.True(t, found)

		assert.Empty(t, doc.Portability)
		assert.Equal(t, "Returns the number of elements.", doc.Description)
	})

	t.Run("missing anchor is absent: the page is a struct, not this method", func(t *testing.T) {
		t.Parallel()

		candidate := cratedoc.Candidate{Kind: cratedoc.KindMethod, Module: []string{"std", "vec"}, Owner: "Vec", Name: "truncate"}
		_, found, err := e.Extract(ownerStructPage, candidate)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

const ownerTraitPage = `<!DOCTYPE html>
<html><body><section id="main">
<h1 class="fqn">Trait serde::Deserialize</h1>
<pre class="rust trait">pub trait Deserialize&lt;'de&gt;</pre>
<div class="docblock"><p>A deserializable data structure.</p></div>
<h2 id="required-methods">Required methods</h2>
<div class="methods">
	<h3 id="tymethod.deserialize" class="method"><code>fn deserialize&lt;D&gt;(deserializer: D) -&gt; Result&lt;Self, D::Error&gt;</code></h3>
	<div class="docblock"><p>Deserialize this value from the given Serde deserializer.</p></div>
</div>
<h2 id="provided-methods">Provided methods</h2>
<div class="methods">
	<h3 id="method.deserialize_in_place" class="method"><code>fn deserialize_in_place&lt;D&gt;(deserializer: D, place: &amp;mut Self)</code></h3>
	<div class="docblock"><p>Deserialize into an existing place.</p></div>
</div>
</section></body></html>`

func TestExtractor_TraitMethod(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()

	t.Run("required method found via tymethod anchor", func(t *testing.T) {
		t.Parallel()

		candidate := cratedoc.Candidate{Kind: cratedoc.KindTraitMethod, Module: []string{"serde"}, Owner: "Deserialize", Name: "deserialize"}
		doc, found, err := e.Extract(ownerTraitPage, candidate)
		require.NoError(t, err)
		require.True(t, found)

		assert.Equal(t, "serde::Deserialize::deserialize", doc.Path)
		assert.Equal(t, "Deserialize this value from the given Serde deserializer.", doc.Description)
	})

	t.Run("provided method falls back to the method anchor", func(t *testing.T) {
		t.Parallel()

		candidate := cratedoc.Candidate{Kind: cratedoc.KindTraitMethod, Module: []string{"serde"}, Owner: "Deserialize", Name: "deserialize_in_place"}
		doc, found, err := e.Extract(ownerTraitPage, candidate)
		require.NoError(t, err)
		require.True(t, found)

		assert.Equal(t, "Deserialize into an existing place.", doc.Description)
	})

	t.Run("missing anchor is absent", func(t *testing.T) {
		t.Parallel()

		candidate := cratedoc.Candidate{Kind: cratedoc.KindTraitMethod, Module: []string{"serde"}, Owner: "Deserialize", Name: "nope"}
		_, found, err := e.Extract(ownerTraitPage, candidate)
		require.NoError(t, err)
		assert.False(t, found)
	})
}
