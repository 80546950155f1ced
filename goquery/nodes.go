package goquery

import (
	"regexp"
	"strings"

	"github.com/rdocs/cratedoc"
	"golang.org/x/net/html"
)

// danglingLink matches hyperlinks whose target is not an absolute URL:
// rustdoc emits same-page and relative links into fragments this engine
// cannot resolve, so they are replaced by their inner text.
var danglingLink = regexp.MustCompile(`(?s)<a href="[^h"][^"]*"[^>]*>(.*?)</a>`)

// stripDanglingLinks removes non-absolute hyperlinks, preserving the
// link's inner text.
func stripDanglingLinks(s string) string {
	return danglingLink.ReplaceAllString(s, "$1")
}

// splitSections walks the docblock's children in reverse document order,
// accumulating prose and code paragraphs into a buffer. Each sub-heading
// met flushes the buffer (reversed back to forward order) into a new
// section keyed by the heading's text. Whatever remains after the walk
// precedes the first heading and becomes the top-level description.
func splitSections(block *html.Node) (string, []cratedoc.Section) {
	var sections []cratedoc.Section
	var buffer []string

	flush := func() string {
		for i, j := 0, len(buffer)-1; i < j; i, j = i+1, j-1 {
			buffer[i], buffer[j] = buffer[j], buffer[i]
		}
		joined := strings.Join(buffer, "\n")
		buffer = buffer[:0]
		return joined
	}

	for child := block.LastChild; child != nil; child = child.PrevSibling {
		if child.Type != html.ElementNode {
			continue
		}
		switch child.Data {
		case "h1":
			sections = append(sections, cratedoc.Section{
				Heading: strings.TrimSpace(nodeText(child)),
				Body:    cratedoc.Prose(flush()),
			})
		case "p":
			buffer = append(buffer, stripDanglingLinks(innerHTML(child)))
		case "div":
			buffer = append(buffer, codeBlock(nodeText(child)))
		}
	}
	description := flush()

	// The walk collects sections back to front.
	for i, j := 0, len(sections)-1; i < j; i, j = i+1, j-1 {
		sections[i], sections[j] = sections[j], sections[i]
	}

	return description, sections
}

// reflowCode concatenates a code node's text, inserting a newline before
// the token "where" and before any whitespace-prefixed continuation
// token. This yields stable formatting independent of the source
// markup's original whitespace.
func reflowCode(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			s := n.Data
			if s == "where" || startsWithSpace(s) {
				sb.WriteByte('\n')
			}
			sb.WriteString(s)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// codeBlock escapes code text and wraps it in the fixed template used
// for every rendered code fragment.
func codeBlock(text string) string {
	return `<pre><code class="language-rust">` + cratedoc.EscapeEntities(text) + `</code></pre>`
}

func startsWithSpace(s string) bool {
	if s == "" {
		return false
	}
	return s[0] == ' ' || s[0] == '\t' || s[0] == '\n' || s[0] == '\r'
}

// nodeText concatenates every text node under n.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// innerHTML renders n's children back to markup.
func innerHTML(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&sb, c)
	}
	return sb.String()
}

// nextElement skips non-element siblings starting at n.
func nextElement(n *html.Node) *html.Node {
	for ; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			return n
		}
	}
	return nil
}

// hasClass reports whether the element carries the class.
func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// findClass returns the first descendant (or n itself) carrying the class.
func findClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

// textOfClass returns the text of the first descendant carrying the
// class, or empty when absent.
func textOfClass(n *html.Node, class string) string {
	if found := findClass(n, class); found != nil {
		return nodeText(found)
	}
	return ""
}
