package cratedoc

// Converter transforms rendered HTML fragments into Markdown, used by
// the CLI to print documents in a terminal-friendly form.
type Converter interface {
	Convert(html string) (string, error)
}
