package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rdocs/cratedoc"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	doc, err := deps.Resolver.Resolve(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cratedoc.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	if c.Section != "" {
		heading, body, ok := doc.Slice(c.Section)
		if !ok {
			fmt.Fprintf(deps.Stderr, "error: %q has no section %q. Run 'cratedoc docs %s' to see available sections.\n", c.Path, c.Section, c.Path)
			return cratedoc.Errorf(cratedoc.ENOTFOUND, "no section %q", c.Section)
		}
		fmt.Fprintf(deps.Stdout, "# %s\n\n## %s\n\n", doc.Path, heading)
		return c.printBody(deps, body)
	}

	fmt.Fprintf(deps.Stdout, "# %s (%s)\n\n", doc.Path, doc.Kind)
	if doc.Deprecated {
		fmt.Fprintln(deps.Stdout, "Deprecated")
	}
	if doc.Portability != "" {
		fmt.Fprintln(deps.Stdout, doc.Portability)
	}
	if doc.Stability != "" {
		fmt.Fprintln(deps.Stdout, doc.Stability)
	}
	if doc.Definition != "" {
		if err := c.printHTML(deps, doc.Definition); err != nil {
			return err
		}
	}
	if doc.Description != "" {
		if err := c.printHTML(deps, doc.Description); err != nil {
			return err
		}
	}

	refs := doc.SectionRefs()
	if len(refs) > 0 {
		fmt.Fprintf(deps.Stdout, "\nSections (use --section):\n")
		for _, ref := range refs {
			fmt.Fprintf(deps.Stdout, "  %-18s %s\n", ref.Selector, ref.Label)
		}
	}
	return nil
}

func (c *DocsCmd) printBody(deps *Dependencies, body cratedoc.Body) error {
	switch b := body.(type) {
	case cratedoc.Prose:
		return c.printHTML(deps, string(b))
	case cratedoc.Items:
		for _, item := range b {
			fmt.Fprintf(deps.Stdout, "- %s", item.Name)
			if item.Deprecated {
				fmt.Fprintf(deps.Stdout, " [deprecated]")
			}
			if item.Stability != "" {
				fmt.Fprintf(deps.Stdout, " [%s]", item.Stability)
			}
			fmt.Fprintln(deps.Stdout)
			if item.Summary != "" {
				md, err := deps.Converter.Convert(item.Summary)
				if err != nil {
					return err
				}
				fmt.Fprintf(deps.Stdout, "  %s\n", strings.TrimSpace(md))
			}
		}
	}
	return nil
}

func (c *DocsCmd) printHTML(deps *Dependencies, html string) error {
	md, err := deps.Converter.Convert(html)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "%s\n", strings.TrimSpace(md))
	return nil
}
