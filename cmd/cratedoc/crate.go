package main

import (
	"fmt"
	"strings"

	"github.com/rdocs/cratedoc"
)

// Run executes the crate command.
func (c *CrateCmd) Run(deps *Dependencies) error {
	info, err := deps.Registry.CrateInfo(deps.Ctx, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cratedoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s %s\n", info.Name, info.NewestVersion)
	if info.Description != "" {
		fmt.Fprintf(deps.Stdout, "%s\n", info.Description)
	}
	fmt.Fprintln(deps.Stdout)

	if len(info.Owners) > 0 {
		names := make([]string, 0, len(info.Owners))
		for _, o := range info.Owners {
			names = append(names, o.Name)
		}
		fmt.Fprintf(deps.Stdout, "Owners:       %s\n", strings.Join(names, ", "))
	}
	if info.License != "" {
		fmt.Fprintf(deps.Stdout, "License:      %s\n", info.License)
	}
	if len(info.Keywords) > 0 {
		fmt.Fprintf(deps.Stdout, "Keywords:     %s\n", strings.Join(info.Keywords, ", "))
	}
	if len(info.Categories) > 0 {
		fmt.Fprintf(deps.Stdout, "Categories:   %s\n", strings.Join(info.Categories, ", "))
	}
	fmt.Fprintf(deps.Stdout, "Size:         %sB\n", cratedoc.HumanizeCount(info.CrateSize))
	fmt.Fprintf(deps.Stdout, "Downloads:    %s recent, %s total\n",
		cratedoc.HumanizeCount(info.RecentDownloads), cratedoc.HumanizeCount(info.Downloads))
	fmt.Fprintf(deps.Stdout, "Dependencies: %d (%d for dev)\n", info.Dependencies, info.DevDependencies)
	fmt.Fprintf(deps.Stdout, "Updated:      %s\n", info.UpdatedAt.Format("2006-01-02"))
	fmt.Fprintf(deps.Stdout, "Created:      %s\n", info.CreatedAt.Format("2006-01-02"))

	if info.Homepage != "" {
		fmt.Fprintf(deps.Stdout, "Home:         %s\n", info.Homepage)
	}
	docs := info.Documentation
	if docs == "" {
		docs = "https://docs.rs/" + info.Name
	}
	fmt.Fprintf(deps.Stdout, "Docs:         %s\n", docs)
	if info.Repository != "" {
		fmt.Fprintf(deps.Stdout, "Repo:         %s\n", info.Repository)
	}
	return nil
}
