package main

import (
	"context"
	"io"
	"time"

	"github.com/rdocs/cratedoc"
	"github.com/rdocs/cratedoc/bot"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Resolver  cratedoc.Resolver
	Registry  cratedoc.RegistryService
	Converter cratedoc.Converter
	Bot       *bot.Service
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Docs  DocsCmd  `cmd:"" help:"Look up documentation for a symbol path"`
	Crate CrateCmd `cmd:"" help:"Show registry metadata for a crate"`
	Chat  ChatCmd  `cmd:"" help:"Interactive lookup session with drill-down"`

	Verbose bool          `short:"v" help:"Enable informational logging"`
	Timeout time.Duration `default:"10s" help:"Per-request timeout"`
	Rate    float64       `default:"2" help:"Requests per second"`
	DB      string        `help:"Session database path (chat only)"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Path    string `arg:"" help:"Symbol path, e.g. serde::de::Deserialize"`
	Section string `short:"s" help:"Print only the named section (listing key or index)"`
	JSON    bool   `help:"Print the structured document as JSON"`
}

// CrateCmd is the "crate" subcommand.
type CrateCmd struct {
	Name string `arg:"" help:"Crate name, e.g. serde"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct{}
