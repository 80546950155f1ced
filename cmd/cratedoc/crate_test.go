package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rdocs/cratedoc"
	main "github.com/rdocs/cratedoc/cmd/cratedoc"
	"github.com/rdocs/cratedoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdCrate(t *testing.T) {
	t.Parallel()

	t.Run("prints registry metadata", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Registry: &mock.RegistryService{
				CrateInfoFn: func(ctx context.Context, name string) (*cratedoc.CrateInfo, error) {
					return &cratedoc.CrateInfo{
						Name:            "serde",
						NewestVersion:   "1.0.219",
						Description:     "A generic serialization/deserialization framework",
						CrateSize:       78983,
						Downloads:       500_000_000,
						RecentDownloads: 90_000_000,
						CreatedAt:       time.Date(2014, 12, 5, 0, 0, 0, 0, time.UTC),
						UpdatedAt:       time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
						Repository:      "https://github.com/serde-rs/serde",
						License:         "MIT OR Apache-2.0",
						Keywords:        []string{"serde", "serialization"},
						Owners:          []cratedoc.CrateOwner{{Name: "David Tolnay", URL: "https://github.com/dtolnay"}},
						Dependencies:    1,
						DevDependencies: 2,
					}, nil
				},
			},
		}

		cmd := &main.CrateCmd{Name: "serde"}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "serde 1.0.219")
		assert.Contains(t, out, "Owners:       David Tolnay")
		assert.Contains(t, out, "License:      MIT OR Apache-2.0")
		assert.Contains(t, out, "Downloads:    90.0M recent, 500.0M total")
		assert.Contains(t, out, "Dependencies: 1 (2 for dev)")
		assert.Contains(t, out, "Updated:      2025-03-09")
		// Documentation falls back to docs.rs when the registry has none.
		assert.Contains(t, out, "Docs:         https://docs.rs/serde")
		assert.Empty(t, stderr.String())
	})

	t.Run("reports unknown crates on stderr", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Registry: &mock.RegistryService{
				CrateInfoFn: func(ctx context.Context, name string) (*cratedoc.CrateInfo, error) {
					return nil, cratedoc.Errorf(cratedoc.ENOTFOUND, "crate %q not found", name)
				},
			},
		}

		cmd := &main.CrateCmd{Name: "nosuchcrate"}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "not found")
	})
}
