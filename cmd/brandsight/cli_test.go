package main

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCLI(t *testing.T, args ...string) *CLI {
	t.Helper()

	cli := &CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse(args)
	require.NoError(t, err)
	return cli
}

func TestCLI_Parse(t *testing.T) {
	t.Parallel()

	t.Run("analyze", func(t *testing.T) {
		t.Parallel()

		cli := parseCLI(t, "analyze", "https://acme.test", "--render")
		assert.Equal(t, "https://acme.test", cli.Analyze.URL)
		assert.True(t, cli.Analyze.Render)
	})

	t.Run("profile", func(t *testing.T) {
		t.Parallel()

		cli := parseCLI(t, "profile", "acme.test")
		assert.Equal(t, "acme.test", cli.Profile.URL)
		assert.False(t, cli.Profile.Render)
	})

	t.Run("sheet defaults output path", func(t *testing.T) {
		t.Parallel()

		cli := parseCLI(t, "sheet", "acme.test")
		assert.Equal(t, "brand-sheet.pdf", cli.Sheet.Out)
	})

	t.Run("serve accepts addr", func(t *testing.T) {
		t.Parallel()

		cli := parseCLI(t, "serve", "--addr", ":8080")
		assert.Equal(t, ":8080", cli.Serve.Addr)
	})

	t.Run("rejects unknown command", func(t *testing.T) {
		t.Parallel()

		cli := &CLI{}
		parser, err := kong.New(cli, kong.Exit(func(int) {}))
		require.NoError(t, err)

		_, err = parser.Parse([]string{"bogus"})
		assert.Error(t, err)
	})
}
