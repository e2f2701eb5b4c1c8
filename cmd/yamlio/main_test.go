package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamlio/yamlio"
)

// writeInput puts content into a temp file and returns its path.
func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// runCommand executes a subcommand in process and returns its output.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLoadCommandJSON(t *testing.T) {
	path := writeInput(t, "z: 1\na: [two, 'three']\n---\n- 1\n- 2\n")

	out, err := runCommand(t, newLoadCmd(), path)
	require.NoError(t, err)

	// One JSON line per document, mapping keys in input order.
	assert.Equal(t, "{\"z\":\"1\",\"a\":[\"two\",\"three\"]}\n[\"1\",\"2\"]\n", out)
}

func TestLoadCommandNonScalarKey(t *testing.T) {
	path := writeInput(t, "? [1]\n: x\n")

	_, err := runCommand(t, newLoadCmd(), path)
	assert.EqualError(t, err, "cannot render a non-scalar mapping key as JSON")
}

func TestLoadCommandParseFailure(t *testing.T) {
	path := writeInput(t, "a: 'b\n")

	_, err := runCommand(t, newLoadCmd(), path)
	require.Error(t, err)
	var yerr *yamlio.Error
	require.ErrorAs(t, err, &yerr)
	assert.Equal(t, yamlio.ScannerError, yerr.Kind)
	assert.ErrorContains(t, err, "load documents:")
}

func TestEventsCommand(t *testing.T) {
	path := writeInput(t, "a: b\n")

	out, err := runCommand(t, newEventsCmd(), path)
	require.NoError(t, err)

	assert.Equal(t, ""+
		"+STR\n"+
		"+DOC\n"+
		"+MAP\n"+
		"=VAL :a\n"+
		"=VAL :b\n"+
		"-MAP\n"+
		"-DOC\n"+
		"-STR\n", out)
}

func TestEventsCommandMarks(t *testing.T) {
	path := writeInput(t, "a: b\n")

	out, err := runCommand(t, newEventsCmd(), "--marks", path)
	require.NoError(t, err)

	assert.Equal(t, ""+
		"+STR (1:0)\n"+
		"+DOC (1:0)\n"+
		"+MAP (1:0)\n"+
		"=VAL :a (1:0-1)\n"+
		"=VAL :b (1:3-4)\n"+
		"-MAP (2:0)\n"+
		"-DOC (2:0)\n"+
		"-STR (2:0)\n", out)
}

func TestUnknownEncodingFlag(t *testing.T) {
	path := writeInput(t, "a: b\n")

	_, err := runCommand(t, newEventsCmd(), "--encoding", "bogus", path)
	assert.EqualError(t, err, "unknown encoding: bogus")
}

func TestOpenInputMissingFile(t *testing.T) {
	_, err := runCommand(t, newLoadCmd(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
