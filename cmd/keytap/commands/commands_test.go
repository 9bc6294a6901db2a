package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDecodeCommand(t *testing.T) {
	t.Run("argument", func(t *testing.T) {
		out, err := runCLI(t, "", "decode", "4433555 555666#")
		require.NoError(t, err)
		assert.Equal(t, "HELLO\n", out)
	})

	t.Run("split arguments join as a pause", func(t *testing.T) {
		out, err := runCLI(t, "", "decode", "2", "2#")
		require.NoError(t, err)
		assert.Equal(t, "AA\n", out)
	})

	t.Run("stdin lines", func(t *testing.T) {
		out, err := runCLI(t, "33#\n227*#\n", "decode")
		require.NoError(t, err)
		assert.Equal(t, "E\nB\n", out)
	})
}

func TestEncodeCommand(t *testing.T) {
	out, err := runCLI(t, "", "encode", "HELLO")
	require.NoError(t, err)
	assert.Equal(t, "4433555 555666#\n", out)

	joined, err := runCLI(t, "", "encode", "HELLO", "WORLD")
	require.NoError(t, err)
	single, err2 := runCLI(t, "", "encode", "HELLO WORLD")
	require.NoError(t, err2)
	assert.Equal(t, single, joined)
}

func TestKeysCommand(t *testing.T) {
	out, err := runCLI(t, "", "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "PQRS")
	assert.Contains(t, out, "space")
	assert.Contains(t, out, "backspace")
}

func TestCheckCommand(t *testing.T) {
	t.Run("builtin cases pass", func(t *testing.T) {
		out, err := runCLI(t, "", "check")
		require.NoError(t, err)
		assert.Contains(t, out, "cases passed")
		assert.NotContains(t, out, "FAIL")
	})

	t.Run("failing suite case", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cases.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"- name: wrong\n  input: \"33#\"\n  want: \"X\"\n"), 0o644))

		out, err := runCLI(t, "", "check", "--suite", path)
		require.Error(t, err)
		assert.Contains(t, out, "FAIL wrong")
	})

	t.Run("missing suite file", func(t *testing.T) {
		_, err := runCLI(t, "", "check", "--suite", filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestReplCommand(t *testing.T) {
	out, err := runCLI(t, "8 88777444666*664#\nexit\n", "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "TURING")

	out, err = runCLI(t, "keys\nquit\n", "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "WXYZ")
}
