package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/ladder"
)

func writeDict(t *testing.T, words string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(words), 0o600))
	return path
}

// TestRootCmd_Success runs the command end to end against a temp dictionary.
func TestRootCmd_Success(t *testing.T) {
	dict := writeDict(t, "cat cot cog dog bat bad")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"cat", "dog", "--dict", dict})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "cat -> cot -> cog -> dog\n", out.String())
}

// TestRootCmd_SearchError propagates the typed failure for the caller.
func TestRootCmd_SearchError(t *testing.T) {
	dict := writeDict(t, "cat cot")

	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"cat", "bwq", "--dict", dict})

	err := cmd.Execute()
	assert.ErrorIs(t, err, ladder.ErrNotInDictionary)
}

// TestRootCmd_ArgCount rejects anything but exactly two positional words.
func TestRootCmd_ArgCount(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"cat"})

	assert.Error(t, cmd.Execute())
}
