package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_BlankSourceUsesFallback(t *testing.T) {
	words, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Fallback, words)
}

func TestLoad_MissingFileUsesFallback(t *testing.T) {
	words, err := Load(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	require.NoError(t, err)

	assert.Equal(t, Fallback, words)
}

func TestLoad_FallbackIsCopied(t *testing.T) {
	words, err := Load("")
	require.NoError(t, err)

	words[0] = "mutated"

	assert.Equal(t, "password", Fallback[0], "callers must not be able to mutate the fallback list")
}

func TestLoad_ReadsFileInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\ngamma\n"), 0o600))

	words, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, words)
}

func TestLoad_SkipsBlankLinesAndTrims(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("  alpha  \n\n\tbeta\n   \n"), 0o600))

	words, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "beta"}, words)
}

func TestFetch_RejectsInvalidURL(t *testing.T) {
	err := Fetch(t.Context(), "not-a-url", filepath.Join(t.TempDir(), "out.txt"), "")

	assert.Error(t, err)
}

func TestFileExistsAndValid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\n"), 0o600))

	assert.False(t, fileExistsAndValid(filepath.Join(dir, "missing.txt"), ""))
	assert.True(t, fileExistsAndValid(path, ""))

	// MD5 of "alpha\n".
	assert.True(t, fileExistsAndValid(path, "9f9f90dbe3e5ee1218c86b8839db1995"))

	assert.False(t, fileExistsAndValid(path, "0000000000000000000000000000000a"))
	assert.NoFileExists(t, path, "a mismatched file is removed for re-download")
}
