package puzzlecache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newStore(t testing.TB) Store {
	s := Store{Dir: filepath.Join(t.TempDir(), "input"), Extension: "txt"}
	require.NoError(t, s.Ensure())
	return s
}

func TestPaths(t *testing.T) {
	s := Store{Dir: "input", Extension: "txt"}
	require.Equal(t, filepath.Join("input", "01.txt"), s.InputPath(1))
	require.Equal(t, filepath.Join("input", "25.txt"), s.InputPath(25))
	require.Equal(t, filepath.Join("input", "prompt", "07.md"), s.PromptPath(7))
}

func TestEnsureIsIdempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Ensure())

	info, err := os.Stat(filepath.Join(s.Dir, "prompt"))
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestEnsureFailsOnFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "input")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	s := Store{Dir: blocker, Extension: "txt"}
	require.Error(t, s.Ensure())
}

func TestHasPrompt(t *testing.T) {
	s := newStore(t)

	ok, err := s.HasPrompt(1)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.WritePrompt(1, "<h2>--- Day 1 ---</h2>"))
	ok, err = s.HasPrompt(1)
	require.NoError(t, err)
	require.False(t, ok, "a prompt without part two is incomplete")

	require.NoError(t, s.WritePrompt(1, "<h2>--- Day 1 ---</h2>\n<h2 id=\"part2\">--- Part Two ---</h2>"))
	ok, err = s.HasPrompt(1)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestHasInput(t *testing.T) {
	s := newStore(t)

	ok, err := s.HasInput(3)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.WriteInput(3, ""))
	ok, err = s.HasInput(3)
	require.NoError(t, err)
	require.True(t, ok, "an empty input still counts")

	contents, err := os.ReadFile(s.InputPath(3))
	require.NoError(t, err)
	require.Empty(t, contents)
}

func TestWriteInputVerbatim(t *testing.T) {
	s := newStore(t)
	body := "1721\n979\n366\n\n"
	require.NoError(t, s.WriteInput(1, body))

	contents, err := os.ReadFile(s.InputPath(1))
	require.NoError(t, err)
	require.Equal(t, body, string(contents))
}
