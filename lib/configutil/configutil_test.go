package configutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeFile(t testing.TB, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestLocalPath(t *testing.T) {
	require.Equal(t, filepath.Join("conf", "Fetch.local.toml"), LocalPath(filepath.Join("conf", "Fetch.toml")))
	require.Equal(t, "settings.local", LocalPath("settings"))
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "Fetch.toml"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadConfigParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Fetch.toml")
	writeFile(t, path, "[configuration\nyear=")

	_, err := ReadConfig(path)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	require.Equal(t, path, parseErr.Path)
}

func TestReadConfigMergesLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Fetch.toml")
	writeFile(t, path, `[configuration]
year=2015
path="input"
session=""

[other]
kept=true
`)
	writeFile(t, filepath.Join(dir, "Fetch.local.toml"), `[configuration]
session="abc"
year=2022

[extra]
name="x"
`)

	table, err := ReadConfig(path)
	require.NoError(t, err)

	expected := map[string]any{
		"configuration": map[string]any{
			"year":    int64(2022),
			"path":    "input",
			"session": "abc",
		},
		"other": map[string]any{"kept": true},
		"extra": map[string]any{"name": "x"},
	}
	if diff := cmp.Diff(expected, table); diff != "" {
		t.Fatalf("unexpected table (-want +got):\n%s", diff)
	}
}

func TestReadConfigLocalOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Fetch.local.toml"), "[configuration]\nyear=2019\n")

	table, err := ReadConfig(filepath.Join(dir, "Fetch.toml"))
	require.NoError(t, err)
	require.Equal(t, int64(2019), table["configuration"].(map[string]any)["year"])
}
