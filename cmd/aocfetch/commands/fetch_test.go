package commands

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"aocfetch/lib/scrapers/aoc"
	"aocfetch/lib/serviceutil"
	"aocfetch/lib/settings"
	"aocfetch/lib/testutil"

	"github.com/stretchr/testify/require"
)

func writeConfig(t testing.TB, dir, session string) string {
	path := filepath.Join(dir, settings.DefaultPath)
	contents := fmt.Sprintf(
		"[configuration]\nyear=2015\npath=%q\nextension=\"txt\"\nsession=%q\n",
		filepath.ToSlash(filepath.Join(dir, "input")),
		session,
	)
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func testParams(server *testutil.PuzzleServer, configPath string, out *bytes.Buffer) fetchParams {
	return fetchParams{
		ConfigPath: configPath,
		Delay:      -1,
		Out:        out,
		BaseUrl:    server.URL,
	}
}

func TestRunFetchSingleDay(t *testing.T) {
	t.Setenv(settings.SessionEnv, "")
	dir := t.TempDir()
	server := testutil.NewPuzzleServer(t, 2015, "abc")

	var out bytes.Buffer
	params := testParams(server, writeConfig(t, dir, "abc"), &out)
	params.Days = []int{4}

	err := runFetch(context.Background(), params)
	require.NoError(t, err)
	require.Equal(t, 1, server.PromptCalls(4))
	require.Equal(t, 1, server.InputCalls(4))
	require.Equal(t, 2, server.TotalCalls())

	input, err := os.ReadFile(filepath.Join(dir, "input", "04.txt"))
	require.NoError(t, err)
	require.Equal(t, testutil.InputBody(4), string(input))

	prompt, err := os.ReadFile(filepath.Join(dir, "input", "prompt", "04.md"))
	require.NoError(t, err)
	require.Equal(t, testutil.PromptText(4, true), string(prompt))

	require.Contains(t, out.String(), "fetched")
}

func TestRunFetchAllDaysThenCached(t *testing.T) {
	t.Setenv(settings.SessionEnv, "")
	dir := t.TempDir()
	server := testutil.NewPuzzleServer(t, 2015, "abc")
	params := testParams(server, writeConfig(t, dir, "abc"), nil)

	require.NoError(t, runFetch(context.Background(), params))
	require.Equal(t, 50, server.TotalCalls())

	var out bytes.Buffer
	params.Out = &out
	require.NoError(t, runFetch(context.Background(), params))
	require.Equal(t, 50, server.TotalCalls())
	require.Contains(t, out.String(), "cached")
	require.NotContains(t, out.String(), "fetched")
}

func TestRunFetchEmptySessionMakesNoRequests(t *testing.T) {
	t.Setenv(settings.SessionEnv, "")
	dir := t.TempDir()
	server := testutil.NewPuzzleServer(t, 2015, "abc")
	params := testParams(server, writeConfig(t, dir, ""), nil)

	err := runFetch(context.Background(), params)
	require.ErrorIs(t, err, settings.ErrNoSession)
	require.Equal(t, serviceutil.ExitDataErr, exitCode(err))
	require.Equal(t, 0, server.TotalCalls())

	_, err = os.Stat(filepath.Join(dir, "input"))
	require.True(t, os.IsNotExist(err))
}

func TestRunFetchCreatesDefaultConfig(t *testing.T) {
	t.Setenv(settings.SessionEnv, "")
	dir := t.TempDir()
	server := testutil.NewPuzzleServer(t, 2015, "abc")
	configPath := filepath.Join(dir, settings.DefaultPath)

	err := runFetch(context.Background(), testParams(server, configPath, nil))
	require.ErrorIs(t, err, settings.ErrNoSession)
	require.Equal(t, 0, server.TotalCalls())

	contents, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Equal(t, settings.DefaultConfig, string(contents))
}

func TestRunFetchStopsOnHttpError(t *testing.T) {
	t.Setenv(settings.SessionEnv, "")
	dir := t.TempDir()
	server := testutil.NewPuzzleServer(t, 2015, "abc")
	server.FailInput(1, http.StatusBadRequest)

	var out bytes.Buffer
	err := runFetch(context.Background(), testParams(server, writeConfig(t, dir, "abc"), &out))
	var statusErr *aoc.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, serviceutil.ExitDataErr, exitCode(err))
	require.Equal(t, 2, server.TotalCalls())
	require.Empty(t, out.String())
}

func TestRootCommandRejectsBadDay(t *testing.T) {
	cases := [][]string{
		{"26"},
		{"zero"},
		{"1", "2"},
		{"--no-such-flag"},
	}

	for _, args := range cases {
		rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "unused.toml")}, args...))
		err := rootCmd.ExecuteContext(context.Background())
		require.Error(t, err, "args %v", args)
		require.Equal(t, serviceutil.ExitUsage, exitCode(err), "args %v", args)
	}
}

func TestRenderSummary(t *testing.T) {
	var out bytes.Buffer
	renderSummary(&out, nil)
	require.Contains(t, out.String(), "DAY")
}
