// Package puzzlecache maps puzzle days onto files on disk and decides
// which of them still have to be downloaded.
package puzzlecache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PartTwoMarker shows up in a prompt once its second half has been revealed.
// A prompt file without it is considered incomplete.
const PartTwoMarker = `id="part2"`

const promptDir = "prompt"

type Store struct {
	Dir       string
	Extension string
}

// InputPath is <dir>/<DD>.<extension>
func (s Store) InputPath(day int) string {
	return filepath.Join(s.Dir, fmt.Sprintf("%02d.%s", day, s.Extension))
}

// PromptPath is <dir>/prompt/<DD>.md
func (s Store) PromptPath(day int) string {
	return filepath.Join(s.Dir, promptDir, fmt.Sprintf("%02d.md", day))
}

// Ensure creates the output directories if they don't exist yet.
func (s Store) Ensure() error {
	err := os.MkdirAll(filepath.Join(s.Dir, promptDir), 0755)
	if err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

// HasPrompt reports whether the prompt for `day` is on disk and
// contains PartTwoMarker.
func (s Store) HasPrompt(day int) (bool, error) {
	contents, err := os.ReadFile(s.PromptPath(day))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read prompt: %w", err)
	}
	return strings.Contains(string(contents), PartTwoMarker), nil
}

// HasInput reports whether an input file exists for `day`, its contents
// are never looked at.
func (s Store) HasInput(day int) (bool, error) {
	_, err := os.Stat(s.InputPath(day))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat input: %w", err)
	}
	return true, nil
}

func (s Store) WritePrompt(day int, text string) error {
	return write(s.PromptPath(day), text)
}

func (s Store) WriteInput(day int, text string) error {
	return write(s.InputPath(day), text)
}

func write(path, text string) error {
	err := os.WriteFile(path, []byte(text), 0644)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
