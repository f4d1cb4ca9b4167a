package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/pelletier/go-toml/v2"
)

// ParseError is returned when a config file exists but is not valid TOML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Path, e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func splitExt(f string) (string, string) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i] == '.' {
			return f[0:i], f[i+1:]
		}
	}
	return f, ""
}

// LocalPath returns the path of the local override file for `name`,
// "Fetch.toml" becomes "Fetch.local.toml".
func LocalPath(name string) string {
	prefixname, ext := splitExt(filepath.Base(name))
	if ext == "" {
		return filepath.Join(filepath.Dir(name), prefixname+".local")
	}
	return filepath.Join(
		filepath.Dir(name),
		fmt.Sprintf("%s.local.%s", prefixname, ext),
	)
}

func readTable(path string) (map[string]any, bool, error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	table := map[string]any{}
	err = toml.Unmarshal(contents, &table)
	if err != nil {
		return nil, true, &ParseError{Path: path, Err: err}
	}
	return table, true, nil
}

// reads a TOML configuration file into a generic table, `name` should come
// with a file extension, it will automatically be lopped off to produce the
// other extensions.
// this function will merge the following files, where higher number is more prioritized.
// 1. <name>.<ext>
// 2. <name>.local.<ext>
//
// tables present in both files are merged key by key, anything else is
// replaced wholesale by the local file.
func ReadConfig(name string) (map[string]any, error) {
	out, found, err := readTable(name)
	if err != nil {
		return nil, err
	}
	allNotFound := !found
	if out == nil {
		out = map[string]any{}
	}

	localFilepath := LocalPath(name)
	override, found, err := readTable(localFilepath)
	if err != nil {
		return nil, err
	}
	if found {
		err = mergeTables(out, override)
		if err != nil {
			return nil, err
		}
		slog.Info("merging config with local overrides", "local", localFilepath)
		allNotFound = false
	}

	if allNotFound {
		return nil, os.ErrNotExist
	}

	return out, nil
}

func mergeTables(dst, src map[string]any) error {
	for key, value := range src {
		srcTable, srcIsTable := value.(map[string]any)
		dstTable, dstIsTable := dst[key].(map[string]any)
		if !srcIsTable || !dstIsTable {
			dst[key] = value
			continue
		}
		err := mergo.Merge(&dstTable, srcTable, mergo.WithOverride)
		if err != nil {
			return fmt.Errorf("merge table %s: %w", key, err)
		}
		dst[key] = dstTable
	}
	return nil
}
