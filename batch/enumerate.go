// Package batch resizes every image of one directory into another.
package batch

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	zlog "github.com/go-imsto/imresize/log"
)

func logger() zlog.Logger {
	return zlog.Get()
}

// ListPaths returns the entries directly under dir, in listing order.
// An entry named exclude is left out. Entries whose metadata can not be read
// or whose name is not valid text are skipped without error.
func ListPaths(dir, exclude string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// entries read before a failure are kept
	entries, err := f.ReadDir(-1)
	if err != nil {
		if len(entries) == 0 {
			return nil, err
		}
		logger().Debugw("read dir partial", "dir", dir, "count", len(entries), "err", err)
	}

	paths := make([]string, 0, len(entries))
	for _, de := range entries {
		name := de.Name()
		if !utf8.ValidString(name) {
			logger().Debugw("skip entry", "dir", dir, "name", name, "reason", "invalid name")
			continue
		}
		if _, err := de.Info(); err != nil {
			logger().Debugw("skip entry", "dir", dir, "name", name, "err", err)
			continue
		}
		if exclude != "" && name == exclude {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths, nil
}
