package subtitle

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dimchansky/utfbom"
)

// reports whether path carries the SRT extension, ignoring case
func IsSubtitleFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Extension)
}

// ReadFile returns the file contents as text with any UTF-8 BOM removed.
func ReadFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", &IOError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	data, err := io.ReadAll(utfbom.SkipOnly(file))
	if err != nil {
		return "", &IOError{Op: "read", Path: path, Err: err}
	}
	return string(data), nil
}

// WriteFile writes text to path, creating parent directories.
func WriteFile(path, text string) error {
	if err := ensureDir(path); err != nil {
		return &IOError{Op: "create directory for", Path: path, Err: err}
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// ListFiles returns the names of the regular SRT files directly inside dir,
// sorted.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &IOError{Op: "list", Path: dir, Err: err}
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !IsSubtitleFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
