package edits

import (
	"fmt"
	"os"
	"strings"
)

// MaxFileSize is the largest edits file accepted, in bytes.
const MaxFileSize = 250000

// ReadFile loads an edits file's full text for import. Files whose
// name does not end in .json, or that exceed MaxFileSize, are rejected
// before any read of the contents.
func ReadFile(path string) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".json") {
		return "", fmt.Errorf("only .json files can be imported")
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if info.Size() > MaxFileSize {
		return "", fmt.Errorf("file too large (%d bytes, limit %d)", info.Size(), MaxFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// Summary is the verdict line shown before an import is applied.
func (a Accepted) Summary() string {
	if a.Ignored > 0 {
		return fmt.Sprintf("Ready to import %d edits (ignored %d)", len(a.Overrides), a.Ignored)
	}
	return fmt.Sprintf("Ready to import %d edits", len(a.Overrides))
}
