package readme

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Marker lines delimiting the activity section in the target document.
const (
	StartMarker = "<!--START_SECTION:activity-->"
	EndMarker   = "<!--END_SECTION:activity-->"
)

// Updater splices a rendered activity block between the section markers of
// a markdown document, leaving everything outside the markers untouched.
// Follows Single Responsibility Principle - only handles document I/O.
type Updater struct {
	path   string
	logger *slog.Logger
}

// NewUpdater creates a new document updater for the given path.
func NewUpdater(path string, logger *slog.Logger) *Updater {
	return &Updater{
		path:   path,
		logger: logger,
	}
}

// Update replaces the marked section with block. It reports whether the
// file content actually changed; an unchanged document is not rewritten,
// so re-running with identical input produces byte-identical output.
func (u *Updater) Update(block string) (bool, error) {
	current, err := os.ReadFile(u.path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to read %s: %w", u.path, err)
	}

	updated := splice(string(current), block)
	if string(current) == updated {
		u.logger.Info("document already up to date", "path", u.path)
		return false, nil
	}

	if err := writeAtomic(u.path, []byte(updated)); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", u.path, err)
	}

	u.logger.Info("document updated", "path", u.path, "bytes", len(updated))
	return true, nil
}

// splice returns content with the text between the markers replaced by
// block. When either marker is missing, the whole document becomes a fresh
// marked section so that the next run splices normally.
func splice(content, block string) string {
	section := StartMarker + "\n" + block + "\n" + EndMarker

	start := strings.Index(content, StartMarker)
	if start >= 0 {
		rest := content[start+len(StartMarker):]
		if endRel := strings.Index(rest, EndMarker); endRel >= 0 {
			end := start + len(StartMarker) + endRel + len(EndMarker)
			return content[:start] + section + content[end:]
		}
	}

	return section + "\n"
}

// writeAtomic writes data via a temporary file and rename, so a failed
// write never leaves a truncated document behind.
func writeAtomic(path string, data []byte) error {
	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile) // Cleanup temp file
		return err
	}
	return nil
}
