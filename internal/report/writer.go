package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"finview/internal/core"
)

// FileNameLayout names snapshots written without an explicit name.
const FileNameLayout = "report_20060102_150405.txt"

// Writer persists rendered ledgers under a directory.
type Writer struct {
	dir string
	now func() time.Time
}

func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir, now: time.Now}
}

// WithClock replaces the time source used for default file names.
func (w *Writer) WithClock(now func() time.Time) *Writer {
	w.now = now
	return w
}

// FileName returns name, or the timestamped default when name is empty.
func (w *Writer) FileName(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return w.now().Format(FileNameLayout)
}

// Write renders l and stores it as UTF-8 text, returning the file path.
// A name containing a path separator, or naming a file that already exists,
// is rejected.
func (w *Writer) Write(name string, l core.Ledger) (string, error) {
	name = w.FileName(name)
	if name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: report name %q", core.ErrInvalidArgument, name)
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}
	path := filepath.Join(w.dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: report %q already exists", core.ErrInvalidArgument, name)
		}
		return "", fmt.Errorf("create report: %w", err)
	}
	if _, err := f.WriteString(Render(l)); err != nil {
		f.Close()
		return "", fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	return path, nil
}
