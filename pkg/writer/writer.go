// Package writer persists combined documents: into the output folder, to a
// single chosen path, or to the terminal.
package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Mode selects where a combined document goes.
type Mode int

const (
	ModeSave Mode = iota // write into the output folder
	ModeDisplay          // render to the terminal only
	ModeBoth             // both of the above
)

func (m Mode) String() string {
	switch m {
	case ModeSave:
		return "save"
	case ModeDisplay:
		return "display"
	case ModeBoth:
		return "save and display"
	default:
		return "unknown"
	}
}

// Saves reports whether the mode writes to disk.
func (m Mode) Saves() bool { return m == ModeSave || m == ModeBoth }

// Displays reports whether the mode renders to the terminal.
func (m Mode) Displays() bool { return m == ModeDisplay || m == ModeBoth }

// Writer performs all filesystem and terminal output for a run.
type Writer struct {
	out    io.Writer
	logger *zap.Logger
}

// New returns a Writer that renders display output to out (normally stdout).
func New(out io.Writer, logger *zap.Logger) *Writer {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{out: out, logger: logger}
}

// EnsureDir creates the output directory if it does not exist. Calling it on
// an existing directory is not an error.
func (w *Writer) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		w.logger.Error("Failed to create output directory", zap.String("dir", dir), zap.Error(err))
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	w.logger.Debug("Ensured output directory exists", zap.String("dir", dir))
	return nil
}

// SaveEntry writes content under dir using the entry's output name and
// returns the written path. An existing file at the target is overwritten.
// Names carrying path separators are rejected so an entry can never write
// outside the output directory.
func (w *Writer) SaveEntry(dir, name, content string) (string, error) {
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("output name %q contains a path separator", name)
	}
	path := filepath.Join(dir, name)
	if err := w.SaveFile(path, content); err != nil {
		return "", err
	}
	return path, nil
}

// SaveFile writes content to path, overwriting any existing file.
func (w *Writer) SaveFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		w.logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.logger.Debug("Wrote file", zap.String("path", path), zap.Int("bytes", len(content)))
	return nil
}

// Display renders markdown to the terminal. On a real terminal the content is
// styled with glamour; otherwise the raw markdown is emitted unchanged so the
// output stays pipe-friendly.
func (w *Writer) Display(content string) error {
	if f, ok := w.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err == nil {
			if rendered, rerr := r.Render(content); rerr == nil {
				_, werr := io.WriteString(w.out, rendered)
				return werr
			}
		}
		// Rendering problems fall through to raw output.
	}
	if _, err := io.WriteString(w.out, content); err != nil {
		return err
	}
	if !strings.HasSuffix(content, "\n") {
		_, _ = io.WriteString(w.out, "\n")
	}
	return nil
}
