package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// Exporter writes a rendered report somewhere and returns its location.
type Exporter interface {
	Export(r *Report) (string, error)
}

// FileExporter writes reports as UTF-8 text files.
type FileExporter struct {
	Dir      string // empty = current directory
	Filename string // empty = timestamped default
}

// Export renders the report to disk and returns the file path.
func (e *FileExporter) Export(r *Report) (string, error) {
	name := e.Filename
	if name == "" {
		name = fmt.Sprintf("tradehunter_analysis_%s.txt", r.GeneratedAt.Format("20060102_150405"))
	}
	path := name
	if e.Dir != "" {
		if err := os.MkdirAll(e.Dir, 0o755); err != nil {
			return "", fmt.Errorf("create report dir: %w", err)
		}
		path = filepath.Join(e.Dir, name)
	}
	if err := os.WriteFile(path, []byte(Render(r)), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// NoopExporter renders nothing, used when export is disabled.
type NoopExporter struct{}

func (NoopExporter) Export(_ *Report) (string, error) { return "", nil }
