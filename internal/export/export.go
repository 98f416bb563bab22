package export

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/asherpoirier/website/internal/page"
)

type RenderFunc func(wr io.Writer, name string, data any) error

// Write renders doc to dir/index.html and copies every file in static into
// dir, keeping relative paths, so the page can be served by any static host.
func Write(dir string, render RenderFunc, static fs.FS, doc page.Document) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	var buf bytes.Buffer
	if err := render(&buf, "index.html", doc); err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}

	return fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(static, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	})
}
