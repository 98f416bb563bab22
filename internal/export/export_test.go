package export

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/asherpoirier/website/internal/catalog"
	"github.com/asherpoirier/website/internal/page"
)

func testDocument(t *testing.T) page.Document {
	t.Helper()
	c, err := catalog.Default("", "")
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return page.NewRenderer(c, nil).Render()
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	static := fstest.MapFS{
		"static/style.css":  {Data: []byte("body{}")},
		"static/robots.txt": {Data: []byte("User-agent: *")},
	}

	var gotName string
	var gotDoc page.Document
	render := func(wr io.Writer, name string, data any) error {
		gotName = name
		gotDoc = data.(page.Document)
		_, err := wr.Write([]byte("<html>" + gotDoc.Brand.Name + "</html>"))
		return err
	}

	if err := Write(dir, render, static, testDocument(t)); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	if gotName != "index.html" {
		t.Errorf("expected index.html to be rendered, got %q", gotName)
	}
	if len(gotDoc.Plans) != 4 {
		t.Errorf("expected document with 4 plans, got %d", len(gotDoc.Plans))
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("failed to read index: %v", err)
	}
	if !strings.Contains(string(index), "Flux IPTV") {
		t.Errorf("unexpected index content %q", index)
	}

	css, err := os.ReadFile(filepath.Join(dir, "static", "style.css"))
	if err != nil {
		t.Fatalf("failed to read stylesheet: %v", err)
	}
	if string(css) != "body{}" {
		t.Errorf("unexpected stylesheet %q", css)
	}
	if _, err := os.Stat(filepath.Join(dir, "static", "robots.txt")); err != nil {
		t.Errorf("expected robots.txt to be copied: %v", err)
	}
}

func TestWriteRenderError(t *testing.T) {
	dir := t.TempDir()
	render := func(wr io.Writer, name string, data any) error {
		return errors.New("boom")
	}

	err := Write(dir, render, fstest.MapFS{}, testDocument(t))
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected render error, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "index.html")); !os.IsNotExist(err) {
		t.Error("index.html should not be written after a render error")
	}
}
