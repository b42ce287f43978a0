package export

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ziadkadry99/showcase/internal/catalog"
)

// ErrUnavailable is returned when an entry has no real content to export.
var ErrUnavailable = errors.New("content not available")

const (
	MIMEMarkdown = "text/markdown"
	MIMEJSON     = "application/json"
	MIMEZip      = "application/zip"
	MIMEBinary   = "application/octet-stream"
)

// File is a ready-to-save export.
type File struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Entry builds the downloadable file for e. Markdown is exported byte for
// byte; workflows are re-serialized from the parsed definition; anything
// else is exported raw.
func Entry(e catalog.Entry) (File, error) {
	if !e.Content.Available() {
		return File{}, fmt.Errorf("exporting %s: %w", e.ID, ErrUnavailable)
	}

	name := e.Filename
	if name == "" {
		name = e.ID
	}

	switch {
	case e.Format == catalog.FormatWorkflow && e.Content.Workflow != nil:
		data, err := e.Content.Workflow.Marshal()
		if err != nil {
			return File{}, fmt.Errorf("exporting %s: %w", e.ID, err)
		}
		return File{Name: name, MIMEType: MIMEJSON, Data: data}, nil
	case e.Format == catalog.FormatMarkdown:
		return File{Name: name, MIMEType: MIMEMarkdown, Data: []byte(e.Content.Text)}, nil
	default:
		if len(e.Content.Raw) == 0 {
			return File{}, fmt.Errorf("exporting %s: %w", e.ID, ErrUnavailable)
		}
		return File{Name: name, MIMEType: TypeByName(name), Data: e.Content.Raw}, nil
	}
}

// Raw builds a file from the bytes exactly as fetched, regardless of
// format. The download center uses it so files leave unchanged.
func Raw(e catalog.Entry) (File, error) {
	if !e.Content.Available() || len(e.Content.Raw) == 0 {
		return File{}, fmt.Errorf("exporting %s: %w", e.ID, ErrUnavailable)
	}
	name := e.Filename
	if name == "" {
		name = e.ID
	}
	return File{Name: name, MIMEType: TypeByName(name), Data: e.Content.Raw}, nil
}

// TypeByName maps a filename to the MIME type used for downloads.
func TypeByName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return MIMEMarkdown
	case ".json":
		return MIMEJSON
	case ".zip":
		return MIMEZip
	}
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return MIMEBinary
}

// Saver persists an exported file.
type Saver interface {
	Save(ctx context.Context, f File) error
}

// DirSaver writes files into a directory. Each save goes through a temp
// file and a rename so a failed save never leaves a partial file behind.
type DirSaver struct {
	Dir string
}

func (s DirSaver) Save(ctx context.Context, f File) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := filepath.Base(f.Name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return fmt.Errorf("saving: invalid file name %q", f.Name)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(f.Data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.Dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming %s: %w", name, err)
	}
	return nil
}

// HTTPSaver sends files as attachments on an HTTP response.
type HTTPSaver struct {
	W http.ResponseWriter
}

func (s HTTPSaver) Save(_ context.Context, f File) error {
	h := s.W.Header()
	h.Set("Content-Type", f.MIMEType)
	h.Set("Content-Length", strconv.Itoa(len(f.Data)))
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filepath.Base(f.Name)}))
	s.W.WriteHeader(http.StatusOK)
	if _, err := s.W.Write(f.Data); err != nil {
		return fmt.Errorf("writing %s: %w", f.Name, err)
	}
	return nil
}
