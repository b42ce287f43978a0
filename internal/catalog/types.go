package catalog

import (
	"fmt"
	"math"
	"path"

	"github.com/ziadkadry99/showcase/internal/workflow"
)

// AllCategories is the pseudo-category that disables category filtering.
// It is synthesized by Categories and never stored on an entry.
const AllCategories = "All"

// Placeholder texts substituted for content that could not be loaded.
const (
	PlaceholderUnavailable = "Content not available"
	PlaceholderError       = "Error loading content"
)

// Format describes the kind of asset an entry is backed by.
type Format string

const (
	FormatNone     Format = ""         // static entry, no asset
	FormatMarkdown Format = "markdown" // UTF-8 markdown, rendered verbatim
	FormatWorkflow Format = "workflow" // N8N workflow JSON
	FormatArchive  Format = "archive"  // opaque file, fetched and served as-is
)

// Status is the load state of an entry's content.
type Status int

const (
	StatusPending Status = iota
	StatusLoaded
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusLoaded:
		return "loaded"
	case StatusUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Content is the payload attached to an entry. Exactly one of Text or
// Workflow is meaningful depending on the entry format; Raw always holds the
// bytes the content was decoded from.
type Content struct {
	Status   Status
	Text     string
	Workflow *workflow.Definition
	Raw      []byte
	Size     int64
	Reason   string // why the content is unavailable
}

// Loaded builds loaded content from raw bytes. Text is set for everything
// but workflows.
func Loaded(raw []byte, def *workflow.Definition) Content {
	c := Content{Status: StatusLoaded, Raw: raw, Size: int64(len(raw)), Workflow: def}
	if def == nil {
		c.Text = string(raw)
	}
	return c
}

// Placeholder builds the unavailable sentinel with the given display text.
func Placeholder(text, reason string) Content {
	return Content{Status: StatusUnavailable, Text: text, Reason: reason}
}

// Available reports whether real content is attached.
func (c Content) Available() bool { return c.Status == StatusLoaded }

// SizeLabel renders a byte count the way the pages display it: whole
// kilobytes, rounded.
func SizeLabel(n int64) string {
	return fmt.Sprintf("%dKB", int64(math.Round(float64(n)/1024)))
}

// Config declares one catalog entry. Static entries carry their content
// inline; asset-backed entries are filled in by the asset loader.
type Config struct {
	ID          string
	Title       string
	Description string
	Category    string
	Format      Format
	Filename    string
	Dir         string
	Content     *Content
}

// Entry is one item of a catalog.
type Entry struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Format      Format  `json:"format,omitempty"`
	Filename    string  `json:"filename,omitempty"`
	Dir         string  `json:"-"`
	Content     Content `json:"-"`
}

// Path is the asset path of the entry relative to the content root.
func (e Entry) Path() string {
	if e.Filename == "" {
		return ""
	}
	if e.Dir == "" {
		return e.Filename
	}
	return path.Join(e.Dir, e.Filename)
}

// Static reports whether the entry has no backing asset.
func (e Entry) Static() bool { return e.Format == FormatNone }

// SizeLabel is the display size of the loaded content.
func (e Entry) SizeLabel() string { return SizeLabel(e.Content.Size) }
