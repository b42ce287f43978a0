package site

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/showcase/internal/catalog"
	"github.com/ziadkadry99/showcase/internal/pages"
	"github.com/ziadkadry99/showcase/internal/workflow"
)

type catalogSummary struct {
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Entries     int       `json:"entries"`
	Pending     int       `json:"pending"`
	Unavailable int       `json:"unavailable"`
	LoadedAt    time.Time `json:"loaded_at"`
}

type catalogResponse struct {
	Name       string                  `json:"name"`
	State      catalog.State           `json:"state"`
	Categories []catalog.CategoryCount `json:"categories"`
	Entries    []catalog.Entry         `json:"entries"`
	Selected   *entryView              `json:"selected,omitempty"`
}

type entryView struct {
	catalog.Entry
	Status    string               `json:"status"`
	Size      int64                `json:"size"`
	SizeLabel string               `json:"size_label"`
	Text      string               `json:"text,omitempty"`
	Reason    string               `json:"reason,omitempty"`
	Workflow  *workflow.Definition `json:"workflow,omitempty"`
}

func newEntryView(e catalog.Entry) *entryView {
	v := &entryView{
		Entry:     e,
		Status:    e.Content.Status.String(),
		Size:      e.Content.Size,
		SizeLabel: e.SizeLabel(),
		Text:      e.Content.Text,
		Reason:    e.Content.Reason,
	}
	if e.Format == catalog.FormatWorkflow {
		v.Workflow = e.Content.Workflow
		v.Text = ""
	}
	return v
}

func (s *Site) handleListCatalogs(w http.ResponseWriter, r *http.Request) {
	set := s.Set()
	if set == nil {
		writeLoading(w)
		return
	}
	out := make([]catalogSummary, 0, len(set.Catalogs()))
	for _, c := range set.Catalogs() {
		out = append(out, catalogSummary{
			Name:        c.Name,
			Title:       c.Title,
			Entries:     c.Store.Len(),
			Pending:     c.Store.Pending(),
			Unavailable: len(c.Store.Unavailable()),
			LoadedAt:    set.LoadedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleCatalog answers with the catalog state for the q, category and
// selected query parameters, the same way the HTML pages compute it.
func (s *Site) handleCatalog(w http.ResponseWriter, r *http.Request) {
	set := s.Set()
	if set == nil {
		writeLoading(w)
		return
	}
	c, ok := set.Catalog(chi.URLParam(r, "name"))
	if !ok {
		writeError(w, http.StatusNotFound, "catalog not found")
		return
	}

	v := s.browse(c, r.URL.Query(), c.Name != pages.Downloads)
	resp := catalogResponse{
		Name:       c.Name,
		State:      v.State,
		Categories: v.Filter.Categories,
		Entries:    v.Visible,
	}
	if resp.Entries == nil {
		resp.Entries = []catalog.Entry{}
	}
	if v.Current != nil {
		resp.Selected = newEntryView(*v.Current)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Site) handleEntry(w http.ResponseWriter, r *http.Request) {
	set := s.Set()
	if set == nil {
		writeLoading(w)
		return
	}
	c, ok := set.Catalog(chi.URLParam(r, "name"))
	if !ok {
		writeError(w, http.StatusNotFound, "catalog not found")
		return
	}
	e, ok := c.Store.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "entry not found")
		return
	}
	writeJSON(w, http.StatusOK, newEntryView(e))
}

func writeLoading(w http.ResponseWriter) {
	w.Header().Set("Retry-After", "1")
	writeError(w, http.StatusServiceUnavailable, "content is loading")
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": strings.TrimSpace(msg)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
