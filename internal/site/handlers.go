package site

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/showcase/internal/catalog"
	"github.com/ziadkadry99/showcase/internal/export"
	"github.com/ziadkadry99/showcase/internal/notifications"
	"github.com/ziadkadry99/showcase/internal/pages"
	"github.com/ziadkadry99/showcase/internal/session"
	"github.com/ziadkadry99/showcase/internal/workflow"
)

type filterView struct {
	Path        string
	Searchable  bool
	Placeholder string
	ShowCounts  bool
	State       catalog.State
	Categories  []catalog.CategoryCount
}

type browseView struct {
	Filter  filterView
	State   catalog.State
	Visible []catalog.Entry
	Current *catalog.Entry
}

type homeView struct {
	Docs            int
	DocsLoaded      int
	Workflows       int
	WorkflowsLoaded int
	Features        []pages.Feature
	QuickAccess     []pages.Link
}

type documentationView struct {
	browseView
	HTML template.HTML
}

type workflowsView struct {
	browseView
	JSONView   bool
	JSON       string
	Edges      []workflow.Edge
	ToggleView string
}

type architectureView struct {
	Views      []pages.View
	Selected   pages.View
	Components []pages.Component
	Principles []pages.Principle
	Stages     []pages.Stage
}

type implementationView struct {
	Phases         []pages.Phase
	Phase          pages.Phase
	Done           map[string]bool
	Completed      int
	Total          int
	PhaseCompleted int
	Prev           *pages.Phase
	Next           *pages.Phase
}

type platformItem struct {
	Entry    catalog.Entry
	Platform pages.Platform
}

type analysisView struct {
	browseView
	Items    []platformItem
	Platform *pages.Platform
	Stats    pages.PlatformStats
}

type downloadItem struct {
	Entry      catalog.Entry
	Meta       pages.Download
	Downloaded bool
}

type downloadsView struct {
	State      catalog.State
	Categories []catalog.CategoryCount
	Items      []downloadItem
	Bulk       *pages.Download
}

// browse rebuilds the page state from the query string. The selection is
// applied first so that a clearing policy can drop it when the filter
// hides it.
func (s *Site) browse(c *pages.Catalog, q url.Values, searchable bool) browseView {
	st := c.State(s.policy)
	var events []catalog.Event
	if id := q.Get("selected"); id != "" {
		events = append(events, catalog.Select{ID: id})
	}
	events = append(events, catalog.SetCategory{Category: q.Get("category")})
	if searchable {
		events = append(events, catalog.SetQuery{Query: strings.TrimSpace(q.Get("q"))})
	}
	st = catalog.ReduceAll(st, c.Store, events...)

	v := browseView{
		State:   st,
		Visible: st.Visible(c.Store),
		Filter: filterView{
			Path:       "/" + c.Name,
			Searchable: searchable,
			State:      st,
			Categories: catalog.CategoryCounts(c.Store.Entries()),
		},
	}
	if e, ok := st.Current(c.Store); ok {
		v.Current = &e
	}
	return v
}

func (s *Site) handleHome(w http.ResponseWriter, r *http.Request) {
	set := s.Set()
	if set == nil {
		s.renderLoading(w, r, "Home", "/")
		return
	}
	v := homeView{
		Docs:        set.Docs.Store.Len(),
		Workflows:   set.Workflows.Store.Len(),
		Features:    set.Features(),
		QuickAccess: set.QuickAccess(),
	}
	v.DocsLoaded = v.Docs - len(set.Docs.Store.Unavailable())
	v.WorkflowsLoaded = v.Workflows - len(set.Workflows.Store.Unavailable())
	s.render(w, r, http.StatusOK, "home", "Home", "/", v)
}

func (s *Site) handleDocumentation(w http.ResponseWriter, r *http.Request) {
	set := s.Set()
	if set == nil {
		s.renderLoading(w, r, "Documentation Hub", "/documentation")
		return
	}
	v := documentationView{browseView: s.browse(set.Docs, r.URL.Query(), true)}
	v.Filter.Placeholder = "Search documentation..."
	if v.Current != nil && v.Current.Content.Available() {
		html, err := s.md.Render(v.Current.Content.Text)
		if err != nil {
			s.logger.Warn("rendering document", zap.String("id", v.Current.ID), zap.Error(err))
			html = template.HTML("<pre>" + template.HTMLEscapeString(v.Current.Content.Text) + "</pre>")
		}
		v.HTML = html
	}
	s.render(w, r, http.StatusOK, "documentation", "Documentation Hub", "/documentation", v)
}

func (s *Site) handleWorkflows(w http.ResponseWriter, r *http.Request) {
	set := s.Set()
	if set == nil {
		s.renderLoading(w, r, "Workflow Explorer", "/workflows")
		return
	}
	q := r.URL.Query()
	v := workflowsView{browseView: s.browse(set.Workflows, q, true)}
	v.Filter.Placeholder = "Search workflows..."
	v.JSONView = q.Get("view") == "json"

	if v.Current != nil {
		toggle := link("/workflows", v.State, v.Current.ID)
		if !v.JSONView {
			if strings.Contains(toggle, "?") {
				toggle += "&view=json"
			} else {
				toggle += "?view=json"
			}
		}
		v.ToggleView = toggle

		if def := v.Current.Content.Workflow; def != nil {
			v.Edges = def.Edges()
			if v.JSONView {
				data, err := def.Marshal()
				if err != nil {
					s.logger.Warn("encoding workflow", zap.String("id", v.Current.ID), zap.Error(err))
				}
				v.JSON = string(data)
			}
		}
	}
	s.render(w, r, http.StatusOK, "workflows", "Workflow Explorer", "/workflows", v)
}

func (s *Site) handleArchitecture(w http.ResponseWriter, r *http.Request) {
	set := s.Set()
	if set == nil {
		s.renderLoading(w, r, "Architecture Viewer", "/architecture")
		return
	}
	c := set.Architecture
	st := c.State(s.policy)
	if id := r.URL.Query().Get("view"); id != "" {
		st = catalog.Reduce(st, c.Store, catalog.Select{ID: id})
	}

	v := architectureView{
		Components: set.Components(),
		Principles: set.Principles(),
		Stages:     set.Stages(),
	}
	for _, e := range c.Store.Entries() {
		if view, ok := set.View(e.ID); ok {
			v.Views = append(v.Views, view)
		}
	}
	v.Selected, _ = set.View(st.Selected)
	s.render(w, r, http.StatusOK, "architecture", "Architecture Viewer", "/architecture", v)
}

func (s *Site) handleImplementation(w http.ResponseWriter, r *http.Request) {
	set := s.Set()
	if set == nil {
		s.renderLoading(w, r, "Implementation Guide", "/implementation")
		return
	}
	c := set.Implementation
	st := c.State(s.policy)
	if id := r.URL.Query().Get("phase"); id != "" {
		st = catalog.Reduce(st, c.Store, catalog.Select{ID: id})
	}

	done := map[string]bool{}
	if s.sessions != nil {
		var err error
		if done, err = s.sessions.CompletedSteps(r.Context(), session.ID(r)); err != nil {
			s.logger.Warn("loading completed steps", zap.Error(err))
			done = map[string]bool{}
		}
	}

	v := implementationView{Done: done, Total: set.TotalSteps()}
	for _, e := range c.Store.Entries() {
		if p, ok := set.Phase(e.ID); ok {
			v.Phases = append(v.Phases, p)
		}
	}
	for id := range done {
		if _, ok := set.PhaseOfStep(id); ok {
			v.Completed++
		}
	}
	for i, p := range v.Phases {
		if p.ID != st.Selected {
			continue
		}
		v.Phase = p
		if i > 0 {
			v.Prev = &v.Phases[i-1]
		}
		if i < len(v.Phases)-1 {
			v.Next = &v.Phases[i+1]
		}
	}
	for _, step := range v.Phase.Steps {
		if done[step.ID] {
			v.PhaseCompleted++
		}
	}
	s.render(w, r, http.StatusOK, "implementation", "Implementation Guide", "/implementation", v)
}

func (s *Site) handleToggleStep(w http.ResponseWriter, r *http.Request) {
	set := s.Set()
	if set == nil {
		http.Error(w, "content is loading", http.StatusServiceUnavailable)
		return
	}
	id := chi.URLParam(r, "id")
	phase, ok := set.PhaseOfStep(id)
	if !ok {
		if wantsJSON(r) {
			writeError(w, http.StatusNotFound, "step not found")
			return
		}
		s.notFound(w, r, fmt.Sprintf("No implementation step %q.", id))
		return
	}
	if s.sessions == nil {
		http.Error(w, "step tracking is disabled", http.StatusServiceUnavailable)
		return
	}

	completed, err := s.sessions.ToggleStep(r.Context(), session.ID(r), id)
	if err != nil {
		s.logger.Error("toggling step", zap.String("step", id), zap.Error(err))
		http.Error(w, "could not update step", http.StatusInternalServerError)
		return
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]any{"step": id, "phase": phase, "completed": completed})
		return
	}
	http.Redirect(w, r, "/implementation?phase="+url.QueryEscape(phase), http.StatusSeeOther)
}

func (s *Site) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	set := s.Set()
	if set == nil {
		s.renderLoading(w, r, "Platform Analysis", "/analysis")
		return
	}
	v := analysisView{browseView: s.browse(set.Analysis, r.URL.Query(), true), Stats: set.PlatformStats()}
	v.Filter.Placeholder = "Search platforms..."
	for _, e := range v.Visible {
		p, _ := set.Platform(e.ID)
		v.Items = append(v.Items, platformItem{Entry: e, Platform: p})
	}
	if v.Current != nil {
		if p, ok := set.Platform(v.Current.ID); ok {
			v.Platform = &p
		}
	}
	s.render(w, r, http.StatusOK, "analysis", "Platform Analysis", "/analysis", v)
}

func (s *Site) handleDownloads(w http.ResponseWriter, r *http.Request) {
	set := s.Set()
	if set == nil {
		s.renderLoading(w, r, "Download Center", "/downloads")
		return
	}
	b := s.browse(set.Downloads, r.URL.Query(), false)

	downloaded := map[string]bool{}
	if s.sessions != nil {
		var err error
		if downloaded, err = s.sessions.Downloaded(r.Context(), session.ID(r)); err != nil {
			s.logger.Warn("loading downloads", zap.Error(err))
			downloaded = map[string]bool{}
		}
	}

	v := downloadsView{State: b.State, Categories: b.Filter.Categories}
	for _, e := range b.Visible {
		meta, _ := set.Download(e.ID)
		v.Items = append(v.Items, downloadItem{Entry: e, Meta: meta, Downloaded: downloaded[e.ID]})
	}
	if d, ok := set.Download(pages.BulkDownloadID); ok {
		v.Bulk = &d
	}
	s.render(w, r, http.StatusOK, "downloads", "Download Center", "/downloads", v)
}

// handleExport serves a loaded documentation or workflow entry as a file.
func (s *Site) handleExport(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		set := s.Set()
		if set == nil {
			http.Error(w, "content is loading", http.StatusServiceUnavailable)
			return
		}
		c, ok := set.Catalog(name)
		if !ok {
			s.notFound(w, r, fmt.Sprintf("No catalog %q.", name))
			return
		}
		id := chi.URLParam(r, "id")
		e, ok := c.Store.Get(id)
		if !ok {
			s.notFound(w, r, fmt.Sprintf("No entry %q.", id))
			return
		}

		sid := session.ID(r)
		f, err := export.Entry(e)
		if err != nil {
			s.logger.Info("export failed", zap.String("catalog", name), zap.String("id", id), zap.Error(err))
			s.hub.Publish(notifications.Notification{Severity: notifications.SeverityError, Message: "Failed to download " + e.Title, Session: sid})
			http.Redirect(w, r, link("/"+name, catalog.State{}, id), http.StatusSeeOther)
			return
		}
		if err := (export.HTTPSaver{W: w}).Save(r.Context(), f); err != nil {
			s.logger.Warn("writing export", zap.String("id", id), zap.Error(err))
			return
		}
		s.hub.Publish(notifications.Notification{Severity: notifications.SeveritySuccess, Message: "Downloaded " + e.Title, Session: sid})
	}
}

func (s *Site) handleDownload(w http.ResponseWriter, r *http.Request) {
	s.download(w, r, chi.URLParam(r, "id"))
}

func (s *Site) handleBulkDownload(w http.ResponseWriter, r *http.Request) {
	s.download(w, r, pages.BulkDownloadID)
}

// download fetches a download center item on demand and sends it unchanged.
func (s *Site) download(w http.ResponseWriter, r *http.Request, id string) {
	set := s.Set()
	if set == nil {
		http.Error(w, "content is loading", http.StatusServiceUnavailable)
		return
	}
	e, ok := set.Downloads.Store.Get(id)
	if !ok {
		s.notFound(w, r, fmt.Sprintf("No download %q.", id))
		return
	}

	sid := session.ID(r)
	e.Content = s.loader.Load(r.Context(), e)
	f, err := export.Raw(e)
	if err != nil {
		s.logger.Info("download failed", zap.String("id", id), zap.String("reason", e.Content.Reason))
		s.hub.Publish(notifications.Notification{Severity: notifications.SeverityError, Message: "Failed to download " + e.Title, Session: sid})
		http.Redirect(w, r, "/downloads", http.StatusSeeOther)
		return
	}

	if s.sessions != nil {
		if err := s.sessions.MarkDownloaded(r.Context(), sid, id); err != nil {
			s.logger.Warn("recording download", zap.String("id", id), zap.Error(err))
		}
	}
	if err := (export.HTTPSaver{W: w}).Save(r.Context(), f); err != nil {
		s.logger.Warn("writing download", zap.String("id", id), zap.Error(err))
		return
	}
	s.hub.Publish(notifications.Notification{Severity: notifications.SeveritySuccess, Message: "Downloaded " + e.Title, Session: sid})
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
