package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/showcase/internal/assets"
	"github.com/ziadkadry99/showcase/internal/catalog"
	"github.com/ziadkadry99/showcase/internal/notifications"
	"github.com/ziadkadry99/showcase/internal/pages"
	"github.com/ziadkadry99/showcase/internal/session"
)

// Options configures a Site.
type Options struct {
	Loader   *assets.Loader
	Hub      *notifications.Hub
	Sessions *session.Store
	Policy   catalog.SelectionPolicy
	// DataFS, when set, is served under /data/.
	DataFS fs.FS
	Logger *zap.Logger
}

// Site renders the showcase pages over the current page set. The set can be
// swapped at any time; requests in flight keep the one they started with.
type Site struct {
	set      atomic.Pointer[pages.Set]
	loader   *assets.Loader
	hub      *notifications.Hub
	sessions *session.Store
	policy   catalog.SelectionPolicy
	dataFS   fs.FS
	logger   *zap.Logger
	md       *Markdown
	tmpl     map[string]*template.Template
}

type navLink struct {
	Title string
	Href  string
}

var nav = []navLink{
	{"Home", "/"},
	{"Documentation", "/documentation"},
	{"Workflows", "/workflows"},
	{"Architecture", "/architecture"},
	{"Implementation", "/implementation"},
	{"Analysis", "/analysis"},
	{"Downloads", "/downloads"},
}

// layoutData is the root value every page template is executed with.
type layoutData struct {
	Title   string
	Active  string
	Nav     []navLink
	Flash   []notifications.Notification
	Loading bool
	Page    any
}

// New creates a Site. Pages render a loading state until Swap is called.
func New(opts Options) (*Site, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Hub == nil {
		opts.Hub = notifications.NewHub(0)
	}
	if opts.Policy == "" {
		opts.Policy = catalog.PolicyRetain
	}
	if opts.Loader == nil {
		return nil, fmt.Errorf("site: loader is required")
	}

	s := &Site{
		loader:   opts.Loader,
		hub:      opts.Hub,
		sessions: opts.Sessions,
		policy:   opts.Policy,
		dataFS:   opts.DataFS,
		logger:   opts.Logger,
		md:       NewMarkdown(),
	}
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	s.tmpl = tmpl
	return s, nil
}

func parseTemplates() (map[string]*template.Template, error) {
	funcs := template.FuncMap{
		"link": link,
		"pct":  percent,
		"inc":  func(i int) int { return i + 1 },
		"join": strings.Join,
	}
	base, err := template.New("layout").Funcs(funcs).Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}
	if _, err := base.Parse(filterForm); err != nil {
		return nil, fmt.Errorf("parsing filter template: %w", err)
	}

	sources := map[string]string{
		"home":           homeTemplate,
		"documentation":  documentationTemplate,
		"workflows":      workflowsTemplate,
		"architecture":   architectureTemplate,
		"implementation": implementationTemplate,
		"analysis":       analysisTemplate,
		"downloads":      downloadsTemplate,
		"notfound":       notFoundTemplate,
	}
	out := make(map[string]*template.Template, len(sources))
	for name, src := range sources {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning layout for %s: %w", name, err)
		}
		if _, err := t.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

// Set returns the page set currently served, or nil while loading.
func (s *Site) Set() *pages.Set { return s.set.Load() }

// Swap installs set and returns the previous one.
func (s *Site) Swap(set *pages.Set) *pages.Set { return s.set.Swap(set) }

// Reload builds a fresh page set and swaps it in. The old stores are
// discarded once no request uses them.
func (s *Site) Reload(ctx context.Context) error {
	set, err := pages.Build(ctx, s.loader, s.hub)
	if err != nil {
		return fmt.Errorf("building pages: %w", err)
	}
	s.Swap(set)

	var unavailable int
	for _, c := range set.Catalogs() {
		unavailable += len(c.Store.Unavailable())
	}
	s.logger.Info("content loaded",
		zap.Int("documents", set.Docs.Store.Len()),
		zap.Int("workflows", set.Workflows.Store.Len()),
		zap.Int("unavailable", unavailable),
	)
	return nil
}

// Hub returns the notification hub the site publishes to.
func (s *Site) Hub() *notifications.Hub { return s.hub }

// RegisterRoutes mounts the pages, the JSON API and static assets.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get("/static/style.css", staticHandler("text/css; charset=utf-8", cssContent))
	r.Get("/static/script.js", staticHandler("application/javascript; charset=utf-8", jsContent))
	if s.dataFS != nil {
		r.Handle("/data/*", http.StripPrefix("/data/", http.FileServer(http.FS(s.dataFS))))
	}

	r.Group(func(r chi.Router) {
		r.Use(session.Middleware(s.sessions, s.logger))

		r.Get("/", s.handleHome)
		r.Get("/documentation", s.handleDocumentation)
		r.Get("/documentation/{id}/download", s.handleExport(pages.Documentation))
		r.Get("/workflows", s.handleWorkflows)
		r.Get("/workflows/{id}/download", s.handleExport(pages.Workflows))
		r.Get("/architecture", s.handleArchitecture)
		r.Get("/implementation", s.handleImplementation)
		r.Post("/implementation/steps/{id}", s.handleToggleStep)
		r.Get("/analysis", s.handleAnalysis)
		r.Get("/downloads", s.handleDownloads)
		r.Get("/downloads/bulk", s.handleBulkDownload)
		r.Get("/downloads/{id}", s.handleDownload)

		r.Get("/api/catalogs", s.handleListCatalogs)
		r.Get("/api/catalogs/{name}", s.handleCatalog)
		r.Get("/api/catalogs/{name}/entries/{id}", s.handleEntry)

		notifications.RegisterRoutes(r, s.hub, session.ID, s.logger)
	})
}

func staticHandler(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

// render executes a page template. Session notifications queued for the
// request are drained into the page.
func (s *Site) render(w http.ResponseWriter, r *http.Request, status int, name, title, active string, page any) {
	data := layoutData{
		Title:   title,
		Active:  active,
		Nav:     nav,
		Flash:   s.hub.Flash(session.ID(r)),
		Loading: page == nil,
		Page:    page,
	}

	var buf bytes.Buffer
	if err := s.tmpl[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		s.logger.Error("rendering page", zap.String("page", name), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// renderLoading answers page requests made before the first load finished.
func (s *Site) renderLoading(w http.ResponseWriter, r *http.Request, title, active string) {
	w.Header().Set("Retry-After", "1")
	s.render(w, r, http.StatusServiceUnavailable, "notfound", title, active, nil)
}

func (s *Site) notFound(w http.ResponseWriter, r *http.Request, msg string) {
	s.render(w, r, http.StatusNotFound, "notfound", "Not found", "", msg)
}

// link builds a page URL that reproduces st with id selected.
func link(path string, st catalog.State, id string) string {
	v := url.Values{}
	if st.Query != "" {
		v.Set("q", st.Query)
	}
	if st.Category != "" && st.Category != catalog.AllCategories {
		v.Set("category", st.Category)
	}
	if id != "" {
		v.Set("selected", id)
	}
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}

func percent(n, total int) int {
	if total <= 0 {
		return 0
	}
	return n * 100 / total
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
