package pages

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/showcase/internal/assets"
	"github.com/ziadkadry99/showcase/internal/catalog"
	"github.com/ziadkadry99/showcase/internal/notifications"
)

// Catalog is one page's store together with how the page browses it.
type Catalog struct {
	Name      string
	Title     string
	Store     *catalog.Store
	DefaultID string

	// MatchCategory makes the free-text query match category names too.
	MatchCategory bool
	// OnDemand catalogs are fetched per download instead of at startup.
	OnDemand bool
}

// State returns the initial browsing state of the catalog.
func (c *Catalog) State(policy catalog.SelectionPolicy) catalog.State {
	st := catalog.NewState(c.Store, c.DefaultID, policy)
	st.MatchCategory = c.MatchCategory
	return st
}

// Set is every catalog the site serves, built once per content load.
type Set struct {
	Docs           *Catalog
	Workflows      *Catalog
	Architecture   *Catalog
	Implementation *Catalog
	Analysis       *Catalog
	Downloads      *Catalog

	LoadedAt time.Time

	platforms map[string]Platform
	phases    map[string]Phase
	stepPhase map[string]string
	downloads map[string]Download
}

// New builds the catalogs with asset-backed entries still pending.
func New() (*Set, error) {
	s := &Set{
		platforms: make(map[string]Platform, len(platforms)),
		phases:    make(map[string]Phase, len(phases)),
		stepPhase: make(map[string]string),
		downloads: make(map[string]Download),
	}

	var err error
	if s.Docs, err = newCatalog(Documentation, "Documentation Hub", "main-guide", docConfigs()); err != nil {
		return nil, err
	}
	if s.Workflows, err = newCatalog(Workflows, "Workflow Explorer", "", workflowConfigs()); err != nil {
		return nil, err
	}
	s.Workflows.MatchCategory = true

	viewCfgs := make([]catalog.Config, len(views))
	for i, v := range views {
		viewCfgs[i] = catalog.Config{ID: v.ID, Title: v.Title, Description: v.Description, Category: "Architecture"}
	}
	if s.Architecture, err = newCatalog(Architecture, "Architecture Viewer", "overview", viewCfgs); err != nil {
		return nil, err
	}

	phaseCfgs := make([]catalog.Config, len(phases))
	for i, p := range phases {
		phaseCfgs[i] = catalog.Config{ID: p.ID, Title: p.Title, Description: p.Description, Category: "Implementation"}
		s.phases[p.ID] = p
		for _, st := range p.Steps {
			if prev, dup := s.stepPhase[st.ID]; dup {
				return nil, fmt.Errorf("step %q appears in phases %q and %q", st.ID, prev, p.ID)
			}
			s.stepPhase[st.ID] = p.ID
		}
	}
	if s.Implementation, err = newCatalog(Implementation, "Implementation Guide", "infrastructure", phaseCfgs); err != nil {
		return nil, err
	}

	platformCfgs := make([]catalog.Config, len(platforms))
	for i, p := range platforms {
		platformCfgs[i] = catalog.Config{ID: p.ID, Title: p.Name, Description: p.Description, Category: p.Category}
		s.platforms[p.ID] = p
	}
	if s.Analysis, err = newCatalog(Analysis, "Platform Analysis", "", platformCfgs); err != nil {
		return nil, err
	}

	items := downloadItems()
	dlCfgs := make([]catalog.Config, len(items))
	for i, it := range items {
		dlCfgs[i] = it.Config
		s.downloads[it.ID] = Download{ID: it.ID, Kind: it.Kind, Size: it.Size}
	}
	if s.Downloads, err = newCatalog(Downloads, "Download Center", "", dlCfgs); err != nil {
		return nil, err
	}
	s.Downloads.OnDemand = true

	return s, nil
}

func newCatalog(name, title, defaultID string, cfgs []catalog.Config) (*Catalog, error) {
	store, err := catalog.NewStore(cfgs)
	if err != nil {
		return nil, fmt.Errorf("building %s catalog: %w", name, err)
	}
	return &Catalog{Name: name, Title: title, Store: store, DefaultID: defaultID}, nil
}

// Build creates a Set and loads every startup catalog through loader.
// Load failures degrade entries to placeholders and are published to hub.
func Build(ctx context.Context, loader *assets.Loader, hub *notifications.Hub) (*Set, error) {
	s, err := New()
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range s.Catalogs() {
		if c.OnDemand {
			continue
		}
		c := c
		g.Go(func() error {
			loader.Populate(gctx, c.Store, hub)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.LoadedAt = time.Now()
	return s, nil
}

// Catalogs returns every catalog in navigation order.
func (s *Set) Catalogs() []*Catalog {
	return []*Catalog{s.Docs, s.Workflows, s.Architecture, s.Implementation, s.Analysis, s.Downloads}
}

// Catalog looks a catalog up by name.
func (s *Set) Catalog(name string) (*Catalog, bool) {
	for _, c := range s.Catalogs() {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

func (s *Set) Platform(id string) (Platform, bool) {
	p, ok := s.platforms[id]
	return p, ok
}

func (s *Set) Phase(id string) (Phase, bool) {
	p, ok := s.phases[id]
	return p, ok
}

// PhaseOfStep returns the phase id a step belongs to.
func (s *Set) PhaseOfStep(stepID string) (string, bool) {
	p, ok := s.stepPhase[stepID]
	return p, ok
}

// TotalSteps counts the steps across all phases.
func (s *Set) TotalSteps() int { return len(s.stepPhase) }

func (s *Set) Download(id string) (Download, bool) {
	d, ok := s.downloads[id]
	return d, ok
}

func (s *Set) View(id string) (View, bool) {
	for _, v := range views {
		if v.ID == id {
			return v, true
		}
	}
	return View{}, false
}

func (s *Set) Components() []Component { return components }
func (s *Set) Principles() []Principle { return principles }
func (s *Set) Stages() []Stage         { return stages }
func (s *Set) Features() []Feature     { return features }
func (s *Set) QuickAccess() []Link     { return quickAccess }

// PlatformStats are the headline numbers of the analysis page.
type PlatformStats struct {
	Total         int
	HighFeasible  int
	MediumComplex int
	Categories    int
}

func (s *Set) PlatformStats() PlatformStats {
	st := PlatformStats{Total: len(platforms)}
	cats := make(map[string]bool)
	for _, p := range platforms {
		if p.Feasibility == High {
			st.HighFeasible++
		}
		if p.Complexity == Medium {
			st.MediumComplex++
		}
		cats[p.Category] = true
	}
	st.Categories = len(cats)
	return st
}

// Manifest lists every asset path the catalogs reference, sorted and
// without duplicates.
func (s *Set) Manifest() []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range s.Catalogs() {
		for _, e := range c.Store.Entries() {
			p := e.Path()
			if p == "" || seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}
