package site

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/ziadkadry99/showcase/internal/assets"
	"github.com/ziadkadry99/showcase/internal/catalog"
	"github.com/ziadkadry99/showcase/internal/db"
	"github.com/ziadkadry99/showcase/internal/notifications"
	"github.com/ziadkadry99/showcase/internal/session"
)

const errorHandlerJSON = `{
    "name": "Error Handler",
    "nodes": [
        {"name": "Error Trigger", "type": "n8n-nodes-base.errorTrigger"},
        {"name": "Notify", "type": "n8n-nodes-base.slack"}
    ],
    "connections": {
        "Error Trigger": {"main": [[{"node": "Notify", "type": "main", "index": 0}]]}
    }
}`

// Valid JSON the workflow validator rejects (string index, 3-element
// position). The download center still serves it unchanged.
const looseMasterJSON = `{"name": "Master", "nodes": [{"name": "A", "type": "t", "position": [1, 2, 3]}], "connections": {"A": {"main": [[{"node": "A", "type": "main", "index": "0"}]]}}}`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"docs/N8N_AI_Platform_Replication_Guide.md": {Data: []byte("# Replication Guide\n\nStart with <script>alert(1)</script> the queue.\n")},
		"docs/final_report.md":                      {Data: []byte("# Final Report\n")},
		"workflows/error_handler.json":              {Data: []byte(errorHandlerJSON)},
		"workflows/master_orchestrator.json":        {Data: []byte(looseMasterJSON)},
		"N8N_AI_Platform_Replication_Guide.md":      {Data: []byte("# Guide at the root\n")},
	}
}

type testSite struct {
	site   *Site
	hub    *notifications.Hub
	server *httptest.Server
	client *http.Client
}

func newTestSite(t *testing.T, load bool) *testSite {
	t.Helper()
	d, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	hub := notifications.NewHub(0)
	s, err := New(Options{
		Loader:   assets.NewLoader(assets.DirSource{FS: testFS()}, zap.NewNop()),
		Hub:      hub,
		Sessions: session.NewStore(d),
		Logger:   zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if load {
		if err := s.Reload(context.Background()); err != nil {
			t.Fatalf("Reload: %v", err)
		}
	}

	r := chi.NewRouter()
	s.RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client := srv.Client()
	client.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }
	return &testSite{site: s, hub: hub, server: srv, client: client}
}

func (ts *testSite) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := ts.client.Get(ts.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return resp, string(body)
}

func TestPagesBeforeLoad(t *testing.T) {
	ts := newTestSite(t, false)
	for _, p := range []string{"/", "/documentation", "/workflows", "/analysis", "/downloads"} {
		resp, body := ts.get(t, p)
		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("%s: status = %d, want 503", p, resp.StatusCode)
		}
		if resp.Header.Get("Retry-After") == "" {
			t.Errorf("%s: missing Retry-After", p)
		}
		if !strings.Contains(body, "Loading content") {
			t.Errorf("%s: loading state not rendered", p)
		}
		if strings.Contains(body, "No entries match") {
			t.Errorf("%s: loading rendered as empty result", p)
		}
	}

	resp, _ := ts.get(t, "/api/catalogs")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("api status = %d, want 503", resp.StatusCode)
	}
}

func TestDocumentationDefaultSelection(t *testing.T) {
	ts := newTestSite(t, true)
	resp, body := ts.get(t, "/documentation")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, `<h1 id="replication-guide">Replication Guide</h1>`) {
		t.Error("main guide not rendered as the default selection")
	}
	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Error("script tag survived sanitizing")
	}
	if !strings.Contains(body, catalog.PlaceholderUnavailable) {
		t.Error("missing documents should not break the page")
	}
	if c := resp.Cookies(); len(c) == 0 || c[0].Name != session.CookieName {
		t.Errorf("cookies = %v, want session cookie", c)
	}
}

func TestLoadFailuresAreFlashedOnce(t *testing.T) {
	ts := newTestSite(t, true)
	ts.client.Jar = newJar(t)

	const toast = `<div class="toast toast-error">Failed to load Feature Mapping</div>`
	_, body := ts.get(t, "/documentation")
	if !strings.Contains(body, toast) {
		t.Error("load failure from startup not shown on the first page")
	}
	_, body = ts.get(t, "/documentation")
	if strings.Contains(body, toast) {
		t.Error("load failure shown again to the same session")
	}
}

func TestDocumentationFilterAndEmptyResult(t *testing.T) {
	ts := newTestSite(t, true)

	_, body := ts.get(t, "/documentation?q=zzzz-no-match")
	if !strings.Contains(body, "No entries match") {
		t.Error("expected empty-result message")
	}
	// Retained selection keeps the detail pane.
	if !strings.Contains(body, "Replication Guide</h1>") {
		t.Error("retain policy should keep the selection")
	}

	_, body = ts.get(t, "/documentation?category=Reports&selected=final-report")
	if !strings.Contains(body, `<h1 id="final-report">Final Report</h1>`) {
		t.Error("final report not shown")
	}
	if strings.Contains(body, ">Feature Mapping<") {
		t.Error("category filter did not hide other documents")
	}
}

func TestClearPolicyDropsHiddenSelection(t *testing.T) {
	ts := newTestSite(t, true)
	ts.site.policy = catalog.PolicyClear

	resp, body := ts.get(t, "/api/catalogs/documentation?q=zzzz-no-match&selected=main-guide")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var got catalogResponse
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatal(err)
	}
	if got.State.Selected != "" || got.Selected != nil {
		t.Errorf("selection = %q, want cleared", got.State.Selected)
	}
	if len(got.Entries) != 0 {
		t.Errorf("entries = %d, want 0", len(got.Entries))
	}
}

func TestWorkflowViews(t *testing.T) {
	ts := newTestSite(t, true)

	_, body := ts.get(t, "/workflows?selected=error-handler")
	if !strings.Contains(body, "Error Trigger → Notify") {
		t.Error("visual view should list connections")
	}
	if !strings.Contains(body, "view=json") {
		t.Error("missing JSON view toggle")
	}

	_, body = ts.get(t, "/workflows?selected=error-handler&view=json")
	if !strings.Contains(body, `&#34;name&#34;: &#34;Error Handler&#34;`) {
		t.Error("JSON view should show the re-serialized definition")
	}

	// Query matches category names on the workflows page.
	_, body = ts.get(t, "/workflows?q=utilities")
	if !strings.Contains(body, ">Error Handler<") || strings.Contains(body, ">Research Engine<") {
		t.Error("category query did not filter workflows")
	}
}

func TestWorkflowExport(t *testing.T) {
	ts := newTestSite(t, true)

	resp, body := ts.get(t, "/workflows/error-handler/download")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if !strings.Contains(resp.Header.Get("Content-Disposition"), "error_handler.json") {
		t.Errorf("Content-Disposition = %q", resp.Header.Get("Content-Disposition"))
	}
	if !strings.HasPrefix(body, "{\n  \"name\": \"Error Handler\"") {
		t.Errorf("body = %q, want two-space indented JSON", body[:min(len(body), 40)])
	}

	resp, _ = ts.get(t, "/workflows/research-engine/download")
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("unavailable export status = %d, want 303", resp.StatusCode)
	}
}

func TestExportUnknownCatalog(t *testing.T) {
	ts := newTestSite(t, true)
	r := chi.NewRouter()
	r.Get("/reports/{id}/download", ts.site.handleExport("reports"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/final-report/download", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), `No catalog &#34;reports&#34;.`) {
		t.Errorf("body missing not-found message:\n%s", w.Body.String())
	}
}

func TestDownloadCenter(t *testing.T) {
	ts := newTestSite(t, true)

	jar := newJar(t)
	ts.client.Jar = jar

	resp, body := ts.get(t, "/downloads/main-guide")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body != "# Guide at the root\n" {
		t.Errorf("body = %q, want raw bytes", body)
	}

	_, page := ts.get(t, "/downloads")
	if !strings.Contains(page, "Downloaded ✓") {
		t.Error("download not recorded for the session")
	}
	if !strings.Contains(page, "Downloaded N8N AI Platform Replication Guide") {
		t.Error("success notification not flashed")
	}

	resp, _ = ts.get(t, "/downloads/bulk")
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("missing archive status = %d, want 303", resp.StatusCode)
	}
	_, page = ts.get(t, "/downloads")
	if !strings.Contains(page, "Failed to download Complete Project Archive") {
		t.Error("failure notification not flashed")
	}

	resp, _ = ts.get(t, "/downloads/nope")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown download status = %d, want 404", resp.StatusCode)
	}
}

func TestDownloadKeepsWorkflowBytes(t *testing.T) {
	ts := newTestSite(t, true)

	resp, body := ts.get(t, "/downloads/workflow-master")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body != looseMasterJSON {
		t.Errorf("body = %q, want the file unchanged", body)
	}
	if got := resp.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
}

func TestDownloadCategories(t *testing.T) {
	ts := newTestSite(t, true)
	_, body := ts.get(t, "/downloads?category=N8N+Workflows")
	if !strings.Contains(body, "Error Handler Workflow") {
		t.Error("workflow downloads missing")
	}
	if strings.Contains(body, "<h3>Final Report</h3>") {
		t.Error("documentation items should be filtered out")
	}
}

func TestToggleStep(t *testing.T) {
	ts := newTestSite(t, true)
	ts.client.Jar = newJar(t)

	post := func(path string) map[string]any {
		t.Helper()
		req, _ := http.NewRequest(http.MethodPost, ts.server.URL+path, nil)
		req.Header.Set("Accept", "application/json")
		resp, err := ts.client.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("POST %s: status = %d", path, resp.StatusCode)
		}
		var out map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatal(err)
		}
		return out
	}

	got := post("/implementation/steps/n8n-deploy")
	want := map[string]any{"step": "n8n-deploy", "phase": "infrastructure", "completed": true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("toggle mismatch (-want +got):\n%s", diff)
	}

	_, body := ts.get(t, "/implementation")
	if !strings.Contains(body, "1 of 17 steps completed") {
		t.Error("overall progress not updated")
	}

	if got := post("/implementation/steps/n8n-deploy"); got["completed"] != false {
		t.Errorf("second toggle = %v, want false", got["completed"])
	}

	resp, err := ts.client.Post(ts.server.URL+"/implementation/steps/nope", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown step status = %d, want 404", resp.StatusCode)
	}
}

func TestImplementationPhaseNavigation(t *testing.T) {
	ts := newTestSite(t, true)
	_, body := ts.get(t, "/implementation?phase=workflows")
	if !strings.Contains(body, "Foundational Sub-workflows") {
		t.Error("selected phase not shown")
	}
	if !strings.Contains(body, "← Core Infrastructure Setup") || !strings.Contains(body, "Advanced Capabilities →") {
		t.Error("phase navigation missing")
	}
}

func TestArchitectureAndAnalysis(t *testing.T) {
	ts := newTestSite(t, true)

	_, body := ts.get(t, "/architecture?view=components")
	if !strings.Contains(body, "Connects to:") {
		t.Error("components view not rendered")
	}

	_, body = ts.get(t, "/analysis?q=voice&selected=minimax-m1")
	if !strings.Contains(body, "N8N Implementation") {
		t.Error("platform detail not rendered")
	}
	if strings.Contains(body, ">Lovable.dev<") {
		t.Error("query did not filter platforms")
	}
}

func TestCatalogAPI(t *testing.T) {
	ts := newTestSite(t, true)

	_, body := ts.get(t, "/api/catalogs")
	var list []catalogSummary
	if err := json.Unmarshal([]byte(body), &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 6 {
		t.Fatalf("catalogs = %d, want 6", len(list))
	}
	if list[0].Name != "documentation" || list[0].Entries != 13 || list[0].Unavailable != 11 {
		t.Errorf("documentation summary = %+v", list[0])
	}

	_, body = ts.get(t, "/api/catalogs/workflows/entries/error-handler")
	var e map[string]any
	if err := json.Unmarshal([]byte(body), &e); err != nil {
		t.Fatal(err)
	}
	if e["status"] != "loaded" || e["workflow"] == nil {
		t.Errorf("entry = %v", e)
	}

	resp, _ := ts.get(t, "/api/catalogs/nope")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown catalog status = %d", resp.StatusCode)
	}
}

func TestLink(t *testing.T) {
	tests := []struct {
		st   catalog.State
		id   string
		want string
	}{
		{catalog.State{Category: catalog.AllCategories}, "", "/documentation"},
		{catalog.State{Category: catalog.AllCategories}, "final-report", "/documentation?selected=final-report"},
		{catalog.State{Query: "n8n queue", Category: "Reports"}, "x", "/documentation?category=Reports&q=n8n+queue&selected=x"},
	}
	for _, tt := range tests {
		if got := link("/documentation", tt.st, tt.id); got != tt.want {
			t.Errorf("link(%+v, %q) = %q, want %q", tt.st, tt.id, got, tt.want)
		}
	}
}

func newJar(t *testing.T) http.CookieJar {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return jar
}
