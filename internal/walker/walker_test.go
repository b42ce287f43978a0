package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// contentTree lays out a small content directory and returns its root.
func contentTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"docs/final_report.md":                 "# Final Report",
		"docs/implementation_roadmap.md":       "# Roadmap",
		"docs/drafts/notes.md":                 "draft",
		"workflows/master_orchestrator.json":   `{"name":"Master Orchestrator","nodes":[]}`,
		"workflows/old/legacy.json":            `{}`,
		"N8N_AI_Platform_Replication_Guide.md": "# Guide",
		"N8N_AI_Platform_Archive.zip":          "PK\x03\x04",
		"minimax_space_content.md":             "",
		"README.txt":                           "not content",
		".git/HEAD":                            "ref: refs/heads/main",
		"docs/.final_report.md.swp":            "swap",
		"node_modules/pkg/index.md":            "vendored",
	}
	for rel, body := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func relPaths(files []FileInfo) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.RelPath
	}
	return out
}

func TestWalk_BasicTraversal(t *testing.T) {
	root := contentTree(t)

	files, err := Walk(WalkerConfig{RootDir: root})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	want := []string{
		"N8N_AI_Platform_Archive.zip",
		"N8N_AI_Platform_Replication_Guide.md",
		"README.txt",
		"docs/drafts/notes.md",
		"docs/final_report.md",
		"docs/implementation_roadmap.md",
		"minimax_space_content.md",
		"workflows/master_orchestrator.json",
		"workflows/old/legacy.json",
	}
	if diff := cmp.Diff(want, relPaths(files)); diff != "" {
		t.Errorf("Walk() mismatch (-want +got):\n%s", diff)
	}
}

func TestWalk_FileInfoFields(t *testing.T) {
	root := contentTree(t)

	files, err := Walk(WalkerConfig{RootDir: root, Include: []string{"docs/final_report.md"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
	f := files[0]
	if f.Path != filepath.Join(root, "docs", "final_report.md") {
		t.Errorf("Path = %q", f.Path)
	}
	if f.Size != int64(len("# Final Report")) {
		t.Errorf("Size = %d", f.Size)
	}
	if len(f.ContentHash) != 64 {
		t.Errorf("ContentHash has length %d, expected 64", len(f.ContentHash))
	}
}

func TestWalk_IncludeExclude(t *testing.T) {
	root := contentTree(t)

	files, err := Walk(WalkerConfig{
		RootDir: root,
		Include: []string{"docs/**/*.md"},
		Exclude: []string{"docs/drafts/**"},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	want := []string{"docs/final_report.md", "docs/implementation_roadmap.md"}
	if diff := cmp.Diff(want, relPaths(files)); diff != "" {
		t.Errorf("Walk() mismatch (-want +got):\n%s", diff)
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	if _, err := Walk(WalkerConfig{RootDir: filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestWalk_ContentHashConsistency(t *testing.T) {
	root := contentTree(t)

	first, err := Walk(WalkerConfig{RootDir: root})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Walk(WalkerConfig{RootDir: root})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("hashes changed between walks:\n%s", diff)
	}
}

func TestCheck(t *testing.T) {
	root := contentTree(t)
	expected := []string{
		"docs/final_report.md",
		"docs/feature_mapping.md",
		"workflows/master_orchestrator.json",
		"N8N_AI_Platform_Replication_Guide.md",
		"N8N_AI_Platform_Archive.zip",
		"minimax_space_content.md",
		"docs/final_report.md",
	}

	r, err := Check(root, expected, nil)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}

	want := Report{
		Missing: []string{"docs/feature_mapping.md"},
		Empty:   []string{"minimax_space_content.md"},
		Orphans: []string{"docs/drafts/notes.md", "docs/implementation_roadmap.md"},
	}
	if diff := cmp.Diff(want, r, cmpopts.IgnoreFields(Report{}, "Found")); diff != "" {
		t.Errorf("Check() mismatch (-want +got):\n%s", diff)
	}
	if len(r.Found) != 4 {
		t.Errorf("Found = %v, want 4 files", relPaths(r.Found))
	}
	if r.OK() {
		t.Error("report with missing files should not be OK")
	}
}

func TestCheckAllPresent(t *testing.T) {
	root := contentTree(t)
	r, err := Check(root, []string{"docs/final_report.md"}, []string{"docs/final_report.md"})
	if err != nil {
		t.Fatal(err)
	}
	if !r.OK() || len(r.Orphans) != 0 {
		t.Errorf("report = %+v, want OK with no orphans", r)
	}
}

func TestMatchesInclude(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"docs/final_report.md", true},
		{"docs/deep/nested/x.md", true},
		{"workflows/master_orchestrator.json", true},
		{"workflows/old/legacy.json", false},
		{"N8N_AI_Platform_Replication_Guide.md", true},
		{"N8N_AI_Platform_Archive.zip", true},
		{"assets/archive.zip", false},
		{"README.txt", false},
	}
	for _, tt := range tests {
		if got := MatchesInclude(tt.path, DefaultPatterns); got != tt.want {
			t.Errorf("MatchesInclude(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
	if !MatchesInclude("anything", nil) {
		t.Error("empty include should match everything")
	}
	if MatchesExclude("anything", nil) {
		t.Error("empty exclude should match nothing")
	}
}
