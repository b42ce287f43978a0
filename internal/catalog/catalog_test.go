package catalog

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func scenarioStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore([]Config{
		{ID: "a", Category: "X", Title: "Alpha"},
		{ID: "b", Category: "Y", Title: "Beta"},
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func docStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore([]Config{
		{ID: "main-guide", Title: "Replication Guide", Description: "Main guide", Category: "Main Guide", Format: FormatMarkdown, Filename: "guide.md"},
		{ID: "final-report", Title: "Final Report", Description: "Project summary", Category: "Reports", Format: FormatMarkdown, Filename: "final_report.md", Dir: "docs"},
		{ID: "roadmap", Title: "Implementation Roadmap", Description: "Phased plan", Category: "Implementation", Format: FormatMarkdown, Filename: "roadmap.md", Dir: "docs"},
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestFilterScenario(t *testing.T) {
	s := scenarioStore(t)
	entries := s.Entries()

	tests := []struct {
		query, category string
		want            []string
	}{
		{"alp", AllCategories, []string{"a"}},
		{"", "Y", []string{"b"}},
		{"zz", AllCategories, []string{}},
		{"", AllCategories, []string{"a", "b"}},
		{"ALPHA", "", []string{"a"}},
		{"a", "X", []string{"a"}},
		{"beta", "X", []string{}},
	}

	for _, tt := range tests {
		got := IDs(Filter(entries, tt.query, tt.category))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Filter(%q, %q) mismatch (-want +got):\n%s", tt.query, tt.category, diff)
		}
	}
}

func TestFilterIsPureAndNeverAdds(t *testing.T) {
	s := docStore(t)
	if err := s.Attach("final-report", Loaded([]byte("# Findings\nThe orchestrator pattern works."), nil)); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	entries := s.Entries()
	all := IDs(Filter(entries, "", AllCategories))

	for _, q := range []string{"", "guide", "ORCHESTRATOR", "plan", "nothing-matches", "e"} {
		first := IDs(Filter(entries, q, AllCategories))
		second := IDs(Filter(entries, q, AllCategories))
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Filter(%q) not idempotent:\n%s", q, diff)
		}
		inAll := make(map[string]bool)
		for _, id := range all {
			inAll[id] = true
		}
		for _, id := range first {
			if !inAll[id] {
				t.Errorf("Filter(%q) returned %q which is not in the unfiltered set", q, id)
			}
		}
	}
}

func TestFilterMatchesLoadedText(t *testing.T) {
	s := docStore(t)
	_ = s.Attach("final-report", Loaded([]byte("The Orchestrator coordinates sub-workflows."), nil))
	_ = s.Attach("roadmap", Placeholder(PlaceholderUnavailable, "status 404"))

	got := IDs(Filter(s.Entries(), "orchestrator", AllCategories))
	if diff := cmp.Diff([]string{"final-report"}, got); diff != "" {
		t.Errorf("content match mismatch (-want +got):\n%s", diff)
	}

	// Placeholder text is not searchable content.
	got = IDs(Filter(s.Entries(), "not available", AllCategories))
	if len(got) != 0 {
		t.Errorf("placeholder text matched: %v", got)
	}
}

func TestFilterWithCategoryText(t *testing.T) {
	s := scenarioStore(t)
	if got := Filter(s.Entries(), "y", AllCategories); len(got) != 0 {
		t.Fatalf("plain filter matched category text: %v", IDs(got))
	}
	got := IDs(FilterWith(s.Entries(), Criteria{Query: "y", MatchCategory: true}))
	if diff := cmp.Diff([]string{"b"}, got); diff != "" {
		t.Errorf("category text match mismatch (-want +got):\n%s", diff)
	}
}

func TestCategories(t *testing.T) {
	s := docStore(t)
	want := []string{"All", "Main Guide", "Reports", "Implementation"}
	if diff := cmp.Diff(want, Categories(s.Entries())); diff != "" {
		t.Errorf("Categories mismatch (-want +got):\n%s", diff)
	}

	counts := CategoryCounts(s.Entries())
	if counts[0].Name != AllCategories || counts[0].Count != 3 {
		t.Errorf("All count = %+v, want 3", counts[0])
	}
	if counts[2].Name != "Reports" || counts[2].Count != 1 {
		t.Errorf("Reports count = %+v", counts[2])
	}
}

func TestNewStoreRejectsDuplicates(t *testing.T) {
	_, err := NewStore([]Config{{ID: "a"}, {ID: "a"}})
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
	if _, err := NewStore([]Config{{ID: "x", Category: AllCategories}}); err == nil {
		t.Fatal("expected reserved category error")
	}
	if _, err := NewStore([]Config{{Title: "no id"}}); err == nil {
		t.Fatal("expected missing id error")
	}
}

func TestStoreOrderAndGet(t *testing.T) {
	s := docStore(t)
	want := []string{"main-guide", "final-report", "roadmap"}
	if diff := cmp.Diff(want, IDs(s.Entries())); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	e, ok := s.Get("final-report")
	if !ok {
		t.Fatal("Get(final-report) not found")
	}
	if e.Path() != "docs/final_report.md" {
		t.Errorf("Path = %q", e.Path())
	}
	main, _ := s.Get("main-guide")
	if main.Path() != "guide.md" {
		t.Errorf("Path without dir = %q", main.Path())
	}
	if _, ok := s.Get("does-not-exist"); ok {
		t.Error("Get(does-not-exist) found an entry")
	}
}

func TestAttachOnce(t *testing.T) {
	s := docStore(t)
	if got := s.Pending(); got != 3 {
		t.Fatalf("Pending = %d, want 3", got)
	}
	if err := s.Attach("roadmap", Loaded([]byte("plan"), nil)); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	err := s.Attach("roadmap", Loaded([]byte("second"), nil))
	if !errors.Is(err, ErrAlreadyLoaded) {
		t.Errorf("second Attach err = %v, want ErrAlreadyLoaded", err)
	}
	if err := s.Attach("nope", Loaded([]byte("x"), nil)); !errors.Is(err, ErrNotFound) {
		t.Errorf("Attach unknown err = %v, want ErrNotFound", err)
	}
	if err := s.Attach("main-guide", Content{}); err == nil {
		t.Error("attaching pending content should fail")
	}
	e, _ := s.Get("roadmap")
	if e.Content.Text != "plan" || e.Content.Size != 4 {
		t.Errorf("content = %+v", e.Content)
	}
}

func TestAttachPlaceholderZeroesSize(t *testing.T) {
	s := docStore(t)
	c := Placeholder(PlaceholderError, "boom")
	c.Size = 99
	if err := s.Attach("roadmap", c); err != nil {
		t.Fatal(err)
	}
	e, _ := s.Get("roadmap")
	if e.Content.Size != 0 || e.Content.Status != StatusUnavailable || e.Content.Text != PlaceholderError {
		t.Errorf("placeholder content = %+v", e.Content)
	}
	if len(s.Unavailable()) != 1 {
		t.Errorf("Unavailable = %d, want 1", len(s.Unavailable()))
	}
}

func TestAttachConcurrentOutOfOrder(t *testing.T) {
	configs := make([]Config, 40)
	for i := range configs {
		configs[i] = Config{ID: string(rune('A' + i)), Format: FormatMarkdown, Filename: "x.md"}
	}
	s, err := NewStore(configs)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := len(configs) - 1; i >= 0; i-- {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_ = s.Attach(id, Loaded([]byte(id), nil))
		}(configs[i].ID)
	}
	wg.Wait()

	if s.Pending() != 0 {
		t.Fatalf("Pending = %d, want 0", s.Pending())
	}
	for _, e := range s.Entries() {
		if e.Content.Text != e.ID {
			t.Errorf("entry %q got content %q", e.ID, e.Content.Text)
		}
	}
}

func TestStaticEntriesAreNotPending(t *testing.T) {
	s, err := NewStore([]Config{{ID: "manus", Title: "Manus.im", Category: "Content Creation"}})
	if err != nil {
		t.Fatal(err)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", s.Pending())
	}
}

func TestSizeLabel(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0KB"},
		{298, "0KB"},
		{512, "1KB"},
		{26 * 1024, "26KB"},
		{2048 + 600, "3KB"},
	}
	for _, tt := range tests {
		if got := SizeLabel(tt.n); got != tt.want {
			t.Errorf("SizeLabel(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
