package catalog

import "strings"

// Criteria selects a subset of entries.
type Criteria struct {
	Query    string
	Category string

	// MatchCategory also matches the query against the category label.
	MatchCategory bool
}

// Filter returns the entries in the given category (or all of them for
// AllCategories and "") whose title, description or loaded text content
// contains query, case-insensitively. The result preserves input order and
// is never nil.
func Filter(entries []Entry, query, category string) []Entry {
	return FilterWith(entries, Criteria{Query: query, Category: category})
}

// FilterWith is Filter with additional matching options.
func FilterWith(entries []Entry, c Criteria) []Entry {
	q := strings.ToLower(c.Query)
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if c.Category != "" && c.Category != AllCategories && e.Category != c.Category {
			continue
		}
		if q != "" && !matches(e, q, c.MatchCategory) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matches(e Entry, q string, category bool) bool {
	if strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Description), q) {
		return true
	}
	if category && strings.Contains(strings.ToLower(e.Category), q) {
		return true
	}
	if e.Content.Status == StatusLoaded && e.Content.Workflow == nil && e.Content.Text != "" {
		return strings.Contains(strings.ToLower(e.Content.Text), q)
	}
	return false
}

// Categories returns AllCategories followed by the distinct categories of
// entries in first-seen order.
func Categories(entries []Entry) []string {
	out := []string{AllCategories}
	seen := make(map[string]bool)
	for _, e := range entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

// CategoryCount is the number of entries in a category.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoryCounts returns per-category entry counts in Categories order. The
// leading AllCategories count is the total.
func CategoryCounts(entries []Entry) []CategoryCount {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Category]++
	}
	names := Categories(entries)
	out := make([]CategoryCount, len(names))
	for i, n := range names {
		if n == AllCategories {
			out[i] = CategoryCount{Name: n, Count: len(entries)}
			continue
		}
		out[i] = CategoryCount{Name: n, Count: counts[n]}
	}
	return out
}

// IDs returns the ids of entries in order.
func IDs(entries []Entry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}
