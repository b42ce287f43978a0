package catalog

import "fmt"

// SelectionPolicy decides what happens to the selection when the active
// filter no longer shows the selected entry.
type SelectionPolicy string

const (
	// PolicyRetain keeps the selection; the detail pane may show an entry
	// that is not in the visible list.
	PolicyRetain SelectionPolicy = "retain"
	// PolicyClear drops the selection once the filter hides it.
	PolicyClear SelectionPolicy = "clear"
)

// ParsePolicy validates a policy name. The empty string means PolicyRetain.
func ParsePolicy(s string) (SelectionPolicy, error) {
	switch SelectionPolicy(s) {
	case "", PolicyRetain:
		return PolicyRetain, nil
	case PolicyClear:
		return PolicyClear, nil
	default:
		return "", fmt.Errorf("unknown selection policy %q: must be retain or clear", s)
	}
}

// State is the browsing state of one page over one store.
type State struct {
	Query    string          `json:"query"`
	Category string          `json:"category"`
	Selected string          `json:"selected,omitempty"`
	Policy   SelectionPolicy `json:"-"`

	// MatchCategory is passed through to FilterWith.
	MatchCategory bool `json:"-"`
}

// NewState returns the initial state for a freshly populated store. The
// selection starts at defaultID when the store has it, otherwise empty.
func NewState(store *Store, defaultID string, policy SelectionPolicy) State {
	st := State{Category: AllCategories, Policy: policy}
	if defaultID != "" && store.Has(defaultID) {
		st.Selected = defaultID
	}
	return st
}

// Criteria returns the filter criteria of the state.
func (st State) Criteria() Criteria {
	return Criteria{Query: st.Query, Category: st.Category, MatchCategory: st.MatchCategory}
}

// Visible returns the entries the current filter shows.
func (st State) Visible(store *Store) []Entry {
	return FilterWith(store.Entries(), st.Criteria())
}

// Select makes id the current selection if it names an entry of the store.
// Unknown ids leave the state unchanged. Whether the filter shows the entry
// is irrelevant.
func (st State) Select(store *Store, id string) State {
	if !store.Has(id) {
		return st
	}
	st.Selected = id
	return st
}

// Current returns the selected entry, if any.
func (st State) Current(store *Store) (Entry, bool) {
	if st.Selected == "" {
		return Entry{}, false
	}
	return store.Get(st.Selected)
}

// Event is an input to Reduce.
type Event interface {
	apply(st State, store *Store) State
}

// SetQuery changes the free-text query.
type SetQuery struct{ Query string }

// SetCategory changes the category constraint. Categories not present in
// the store are ignored.
type SetCategory struct{ Category string }

// Select changes the selection.
type Select struct{ ID string }

// LoadCompleted attaches asynchronously loaded content to its entry.
type LoadCompleted struct {
	ID      string
	Content Content
}

func (e SetQuery) apply(st State, _ *Store) State {
	st.Query = e.Query
	return st
}

func (e SetCategory) apply(st State, store *Store) State {
	if e.Category == "" || e.Category == AllCategories {
		st.Category = AllCategories
		return st
	}
	for _, c := range Categories(store.Entries()) {
		if c == e.Category {
			st.Category = e.Category
			return st
		}
	}
	return st
}

func (e Select) apply(st State, store *Store) State {
	return st.Select(store, e.ID)
}

func (e LoadCompleted) apply(st State, store *Store) State {
	// A second completion for the same entry is dropped; the first wins.
	_ = store.Attach(e.ID, e.Content)
	return st
}

// Reduce applies ev to st and enforces the selection policy against the
// resulting filter.
func Reduce(st State, store *Store, ev Event) State {
	st = ev.apply(st, store)
	if st.Policy == PolicyClear && st.Selected != "" {
		if _, isSelect := ev.(Select); !isSelect && !st.shows(store, st.Selected) {
			st.Selected = ""
		}
	}
	return st
}

// ReduceAll folds events over st in order.
func ReduceAll(st State, store *Store, events ...Event) State {
	for _, ev := range events {
		st = Reduce(st, store, ev)
	}
	return st
}

func (st State) shows(store *Store, id string) bool {
	for _, e := range st.Visible(store) {
		if e.ID == id {
			return true
		}
	}
	return false
}
