package notifications

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultCapacity bounds how many notifications the hub remembers.
	DefaultCapacity = 100

	// SessionTTL is how long an idle session's queue and cursor are kept.
	SessionTTL = 30 * time.Minute

	// MaxSessions bounds how many sessions the hub tracks at once. The least
	// recently seen session is evicted first.
	MaxSessions = 10000
)

// Hub fans notifications out to live subscribers. Session-scoped
// notifications nobody saw live are queued, and broadcasts are tracked per
// session, until the next page render drains them.
type Hub struct {
	mu          sync.Mutex
	capacity    int
	seq         uint64
	recent      []record
	sessions    map[string]*sessionState
	subs        map[int]subscriber
	nextSub     int
	ttl         time.Duration
	maxSessions int
	lastPrune   time.Time
	now         func() time.Time
}

type record struct {
	seq uint64
	n   Notification
}

type sessionState struct {
	pending []record
	seen    uint64 // newest broadcast already shown to the session
	touched time.Time
}

type subscriber struct {
	session string
	ch      chan Notification
}

// NewHub creates a hub retaining at most capacity notifications. A
// non-positive capacity uses DefaultCapacity.
func NewHub(capacity int) *Hub {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Hub{
		capacity:    capacity,
		sessions:    make(map[string]*sessionState),
		subs:        make(map[int]subscriber),
		ttl:         SessionTTL,
		maxSessions: MaxSessions,
		now:         time.Now,
	}
}

// Publish records n and delivers it to matching subscribers. Slow
// subscribers miss notifications rather than block the publisher.
func (h *Hub) Publish(n Notification) Notification {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	if n.Severity == "" {
		n.Severity = SeverityInfo
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	now := h.now()

	h.seq++
	rec := record{seq: h.seq, n: n}
	h.recent = append(h.recent, rec)
	if over := len(h.recent) - h.capacity; over > 0 {
		h.recent = append([]record(nil), h.recent[over:]...)
	}

	delivered := false
	for _, s := range h.subs {
		if n.Session != "" && s.session != n.Session {
			continue
		}
		select {
		case s.ch <- n:
			delivered = true
			if n.Session == "" {
				h.state(s.session, now).seen = rec.seq
			}
		default:
		}
	}

	// Session notifications nobody saw live wait for the next render.
	if n.Session != "" && !delivered {
		st := h.state(n.Session, now)
		st.pending = append(st.pending, rec)
		if over := len(st.pending) - h.capacity; over > 0 {
			st.pending = st.pending[over:]
		}
	}
	h.prune(now)
	return n
}

// Flash drains what a session has not seen yet: its queued notifications
// and any broadcasts published since its last flash, oldest first.
func (h *Hub) Flash(session string) []Notification {
	h.mu.Lock()
	defer h.mu.Unlock()
	now := h.now()

	st := h.state(session, now)
	recs := st.pending
	for _, r := range h.recent {
		if r.n.Session == "" && r.seq > st.seen {
			recs = append(recs, r)
		}
	}
	st.pending = nil
	st.seen = h.seq
	h.prune(now)

	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })
	var out []Notification
	for _, r := range recs {
		out = append(out, r.n)
	}
	return out
}

// Recent returns up to limit of the most recent broadcast notifications,
// oldest first.
func (h *Hub) Recent(limit int) []Notification {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []Notification
	for _, r := range h.recent {
		if r.n.Session == "" {
			out = append(out, r.n)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

// Subscribe registers a live subscriber for broadcast notifications and
// those addressed to session. The returned cancel func must be called to
// release it; it closes the channel.
func (h *Hub) Subscribe(session string) (<-chan Notification, func()) {
	ch := make(chan Notification, 16)

	h.mu.Lock()
	id := h.nextSub
	h.nextSub++
	h.subs[id] = subscriber{session: session, ch: ch}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// state returns the bookkeeping for session, creating it if needed. Callers
// hold h.mu.
func (h *Hub) state(session string, now time.Time) *sessionState {
	st, ok := h.sessions[session]
	if !ok {
		st = &sessionState{}
		h.sessions[session] = st
	}
	st.touched = now
	return st
}

// prune drops sessions idle for longer than the TTL, then evicts the least
// recently seen sessions while over the limit. Callers hold h.mu.
func (h *Hub) prune(now time.Time) {
	if now.Sub(h.lastPrune) >= time.Minute {
		h.lastPrune = now
		for id, st := range h.sessions {
			if now.Sub(st.touched) > h.ttl {
				delete(h.sessions, id)
			}
		}
	}
	for len(h.sessions) > h.maxSessions {
		var oldest string
		var oldestAt time.Time
		first := true
		for id, st := range h.sessions {
			if first || st.touched.Before(oldestAt) {
				oldest, oldestAt, first = id, st.touched, false
			}
		}
		delete(h.sessions, oldest)
	}
}
