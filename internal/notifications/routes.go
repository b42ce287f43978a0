package notifications

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SessionFunc extracts the session id of a request.
type SessionFunc func(r *http.Request) string

// RegisterRoutes mounts the notification endpoints on the given router.
func RegisterRoutes(r chi.Router, hub *Hub, session SessionFunc, logger *zap.Logger) {
	r.Get("/api/notifications", listHandler(hub))
	r.Get("/ws/notifications", streamHandler(hub, session, logger))
}

func listHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 20
		if s := r.URL.Query().Get("limit"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 {
				http.Error(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = n
		}
		result := hub.Recent(limit)
		if result == nil {
			result = []Notification{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func streamHandler(hub *Hub, session SessionFunc, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("notifications: websocket upgrade", zap.Error(err))
			return
		}
		defer conn.Close()

		sid := ""
		if session != nil {
			sid = session(r)
		}
		ch, cancel := hub.Subscribe(sid)
		defer cancel()

		// Anything queued before the socket opened goes out first.
		for _, n := range hub.Flash(sid) {
			if err := conn.WriteJSON(n); err != nil {
				return
			}
		}

		// The reader only exists to notice the client going away.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
						logger.Debug("notifications: websocket read", zap.Error(err))
					}
					return
				}
			}
		}()

		for {
			select {
			case <-done:
				return
			case n, ok := <-ch:
				if !ok {
					return
				}
				conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
				if err := conn.WriteJSON(n); err != nil {
					return
				}
			}
		}
	}
}
