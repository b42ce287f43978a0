package session

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CookieName is the cookie carrying the session id.
const CookieName = "showcase_session"

type ctxKey struct{}

// Middleware makes sure every request carries a session id, issuing a new
// cookie when the request has none or an invalid one.
func Middleware(store *Store, logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid := ""
			if c, err := r.Cookie(CookieName); err == nil {
				if id, err := uuid.Parse(c.Value); err == nil {
					sid = id.String()
				}
			}
			if sid == "" {
				sid = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    sid,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			if store != nil {
				if err := store.Touch(r.Context(), sid); err != nil {
					logger.Warn("session touch failed", zap.String("session", sid), zap.Error(err))
				}
			}
			next.ServeHTTP(w, r.WithContext(WithID(r.Context(), sid)))
		})
	}
}

// WithID returns a context carrying the session id.
func WithID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sid)
}

// FromContext returns the session id stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	sid, _ := ctx.Value(ctxKey{}).(string)
	return sid
}

// ID returns the session id of r.
func ID(r *http.Request) string { return FromContext(r.Context()) }
