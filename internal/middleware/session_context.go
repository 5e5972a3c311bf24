package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"pawshop/internal/domain/session"
)

type ctxKey string

const sessionKey ctxKey = "session_id"

const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "pawshop_session"
)

// SessionContext:
// - Si viene X-Session-ID (o la cookie) con un UUID válido => se reutiliza.
// - Si no, se genera uno nuevo y se devuelve en header + cookie.
// - Ids inválidos se descartan en silencio: el cliente recibe uno nuevo.
func SessionContext(mgr *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(SessionHeader))
			if id == "" {
				if c, err := r.Cookie(SessionCookie); err == nil {
					id = strings.TrimSpace(c.Value)
				}
			}
			if !session.ValidID(id) {
				id = session.NewID()
			}

			if _, err := mgr.Touch(id); err != nil {
				http.Error(w, "invalid session", http.StatusBadRequest)
				return
			}

			w.Header().Set(SessionHeader, id)
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				Expires:  time.Now().Add(mgr.TTL()),
			})

			ctx := context.WithValue(r.Context(), sessionKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSessionID(ctx context.Context) (string, bool) {
	v := ctx.Value(sessionKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// WithSessionID se usa en tests de handlers sin pasar por el middleware.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey, id)
}
