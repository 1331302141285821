package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pavlo-petrychenko/labb/pkg/ctxutil"
)

// ActorHeader names the header carrying the id of the acting user.
const ActorHeader = "X-Actor-Id"

// Actor returns middleware that stores a positive X-Actor-Id in the request
// context. A malformed header is rejected with 400; a missing one passes.
func Actor() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(ActorHeader))
			if raw == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				writeError(w, http.StatusBadRequest, "invalid "+ActorHeader)
				return
			}
			ctx := ctxutil.WithActorID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
