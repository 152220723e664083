package auth

import (
	"net/http"
	"strings"

	"github.com/KirkDiggler/rpg-sheet-api/internal/logger"
)

// Middleware verifies an optional bearer token and stores the identity in the
// request context. Requests without a valid token continue unauthenticated;
// operations that need a user reject them through RequireUser.
func Middleware(verifier Verifier, log *logger.Logger) func(http.Handler) http.Handler {
	log = log.With("middleware", "auth")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := verifier.Verify(r.Context(), token)
			if err != nil {
				log.Debug("rejected bearer token", "token", token, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), *id)))
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
