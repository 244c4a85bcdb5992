package middleware

import (
	"context"
	"net/http"
	"strings"

	orgAuth "github.com/MrEthical07/orgAuth"
)

type payloadContextKey struct{}

// PayloadFromContext returns the identity injected by [RequireAuth].
func PayloadFromContext(ctx context.Context) (*orgAuth.Payload, bool) {
	p, ok := ctx.Value(payloadContextKey{}).(*orgAuth.Payload)
	return p, ok
}

// RequireAuth rejects requests without a valid bearer access token and
// places the verified [orgAuth.Payload] in the request context.
func RequireAuth(engine *orgAuth.Engine) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if engine == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			payload, err := engine.VerifyAccess(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), payloadContextKey{}, payload)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}
