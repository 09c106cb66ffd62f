package middleware

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/apperr"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/respond"
)

const (
	csrfTokenLength = 32

	// CSRFCookieName holds the double-submit token.
	CSRFCookieName = "bmm_csrf"

	// CSRFHeaderName is the header fetch() calls send the token in.
	CSRFHeaderName = "X-CSRF-Token"

	// CSRFFormField is the hidden field used by plain HTML forms.
	CSRFFormField = "csrf_token"

	csrfKey contextKey = "csrf"
)

// CSRF provides double-submit cookie protection for state-changing
// requests. Paths listed in exempt (exact match) skip validation; the
// payment provider's server-to-server callback is the usual entry.
func CSRF(secure bool, exempt ...string) func(http.Handler) http.Handler {
	skip := make(map[string]bool, len(exempt))
	for _, p := range exempt {
		skip[p] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if c, err := r.Cookie(CSRFCookieName); err == nil {
				token = c.Value
			}
			if token == "" {
				var err error
				if token, err = generateCSRFToken(); err != nil {
					respond.Error(w, r, apperr.Internal(err))
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     CSRFCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: false, // card.js reads it for fetch headers
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			r = r.WithContext(context.WithValue(r.Context(), csrfKey, token))

			if safeMethod(r.Method) || skip[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			submitted := r.Header.Get(CSRFHeaderName)
			if submitted == "" && !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
				submitted = r.FormValue(CSRFFormField)
			}
			if subtle.ConstantTimeCompare([]byte(token), []byte(submitted)) != 1 {
				if strings.HasPrefix(r.URL.Path, "/api/") {
					respond.Error(w, r, apperr.Forbidden("CSRF token mismatch"))
					return
				}
				http.Error(w, "CSRF token mismatch", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func safeMethod(m string) bool {
	return m == http.MethodGet || m == http.MethodHead || m == http.MethodOptions
}

// CSRFTokenFromCtx returns the token for the current request, including
// one minted on this very request before the cookie round-trips.
func CSRFTokenFromCtx(ctx context.Context) string {
	t, _ := ctx.Value(csrfKey).(string)
	return t
}

func generateCSRFToken() (string, error) {
	b := make([]byte, csrfTokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
