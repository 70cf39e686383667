// internal/middleware/method_override.go
package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const maxOverrideMemory = 32 << 20 // 32 MB

// MethodOverride rewrites POST requests carrying a _method form field into
// the verb it names. Runs outside the router so route matching sees the
// rewritten method. The multipart form stays cached on the request and the
// urlencoded body is restored after peeking, so handlers still see the full
// payload.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			contentType := r.Header.Get("Content-Type")
			var override string

			switch {
			case strings.HasPrefix(contentType, "multipart/form-data"):
				if err := r.ParseMultipartForm(maxOverrideMemory); err == nil {
					override = r.FormValue("_method")
				}
			case strings.HasPrefix(contentType, "application/x-www-form-urlencoded"):
				body, err := io.ReadAll(io.LimitReader(r.Body, maxOverrideMemory))
				if err == nil {
					r.Body.Close()
					r.Body = io.NopCloser(bytes.NewReader(body))
					if values, parseErr := url.ParseQuery(string(body)); parseErr == nil {
						override = values.Get("_method")
					}
				}
			}

			switch strings.ToUpper(override) {
			case http.MethodPut, http.MethodPatch, http.MethodDelete:
				r.Method = strings.ToUpper(override)
			}
		}

		next.ServeHTTP(w, r)
	})
}
