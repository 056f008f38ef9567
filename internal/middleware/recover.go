package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/oggyb/pagetracker/internal/response"
)

// Recoverer turns a panicking handler into a 500 JSON error.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					if v == http.ErrAbortHandler {
						panic(v)
					}
					log.Printf("[HTTP] panic serving %s %s: %v\n%s", r.Method, r.URL.Path, v, debug.Stack())
					response.RespondError(w, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
