package httpx

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// PanicHandler writes the response for a request whose handler panicked.
type PanicHandler func(w http.ResponseWriter, r *http.Request, err any)

// Recovery turns handler panics into a response written by handler. The
// stack is logged with the request-scoped logger.
func Recovery(handler PanicHandler) Middleware {
	if handler == nil {
		handler = DefaultPanicHandler
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					slogx.FromContext(r.Context()).Error("panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
					)
					handler(w, r, err)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// DefaultPanicHandler returns a generic 500.
func DefaultPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	WriteError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// DetailedPanicHandler also reports the panic value. Development only.
func DetailedPanicHandler(w http.ResponseWriter, _ *http.Request, err any) {
	WriteJSON(w, http.StatusInternalServerError, ErrorBody{
		Error:  http.StatusText(http.StatusInternalServerError),
		Detail: fmt.Sprint(err),
	})
}
