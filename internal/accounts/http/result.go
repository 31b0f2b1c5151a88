package http

import (
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// writeOutcome applies an operation's decision to the response.
func writeOutcome(w http.ResponseWriter, out service.Outcome) {
	if out.Cookie != nil {
		http.SetCookie(w, toHTTPCookie(out.Cookie))
	}
	httpx.WriteJSON(w, out.Status, out.Body)
}

// writeError answers with the status and message of a *service.Error, or a
// generic 500 for anything else. Internal details only leak in development.
func writeError(w http.ResponseWriter, r *http.Request, err error, dev bool) {
	if e, ok := service.AsError(err); ok {
		httpx.WriteError(w, e.StatusCode, e.Message)
		return
	}

	slogx.FromContext(r.Context()).Error("request failed", "error", err)

	body := httpx.ErrorBody{Error: http.StatusText(http.StatusInternalServerError)}
	if dev {
		body.Detail = err.Error()
	}
	httpx.WriteJSON(w, http.StatusInternalServerError, body)
}

func toHTTPCookie(c *service.SessionCookie) *http.Cookie {
	hc := &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Expires:  c.Expires,
		MaxAge:   c.MaxAge,
		HttpOnly: c.HttpOnly,
		Secure:   c.Secure,
	}

	switch c.SameSite {
	case "Strict":
		hc.SameSite = http.SameSiteStrictMode
	case "Lax":
		hc.SameSite = http.SameSiteLaxMode
	case "None":
		hc.SameSite = http.SameSiteNoneMode
	}
	return hc
}
