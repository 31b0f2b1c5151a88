package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
)

const maxBodyBytes = 1 << 20

// userPayload covers every field the user endpoints accept.
type userPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// decodeUserPayload reads a JSON or URL-encoded body. An empty body decodes
// to the zero payload and is left to validation.
func decodeUserPayload(w http.ResponseWriter, r *http.Request) (userPayload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return userPayload{}, service.ErrMalformedBody
		}
		return userPayload{
			Name:     r.PostForm.Get("name"),
			Email:    r.PostForm.Get("email"),
			Password: r.PostForm.Get("password"),
		}, nil
	}

	var p userPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return userPayload{}, nil
		}
		return userPayload{}, service.ErrMalformedBody
	}
	return p, nil
}
