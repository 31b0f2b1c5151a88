package http

import (
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

type UsersHandler struct {
	Accounts *service.AccountService
	dev      bool
}

// HandleRegister godoc
//
//	@Summary		Register a user
//	@Description	Creates an account and signs it in by setting the "jwt" session cookie.
//	@Tags			Users
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			body	body		accountsdk.RegisterRequest	true	"name, email, password"
//	@Success		201		{object}	accountsdk.User				"id, name, email"
//	@Header			201		{string}	Set-Cookie					"jwt session cookie"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"User already exists / Invalid User Data"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"Internal Server Error"
//	@Router			/api/users [post].
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	p, err := decodeUserPayload(w, r)
	if err != nil {
		writeError(w, r, err, h.dev)
		return
	}

	out, err := h.Accounts.Register(r.Context(), p.Name, p.Email, p.Password)
	if err != nil {
		writeError(w, r, err, h.dev)
		return
	}
	writeOutcome(w, out)
}

// HandleAuthenticate godoc
//
//	@Summary		Sign in
//	@Description	Checks email and password and sets the "jwt" session cookie.
//	@Tags			Users
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			body	body		accountsdk.AuthRequest		true	"email, password"
//	@Success		200		{object}	accountsdk.User				"id, name, email"
//	@Header			200		{string}	Set-Cookie					"jwt session cookie"
//	@Failure		401		{object}	accountsdk.ErrorResponse	"Invalid email or password"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"Internal Server Error"
//	@Router			/api/users/auth [post].
func (h *UsersHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	p, err := decodeUserPayload(w, r)
	if err != nil {
		writeError(w, r, err, h.dev)
		return
	}

	out, err := h.Accounts.Authenticate(r.Context(), p.Email, p.Password)
	if err != nil {
		writeError(w, r, err, h.dev)
		return
	}
	writeOutcome(w, out)
}

// HandleLogout godoc
//
//	@Summary		Sign out
//	@Description	Overwrites the "jwt" cookie with an empty value that expired at the Unix epoch.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	accountsdk.MessageResponse	"User Logged Out"
//	@Router			/api/users/logout [post].
func (h *UsersHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	out, err := h.Accounts.Logout(r.Context())
	if err != nil {
		writeError(w, r, err, h.dev)
		return
	}
	writeOutcome(w, out)
}

// HandleGetProfile godoc
//
//	@Summary		Get profile
//	@Description	Returns the profile of the signed-in user.
//	@Tags			Users
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{object}	accountsdk.ProfileResponse	"message, user"
//	@Failure		401	{object}	accountsdk.ErrorResponse	"Not authorized, no token / invalid token"
//	@Router			/api/users/profile [get].
func (h *UsersHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := ProfileFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrNoToken, h.dev)
		return
	}

	out, err := h.Accounts.Profile(r.Context(), p)
	if err != nil {
		writeError(w, r, err, h.dev)
		return
	}
	writeOutcome(w, out)
}

// HandleUpdateProfile godoc
//
//	@Summary		Update profile
//	@Description	Changes the signed-in user's name, email or password. Empty fields are left unchanged.
//	@Tags			Users
//	@Security		CookieAuth
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			body	body		accountsdk.UpdateProfileRequest	true	"name, email, password (all optional)"
//	@Success		200		{object}	accountsdk.User					"id, name, email"
//	@Failure		400		{object}	accountsdk.ErrorResponse		"User already exists / Invalid User Data"
//	@Failure		401		{object}	accountsdk.ErrorResponse		"Not authorized, no token / invalid token"
//	@Failure		404		{object}	accountsdk.ErrorResponse		"User not found"
//	@Router			/api/users/profile [put].
func (h *UsersHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrNoToken, h.dev)
		return
	}

	p, err := decodeUserPayload(w, r)
	if err != nil {
		writeError(w, r, err, h.dev)
		return
	}

	out, err := h.Accounts.UpdateProfile(r.Context(), userID, domain.ProfileUpdate{
		Name:     p.Name,
		Email:    p.Email,
		Password: p.Password,
	})
	if err != nil {
		writeError(w, r, err, h.dev)
		return
	}
	writeOutcome(w, out)
}
