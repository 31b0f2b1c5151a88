package accountsdk

import (
	"context"
	"net/http"
)

// Register creates an account and signs the client in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/users", req)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user, http.StatusCreated); err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate signs the client in with email and password.
func (c *Client) Authenticate(ctx context.Context, req AuthRequest) (*User, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/users/auth", req)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the session cookie.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/users/logout", nil)
	if err != nil {
		return err
	}

	var msg MessageResponse
	return decodeJSON(resp, &msg, http.StatusOK)
}

// GetProfile returns the signed-in user's profile.
func (c *Client) GetProfile(ctx context.Context) (*User, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/api/users/profile", nil)
	if err != nil {
		return nil, err
	}

	var profile ProfileResponse
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}
	return &profile.User, nil
}

// UpdateProfile changes the signed-in user's name, email or password.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	resp, err := c.doJSON(ctx, http.MethodPut, "/api/users/profile", req)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}
