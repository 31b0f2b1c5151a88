/*
Package accountsdk provides a client SDK for the BarTab accounts service.

# Overview

The accounts service keeps its session in an HttpOnly cookie named "jwt".
A Client wraps an http.Client with a cookie jar, so once Register or
Authenticate succeeds every later call on the same Client is
authenticated until Logout clears the cookie.

	client, err := accountsdk.NewClient("https://accounts.example.com")

	// Create an account (also signs in)
	user, err := client.Register(ctx, accountsdk.RegisterRequest{
		Name:     "raj",
		Email:    "raj@123.com",
		Password: "123",
	})

	// Read and update the signed-in profile
	profile, err := client.GetProfile(ctx)
	user, err = client.UpdateProfile(ctx, accountsdk.UpdateProfileRequest{Name: "rajesh"})

	// Drop the session
	err = client.Logout(ctx)

# Secure cookies

Outside development the service marks the cookie Secure, and the cookie jar
will only send it back over https. Point the client at an https URL, or run
the service with ENV=dev for plain-http testing.

# Errors

Non-2xx responses are returned as *APIError carrying the status code and
the service's error message:

	_, err := client.Authenticate(ctx, accountsdk.AuthRequest{Email: e, Password: p})
	var apiErr *accountsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		// wrong email or password
	}

The predefined values (ErrUserExists, ErrInvalidCredentials, ...) can be
compared with errors.Is.
*/
package accountsdk
