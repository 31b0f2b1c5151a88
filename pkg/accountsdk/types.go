package accountsdk

// ============================================================================
// Request Types
// ============================================================================

// RegisterRequest is the body of POST /api/users.
type RegisterRequest struct {
	Name     string `json:"name" example:"raj"`
	Email    string `json:"email" example:"raj@123.com"`
	Password string `json:"password" example:"123"`
}

// AuthRequest is the body of POST /api/users/auth.
type AuthRequest struct {
	Email    string `json:"email" example:"raj@123.com"`
	Password string `json:"password" example:"123"`
}

// UpdateProfileRequest is the body of PUT /api/users/profile. Empty fields
// are left unchanged.
type UpdateProfileRequest struct {
	Name     string `json:"name,omitempty" example:"rajesh"`
	Email    string `json:"email,omitempty" example:"rajesh@123.com"`
	Password string `json:"password,omitempty" example:"new-secret"`
}

// ============================================================================
// Response Types
// ============================================================================

// User is the public view of an account. It never carries the password hash.
type User struct {
	ID    string `json:"id" example:"01J9Z3NDEKTSV4RRFFQ69G5FAV"`
	Name  string `json:"name" example:"raj"`
	Email string `json:"email" example:"raj@123.com"`
}

// ProfileResponse is returned by GET /api/users/profile.
type ProfileResponse struct {
	Message string `json:"message" example:"User Profile"`
	User    User   `json:"user"`
}

// MessageResponse is returned by POST /api/users/logout.
type MessageResponse struct {
	Message string `json:"message" example:"User Logged Out"`
}

// ErrorResponse is the body of every error response. Detail is only
// populated by development deployments.
type ErrorResponse struct {
	Error  string `json:"error" example:"Not authorized, no token"`
	Detail string `json:"detail,omitempty"`
}

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains the status of individual dependencies (readyz only)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Signer indicates the session signing capability status
	Signer string `json:"signer"`
}
