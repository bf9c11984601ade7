package models

import "time"

// Credentials is the login form payload for the token endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegistrationForm carries the user fields forwarded to the registration
// endpoint. Registration does not imply login.
type RegistrationForm struct {
	Username        string `json:"username"`
	Email           string `json:"email,omitempty"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
}

// TokenResponse is the success shape of the token endpoint. Username and the
// role flags are optional; the backend's token serializer includes them but
// older deployments may not.
type TokenResponse struct {
	Access      string `json:"access"`
	Refresh     string `json:"refresh"`
	Username    string `json:"username"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// LoginResult is what the auth service hands back to the caller so
// navigation can branch on the staff flag.
type LoginResult struct {
	Username  string
	IsStaff   bool
	ExpiresAt time.Time
}
