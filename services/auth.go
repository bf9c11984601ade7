// File: services/auth.go
package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/FADHEEL1234/Online-Medical/apiclient"
	"github.com/FADHEEL1234/Online-Medical/models"
	"github.com/FADHEEL1234/Online-Medical/session"
)

// AuthService wraps the remote registration and token endpoints. Together
// with the API client's 401 handler it owns every write to the session
// store.
type AuthService struct {
	API      *apiclient.Client
	Sessions session.Store
}

// Register forwards the form to the backend. It performs no local state
// change; registering does not log the user in.
func (s *AuthService) Register(ctx context.Context, sid string, form models.RegistrationForm) error {
	return s.API.Do(ctx, sid, http.MethodPost, "/register/", form, nil)
}

// Login posts the credentials and, on success, writes the whole session in
// one batch. Fields the backend did not send stay unset; the role flags
// default to false, never to a junk value.
func (s *AuthService) Login(ctx context.Context, sid string, creds models.Credentials) (models.LoginResult, error) {
	var tok models.TokenResponse
	if err := s.API.Do(ctx, sid, http.MethodPost, "/token/", creds, &tok); err != nil {
		return models.LoginResult{}, err
	}
	if tok.Access == "" {
		return models.LoginResult{}, fmt.Errorf("token endpoint returned no access token")
	}

	sess := models.Session{
		AccessToken:  tok.Access,
		RefreshToken: tok.Refresh,
		Username:     tok.Username,
		IsStaff:      tok.IsStaff,
		IsSuperuser:  tok.IsSuperuser,
	}
	if err := s.Sessions.Set(ctx, sid, sess); err != nil {
		return models.LoginResult{}, fmt.Errorf("persist session: %w", err)
	}

	result := models.LoginResult{Username: tok.Username, IsStaff: tok.IsStaff}
	if exp, err := TokenExpiry(tok.Access); err == nil {
		result.ExpiresAt = exp
	}
	return result, nil
}

// Logout drops local state unconditionally. The backend is not told to
// revoke the refresh token; see DESIGN.md for the rationale.
func (s *AuthService) Logout(ctx context.Context, sid string) error {
	return s.Sessions.Clear(ctx, sid)
}

// TokenExpiry reads the exp claim without verifying the signature. The
// signing key lives on the backend; the value is used for display only and
// never gates access.
func TokenExpiry(raw string) (time.Time, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("token carries no exp claim")
	}
	return claims.ExpiresAt.Time, nil
}
