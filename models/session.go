package models

// Session is the client-held record of the current authentication state and
// role flags. The zero value is the anonymous default: no tokens, no
// username, both flags false.
type Session struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	Username     string `json:"username,omitempty"`
	IsStaff      bool   `json:"isStaff"`
	IsSuperuser  bool   `json:"isSuperuser"`
}

// Anonymous returns the session of an unauthenticated visitor.
func Anonymous() Session {
	return Session{}
}

// Authenticated reports whether the session holds an access token. The role
// flags are meaningful only when this is true.
func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}
