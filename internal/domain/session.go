package domain

// Session is the access/refresh token pair for an authenticated user.
// Both fields are set together on login and cleared together on logout —
// never only one. An empty Session means logged out.
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// IsEmpty reports whether no session is stored.
func (s Session) IsEmpty() bool {
	return s.AccessToken == "" && s.RefreshToken == ""
}
