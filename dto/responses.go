package dto

// TokenResponse carries the token pair handed out at login
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
}

// DeleteResponse reports how far a cascading delete got. Steps holds the
// stages already completed when a cascade fails partway; on success it is
// omitted.
type DeleteResponse struct {
	Deleted bool     `json:"deleted"`
	Steps   []string `json:"completed_steps,omitempty"`
}
