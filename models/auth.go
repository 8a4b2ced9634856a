package models

// Credentials are the email/password pair posted to the login endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by the login endpoint.
//
// Backends spell the token field differently; both spellings are accepted
// and [LoginResponse.AccessToken] is the only place that picks one.
type LoginResponse struct {
	AccessTokenSnake string `json:"access_token,omitempty"`
	AccessTokenCamel string `json:"accessToken,omitempty"`
	TokenType        string `json:"token_type,omitempty"`
	ExpiresIn        int64  `json:"expires_in,omitempty"`
}

// AccessToken returns the issued token, or "" when the response carries none.
func (r LoginResponse) AccessToken() string {
	if r.AccessTokenSnake != "" {
		return r.AccessTokenSnake
	}
	return r.AccessTokenCamel
}
