package dto

// MessageResponse carries a human readable confirmation
type MessageResponse struct {
	Message string `json:"mesaj"`
}

// TokenResponse follows the OAuth2 password flow response shape
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
