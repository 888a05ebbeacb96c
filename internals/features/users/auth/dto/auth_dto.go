package dto

type IssueTokenRequest struct {
	CallerName string `json:"caller_name" validate:"required,max=100"`
	// OwnerKey wajib hanya di mode owner.
	OwnerKey string `json:"owner_key" validate:"max=200"`
}

type IssueTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
