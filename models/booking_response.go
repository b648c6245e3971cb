package models

const (
	StatusSuccess = "Success"
	StatusFailure = "Failure"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// AuthResponse is the soft result of a credential check.
type AuthResponse struct {
	Status           string       `json:"status"`
	Message          string       `json:"message"`
	TokenExpireAfter int          `json:"tokenexpireafter,omitempty"`
	Data             *UserProfile `json:"data"`
	Token            string       `json:"token,omitempty"`
}

// VerifyResponse reports whether a presented token is still valid.
type VerifyResponse struct {
	Status           string          `json:"status"`
	Message          string          `json:"message"`
	Valid            bool            `json:"valid"`
	TokenExpireAfter int             `json:"tokenexpireafter,omitempty"`
	Data             *TokenOwnerData `json:"data,omitempty"`
}

type TokenOwnerData struct {
	Username     string `json:"username"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	MerchantNsID string `json:"merchant_ns_id"`
}
