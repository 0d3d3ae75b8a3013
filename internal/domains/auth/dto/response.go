package dto

import "time"

type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	UserID      string     `json:"user_id"`
	Username    string     `json:"username,omitempty"`
	Role        string     `json:"role"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Redirect    string     `json:"redirect"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SessionResponse struct {
	UserID    string     `json:"user_id"`
	Username  string     `json:"username,omitempty"`
	Role      string     `json:"role"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Active    bool       `json:"active"`
}
