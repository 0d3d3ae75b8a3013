package dto

import authDto "github.com/savioruz/turfics/internal/domains/auth/dto"

type URLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

type CallbackResponse struct {
	Login       authDto.LoginResponse `json:"login"`
	FrontendURL string                `json:"frontend_url"`
}
