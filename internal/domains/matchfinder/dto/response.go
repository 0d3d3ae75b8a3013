package dto

import "github.com/savioruz/turfics/pkg/turfapi"

type MyMatchesResponse struct {
	Hosted []turfapi.OpenMatch `json:"hosted"`
	Joined []turfapi.OpenMatch `json:"joined"`
	// PendingRequests counts join requests awaiting the host across hosted matches.
	PendingRequests int `json:"pending_requests"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
