package dto

import "github.com/savioruz/turfics/pkg/turfapi"

type SearchResponse struct {
	Query string         `json:"query"`
	Users []turfapi.User `json:"users"`
}
