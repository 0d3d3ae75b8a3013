package dto

import "github.com/savioruz/turfics/pkg/turfapi"

type OptionsResponse struct {
	Tones       []string `json:"tones"`
	Backgrounds []string `json:"backgrounds"`
}

type PosterResponse struct {
	TournamentID int64                 `json:"tournament_id"`
	Background   string                `json:"background"`
	Content      turfapi.PosterContent `json:"content"`
}

type ShareResponse struct {
	PosterURL string   `json:"poster_url"`
	SentTo    []string `json:"sent_to"`
	Failed    []string `json:"failed,omitempty"`
}
