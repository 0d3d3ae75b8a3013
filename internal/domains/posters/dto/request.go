package dto

type GenerateRequest struct {
	TournamentID int64  `json:"tournament_id" validate:"required,min=1"`
	Tone         string `json:"tone" validate:"required,max=50" example:"Energetic & Competitive"`
	CustomTone   string `json:"custom_tone" validate:"omitempty,max=100"`
	Background   string `json:"background" validate:"required" example:"neon"`
	ImagePrompt  string `json:"image_prompt" validate:"omitempty,max=500"`
}

// RenderRequest carries content already generated and previewed by the client.
type RenderRequest struct {
	TournamentID int64    `json:"tournament_id" validate:"required,min=1"`
	Background   string   `json:"background" validate:"required"`
	Headline     string   `json:"headline" validate:"required,max=200"`
	Subheadline  string   `json:"subheadline" validate:"omitempty,max=300"`
	Highlights   []string `json:"highlights" validate:"max=6,dive,max=200"`
	CallToAction string   `json:"call_to_action" validate:"omitempty,max=100"`
}

type ShareRequest struct {
	RenderRequest
	Emails []string `json:"emails" validate:"max=20,dive,email"`
}
