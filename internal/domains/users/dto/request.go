package dto

// SearchRequest is both the query of GET /users/search and a live search frame.
type SearchRequest struct {
	Query string `query:"q" json:"q" validate:"max=100"`
}
