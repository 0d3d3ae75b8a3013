package dto

type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type BulkRowError struct {
	Row      int    `json:"row"`
	TeamName string `json:"team_name,omitempty"`
	Error    string `json:"error"`
}

type BulkResponse struct {
	Total      int            `json:"total"`
	Registered int            `json:"registered"`
	Failed     []BulkRowError `json:"failed"`
}
