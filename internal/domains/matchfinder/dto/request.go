package dto

type ListRequest struct {
	Sport string `query:"sport" validate:"omitempty,max=50"`
}

type JoinActionRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

type TeamsRequest struct {
	Skill string `query:"skill" validate:"omitempty,oneof=beginner intermediate advanced pro all"`
}

type CreateTeamRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	Description   string `json:"description" validate:"omitempty,max=500"`
	SkillRequired string `json:"skill_required" validate:"omitempty,oneof=beginner intermediate advanced pro"`
}
