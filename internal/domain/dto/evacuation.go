package dto

type CreateEvacuationRequest struct {
	UserID          *int64  `json:"user_id" validate:"required"`
	EvacuationPoint *string `json:"evacuation_point"`
	AssignedTeam    *string `json:"assigned_team"`
	Priority        *string `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	FamilyMembers   *int    `json:"family_members" validate:"omitempty,gte=1"`
	HasDisabilities *bool   `json:"has_disabilities"`
	HasPets         *bool   `json:"has_pets"`
	SpecialNeeds    *string `json:"special_needs"`
	Notes           *string `json:"notes"`
}

type UpdateEvacuationRequest struct {
	Status          *string `json:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	EvacuationPoint *string `json:"evacuation_point"`
	AssignedTeam    *string `json:"assigned_team"`
	Priority        *string `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	FamilyMembers   *int    `json:"family_members" validate:"omitempty,gte=1"`
	HasDisabilities *bool   `json:"has_disabilities"`
	HasPets         *bool   `json:"has_pets"`
	SpecialNeeds    *string `json:"special_needs"`
	Notes           *string `json:"notes"`
}

type ListEvacuationsFilter struct {
	Status   string `query:"status"`
	Priority string `query:"priority"`
}
