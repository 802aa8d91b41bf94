package domain

import "time"

type EvacuationStatus = string

const (
	EvacuationPending    EvacuationStatus = "pending"
	EvacuationInProgress EvacuationStatus = "in_progress"
	EvacuationCompleted  EvacuationStatus = "completed"
	EvacuationCancelled  EvacuationStatus = "cancelled"
)

func ValidEvacuationStatus(s string) bool {
	switch s {
	case EvacuationPending, EvacuationInProgress, EvacuationCompleted, EvacuationCancelled:
		return true
	}
	return false
}

type EvacuationPriority = string

const (
	PriorityLow      EvacuationPriority = "low"
	PriorityMedium   EvacuationPriority = "medium"
	PriorityHigh     EvacuationPriority = "high"
	PriorityCritical EvacuationPriority = "critical"
)

func ValidEvacuationPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type Evacuation struct {
	ID              int64              `db:"id"`
	UserID          int64              `db:"user_id"`
	Status          EvacuationStatus   `db:"status"`
	Priority        EvacuationPriority `db:"priority"`
	EvacuationPoint *string            `db:"evacuation_point"`
	AssignedTeam    *string            `db:"assigned_team"`
	FamilyMembers   int                `db:"family_members"`
	HasDisabilities bool               `db:"has_disabilities"`
	HasPets         bool               `db:"has_pets"`
	SpecialNeeds    *string            `db:"special_needs"`
	Notes           *string            `db:"notes"`
	CompletedAt     *time.Time         `db:"completed_at"`
	CreatedAt       time.Time          `db:"created_at"`
	UpdatedAt       time.Time          `db:"updated_at"`
}

// EvacuationUser is the owner block embedded for admin/emergency readers.
type EvacuationUser struct {
	ID       int64   `json:"id"`
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

type EvacuationView struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	Status          string          `json:"status"`
	Priority        string          `json:"priority"`
	EvacuationPoint *string         `json:"evacuation_point"`
	AssignedTeam    *string         `json:"assigned_team"`
	FamilyMembers   int             `json:"family_members"`
	HasDisabilities bool            `json:"has_disabilities"`
	HasPets         bool            `json:"has_pets"`
	SpecialNeeds    *string         `json:"special_needs"`
	Notes           *string         `json:"notes"`
	CompletedAt     *string         `json:"completed_at"`
	CreatedAt       string          `json:"created_at"`
	User            *EvacuationUser `json:"user,omitempty"`
}

func (e *Evacuation) View() *EvacuationView {
	v := &EvacuationView{
		ID:              e.ID,
		UserID:          e.UserID,
		Status:          e.Status,
		Priority:        e.Priority,
		EvacuationPoint: e.EvacuationPoint,
		AssignedTeam:    e.AssignedTeam,
		FamilyMembers:   e.FamilyMembers,
		HasDisabilities: e.HasDisabilities,
		HasPets:         e.HasPets,
		SpecialNeeds:    e.SpecialNeeds,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt.UTC().Format(time.RFC3339),
	}
	if e.CompletedAt != nil {
		t := e.CompletedAt.UTC().Format(time.RFC3339)
		v.CompletedAt = &t
	}
	return v
}
