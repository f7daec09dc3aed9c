// domain/program.go
package domain

import (
	"time"
)

type Workspace struct {
	ID               string    `json:"id"`
	Slug             string    `json:"slug"`
	DefaultProgramID *string   `json:"default_program_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Program struct {
	ID              string    `json:"id"`
	WorkspaceID     string    `json:"workspace_id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	DefaultRewardID *string   `json:"default_reward_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type EnrollmentStatus string

const (
	EnrollmentStatusApproved EnrollmentStatus = "approved"
	EnrollmentStatusPending  EnrollmentStatus = "pending"
	EnrollmentStatusBanned   EnrollmentStatus = "banned"
)

// ProgramEnrollment links a partner to a program. Partner-specific rewards
// hang off the enrollment, not the partner directly.
type ProgramEnrollment struct {
	ID        string           `json:"id"`
	ProgramID string           `json:"program_id"`
	PartnerID string           `json:"partner_id"`
	Status    EnrollmentStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}
