package domain

import "time"

type RewardEvent string

const (
	RewardEventClick RewardEvent = "click"
	RewardEventLead  RewardEvent = "lead"
	RewardEventSale  RewardEvent = "sale"
)

// ValidRewardEvent reports whether e is one of the tracked event kinds.
func ValidRewardEvent(e RewardEvent) bool {
	switch e {
	case RewardEventClick, RewardEventLead, RewardEventSale:
		return true
	}
	return false
}

type RewardType string

const (
	RewardTypeFlat       RewardType = "flat"
	RewardTypePercentage RewardType = "percentage"
)

// Reward is a commission rule for a program. A reward with no partner
// assignments is program-wide; otherwise it applies only to the partners
// joined through PartnerReward rows. Amounts are in cents for flat rewards
// and in percent for percentage rewards.
type Reward struct {
	ID          string      `json:"id"`
	ProgramID   string      `json:"program_id"`
	Event       RewardEvent `json:"event"`
	Type        RewardType  `json:"type"`
	Amount      int64       `json:"amount"`
	MaxDuration *int        `json:"max_duration,omitempty"` // months; nil = forever
	MaxAmount   *int64      `json:"max_amount,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// PartnerCount is populated on reads that aggregate assignments.
	PartnerCount int `json:"partner_count,omitempty"`
}

// ProgramWide reports whether the reward applies to every enrolled partner.
func (r *Reward) ProgramWide() bool {
	return r.PartnerCount == 0
}

// PartnerReward assigns a reward to a single program enrollment.
type PartnerReward struct {
	ID                  string    `json:"id"`
	ProgramEnrollmentID string    `json:"program_enrollment_id"`
	RewardID            string    `json:"reward_id"`
	CreatedAt           time.Time `json:"created_at"`
}
