package usecase

import (
	"context"
	"errors"

	"program-service/internal/domain"
	"program-service/pkg/id"
	"program-service/pkg/xerrors"

	"go.uber.org/zap"
)

// CreateRewardInput is the reward-creation payload after schema validation.
// An empty PartnerIDs slice requests a program-wide reward.
type CreateRewardInput struct {
	PartnerIDs  []string           `json:"partner_ids,omitempty"`
	Event       domain.RewardEvent `json:"event"`
	Type        domain.RewardType  `json:"type"`
	Amount      int64              `json:"amount"`
	MaxDuration *int               `json:"max_duration,omitempty"`
	MaxAmount   *int64             `json:"max_amount,omitempty"`
}

func (in *CreateRewardInput) validate() error {
	if !domain.ValidRewardEvent(in.Event) {
		return errors.New("event must be one of click, lead, sale")
	}
	if in.Type != domain.RewardTypeFlat && in.Type != domain.RewardTypePercentage {
		return errors.New("type must be flat or percentage")
	}
	if in.Amount < 0 {
		return errors.New("amount cannot be negative")
	}
	return nil
}

// CreateReward creates a reward rule on the workspace's default program.
// Only one program-wide reward may exist per event, and only one
// partner-specific reward per (event, partner). A program-wide lead or sale
// reward becomes the program default if none is set yet.
func (uc *RewardUsecase) CreateReward(ctx context.Context, ws *domain.Workspace, in *CreateRewardInput) (*domain.Reward, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	if ws.DefaultProgramID == nil || *ws.DefaultProgramID == "" {
		return nil, xerrors.ErrNoDefaultProgram
	}
	programID := *ws.DefaultProgramID

	program, err := uc.programs.GetProgram(ctx, programID, ws.ID)
	if err != nil {
		return nil, err
	}

	if in.MaxAmount != nil && *in.MaxAmount < in.Amount {
		return nil, xerrors.ErrMaxAmountLessThanAmount
	}

	programWide := len(in.PartnerIDs) == 0

	var enrollmentIDs []string

	if programWide {
		count, err := uc.rewards.CountProgramWideRewards(ctx, programID, in.Event)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, xerrors.ErrDuplicateProgramWideReward
		}
	} else {
		enrollments, err := uc.rewards.GetEnrollments(ctx, programID, in.PartnerIDs)
		if err != nil {
			return nil, err
		}
		if len(enrollments) != len(in.PartnerIDs) {
			return nil, xerrors.ErrInvalidPartnerIDs
		}

		count, err := uc.rewards.CountPartnerRewards(ctx, programID, in.Event, in.PartnerIDs)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, xerrors.ErrDuplicatePartnerReward
		}

		enrollmentIDs = make([]string, 0, len(enrollments))
		for _, e := range enrollments {
			enrollmentIDs = append(enrollmentIDs, e.ID)
		}
	}

	reward := &domain.Reward{
		ID:          id.Generate("rw"),
		ProgramID:   programID,
		Event:       in.Event,
		Type:        in.Type,
		Amount:      in.Amount,
		MaxDuration: in.MaxDuration,
		MaxAmount:   in.MaxAmount,
	}

	// The program default points at the first program-wide lead/sale reward.
	setAsDefault := program.DefaultRewardID == nil &&
		programWide &&
		(in.Event == domain.RewardEventLead || in.Event == domain.RewardEventSale)

	if err := uc.rewards.CreateReward(ctx, reward, enrollmentIDs, setAsDefault); err != nil {
		// Two requests can pass the count checks together; the unique
		// indexes on the reward tables decide the loser.
		if xerrors.IsUniqueViolation(err) {
			if programWide {
				return nil, xerrors.ErrDuplicateProgramWideReward
			}
			return nil, xerrors.ErrDuplicatePartnerReward
		}
		return nil, err
	}

	uc.logger.Info("reward created",
		zap.String("reward_id", reward.ID),
		zap.String("program_id", programID),
		zap.String("event", string(in.Event)),
		zap.Bool("program_wide", programWide),
		zap.Bool("set_as_default", setAsDefault))

	return reward, nil
}

// ListRewards returns the rewards of the workspace's default program.
func (uc *RewardUsecase) ListRewards(ctx context.Context, ws *domain.Workspace) ([]*domain.Reward, error) {
	if ws.DefaultProgramID == nil || *ws.DefaultProgramID == "" {
		return nil, xerrors.ErrNoDefaultProgram
	}

	program, err := uc.programs.GetProgram(ctx, *ws.DefaultProgramID, ws.ID)
	if err != nil {
		return nil, err
	}

	return uc.rewards.ListRewards(ctx, program.ID)
}
