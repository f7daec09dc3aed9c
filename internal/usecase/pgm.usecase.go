package usecase

import (
	"context"

	"program-service/internal/domain"

	"go.uber.org/zap"
)

// ProgramStore is the slice of the program repository the workflows need.
type ProgramStore interface {
	GetProgram(ctx context.Context, programID, workspaceID string) (*domain.Program, error)
}

type RewardStore interface {
	CountProgramWideRewards(ctx context.Context, programID string, event domain.RewardEvent) (int, error)
	GetEnrollments(ctx context.Context, programID string, partnerIDs []string) ([]*domain.ProgramEnrollment, error)
	CountPartnerRewards(ctx context.Context, programID string, event domain.RewardEvent, partnerIDs []string) (int, error)
	CreateReward(ctx context.Context, reward *domain.Reward, enrollmentIDs []string, setAsDefault bool) error
	ListRewards(ctx context.Context, programID string) ([]*domain.Reward, error)
}

type PartnerStore interface {
	GetPartnerWithLinks(ctx context.Context, partnerID string) (*domain.Partner, []*domain.Link, error)
	DeleteCascade(ctx context.Context, partner *domain.Partner, links []*domain.Link) error
}

// LinkCleaner performs the non-relational side of link removal (routing
// cache invalidation, downstream events).
type LinkCleaner interface {
	CleanupLinks(ctx context.Context, links []*domain.Link) error
}

// PaymentAccounts deletes connected accounts at the payment provider.
type PaymentAccounts interface {
	DeleteAccount(ctx context.Context, accountID string) error
}

// AssetStore deletes stored objects and recognizes platform-hosted URLs.
type AssetStore interface {
	ObjectKey(rawURL string) (string, bool)
	Delete(ctx context.Context, key string) error
}

type RewardUsecase struct {
	programs ProgramStore
	rewards  RewardStore
	logger   *zap.Logger
}

func NewRewardUsecase(programs ProgramStore, rewards RewardStore, logger *zap.Logger) *RewardUsecase {
	return &RewardUsecase{
		programs: programs,
		rewards:  rewards,
		logger:   logger,
	}
}

type PartnerUsecase struct {
	partners PartnerStore
	links    LinkCleaner
	payments PaymentAccounts
	storage  AssetStore
	logger   *zap.Logger
}

func NewPartnerUsecase(
	partners PartnerStore,
	links LinkCleaner,
	payments PaymentAccounts,
	storage AssetStore,
	logger *zap.Logger,
) *PartnerUsecase {
	return &PartnerUsecase{
		partners: partners,
		links:    links,
		payments: payments,
		storage:  storage,
		logger:   logger,
	}
}
