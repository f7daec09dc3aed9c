package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"program-service/internal/domain"
	"program-service/internal/usecase"
	"program-service/pkg/xerrors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProgramStore struct {
	program *domain.Program
	err     error
}

func (f *fakeProgramStore) GetProgram(_ context.Context, programID, workspaceID string) (*domain.Program, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.program, nil
}

type fakeRewardStore struct {
	programWideCount   int
	partnerRewardCount int
	enrollments        []*domain.ProgramEnrollment
	createErr          error

	createCalled  bool
	created       *domain.Reward
	enrollmentIDs []string
	setAsDefault  bool
}

func (f *fakeRewardStore) CountProgramWideRewards(_ context.Context, _ string, _ domain.RewardEvent) (int, error) {
	return f.programWideCount, nil
}

func (f *fakeRewardStore) GetEnrollments(_ context.Context, _ string, _ []string) ([]*domain.ProgramEnrollment, error) {
	return f.enrollments, nil
}

func (f *fakeRewardStore) CountPartnerRewards(_ context.Context, _ string, _ domain.RewardEvent, _ []string) (int, error) {
	return f.partnerRewardCount, nil
}

func (f *fakeRewardStore) CreateReward(_ context.Context, reward *domain.Reward, enrollmentIDs []string, setAsDefault bool) error {
	f.createCalled = true
	if f.createErr != nil {
		return f.createErr
	}
	f.created = reward
	f.enrollmentIDs = enrollmentIDs
	f.setAsDefault = setAsDefault
	return nil
}

func (f *fakeRewardStore) ListRewards(_ context.Context, _ string) ([]*domain.Reward, error) {
	return nil, nil
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func testWorkspace() *domain.Workspace {
	return &domain.Workspace{
		ID:               "ws_1",
		Slug:             "acme",
		DefaultProgramID: strPtr("pgm_1"),
	}
}

func testProgram() *domain.Program {
	return &domain.Program{
		ID:          "pgm_1",
		WorkspaceID: "ws_1",
		Name:        "Acme Affiliates",
		Slug:        "acme",
	}
}

func newRewardUsecase(programs *fakeProgramStore, rewards *fakeRewardStore) *usecase.RewardUsecase {
	return usecase.NewRewardUsecase(programs, rewards, zap.NewNop())
}

func TestCreateReward_NoDefaultProgram(t *testing.T) {
	ws := testWorkspace()
	ws.DefaultProgramID = nil

	uc := newRewardUsecase(&fakeProgramStore{}, &fakeRewardStore{})

	_, err := uc.CreateReward(context.Background(), ws, &usecase.CreateRewardInput{
		Event:  domain.RewardEventSale,
		Type:   domain.RewardTypeFlat,
		Amount: 500,
	})
	require.ErrorIs(t, err, xerrors.ErrNoDefaultProgram)
}

func TestCreateReward_ProgramNotFound(t *testing.T) {
	programs := &fakeProgramStore{err: xerrors.ErrProgramNotFound}
	rewards := &fakeRewardStore{}
	uc := newRewardUsecase(programs, rewards)

	_, err := uc.CreateReward(context.Background(), testWorkspace(), &usecase.CreateRewardInput{
		Event:  domain.RewardEventSale,
		Type:   domain.RewardTypeFlat,
		Amount: 500,
	})
	require.ErrorIs(t, err, xerrors.ErrProgramNotFound)
	assert.False(t, rewards.createCalled)
}

func TestCreateReward_MaxAmountLessThanAmount(t *testing.T) {
	rewards := &fakeRewardStore{}
	uc := newRewardUsecase(&fakeProgramStore{program: testProgram()}, rewards)

	_, err := uc.CreateReward(context.Background(), testWorkspace(), &usecase.CreateRewardInput{
		Event:     domain.RewardEventSale,
		Type:      domain.RewardTypeFlat,
		Amount:    1000,
		MaxAmount: int64Ptr(500),
	})
	require.ErrorIs(t, err, xerrors.ErrMaxAmountLessThanAmount)
	assert.False(t, rewards.createCalled, "no write may happen on validation failure")
}

func TestCreateReward_DuplicateProgramWide(t *testing.T) {
	rewards := &fakeRewardStore{programWideCount: 1}
	uc := newRewardUsecase(&fakeProgramStore{program: testProgram()}, rewards)

	_, err := uc.CreateReward(context.Background(), testWorkspace(), &usecase.CreateRewardInput{
		Event:  domain.RewardEventSale,
		Type:   domain.RewardTypeFlat,
		Amount: 500,
	})
	require.ErrorIs(t, err, xerrors.ErrDuplicateProgramWideReward)
	assert.False(t, rewards.createCalled)
}

func TestCreateReward_ProgramWideSetsDefaultForSale(t *testing.T) {
	rewards := &fakeRewardStore{}
	uc := newRewardUsecase(&fakeProgramStore{program: testProgram()}, rewards)

	reward, err := uc.CreateReward(context.Background(), testWorkspace(), &usecase.CreateRewardInput{
		Event:  domain.RewardEventSale,
		Type:   domain.RewardTypePercentage,
		Amount: 10,
	})
	require.NoError(t, err)
	require.NotNil(t, reward)

	assert.True(t, strings.HasPrefix(reward.ID, "rw_"))
	assert.Equal(t, "pgm_1", reward.ProgramID)
	assert.True(t, rewards.setAsDefault)
	assert.Empty(t, rewards.enrollmentIDs)
}

func TestCreateReward_ClickNeverSetsDefault(t *testing.T) {
	rewards := &fakeRewardStore{}
	uc := newRewardUsecase(&fakeProgramStore{program: testProgram()}, rewards)

	_, err := uc.CreateReward(context.Background(), testWorkspace(), &usecase.CreateRewardInput{
		Event:  domain.RewardEventClick,
		Type:   domain.RewardTypeFlat,
		Amount: 25,
	})
	require.NoError(t, err)
	assert.False(t, rewards.setAsDefault)
}

func TestCreateReward_ExistingDefaultUnchanged(t *testing.T) {
	program := testProgram()
	program.DefaultRewardID = strPtr("rw_existing")

	rewards := &fakeRewardStore{}
	uc := newRewardUsecase(&fakeProgramStore{program: program}, rewards)

	_, err := uc.CreateReward(context.Background(), testWorkspace(), &usecase.CreateRewardInput{
		Event:  domain.RewardEventLead,
		Type:   domain.RewardTypeFlat,
		Amount: 200,
	})
	require.NoError(t, err)
	assert.False(t, rewards.setAsDefault)
}

func TestCreateReward_PartnerScopedNeverSetsDefault(t *testing.T) {
	rewards := &fakeRewardStore{
		enrollments: []*domain.ProgramEnrollment{
			{ID: "pge_1", ProgramID: "pgm_1", PartnerID: "pn_1"},
		},
	}
	uc := newRewardUsecase(&fakeProgramStore{program: testProgram()}, rewards)

	_, err := uc.CreateReward(context.Background(), testWorkspace(), &usecase.CreateRewardInput{
		PartnerIDs: []string{"pn_1"},
		Event:      domain.RewardEventSale,
		Type:       domain.RewardTypeFlat,
		Amount:     500,
	})
	require.NoError(t, err)
	assert.False(t, rewards.setAsDefault)
	assert.Equal(t, []string{"pge_1"}, rewards.enrollmentIDs)
}

func TestCreateReward_InvalidPartnerIDs(t *testing.T) {
	// two partners requested, only one enrolled
	rewards := &fakeRewardStore{
		enrollments: []*domain.ProgramEnrollment{
			{ID: "pge_1", ProgramID: "pgm_1", PartnerID: "pn_1"},
		},
	}
	uc := newRewardUsecase(&fakeProgramStore{program: testProgram()}, rewards)

	_, err := uc.CreateReward(context.Background(), testWorkspace(), &usecase.CreateRewardInput{
		PartnerIDs: []string{"pn_1", "pn_missing"},
		Event:      domain.RewardEventSale,
		Type:       domain.RewardTypeFlat,
		Amount:     500,
	})
	require.ErrorIs(t, err, xerrors.ErrInvalidPartnerIDs)
	assert.False(t, rewards.createCalled)
}

func TestCreateReward_DuplicatePartnerReward(t *testing.T) {
	rewards := &fakeRewardStore{
		enrollments: []*domain.ProgramEnrollment{
			{ID: "pge_1", ProgramID: "pgm_1", PartnerID: "pn_1"},
		},
		partnerRewardCount: 1,
	}
	uc := newRewardUsecase(&fakeProgramStore{program: testProgram()}, rewards)

	_, err := uc.CreateReward(context.Background(), testWorkspace(), &usecase.CreateRewardInput{
		PartnerIDs: []string{"pn_1"},
		Event:      domain.RewardEventSale,
		Type:       domain.RewardTypeFlat,
		Amount:     500,
	})
	require.ErrorIs(t, err, xerrors.ErrDuplicatePartnerReward)
	assert.False(t, rewards.createCalled)
}

func TestCreateReward_UniqueViolationMapsToConflict(t *testing.T) {
	rewards := &fakeRewardStore{
		createErr: &pgconn.PgError{Code: "23505"},
	}
	uc := newRewardUsecase(&fakeProgramStore{program: testProgram()}, rewards)

	_, err := uc.CreateReward(context.Background(), testWorkspace(), &usecase.CreateRewardInput{
		Event:  domain.RewardEventSale,
		Type:   domain.RewardTypeFlat,
		Amount: 500,
	})
	require.ErrorIs(t, err, xerrors.ErrDuplicateProgramWideReward)
}

func TestCreateReward_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection reset")
	rewards := &fakeRewardStore{createErr: storeErr}
	uc := newRewardUsecase(&fakeProgramStore{program: testProgram()}, rewards)

	_, err := uc.CreateReward(context.Background(), testWorkspace(), &usecase.CreateRewardInput{
		Event:  domain.RewardEventSale,
		Type:   domain.RewardTypeFlat,
		Amount: 500,
	})
	require.ErrorIs(t, err, storeErr)
}

func TestCreateReward_RejectsUnknownEvent(t *testing.T) {
	uc := newRewardUsecase(&fakeProgramStore{program: testProgram()}, &fakeRewardStore{})

	_, err := uc.CreateReward(context.Background(), testWorkspace(), &usecase.CreateRewardInput{
		Event:  "signup",
		Type:   domain.RewardTypeFlat,
		Amount: 500,
	})
	require.Error(t, err)
}
