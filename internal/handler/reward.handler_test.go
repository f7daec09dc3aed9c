package handler_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"program-service/internal/domain"
	"program-service/internal/handler"
	"program-service/internal/middleware"
	"program-service/internal/usecase"
	"program-service/pkg/xerrors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRewardService struct {
	reward *domain.Reward
	list   []*domain.Reward
	err    error
}

func (s *stubRewardService) CreateReward(_ context.Context, _ *domain.Workspace, _ *usecase.CreateRewardInput) (*domain.Reward, error) {
	return s.reward, s.err
}

func (s *stubRewardService) ListRewards(_ context.Context, _ *domain.Workspace) ([]*domain.Reward, error) {
	return s.list, s.err
}

type stubPartnerService struct {
	err     error
	deleted []string
}

func (s *stubPartnerService) DeletePartner(_ context.Context, partnerID string) error {
	s.deleted = append(s.deleted, partnerID)
	return s.err
}

func workspaceCtx(r *http.Request) *http.Request {
	programID := "pgm_1"
	ws := &domain.Workspace{ID: "ws_1", Slug: "acme", DefaultProgramID: &programID}
	return r.WithContext(context.WithValue(r.Context(), middleware.ContextWorkspace, ws))
}

func TestCreateRewardHandler_Created(t *testing.T) {
	h := handler.NewProgramHandler(&stubRewardService{
		reward: &domain.Reward{ID: "rw_1", ProgramID: "pgm_1", Event: domain.RewardEventSale},
	}, &stubPartnerService{})

	body := bytes.NewBufferString(`{"event":"sale","type":"flat","amount":500}`)
	req := workspaceCtx(httptest.NewRequest(http.MethodPost, "/rewards/create", body))
	rec := httptest.NewRecorder()

	h.CreateReward(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "rw_1")
}

func TestCreateRewardHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"conflict program-wide", xerrors.ErrDuplicateProgramWideReward, http.StatusConflict},
		{"conflict partner", xerrors.ErrDuplicatePartnerReward, http.StatusConflict},
		{"bad max amount", xerrors.ErrMaxAmountLessThanAmount, http.StatusBadRequest},
		{"bad partner ids", xerrors.ErrInvalidPartnerIDs, http.StatusBadRequest},
		{"program missing", xerrors.ErrProgramNotFound, http.StatusNotFound},
		{"no default program", xerrors.ErrNoDefaultProgram, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewProgramHandler(&stubRewardService{err: tt.err}, &stubPartnerService{})

			body := bytes.NewBufferString(`{"event":"sale","type":"flat","amount":500}`)
			req := workspaceCtx(httptest.NewRequest(http.MethodPost, "/rewards/create", body))
			rec := httptest.NewRecorder()

			h.CreateReward(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestCreateRewardHandler_MissingWorkspace(t *testing.T) {
	h := handler.NewProgramHandler(&stubRewardService{}, &stubPartnerService{})

	body := bytes.NewBufferString(`{"event":"sale","type":"flat","amount":500}`)
	req := httptest.NewRequest(http.MethodPost, "/rewards/create", body)
	rec := httptest.NewRecorder()

	h.CreateReward(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateRewardHandler_UnknownField(t *testing.T) {
	h := handler.NewProgramHandler(&stubRewardService{}, &stubPartnerService{})

	body := bytes.NewBufferString(`{"event":"sale","bogus":true}`)
	req := workspaceCtx(httptest.NewRequest(http.MethodPost, "/rewards/create", body))
	rec := httptest.NewRecorder()

	h.CreateReward(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeletePartnerHandler(t *testing.T) {
	partners := &stubPartnerService{}
	h := handler.NewProgramHandler(&stubRewardService{}, partners)

	r := chi.NewRouter()
	r.Delete("/cron/partners/{id}", h.DeletePartner)

	req := httptest.NewRequest(http.MethodDelete, "/cron/partners/pn_1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{"pn_1"}, partners.deleted)
}
