package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"program-service/internal/domain"
	"program-service/internal/usecase"
	"program-service/pkg/xerrors"
)

// rewardService and partnerService are the usecase surfaces the handlers
// depend on; the concrete types in internal/usecase satisfy them.
type rewardService interface {
	CreateReward(ctx context.Context, ws *domain.Workspace, in *usecase.CreateRewardInput) (*domain.Reward, error)
	ListRewards(ctx context.Context, ws *domain.Workspace) ([]*domain.Reward, error)
}

type partnerService interface {
	DeletePartner(ctx context.Context, partnerID string) error
}

type ProgramHandler struct {
	rewards  rewardService
	partners partnerService
}

func NewProgramHandler(rewards rewardService, partners partnerService) *ProgramHandler {
	return &ProgramHandler{
		rewards:  rewards,
		partners: partners,
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// statusFromError maps the workflow error taxonomy to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, xerrors.ErrDuplicateProgramWideReward),
		errors.Is(err, xerrors.ErrDuplicatePartnerReward):
		return http.StatusConflict
	case errors.Is(err, xerrors.ErrProgramNotFound),
		errors.Is(err, xerrors.ErrNoDefaultProgram),
		errors.Is(err, xerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, xerrors.ErrMaxAmountLessThanAmount),
		errors.Is(err, xerrors.ErrInvalidPartnerIDs):
		return http.StatusBadRequest
	case errors.Is(err, xerrors.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
