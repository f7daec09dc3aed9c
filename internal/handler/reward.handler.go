package handler

import (
	"net/http"

	"program-service/internal/middleware"
	"program-service/internal/usecase"
	"program-service/pkg/response"
)

// CreateReward handles POST /rewards/create for the authenticated workspace.
func (h *ProgramHandler) CreateReward(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ws, ok := middleware.WorkspaceFromContext(ctx)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "missing workspace context")
		return
	}

	var in usecase.CreateRewardInput
	if err := decodeJSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	reward, err := h.rewards.CreateReward(ctx, ws, &in)
	if err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusCreated, reward)
}

// ListRewards handles GET /rewards/get.
func (h *ProgramHandler) ListRewards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ws, ok := middleware.WorkspaceFromContext(ctx)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "missing workspace context")
		return
	}

	rewards, err := h.rewards.ListRewards(ctx, ws)
	if err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"rewards": rewards,
		"count":   len(rewards),
	})
}
