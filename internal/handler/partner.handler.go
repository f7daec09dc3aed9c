package handler

import (
	"net/http"

	"program-service/pkg/response"

	"github.com/go-chi/chi/v5"
)

// DeletePartner handles DELETE /cron/partners/{id}. It is invoked by the
// scheduled cleanup job; deleting an already-deleted partner succeeds so the
// job can retry freely.
func (h *ProgramHandler) DeletePartner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	partnerID := chi.URLParam(r, "id")
	if partnerID == "" {
		response.Error(w, http.StatusBadRequest, "missing partner id")
		return
	}

	if err := h.partners.DeletePartner(ctx, partnerID); err != nil {
		response.Error(w, statusFromError(err), "failed to delete partner: "+err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{
		"message": "partner deleted",
	})
}
