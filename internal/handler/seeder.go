package handler

import (
	"net/http"

	"github.com/bytehaven/staffdesk/api/internal/model"
	"github.com/bytehaven/staffdesk/api/internal/service"
)

// SeederHandler exposes sample-data endpoints for development environments
type SeederHandler struct {
	seederService *service.SeederService
}

// NewSeederHandler creates a new seeder handler
func NewSeederHandler(seederService *service.SeederService) *SeederHandler {
	return &SeederHandler{
		seederService: seederService,
	}
}

// SeedApplications handles POST /api/admin/seed/applications
func (h *SeederHandler) SeedApplications(w http.ResponseWriter, r *http.Request) {
	var req service.SeedApplicationsRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.seederService.SeedApplications(r.Context(), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteSuccess(w, http.StatusCreated, result)
}

// Cleanup handles DELETE /api/admin/seed/cleanup
func (h *SeederHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	result, err := h.seederService.Cleanup(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteSuccess(w, http.StatusOK, result)
}
