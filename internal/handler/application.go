package handler

import (
	"net/http"

	"github.com/bytehaven/staffdesk/api/internal/metrics"
	"github.com/bytehaven/staffdesk/api/internal/model"
	"github.com/bytehaven/staffdesk/api/internal/service"
)

// ApplicationHandler handles application intake and review endpoints
type ApplicationHandler struct {
	applicationService *service.ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationService *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// Submit handles POST /api/applications - public form submission
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitApplicationRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	app, err := h.applicationService.Submit(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	metrics.RecordSubmission()
	WriteSuccess(w, http.StatusCreated, app)
}

// List handles GET /api/applications - review dashboard listing
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	search := r.URL.Query().Get("search")

	apps, err := h.applicationService.List(r.Context(), status, search)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteSuccess(w, http.StatusOK, apps)
}

// Update handles PATCH /api/applications/{applicationId} - review patch
func (h *ApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	applicationID := r.PathValue("applicationId")
	if applicationID == "" {
		WriteError(w, model.NewBadRequestError("application ID required"))
		return
	}

	var req model.UpdateApplicationRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	app, err := h.applicationService.Update(r.Context(), qualifyApplicationID(applicationID), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	if req.Status != nil {
		metrics.RecordReviewDecision(string(*req.Status))
	}
	WriteSuccess(w, http.StatusOK, app)
}

// Delete handles DELETE /api/applications/{applicationId}
func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	applicationID := r.PathValue("applicationId")
	if applicationID == "" {
		WriteError(w, model.NewBadRequestError("application ID required"))
		return
	}

	if err := h.applicationService.Delete(r.Context(), qualifyApplicationID(applicationID)); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]string{"message": "application deleted"})
}

// Stats handles GET /api/applications/stats - dashboard counters
func (h *ApplicationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.applicationService.Stats(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteSuccess(w, http.StatusOK, stats)
}

// qualifyApplicationID accepts both bare record keys and full record IDs in
// the URL path.
func qualifyApplicationID(id string) string {
	for i := 0; i < len(id); i++ {
		if id[i] == ':' {
			return id
		}
	}
	return "staff_application:" + id
}
