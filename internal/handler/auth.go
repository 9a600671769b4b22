package handler

import (
	"net/http"

	"github.com/bytehaven/staffdesk/api/internal/model"
	"github.com/bytehaven/staffdesk/api/internal/service"
)

// AuthHandler handles admin authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginRequest is the admin login payload
type LoginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/admin/login - exchanges the dashboard password for
// a session token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.Password == "" {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "password", Message: "password is required"},
		}))
		return
	}

	session, err := h.authService.Login(r.Context(), req.Password)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteSuccess(w, http.StatusOK, session)
}
