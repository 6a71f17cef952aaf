package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"weddingly/internal/delivery/http/helpers"
	"weddingly/internal/domain"
)

// VerifySitePasswordRequest is the request body for POST /wedding/{slug}.
type VerifySitePasswordRequest struct {
	Password string `json:"password"`
}

// Validate implements Validator.
func (v VerifySitePasswordRequest) Validate() []string {
	if v.Password == "" {
		return []string{"password is required"}
	}
	return nil
}

// GuestSiteSuccessResponse is the success response envelope for guest site endpoints.
type GuestSiteSuccessResponse struct {
	Data  *domain.GuestSiteResult `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// GuestController handles the guest-facing read path for published sites.
type GuestController struct {
	Logger  *slog.Logger
	Service domain.GuestService
}

// NewGuestController creates a GuestController with the given logger and service.
func NewGuestController(logger *slog.Logger, svc domain.GuestService) *GuestController {
	return &GuestController{
		Logger:  logger,
		Service: svc,
	}
}

// GetSite godoc
// @Summary Get a published wedding site by slug
// @Description Returns the redacted site for guests. Password-protected sites answer with only {requires_password: true}; supply the password via POST /wedding/{slug}.
// @Tags guest
// @Produce json
// @Param slug path string true "Site slug"
// @Success 200 {object} controllers.GuestSiteSuccessResponse "data contains the site or a requires_password signal"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not published)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wedding/{slug} [get]
func (c *GuestController) GetSite(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	result, err := c.Service.ResolveSite(r.Context(), slug, nil)
	if err != nil {
		c.writeResolveError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

// VerifyPassword godoc
// @Summary Unlock a password-protected wedding site
// @Description Verifies the guest password for a protected site and returns the redacted site on success.
// @Tags guest
// @Accept json
// @Produce json
// @Param slug path string true "Site slug"
// @Param body body VerifySitePasswordRequest true "Guest password"
// @Success 200 {object} controllers.GuestSiteSuccessResponse "data contains the site"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized (wrong password)"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not published)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wedding/{slug} [post]
func (c *GuestController) VerifyPassword(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	var req VerifySitePasswordRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.ResolveSite(r.Context(), slug, &req.Password)
	if err != nil {
		c.writeResolveError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

func (c *GuestController) writeResolveError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "wedding site not found")
	case errors.Is(err, domain.ErrNotPublished):
		// Guests see an undifferentiated "not available"; the 403 status lets
		// the owner confirm the slug exists while testing.
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "wedding site not available")
	case errors.Is(err, domain.ErrInvalidSitePassword):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "incorrect password")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to fetch wedding site")
	}
}
