package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"weddingly/internal/delivery/http/helpers"
	"weddingly/internal/delivery/http/middleware"
	"weddingly/internal/domain"
)

// SubmitRSVPRequest is the request body for POST /rsvp/{slug}. Attending is a
// pointer so a missing boolean is rejected rather than defaulting to false.
type SubmitRSVPRequest struct {
	FullName            string  `json:"full_name"`
	Email               *string `json:"email"`
	Attending           *bool   `json:"attending"`
	DietaryRestrictions *string `json:"dietary_restrictions"`
	Message             *string `json:"message"`
}

// Validate implements Validator.
func (s SubmitRSVPRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.FullName) == "" {
		errs = append(errs, "full_name is required")
	}
	if s.Attending == nil {
		errs = append(errs, "attending is required")
	}
	if s.Email != nil && *s.Email != "" && !emailRegexp.MatchString(*s.Email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

// RSVPSuccessResponse is the success response envelope for POST /rsvp/{slug} (201).
type RSVPSuccessResponse struct {
	Data  *domain.RSVP      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// RSVPListResponse is the response body for GET /rsvp/list.
type RSVPListResponse struct {
	RSVPs     []*domain.RSVP        `json:"rsvps"`
	Analytics *domain.RSVPAnalytics `json:"analytics"`
}

// RSVPListSuccessResponse is the success response envelope for GET /rsvp/list (200).
type RSVPListSuccessResponse struct {
	Data  RSVPListResponse  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// RSVPController handles guest RSVP submission and owner reporting.
type RSVPController struct {
	Logger  *slog.Logger
	Service domain.RSVPService
}

// NewRSVPController creates an RSVPController with the given logger and service.
func NewRSVPController(logger *slog.Logger, svc domain.RSVPService) *RSVPController {
	return &RSVPController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Submit a guest RSVP
// @Description Records a guest response for a published site. No authentication and no site password required; anyone with the link can RSVP.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param slug path string true "Site slug"
// @Param body body SubmitRSVPRequest true "RSVP data"
// @Success 201 {object} controllers.RSVPSuccessResponse "data contains the created RSVP"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (missing or unpublished site)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rsvp/{slug} [post]
func (c *RSVPController) Submit(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	var req SubmitRSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	input := &domain.RSVPInput{
		FullName:            req.FullName,
		Email:               req.Email,
		Attending:           *req.Attending,
		DietaryRestrictions: req.DietaryRestrictions,
		Message:             req.Message,
	}
	rsvp, err := c.Service.Submit(r.Context(), slug, input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "wedding site not found")
			return
		}
		if domain.IsValidation(err) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to submit RSVP")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, rsvp)
}

// List godoc
// @Summary List the owner's RSVPs with analytics
// @Description Returns the authenticated owner's RSVPs newest-first plus attending/declined/total counts. Owners without a site get an empty list and zero counts.
// @Tags rsvp
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.RSVPListSuccessResponse "data contains rsvps and analytics"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rsvp/list [get]
func (c *RSVPController) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	rsvps, analytics, err := c.Service.List(r.Context(), ownerID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to fetch RSVPs")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RSVPListResponse{RSVPs: rsvps, Analytics: analytics})
}

// Export godoc
// @Summary Export the owner's RSVPs as CSV
// @Description Returns a CSV attachment with one row per RSVP, newest-first.
// @Tags rsvp
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV text"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (no site yet)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rsvp/export [get]
func (c *RSVPController) Export(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	filename, csv, err := c.Service.ExportCSV(r.Context(), ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "wedding site not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to export RSVPs")
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(csv)
}
