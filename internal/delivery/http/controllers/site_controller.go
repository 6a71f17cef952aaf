package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"weddingly/internal/delivery/http/helpers"
	"weddingly/internal/delivery/http/middleware"
	"weddingly/internal/domain"
)

var hexColorRegexp = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// SaveSiteRequest is the request body for POST /wedding/site. It carries the
// whole builder form; see domain.SiteInput for the nil-vs-empty semantics of
// events and password.
type SaveSiteRequest struct {
	domain.SiteInput
}

// Validate implements Validator.
func (s SaveSiteRequest) Validate() []string {
	var errs []string
	for _, pair := range []struct{ name, value string }{
		{"primary_color", s.PrimaryColor},
		{"secondary_color", s.SecondaryColor},
		{"accent_color", s.AccentColor},
	} {
		if pair.value != "" && !hexColorRegexp.MatchString(pair.value) {
			errs = append(errs, pair.name+" must be a hex color like #AABBCC")
		}
	}
	for i, e := range s.Events {
		if strings.TrimSpace(e.Title) == "" {
			errs = append(errs, eventFieldError(i, "title"))
		}
		if strings.TrimSpace(e.Date) == "" {
			errs = append(errs, eventFieldError(i, "date"))
		}
		if strings.TrimSpace(e.Time) == "" {
			errs = append(errs, eventFieldError(i, "time"))
		}
		if strings.TrimSpace(e.Location) == "" {
			errs = append(errs, eventFieldError(i, "location"))
		}
		if strings.TrimSpace(e.Address) == "" {
			errs = append(errs, eventFieldError(i, "address"))
		}
	}
	return errs
}

func eventFieldError(index int, field string) string {
	return fmt.Sprintf("events[%d]: %s is required", index, field)
}

// SiteSuccessResponse is the success response envelope for site endpoints.
type SiteSuccessResponse struct {
	Data  *domain.WeddingSite `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// SiteController handles the owner-facing site builder endpoints.
type SiteController struct {
	Logger  *slog.Logger
	Service domain.SiteService
}

// NewSiteController creates a SiteController with the given logger and service.
func NewSiteController(logger *slog.Logger, svc domain.SiteService) *SiteController {
	return &SiteController{
		Logger:  logger,
		Service: svc,
	}
}

// SaveSite godoc
// @Summary Save the authenticated owner's wedding site
// @Description Upsert the site from the builder form. Creates the site on first save (synthesizing a slug when absent) and updates it afterwards. When the body carries an events array (even empty), the stored events are replaced wholesale in submitted order.
// @Tags wedding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SaveSiteRequest true "Site form data"
// @Success 200 {object} controllers.SiteSuccessResponse "data contains the saved site with ordered events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (slug already in use)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wedding/site [post]
func (c *SiteController) SaveSite(w http.ResponseWriter, r *http.Request) {
	var req SaveSiteRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	site, err := c.Service.Save(r.Context(), ownerID, &req.SiteInput)
	if err != nil {
		if errors.Is(err, domain.ErrSlugTaken) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "slug already in use, pick another")
			return
		}
		if domain.IsValidation(err) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to save wedding site")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, site)
}

// GetOwnSite godoc
// @Summary Get the authenticated owner's wedding site
// @Description Returns the owner's site with ordered events, or null data when no site has been saved yet.
// @Tags wedding
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.SiteSuccessResponse "data contains the site, or null"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wedding/site [get]
func (c *SiteController) GetOwnSite(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	site, err := c.Service.GetByOwner(r.Context(), ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// New users have no site yet; that is not an error.
			helpers.WriteJSONSuccess(w, http.StatusOK, nil)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to fetch wedding site")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, site)
}
