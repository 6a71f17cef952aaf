package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"weddingly/internal/delivery/http/controllers"
	"weddingly/internal/delivery/http/middleware"
	"weddingly/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// The literal /wedding/site pattern takes precedence over /wedding/{slug}.
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	siteController *controllers.SiteController,
	guestController *controllers.GuestController,
	rsvpController *controllers.RSVPController,
	uploadController *controllers.UploadController,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/register", authController.Register)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Owner site builder
	mux.HandleFunc("GET /wedding/site", requireAuth(siteController.GetOwnSite))
	mux.HandleFunc("POST /wedding/site", requireAuth(siteController.SaveSite))

	// Guest read path
	mux.HandleFunc("GET /wedding/{slug}", guestController.GetSite)
	mux.HandleFunc("POST /wedding/{slug}", guestController.VerifyPassword)

	// RSVPs
	mux.HandleFunc("POST /rsvp/{slug}", rsvpController.Submit)
	mux.HandleFunc("GET /rsvp/list", requireAuth(rsvpController.List))
	mux.HandleFunc("GET /rsvp/export", requireAuth(rsvpController.Export))

	// Media upload pass-through
	mux.HandleFunc("POST /upload", requireAuth(uploadController.Upload))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
