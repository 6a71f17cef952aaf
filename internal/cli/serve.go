package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"weddingly/config"
	authadapter "weddingly/internal/adapters/auth"
	emailadapter "weddingly/internal/adapters/email"
	"weddingly/internal/adapters/media"
	httpdelivery "weddingly/internal/delivery/http"
	"weddingly/internal/delivery/http/controllers"
	"weddingly/internal/delivery/http/middleware"
	"weddingly/internal/repository/postgres"
	"weddingly/internal/services"
)

const bcryptCost = 10

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := config.NewLogger()

		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			return fmt.Errorf("ping database: %w", err)
		}

		// Repositories
		userRepo := postgres.NewUserRepository(db)
		siteRepo := postgres.NewSiteRepository(db)
		eventRepo := postgres.NewEventRepository(db)
		rsvpRepo := postgres.NewRSVPRepository(db)

		// Adapters
		hasher := authadapter.NewBcryptHasher(bcryptCost)
		issuer, verifier := authadapter.NewJWTTokens(cfg.JWTSecret)
		uploader := media.NewCloudinaryUploader(nil, media.Config{
			CloudName:    cfg.Cloudinary.CloudName,
			UploadPreset: cfg.Cloudinary.UploadPreset,
			Folder:       cfg.Cloudinary.Folder,
		})
		mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
			Provider:    cfg.Email.Provider,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			SES: emailadapter.SESConfig{
				Region:          cfg.Email.SESRegion,
				AccessKeyID:     cfg.Email.SESAccessKeyID,
				SecretAccessKey: cfg.Email.SESSecretAccessKey,
			},
		})
		if err != nil {
			return fmt.Errorf("create mailer: %w", err)
		}

		// Services
		emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())
		authService := services.NewAuthService(userRepo, hasher, issuer, cfg.JWTExpiry)
		siteService := services.NewSiteService(siteRepo, eventRepo, hasher)
		guestService := services.NewGuestService(siteRepo, eventRepo, hasher)
		rsvpService := services.NewRSVPService(siteRepo, rsvpRepo, userRepo, emailService)

		// Controllers and router
		router := httpdelivery.NewRouter(
			logger,
			verifier,
			controllers.NewAuthController(logger, authService),
			controllers.NewSiteController(logger, siteService),
			controllers.NewGuestController(logger, guestService),
			controllers.NewRSVPController(logger, rsvpService),
			controllers.NewUploadController(logger, uploader),
		)
		handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, router))

		server := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	},
}
