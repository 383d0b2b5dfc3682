package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"emergencyAPI/internal/api/handlers/http/admin"
	"emergencyAPI/internal/api/handlers/http/public"
	"emergencyAPI/internal/api/handlers/http/system"
	"emergencyAPI/internal/config"
	"emergencyAPI/internal/metrics"
	"emergencyAPI/internal/middleware"
	"emergencyAPI/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

// Deps are the collaborators the HTTP layer needs besides the use cases.
type Deps struct {
	Verifier middleware.TokenVerifier
	Checks   map[string]system.Pinger
}

func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, deps Deps) *Server {
	adminHandler := admin.NewHandler(logger, svc.Admin, svc.Stats, svc.Directory)
	publicHandler := public.NewHandler(logger, svc.Reports, svc.Directory, svc.Uploads, cfg.Reports.SearchRadiusMeters)
	systemHandler := system.NewHandler(logger, deps.Checks)

	r := InitRouter(ctx, cfg, adminHandler, publicHandler, systemHandler, deps.Verifier, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	ctx context.Context,
	cfg *config.Config,
	adminHandler *admin.Handler,
	publicHandler *public.Handler,
	systemHandler *system.Handler,
	verifier middleware.TokenVerifier,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(ctx, 2, 5, 10*time.Minute, logger))

			ar.Get("/stats", adminHandler.AdminStats)
			ar.Post("/directory/reload", adminHandler.AdminDirectoryReload)

			ar.Route("/facilities", func(fr chi.Router) {
				fr.Post("/", adminHandler.AdminFacilityCreate)
				fr.Get("/", adminHandler.AdminFacilityList)

				fr.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.AdminFacilityGet)
					rr.Delete("/", adminHandler.AdminFacilityDelete)
				})
			})
		})

		// AUTHENTICATED
		api.Group(func(pr chi.Router) {
			pr.Use(middleware.Authenticate(verifier, logger))
			pr.Use(middleware.Limit(ctx, cfg.Http.RateLimitRPS, cfg.Http.RateLimitBurst, 5*time.Minute, logger))

			pr.Route("/reports", func(rr chi.Router) {
				rr.Post("/register", publicHandler.RegisterReport)
				rr.Post("/radio-3km", publicHandler.ReportsNearby)
				rr.Put("/request-delete", publicHandler.RequestDelete)
				rr.Delete("/delete/{reportId}", publicHandler.DeleteReport)
				rr.Get("/mine", publicHandler.MyReports)
				rr.Get("/categories", publicHandler.Categories)
				rr.Get("/{reportId}", publicHandler.GetReport)
				rr.Put("/{reportId}", publicHandler.UpdateReport)
			})

			pr.Route("/directories", func(dr chi.Router) {
				dr.Post("/emergency-sites-nearby", publicHandler.EmergencySitesNearby)
				dr.Get("/emergency-sites", publicHandler.EmergencySitesWithin)
			})

			if publicHandler.Uploads != nil {
				pr.Post("/cloudinary/upload", publicHandler.UploadImage)
			}
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
		api.Get("/ready", systemHandler.SystemReady)
	})

	return r
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
