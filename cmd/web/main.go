package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"sketchstudio/internal/audit"
	"sketchstudio/internal/auth"
	httpapi "sketchstudio/internal/http"
	"sketchstudio/internal/http/handlers"
	"sketchstudio/internal/imagegen"
	"sketchstudio/internal/infra"
	"sketchstudio/internal/infra/geoip"
	"sketchstudio/internal/middleware"
	"sketchstudio/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	authStore, err := buildAuthStore(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load credentials")
	}
	logger.Info().Str("mode", string(authStore.Mode())).Msg("credential store ready")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessions := session.NewStore(cfg.SessionTTL)
	sessions.StartJanitor(ctx, 5*time.Minute)

	// Optional audit trail; the app runs fine without a database.
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	if dbpool != nil {
		defer dbpool.Close()
	}
	var recorder *audit.Recorder
	if dbpool != nil {
		recorder, err = audit.NewRecorder(ctx, dbpool, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to prepare audit store")
		}
		logger.Info().Msg("audit trail enabled")
	}

	// Optional GeoIP locale hint.
	var lookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		lookup = resolver.CountryCode
	}

	editor := imagegen.NewOpenAIClient(imagegen.OpenAIOptions{
		BaseURL: cfg.OpenAIBaseURL,
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.ImageModel,
		Timeout: cfg.GenerationTimeout,
	})
	generator := imagegen.NewService(editor, cfg.ImageSize, logger)

	app := handlers.NewApp(cfg, logger, authStore, sessions, generator, recorder)
	router := httpapi.NewRouter(app, lookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("studio listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

// buildAuthStore picks roster mode when AUTH_USERS is set, shared-password
// mode otherwise.
func buildAuthStore(cfg *infra.Config) (*auth.Store, error) {
	if cfg.UserRoster != "" {
		users, err := auth.ParseRoster(cfg.UserRoster)
		if err != nil {
			return nil, err
		}
		return auth.NewRoster(users)
	}
	return auth.NewShared(cfg.SharedPassword)
}
