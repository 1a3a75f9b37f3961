// README: Entry point; loads config, wires the generation stack and module services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"voyage/internal/ai"
	"voyage/internal/config"
	httptransport "voyage/internal/http"
	"voyage/internal/infra"
	"voyage/internal/maps"
	"voyage/internal/modules/planner"
	"voyage/internal/modules/prfaq"
	"voyage/internal/modules/research"
	"voyage/internal/modules/support"
	"voyage/internal/modules/usage"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, cleanup, err := newProvider(ctx, cfg.Generation)
	if err != nil {
		log.Fatal().Err(err).Msg("generation provider init")
	}
	defer cleanup()

	provider = ai.Retry(provider, cfg.Generation.MaxAttempts,
		time.Duration(cfg.Generation.RetryDelaySeconds)*time.Second)

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("db init")
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	if ttl := cfg.Generation.CacheTTLMinutes; ttl > 0 {
		provider = ai.Cache(provider, redisClient, time.Duration(ttl)*time.Minute)
	}

	plannerSvc := planner.NewService(provider)
	ticketStore := support.NewStore(dbPool)
	supportSvc := support.NewService(provider, ticketStore)
	researchSvc := research.NewService(provider, research.NewHTTPFetcher())
	prfaqSvc := prfaq.NewService(provider)
	usageSvc := usage.NewService(usage.NewStore(dbPool))

	var diningSvc *maps.DiningService
	if cfg.Maps.APIKey != "" {
		diningSvc, err = maps.NewDiningService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatal().Err(err).Msg("maps init")
		}
	} else {
		log.Warn().Msg("MAPS_API_KEY not set; dining routes disabled")
	}

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Planner:   plannerSvc,
		Support:   supportSvc,
		Tickets:   ticketStore,
		Research:  researchSvc,
		PRFAQ:     prfaqSvc,
		Usage:     usageSvc,
		Dining:    diningSvc,
		JWTSecret: cfg.Auth.JWTSecret,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.HTTP.Addr).Msg("listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server")
	}
}

// newProvider builds the configured completion backend. cleanup is always
// safe to call.
func newProvider(ctx context.Context, cfg config.GenerationConfig) (ai.Provider, func(), error) {
	switch cfg.Provider {
	case "together":
		if cfg.TogetherKey == "" {
			return nil, func() {}, errors.New("TOGETHER_API_KEY is required")
		}
		p, err := ai.NewTogetherProvider(cfg.TogetherKey)
		return p, func() {}, err
	case "gemini":
		if cfg.GeminiKey == "" {
			return nil, func() {}, errors.New("GEMINI_API_KEY is required")
		}
		p, err := ai.NewGeminiProvider(ctx, cfg.GeminiKey)
		if err != nil {
			return nil, func() {}, err
		}
		return p, p.Close, nil
	default:
		return nil, func() {}, errors.New("unknown provider: " + cfg.Provider)
	}
}
