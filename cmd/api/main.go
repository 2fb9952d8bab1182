// Command api serves the tattoo studio management REST API.
//
// @title                       Tattoo Studio Manager API
// @version                     1.0
// @description                 Staff API for clients, artists and tattoo sessions.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the access token.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tattoostudio/studio-manager/internal/api"
	"github.com/tattoostudio/studio-manager/internal/core/ports"
	"github.com/tattoostudio/studio-manager/internal/core/service"
	"github.com/tattoostudio/studio-manager/internal/infrastructure/config"
	redisdb "github.com/tattoostudio/studio-manager/internal/infrastructure/db/redis"
	"github.com/tattoostudio/studio-manager/internal/infrastructure/db/sqldb"
	"github.com/tattoostudio/studio-manager/internal/infrastructure/telemetry"
	"github.com/tattoostudio/studio-manager/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	flags := pflag.NewFlagSet("api", pflag.ExitOnError)
	provisionOnly := flags.Bool("provision-only", false, "ensure the database schema exists and exit")
	envFile := flags.String("env-file", ".env", "dotenv file to load before reading the environment")
	_ = flags.Parse(os.Args[1:])

	if err := run(*envFile, *provisionOnly); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(envFile string, provisionOnly bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx, envFile)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: cfg.AppName,
	})

	db, dialect, err := sqldb.Open(ctx, sqldb.Config{
		Driver:       cfg.Database.Driver,
		URL:          cfg.Database.URL,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info().Str("driver", dialect.Name).Msg("database connected")

	provisioner := sqldb.NewProvisioner(db, dialect, log.With().Str("component", "provisioner").Logger())
	if cfg.Database.AutoProvision || provisionOnly {
		if err := provision(ctx, provisioner, log); err != nil {
			if provisionOnly {
				return err
			}
			log.Error().Err(err).Msg("startup provisioning failed, continuing")
		}
	}
	if provisionOnly {
		return nil
	}

	shutdownTracing := telemetry.Setup(ctx, telemetry.Config{
		ServiceName: cfg.AppName,
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		Insecure:    cfg.Telemetry.OTLPInsecure,
	}, log)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn().Err(err).Msg("tracer shutdown")
		}
	}()

	var (
		rdb         *goredis.Client
		idempotency ports.IdempotencyStore = redisdb.NoopIdempotencyStore{}
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, session booking idempotency disabled")
		} else {
			defer rdb.Close()
			idempotency = redisdb.NewIdempotencyStore(rdb, cfg.Redis.IdempotencyTTL)
			log.Info().Int("db", rdb.Options().DB).Msg("redis connected")
		}
	}

	userRepo := sqldb.NewUserRepository(db, dialect)
	clientRepo := sqldb.NewClientRepository(db, dialect)
	artistRepo := sqldb.NewArtistRepository(db, dialect)
	sessionRepo := sqldb.NewSessionRepository(db, dialect)

	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)

	e := api.NewRouter(api.Dependencies{
		AppName:     cfg.AppName,
		Debug:       cfg.Debug,
		Log:         log,
		Tokens:      tokens,
		Auth:        service.NewAuthService(userRepo, tokens, cfg.Auth.BcryptCost, log),
		Users:       service.NewUserService(userRepo, log),
		Clients:     service.NewClientService(clientRepo, log),
		Artists:     service.NewArtistService(artistRepo, log),
		Sessions:    service.NewSessionService(sessionRepo, clientRepo, artistRepo, idempotency, log),
		Provisioner: provisioner,
		DB:          db,
		Redis:       rdb,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(e, "studio-api"),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Bool("debug", cfg.Debug).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// provision runs the schema provisioner once and logs its outcome.
func provision(ctx context.Context, p ports.SchemaProvisioner, log zerolog.Logger) error {
	result, err := p.EnsureSchema(ctx)
	if err != nil {
		return err
	}
	if result.Status != ports.ProvisionSuccess {
		return fmt.Errorf("schema provisioning failed: %s", result.Error)
	}
	log.Info().
		Strs("created", result.Created).
		Strs("existing", result.Existing).
		Msg("schema ready")
	return nil
}
