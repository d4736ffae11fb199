package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"

	"github.com/comitanigiacomo/noor-sync-engine/internal/adapters/aladhan"
	"github.com/comitanigiacomo/noor-sync-engine/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/noor-sync-engine/internal/adapters/handler/http"
	"github.com/comitanigiacomo/noor-sync-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/noor-sync-engine/internal/config"
	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
	"github.com/comitanigiacomo/noor-sync-engine/internal/core/services"
	"github.com/comitanigiacomo/noor-sync-engine/internal/core/workers"
)

type repositories struct {
	users      domain.UserRepository
	activity   domain.ActivityRepository
	challenges domain.ChallengeRepository
	settings   domain.SettingsRepository
	snapshots  domain.StatsSnapshotRepository
}

// application is the fully wired service. Close releases the database and
// cache connections it opened.
type application struct {
	router *gin.Engine
	worker *workers.StatsWorker
	db     *sqlx.DB
	redis  *redis.Client
}

func newApplication(cfg *config.Config) (*application, error) {
	app := &application{}

	repos, err := app.openStorage(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Redis.Enabled() {
		rdb, err := cache.NewRedisClient(cache.Options{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			app.Close()
			return nil, err
		}
		app.redis = rdb
		repos.activity = repository.NewCachedActivityRepository(repos.activity, rdb)
		log.Info("redis connected", "addr", cfg.Redis.Host)
	}

	var hijriProvider services.HijriProvider
	if cfg.HijriLookup {
		client := aladhan.NewClient(aladhan.ClientConfig{BaseURL: cfg.HijriAPIURL})
		if app.redis != nil {
			hijriProvider = aladhan.NewCachedProvider(client, app.redis)
		} else {
			hijriProvider = client
		}
	}

	catalog := domain.DefaultChallengeCatalog

	challengeService := services.NewChallengeService(repos.challenges, catalog)
	statsService := services.NewStatsService(repos.activity, repos.challenges, repos.snapshots, catalog)
	app.worker = workers.NewStatsWorker(statsService, repos.snapshots)
	activityService := services.NewActivityService(repos.activity, repos.settings, challengeService, app.worker)
	hijriService := services.NewHijriService(repos.settings, hijriProvider)
	authService := services.NewAuthService(repos.users)
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL, repos.users)

	app.router = adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:      adapterHTTP.NewAuthHandler(authService, tokenService),
		ActivityHandler:  adapterHTTP.NewActivityHandler(activityService),
		ChallengeHandler: adapterHTTP.NewChallengeHandler(challengeService),
		StatsHandler:     adapterHTTP.NewStatsHandler(statsService),
		HijriHandler:     adapterHTTP.NewHijriHandler(hijriService),
		QuranHandler:     adapterHTTP.NewQuranHandler(),
		TokenValidator:   tokenService,
		DB:               app.db,
		Redis:            app.redis,
		StartTime:        time.Now(),
		RateLimit:        cfg.RateLimit,
		RateLimitWindow:  cfg.RateLimitWindow,
	})

	return app, nil
}

func (a *application) openStorage(cfg *config.Config) (*repositories, error) {
	if cfg.Storage == config.StorageMemory {
		log.Warn("using in-memory storage, data is lost on restart")
		store := repository.NewMemoryStore()
		return &repositories{
			users:      store.Users(),
			activity:   store.Activity(),
			challenges: store.Challenges(),
			settings:   store.Settings(),
			snapshots:  store.Snapshots(),
		}, nil
	}

	log.Info("connecting to database", "driver", cfg.DB.Driver, "host", cfg.DB.Host, "name", cfg.DB.Name)

	db, err := sqlx.Connect(cfg.DB.Driver, cfg.DB.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	a.db = db

	log.Info("database connected")

	return &repositories{
		users:      repository.NewPostgresUserRepository(db),
		activity:   repository.NewPostgresActivityRepository(db),
		challenges: repository.NewPostgresChallengeRepository(db),
		settings:   repository.NewPostgresSettingsRepository(db),
		snapshots:  repository.NewPostgresSnapshotRepository(db),
	}, nil
}

func (a *application) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.Warn("closing redis", "err", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			log.Warn("closing database", "err", err)
		}
	}
}
