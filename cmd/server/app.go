package main

import (
	"context"
	"net/http"

	"gorm.io/gorm"

	"github.com/KirkDiggler/rpg-sheet-api/internal/auth"
	"github.com/KirkDiggler/rpg-sheet-api/internal/clients/external"
	"github.com/KirkDiggler/rpg-sheet-api/internal/config"
	"github.com/KirkDiggler/rpg-sheet-api/internal/database"
	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
	graphqlhandler "github.com/KirkDiggler/rpg-sheet-api/internal/handlers/graphql"
	"github.com/KirkDiggler/rpg-sheet-api/internal/handlers/health"
	"github.com/KirkDiggler/rpg-sheet-api/internal/logger"
	characterorch "github.com/KirkDiggler/rpg-sheet-api/internal/orchestrators/character"
	spellorch "github.com/KirkDiggler/rpg-sheet-api/internal/orchestrators/spell"
	"github.com/KirkDiggler/rpg-sheet-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-sheet-api/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-sheet-api/internal/repositories/character"
	spellrepo "github.com/KirkDiggler/rpg-sheet-api/internal/repositories/spell"
	spellbookrepo "github.com/KirkDiggler/rpg-sheet-api/internal/repositories/spellbook"
	spellslotrepo "github.com/KirkDiggler/rpg-sheet-api/internal/repositories/spellslot"
	"github.com/KirkDiggler/rpg-sheet-api/internal/router"
)

// app holds the long-lived dependencies shared by every command
type app struct {
	cfg   *config.Config
	log   *logger.Logger
	db    *gorm.DB
	redis redisclient.Client

	characters *characterorch.Orchestrator
	spells     *spellorch.Orchestrator
}

// newApp opens storage and builds the orchestrators
func newApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*app, error) {
	db, err := database.Open(&database.Config{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
		ConnMaxLife:  cfg.Database.ConnMaxLife,
		Logger:       log,
	})
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log, db: db}

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			a.close()
			return nil, err
		}
		log.Info("database schema migrated", "driver", cfg.Database.Driver)
	}

	if err := a.wire(); err != nil {
		a.close()
		return nil, err
	}
	return a, nil
}

func (a *app) wire() error {
	characters, err := characterrepo.NewGorm(&characterrepo.GormConfig{DB: a.db})
	if err != nil {
		return errors.Wrap(err, "failed to create character repository")
	}
	slots, err := spellslotrepo.NewGorm(&spellslotrepo.GormConfig{DB: a.db})
	if err != nil {
		return errors.Wrap(err, "failed to create spell slot repository")
	}
	spellbook, err := spellbookrepo.NewGorm(&spellbookrepo.GormConfig{
		DB:          a.db,
		IDGenerator: idgen.NewUUID("sbk"),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create spellbook repository")
	}

	spells, err := spellrepo.NewGorm(&spellrepo.GormConfig{DB: a.db})
	if err != nil {
		return errors.Wrap(err, "failed to create spell repository")
	}
	if a.cfg.Redis.URL != "" {
		a.redis, err = redisclient.NewClientFromURL(a.cfg.Redis.URL, nil)
		if err != nil {
			return errors.Wrap(err, "failed to create redis client")
		}
		spells, err = spellrepo.NewCached(&spellrepo.CachedConfig{
			Next:   spells,
			Client: a.redis,
			TTL:    a.cfg.Redis.SpellTTL,
			Logger: a.log,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create spell cache")
		}
		a.log.Info("spell cache enabled", "ttl", a.cfg.Redis.SpellTTL)
	}

	a.characters, err = characterorch.New(&characterorch.Config{
		CharacterRepo: characters,
		SpellSlotRepo: slots,
		SpellbookRepo: spellbook,
		Logger:        a.log,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create character orchestrator")
	}

	srd, err := external.New(&external.Config{Logger: a.log})
	if err != nil {
		return errors.Wrap(err, "failed to create SRD client")
	}
	a.spells, err = spellorch.New(&spellorch.Config{
		SpellRepo:      spells,
		ExternalClient: srd,
		Logger:         a.log,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create spell orchestrator")
	}

	return nil
}

// handler builds the HTTP surface: health probes plus the authenticated
// GraphQL endpoint
func (a *app) handler() (http.Handler, error) {
	verifier, err := auth.NewSupabaseVerifier(&auth.SupabaseConfig{
		Issuer:    a.cfg.Supabase.Issuer(),
		JWKSURL:   a.cfg.Supabase.JWKSURL(),
		JWTSecret: a.cfg.Supabase.JWTSecret,
		Audience:  a.cfg.Supabase.Audience,
		JWKSTTL:   a.cfg.Supabase.JWKSTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token verifier")
	}

	gqlHandler, err := graphqlhandler.NewHandler(&graphqlhandler.HandlerConfig{
		CharacterService: a.characters,
		SpellService:     a.spells,
		Logger:           a.log,
		DisableTracing:   a.cfg.Tracing.Endpoint == "",
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create graphql handler")
	}

	healthHandler, err := health.NewHandler(&health.HandlerConfig{
		Ready: func(ctx context.Context) error {
			return database.Ping(ctx, a.db)
		},
		Logger: a.log,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create health handler")
	}

	return router.New(&router.Config{
		GraphQL:        gqlHandler,
		Health:         healthHandler,
		AuthMiddleware: auth.Middleware(verifier, a.log),
		AllowedOrigins: a.cfg.Server.AllowedOrigins,
		Logger:         a.log,
	})
}

func (a *app) close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("failed to close redis client", "error", err)
		}
	}
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			a.log.Warn("failed to close database", "error", err)
		}
	}
}

// bootstrap loads configuration and the logger used by every command
func bootstrap() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(logger.Options{
		Mode:     cfg.Log.Mode,
		Level:    cfg.Log.Level,
		HashSalt: cfg.Log.HashSalt,
	})
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
