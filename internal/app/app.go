package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/gafferhq/gaffer/external/footballdata"
	"github.com/gafferhq/gaffer/internal/config"
	"github.com/gafferhq/gaffer/internal/infrastructure/account/janus"
	"github.com/gafferhq/gaffer/internal/infrastructure/repository/postgres"
	"github.com/gafferhq/gaffer/internal/interfaces/httpapi"
	"github.com/gafferhq/gaffer/internal/platform/cache"
	idgen "github.com/gafferhq/gaffer/internal/platform/id"
	"github.com/gafferhq/gaffer/internal/platform/logging"
	"github.com/gafferhq/gaffer/internal/platform/resilience"
	"github.com/gafferhq/gaffer/internal/usecase"
)

// App owns the HTTP server and the database handle it was wired with.
type App struct {
	Server *http.Server
	db     *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := openDB(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	teamRepo := postgres.NewTeamRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	capRepo := postgres.NewCapRepository(db)
	competitionRepo := postgres.NewCompetitionRepository(db)
	squadRepo := postgres.NewSquadRepository(db)

	ids := idgen.NewRandomGenerator()

	cacheTTL := cfg.CacheTTL
	if !cfg.CacheEnabled {
		cacheTTL = -1
	}
	teamCache := cache.NewStore(cacheTTL)

	teamSvc := usecase.NewTeamService(teamRepo, playerRepo, ids, teamCache, logger)
	playerSvc := usecase.NewPlayerService(teamRepo, playerRepo, ids, logger)
	matchSvc := usecase.NewMatchService(teamRepo, matchRepo, capRepo, playerRepo, ids, logger)
	competitionSvc := usecase.NewCompetitionService(teamRepo, competitionRepo, ids, logger)
	squadSvc := usecase.NewSquadService(teamRepo, squadRepo, playerRepo, ids, logger)

	var importer usecase.SquadImporter
	if cfg.FootballDataEnabled {
		importer = footballdata.NewClient(footballdata.ClientConfig{
			BaseURL:    cfg.FootballDataBaseURL,
			Token:      cfg.FootballDataToken,
			Timeout:    cfg.FootballDataTimeout,
			MaxRetries: cfg.FootballDataMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.FootballDataCircuitEnabled,
				FailureThreshold: cfg.FootballDataCircuitFailureCount,
				OpenTimeout:      cfg.FootballDataCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.FootballDataCircuitHalfOpenMaxReq,
			},
		})
	}
	importSvc := usecase.NewImportService(teamRepo, playerRepo, importer, ids, logger)

	verifier := janus.NewClient(
		&http.Client{Timeout: cfg.JanusTimeout},
		cfg.JanusBaseURL,
		cfg.JanusIntrospectPath,
		cfg.JanusAdminKey,
		resilience.CircuitBreakerConfig{
			Enabled:          cfg.JanusCircuitEnabled,
			FailureThreshold: cfg.JanusCircuitFailureCount,
			OpenTimeout:      cfg.JanusCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.JanusCircuitHalfOpenMaxReq,
		},
		logger,
	)

	handler := httpapi.NewHandler(teamSvc, playerSvc, matchSvc, competitionSvc, squadSvc, importSvc, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = db.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, db: db}, nil
}

func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}
