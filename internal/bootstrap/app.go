package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/asistenciapp/backend/internal/config"
	"github.com/asistenciapp/backend/internal/domain"
	"github.com/asistenciapp/backend/internal/export"
	"github.com/asistenciapp/backend/internal/handler"
	"github.com/asistenciapp/backend/internal/logger"
	"github.com/asistenciapp/backend/internal/search"
	"github.com/asistenciapp/backend/internal/service"
	"github.com/asistenciapp/backend/internal/store"
)

type App struct {
	Echo    *echo.Echo
	closers []io.Closer
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	// Initialize logging
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	// Initialize storage
	backend, err := a.newBackend(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize store backend: %w", err)
	}
	st := store.New(backend)
	logger.InfoLog(ctx, "Store backend %q ready", config.DefaultEnvConfig.STORE_BACKEND)

	// Optional employee search index
	var indexer *search.ElasticEmployeeSearch
	if config.DefaultEnvConfig.ES_ENABLED {
		indexer, err = search.NewElasticEmployeeSearch(config.DefaultEnvConfig.ES_URL)
		if err != nil {
			// The store is the source of truth; run without the index.
			logger.WarnLog(ctx, "Employee search index disabled: %v", err)
			indexer = nil
		}
	}

	// Initialize dependencies
	attendanceSvc := service.NewAttendanceService(st)
	rosterSvc := service.NewRosterService(st, indexerOrNil(indexer))

	if indexer != nil {
		if err := reindexRoster(ctx, rosterSvc, indexer); err != nil {
			logger.WarnLog(ctx, "Failed to reindex roster: %v", err)
		}
	}

	actaTpl, err := export.LoadActaTemplate(config.DefaultEnvConfig.ACTA_TEMPLATE_PATH)
	if err != nil {
		return fmt.Errorf("failed to load acta template: %w", err)
	}

	empHandler := handler.NewEmployeeHandler(rosterSvc, attendanceSvc, searcherOrNil(indexer))
	attHandler := handler.NewAttendanceHandler(attendanceSvc)
	expHandler := handler.NewExportHandler(rosterSvc, attendanceSvc, actaTpl)

	// Register Middlewares
	a.RegisterMiddlewares()

	// Register Routes
	a.RegisterRoutes(empHandler, attHandler, expHandler)

	return nil
}

func (a *App) newBackend(ctx context.Context) (store.Backend, error) {
	cfg := config.DefaultEnvConfig
	switch cfg.STORE_BACKEND {
	case "file":
		return store.NewFileBackend(cfg.STORE_PATH)
	case "postgres":
		pb, err := store.NewPostgresBackend(ctx, store.PostgresConfig{
			Host:            cfg.DB_HOST,
			Port:            cfg.DB_PORT,
			User:            cfg.DB_USER,
			Password:        cfg.DB_PASSWORD,
			DBName:          cfg.DB_NAME,
			SSLMode:         cfg.DB_SSL_MODE,
			MaxOpenConns:    cfg.DB_MAX_OPEN_CONNS,
			MaxIdleConns:    cfg.DB_MAX_IDLE_CONNS,
			ConnMaxLifetime: cfg.DB_CONN_MAX_LIFETIME,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pb)
		return pb, nil
	case "datastore":
		db, err := store.NewDatastoreBackend(ctx, cfg.DATASTORE_PROJECT_ID)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db)
		return db, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.STORE_BACKEND)
	}
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
	a.Echo.Validator = handler.NewRequestValidator()
}

func (a *App) RegisterRoutes(empHandler *handler.EmployeeHandler, attHandler *handler.AttendanceHandler, expHandler *handler.ExportHandler) {
	a.Echo.GET("/employees", empHandler.ListHandler)
	a.Echo.POST("/employees", empHandler.CreateHandler)

	a.Echo.POST("/checkins", attHandler.CheckInHandler)
	a.Echo.GET("/employees/:id/records", attHandler.RecordsHandler)
	a.Echo.GET("/employees/:id/faults", attHandler.FaultsHandler)
	a.Echo.PUT("/records/:id", attHandler.UpdateRecordHandler)

	exportGroup := a.Echo.Group("/employees/:id/export")
	exportGroup.GET("/csv", expHandler.CSVHandler)
	exportGroup.GET("/xlsx", expHandler.XLSXHandler)
	a.Echo.GET("/records/:id/acta", expHandler.ActaHandler)
}

func (a *App) Run() error {
	defer a.Close()
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}

// Close releases any backend resources the app opened.
func (a *App) Close() {
	for _, c := range a.closers {
		c.Close()
	}
}

// indexerOrNil avoids handing a typed nil pointer to an interface field.
func indexerOrNil(es *search.ElasticEmployeeSearch) service.EmployeeIndexer {
	if es == nil {
		return nil
	}
	return es
}

func searcherOrNil(es *search.ElasticEmployeeSearch) handler.EmployeeSearcher {
	if es == nil {
		return nil
	}
	return es
}

// reindexRoster pushes the whole roster into the search index. Document
// ids are roster ids, so this is idempotent.
func reindexRoster(ctx context.Context, roster domain.RosterService, es *search.ElasticEmployeeSearch) error {
	employees, err := roster.Employees(ctx)
	if err != nil {
		return err
	}
	for _, e := range employees {
		if err := es.IndexEmployee(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
