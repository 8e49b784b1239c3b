package internal

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/healthstats/internal/auth"
	"github.com/2beens/healthstats/internal/config"
	"github.com/2beens/healthstats/internal/db"
	"github.com/2beens/healthstats/internal/healthstats"
	"github.com/2beens/healthstats/internal/healthstats/backup"
	"github.com/2beens/healthstats/internal/healthstats/catalog"
	"github.com/2beens/healthstats/internal/healthstats/daylogs"
	"github.com/2beens/healthstats/internal/healthstats/decisions"
	"github.com/2beens/healthstats/internal/healthstats/drafts"
	"github.com/2beens/healthstats/internal/healthstats/measurements"
	"github.com/2beens/healthstats/internal/healthstats/reports"
	"github.com/2beens/healthstats/internal/healthstats/stats"
	"github.com/2beens/healthstats/internal/middleware"
	"github.com/2beens/healthstats/internal/misc"
	"github.com/2beens/healthstats/internal/telemetry/metrics"
	metricsmiddleware "github.com/2beens/healthstats/internal/telemetry/metrics/middleware"
	"github.com/2beens/healthstats/internal/telemetry/tracing"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	appRequestsSecret string // used with the health stats phone app
	versionInfo       string

	config        *config.Config
	dbPool        *pgxpool.Pool
	quotesManager *misc.QuotesManager

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	reportsService  *reports.Service
	draftsScheduler *drafts.Scheduler

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	AppRequestsSecret       string
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "healthstats_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // will be set to 1 when all is set and ran

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "healthstats-backend", rdb)
	if err != nil {
		return nil, err
	}

	dayLogsRepo := daylogs.NewRepo(dbPool)
	reportsService := reports.NewService(
		dayLogsRepo,
		measurements.NewRepo(dbPool),
		catalog.NewRepo(dbPool),
		decisions.NewService(decisions.NewRepo(dbPool), metricsManager),
		params.VersionInfo,
	)

	// a flushed draft becomes a regular day log, same as if it came
	// through the day log endpoint
	draftsFlushFn := func(ctx context.Context, date string, dayLog healthstats.DayLog) error {
		dayLog.Date = date
		if dayLog.DayType == "" {
			dayLog.DayType = healthstats.TrainingDayNoGym
		}
		dayLog.Adherence = stats.DayAdherence(dayLog)
		if _, err := dayLogsRepo.Upsert(ctx, dayLog); err != nil {
			return err
		}
		metricsManager.CounterDayLogsSaved.Inc()
		reportsService.Clear()
		return nil
	}
	draftsScheduler := drafts.NewScheduler(
		rdb,
		draftsFlushFn,
		time.Duration(params.Config.DraftsFlushIntervalSeconds)*time.Second,
		metricsManager,
	)

	s := &Server{
		config:            params.Config,
		dbPool:            dbPool,
		appRequestsSecret: params.AppRequestsSecret,
		versionInfo:       params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		reportsService:  reportsService,
		draftsScheduler: draftsScheduler,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	quotesCsvFile, err := os.Open(params.Config.QuotesCsvPath)
	if err != nil {
		return nil, fmt.Errorf("open quotes file: %w", err)
	}
	defer func() {
		if err := quotesCsvFile.Close(); err != nil {
			log.Warnf("close quotes csv file: %s", err)
		}
	}()

	s.quotesManager, err = misc.NewQuoteManager(csv.NewReader(quotesCsvFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create quote manager: %s", err)
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	dayLogsHandler := daylogs.NewHandler(
		daylogs.NewRepo(s.dbPool),
		s.reportsService,
		s.metricsManager,
	)
	r.HandleFunc("/healthstats/daylog", dayLogsHandler.HandleUpsert).Methods("POST", "OPTIONS").Name("save-daylog")
	r.HandleFunc("/healthstats/daylog/{date}", dayLogsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-daylog")
	r.HandleFunc("/healthstats/daylog/{date}", dayLogsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-daylog")
	r.HandleFunc("/healthstats/daylog/{date}/set", dayLogsHandler.HandleUpsertSet).Methods("PUT", "OPTIONS").Name("save-workout-set")
	r.HandleFunc("/healthstats/daylogs", dayLogsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-daylogs")

	measurementsHandler := measurements.NewHandler(
		measurements.NewRepo(s.dbPool),
		s.reportsService,
		s.metricsManager,
	)
	r.HandleFunc("/healthstats/measurement", measurementsHandler.HandleUpsert).Methods("POST", "OPTIONS").Name("save-measurement")
	r.HandleFunc("/healthstats/measurements", measurementsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-measurements")

	catalogHandler := catalog.NewHandler(catalog.NewRepo(s.dbPool))
	r.HandleFunc("/healthstats/types", catalogHandler.HandleGetTypes).Methods("GET", "OPTIONS").Name("get-exercise-types")
	r.HandleFunc("/healthstats/types", catalogHandler.HandleAddType).Methods("POST", "OPTIONS").Name("new-exercise-type")
	r.HandleFunc("/healthstats/presets", catalogHandler.HandleGetPresets).Methods("GET", "OPTIONS").Name("get-meal-presets")
	r.HandleFunc("/healthstats/presets", catalogHandler.HandleAddPreset).Methods("POST", "OPTIONS").Name("new-meal-preset")
	r.HandleFunc("/healthstats/settings", catalogHandler.HandleGetSettings).Methods("GET", "OPTIONS").Name("get-settings")
	r.HandleFunc("/healthstats/settings", catalogHandler.HandleUpdateSettings).Methods("PUT", "OPTIONS").Name("update-settings")

	decisionsHandler := decisions.NewHandler(
		decisions.NewService(decisions.NewRepo(s.dbPool), s.metricsManager),
	)
	r.HandleFunc("/healthstats/decisions", decisionsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-decisions")

	reportsHandler := reports.NewHandler(s.reportsService)
	r.HandleFunc("/healthstats/kpi", reportsHandler.HandleKPI).Methods("GET", "OPTIONS").Name("kpi")
	r.HandleFunc("/healthstats/export/csv", reportsHandler.HandleExportCSV).Methods("GET", "OPTIONS").Name("export-csv")
	r.HandleFunc("/healthstats/export/week", reportsHandler.HandleExportWeek).Methods("GET", "OPTIONS").Name("export-week")

	draftsHandler := drafts.NewHandler(s.draftsScheduler)
	r.HandleFunc("/healthstats/draft/{date}", draftsHandler.HandleSave).Methods("PUT", "OPTIONS").Name("save-draft")
	r.HandleFunc("/healthstats/draft/{date}", draftsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-draft")
	r.HandleFunc("/healthstats/draft/{date}", draftsHandler.HandleCancel).Methods("DELETE", "OPTIONS").Name("cancel-draft")
	r.HandleFunc("/healthstats/draft/{date}/flush", draftsHandler.HandleFlush).Methods("POST", "OPTIONS").Name("flush-draft")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.quotesManager, s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.appRequestsSecret,
		s.loginChecker,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metricsmiddleware.
		New(s.promRegistry, nil).
		WrapHandler("/metrics", promhttp.HandlerFor(
			s.promRegistry,
			promhttp.HandlerOpts{}),
		))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)

	// weekly export backup unix socket
	s.setExportBackupUnixSocket(ctx)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	s.draftsScheduler.Close()

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	log.Debugln("removing export backup unix socket ...")
	if err := os.RemoveAll(s.config.BackupUnixSocketAddrDir); err != nil {
		log.Errorf("failed to cleanup export backup unix socket dir: %s", err)
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}

func (s *Server) setExportBackupUnixSocket(ctx context.Context) {
	if err := os.MkdirAll(s.config.BackupUnixSocketAddrDir, os.ModePerm); err != nil {
		log.Errorf("failed to create export backup unix socket dir: %s", err)
		return
	}

	if addr, err := backup.ExportBackupUnixSocketListenerSetup(
		ctx,
		s.config.BackupUnixSocketAddrDir,
		s.config.BackupUnixSocketFileName,
		s.metricsManager,
	); err != nil {
		log.Errorf("failed to create export backup unix socket: %s", err)
	} else {
		log.Debugf("export backup unix socket: %s", addr)
	}
}
