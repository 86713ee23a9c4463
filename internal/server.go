package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/treinoapp/internal/auth"
	"github.com/2beens/treinoapp/internal/backup"
	"github.com/2beens/treinoapp/internal/catalog"
	"github.com/2beens/treinoapp/internal/config"
	"github.com/2beens/treinoapp/internal/db"
	"github.com/2beens/treinoapp/internal/kvstore"
	"github.com/2beens/treinoapp/internal/middleware"
	"github.com/2beens/treinoapp/internal/progress"
	"github.com/2beens/treinoapp/internal/settings"
	"github.com/2beens/treinoapp/internal/telemetry/metrics"
	"github.com/2beens/treinoapp/internal/telemetry/tracing"
	"github.com/2beens/treinoapp/pkg"
)

const sessionsCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config       *config.Config
	dbPool       *pgxpool.Pool
	store        kvstore.Store
	storeCleanup func() error

	catalog         *catalog.Catalog
	progressService *progress.Service
	settingsService *settings.Service
	backupService   *backup.Service
	summaryService  *backup.SummaryService

	redisClient  *redis.Client
	loginChecker auth.Checker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	Secrets     *config.Secrets
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	secrets := params.Secrets
	if secrets == nil {
		secrets = &config.Secrets{}
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.RedisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: secrets.RedisPassword,
			DB:       0, // use default DB
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		}
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(secrets.HoneycombEnabled, secrets.OtelServiceName, rdb)
	if err != nil {
		return nil, err
	}

	var (
		dbPool        *pgxpool.Pool
		poolCollector prometheus.Collector
		postgresDSN   string
	)
	if cfg.StoreBackend == kvstore.BackendPostgres {
		poolParams := db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBPassword:     secrets.PostgresPassword,
			TracingEnabled: secrets.HoneycombEnabled,
		}
		dbPool, err = db.NewDBPool(ctx, poolParams)
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		poolCollector = db.NewPoolCollector(dbPool, cfg.PostgresDBName)
		postgresDSN = poolParams.DSN()
	}

	promRegistry := metrics.SetupPrometheus(poolCollector)
	metricsManager := metrics.NewManager("treino", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	store, storeCleanup, err := kvstore.New(ctx, kvstore.Params{
		Backend:         cfg.StoreBackend,
		Namespace:       cfg.StoreNamespace,
		RedisClient:     rdb,
		PostgresPool:    dbPool,
		PostgresDSN:     postgresDSN,
		SQLitePath:      cfg.SQLitePath,
		CacheSizeMB:     cfg.LocalCacheSizeMB,
		CacheTTLSeconds: cfg.LocalCacheTTLSeconds,
	})
	if err != nil {
		return nil, fmt.Errorf("new kv store: %w", err)
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   30 * time.Second,
	}
	plans, err := catalog.New(catalog.Params{
		Dir:        cfg.CatalogDir,
		BaseURL:    cfg.CatalogBaseURL,
		Users:      cfg.CatalogUsers,
		HTTPClient: tracedHttpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("new catalog: %w", err)
	}
	if err := plans.Check(ctx); err != nil {
		log.Warnf("workout plans check: %s", err)
	}

	clock := progress.NewSystemClock(loc)
	progressService := progress.NewService(progress.NewRepo(store, metricsManager), clock, metricsManager)

	s := &Server{
		config:       cfg,
		versionInfo:  params.VersionInfo,
		dbPool:       dbPool,
		store:        store,
		storeCleanup: storeCleanup,

		catalog:         plans,
		progressService: progressService,
		settingsService: settings.NewService(store, metricsManager),
		backupService:   backup.NewService(store, cfg.StoreNamespace, clock),
		summaryService:  backup.NewSummaryService(plans, progressService, clock),

		redisClient: rdb,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	if rdb != nil {
		s.authService = auth.NewAuthService(&auth.Admin{
			Username:     secrets.AdminUsername,
			PasswordHash: secrets.AdminPasswordHash,
		}, auth.DefaultTTL, rdb)
		s.loginChecker = auth.NewLoginChecker(auth.DefaultTTL, rdb)
		go s.cleanSessionsPeriodically(ctx)
	} else {
		log.Warnln("no redis configured, admin login disabled")
		s.loginChecker = auth.NewLoginTestChecker()
	}

	return s, nil
}

func (s *Server) cleanSessionsPeriodically(ctx context.Context) {
	ticker := time.NewTicker(sessionsCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.authService.ScanAndClean(ctx)
		}
	}
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("treino-router"))

	catalog.NewHandler(s.catalog, s.progressService).SetupRoutes(r)
	progress.NewHandler(s.progressService).SetupRoutes(r)
	settings.NewHandler(s.settingsService, s.catalog).SetupRoutes(r)
	backup.NewHandler(s.backupService, s.summaryService).SetupRoutes(r)

	if s.authService != nil {
		auth.NewHandler(s.authService).SetupRoutes(r)
	}

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET")

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	if s.redisClient != nil {
		r.Use(middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			s.metricsManager,
			"treino-login",
			s.config.LoginRateLimitAllowedPerMin,
			"/a/login",
		))
	}
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	if s.config.PrometheusMetricsPort != "" {
		metricsRouter := mux.NewRouter()
		metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
			s.promRegistry,
			promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		))
		metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
		s.metricsHttpServer = &http.Server{
			Addr:    metricsAddr,
			Handler: metricsRouter,
		}

		go func() {
			log.Debugf(" > metrics listening on: [%s]", metricsAddr)
			err := s.metricsHttpServer.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("metrics service, listen and serve: %s", err)
			}
		}()
	}

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var err error
	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown http server: %w", shutdownErr))
		}
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		if shutdownErr := s.metricsHttpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown metrics server: %w", shutdownErr))
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.storeCleanup != nil {
		if cleanupErr := s.storeCleanup(); cleanupErr != nil {
			err = multierr.Append(err, fmt.Errorf("close kv store: %w", cleanupErr))
		}
	}

	if s.redisClient != nil {
		if closeErr := s.redisClient.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close redis client: %w", closeErr))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	return err
}
