package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/kintorelog/internal/config"
	"github.com/2beens/kintorelog/internal/kintore/events"
	"github.com/2beens/kintorelog/internal/kintore/refdata"
	"github.com/2beens/kintorelog/internal/kintore/setlog"
	"github.com/2beens/kintorelog/internal/middleware"
	"github.com/2beens/kintorelog/internal/store"
	"github.com/2beens/kintorelog/internal/telemetry/metrics"
	"github.com/2beens/kintorelog/internal/telemetry/tracing"
	"github.com/2beens/kintorelog/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config   *config.Config
	location *time.Location

	redisClient *redis.Client // nil when the file store is used
	refData     *refdata.Manager
	setLog      *setlog.Log
	calendar    *events.Calendar

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("kintorelog", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	var rdb *redis.Client
	var blobStore store.Store
	if params.Config.StoreIsRedis() {
		rdb = redis.NewClient(&redis.Options{
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
		blobStore = store.NewRedisStore(rdb)
	} else {
		fileStore, err := store.NewFileStore(params.Config.StoreRootPath)
		if err != nil {
			return nil, fmt.Errorf("new file store: %w", err)
		}
		blobStore = fileStore
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "kintorelog-backend")
	if err != nil {
		return nil, err
	}

	location := time.Local
	if tz := params.Config.CalendarTimezone; tz != "" && tz != "Local" {
		location, err = time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("load calendar timezone %q: %w", tz, err)
		}
	}

	s := &Server{
		config:      params.Config,
		versionInfo: params.VersionInfo,
		location:    location,

		redisClient: rdb,
		refData:     refdata.NewManager(ctx, blobStore),
		setLog:      setlog.NewLog(ctx, blobStore),
		calendar:    events.NewCalendar(ctx, blobStore),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	setLogHandler := setlog.NewHandler(s.setLog, s.refData, s.metricsManager)
	r.HandleFunc("/kintore/entries", setLogHandler.HandleAddBatch).Methods("POST", "OPTIONS").Name("new-entries")
	r.HandleFunc("/kintore/entries", setLogHandler.HandleList).Methods("GET", "OPTIONS").Name("list-entries")
	r.HandleFunc("/kintore/entries", setLogHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-entries")
	r.HandleFunc("/kintore/entries/undo", setLogHandler.HandleUndo).Methods("POST", "OPTIONS").Name("undo-delete")
	r.HandleFunc("/kintore/progression", setLogHandler.HandleProgression).Methods("GET", "OPTIONS").Name("progression")

	refDataHandler := refdata.NewHandler(s.refData)
	r.HandleFunc("/kintore/parts", refDataHandler.HandleGetParts).Methods("GET", "OPTIONS")
	r.HandleFunc("/kintore/parts", refDataHandler.HandleAddPart).Methods("POST", "OPTIONS")
	r.HandleFunc("/kintore/parts/{name}", refDataHandler.HandleRemovePart).Methods("DELETE", "OPTIONS")
	r.HandleFunc("/kintore/lifts", refDataHandler.HandleGetLifts).Methods("GET", "OPTIONS")
	r.HandleFunc("/kintore/lifts", refDataHandler.HandleAddLift).Methods("POST", "OPTIONS")
	r.HandleFunc("/kintore/lifts/{id}", refDataHandler.HandleRemoveLift).Methods("DELETE", "OPTIONS")
	r.HandleFunc("/kintore/lifts/{id}/part", refDataHandler.HandleReassignLiftPart).Methods("PUT", "OPTIONS")

	eventsHandler := events.NewHandler(s.calendar, s.location, s.metricsManager)
	r.HandleFunc("/kintore/events", eventsHandler.HandleList).Methods("GET", "OPTIONS")
	r.HandleFunc("/kintore/events", eventsHandler.HandleAdd).Methods("POST", "OPTIONS")
	r.HandleFunc("/kintore/events/{id}", eventsHandler.HandleRemove).Methods("DELETE", "OPTIONS")

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteResponse(w, pkg.ContentType.Text, s.versionInfo, http.StatusOK)
	}).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
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
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
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
