package app

import (
	"context"
	"net/http"
	"os"
	"wheel_backend/internal/api/page"
	wheelAPI "wheel_backend/internal/api/wheel"
	"wheel_backend/internal/config"
	"wheel_backend/internal/config/env"
	"wheel_backend/internal/metrics"
	"wheel_backend/internal/middleware"
	"wheel_backend/internal/repository"
	"wheel_backend/internal/repository/wheel_stats_repo"
	"wheel_backend/internal/service"
	"wheel_backend/internal/service/wheel"
	"wheel_backend/pkg/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	appName           = "wheel"
	configPathEnvName = "CONFIG_PATH"
	defaultConfigPath = "config.yaml"
)

type ServiceProvider struct {
	configPath string

	// Logger
	loggerCfg config.LoggerConfig
	logger    *zap.Logger

	// Metrics
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	// Wheel bits
	wheelCfg       config.WheelConfig
	wheelStatsRepo repository.WheelStatsRepository
	wheelServ      service.WheelService
	wheelHand      *wheelAPI.Handler

	// Page
	pageHand *page.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) ConfigPath() string {
	if sp.configPath == "" {
		sp.configPath = os.Getenv(configPathEnvName)
		if sp.configPath == "" {
			sp.configPath = defaultConfigPath
		}
	}
	return sp.configPath
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.loggerCfg == nil {
		cfg, err := env.NewLoggerConfigFromYAML(sp.ConfigPath())
		if err != nil {
			panic("failed to get logger config: " + err.Error())
		}
		sp.loggerCfg = cfg
	}
	return sp.loggerCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		cfg := sp.LoggerCfg()
		sp.logger = logger.New(logger.Config{
			App:   appName,
			Level: cfg.Level(),
			Dir:   cfg.Dir(),
			File:  cfg.File(),
		})
		zap.ReplaceGlobals(sp.logger)
	}
	return sp.logger
}

func (sp *ServiceProvider) Registry() *prometheus.Registry {
	if sp.registry == nil {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		sp.registry = reg
	}
	return sp.registry
}

func (sp *ServiceProvider) Metrics() *metrics.Metrics {
	if sp.metrics == nil {
		sp.metrics = metrics.New(sp.Registry())
	}
	return sp.metrics
}

func (sp *ServiceProvider) WheelCfg() config.WheelConfig {
	if sp.wheelCfg == nil {
		cfg, err := env.NewWheelConfigFromYAML(sp.ConfigPath())
		if err != nil {
			panic("failed to get wheel config: " + err.Error())
		}
		sp.wheelCfg = cfg
	}
	return sp.wheelCfg
}

func (sp *ServiceProvider) WheelStatsRepository() repository.WheelStatsRepository {
	if sp.wheelStatsRepo == nil {
		sp.wheelStatsRepo = wheel_stats_repo.NewWheelStatsRepository()
	}
	return sp.wheelStatsRepo
}

func (sp *ServiceProvider) WheelService() service.WheelService {
	if sp.wheelServ == nil {
		sp.wheelServ = wheel.NewWheelService(
			sp.WheelCfg(),
			sp.WheelStatsRepository(),
			sp.Metrics(),
			sp.Logger().Named("wheel"),
		)
	}
	return sp.wheelServ
}

func (sp *ServiceProvider) WheelHandler() *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{
			Serv: sp.WheelService(),
		})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) PageHandler() *page.Handler {
	if sp.pageHand == nil {
		sp.pageHand = page.NewHandler(page.HandlerDeps{Log: sp.Logger().Named("page")})
	}
	return sp.pageHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(_ context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(middleware.Logging(sp.Logger()))
		r.Use(chimw.Recoverer)

		// CORS middleware, виджет можно встраивать на чужие страницы
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Page
		pageHandler := sp.PageHandler()
		r.Get("/", pageHandler.Index)
		r.Get("/static/*", pageHandler.Static)

		// Wheel endpoints
		wheelHandler := sp.WheelHandler()
		r.Route("/wheel", func(rr chi.Router) {
			rr.Get("/", wheelHandler.Get)
			rr.Post("/spin", wheelHandler.Spin)
			rr.Put("/segments", wheelHandler.SetSegments)
			rr.Get("/result", wheelHandler.Result)
			rr.Get("/stats", wheelHandler.Stats)
		})

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("OK"))
		})
		r.Handle("/metrics", promhttp.HandlerFor(sp.Registry(), promhttp.HandlerOpts{}))

		sp.router = r
	}

	return sp.router
}
