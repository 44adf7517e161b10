package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"problem-tracker-service/internal/auth"
	"problem-tracker-service/internal/config"
	"problem-tracker-service/internal/leetcode"
	"problem-tracker-service/internal/live"
	"problem-tracker-service/internal/logging"

	problemsCsv "problem-tracker-service/internal/problems/adapters/csv"
	problemsHttp "problem-tracker-service/internal/problems/adapters/http/fiber"
	problemsRepoPg "problem-tracker-service/internal/problems/adapters/postgres"
	problemsUsecase "problem-tracker-service/internal/problems/core/usecase"

	statsHttp "problem-tracker-service/internal/stats/adapters/http/fiber"
	statsRepoPg "problem-tracker-service/internal/stats/adapters/postgres"
	statsDomain "problem-tracker-service/internal/stats/core/domain"
	statsUsecase "problem-tracker-service/internal/stats/core/usecase"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "problem-tracker-service/docs"
)

// @title Problem Tracker API
// @version 1.0
// @description Two-user problem tracker: logging, filtering, CSV export, LeetCode auto-fill and live stats.
// @BasePath /
// @securityDefinitions.apikey PinToken
// @in header
// @name Authorization
// @description Bearer token returned by /api/login
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	log.SetDefault(logger)

	// DB connection
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatal("failed to open postgres", "err", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatal("failed to ping postgres", "err", err)
	}

	// Adapter-level DB wrappers
	problemsDB := problemsRepoPg.NewSQLDB(db)
	statsDB := statsRepoPg.NewSQLDB(db)

	bootCtx, bootCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := problemsRepoPg.EnsureSchema(bootCtx, problemsDB); err != nil {
		bootCancel()
		log.Fatal("failed to ensure schema", "err", err)
	}
	bootCancel()

	// Repositories
	problemRepository := problemsRepoPg.NewProblemRepository(problemsDB)
	activityRepository := statsRepoPg.NewActivityRepository(statsDB)

	// Usecases
	storeProblemUC := problemsUsecase.NewStoreProblemUseCase(problemRepository)
	listProblemsUC := problemsUsecase.NewListProblemsUseCase(problemRepository)
	getStatsUC := statsUsecase.NewGetStatsUseCase(activityRepository, statsUsecase.LocalClock(cfg.Location), cfg.Users...)

	// Auth
	gate := auth.NewGate(cfg.SharedPIN)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(logging.AccessLog(logger.WithPrefix("http")))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})
	app.Post("/api/login", gate.HandleLogin)

	api := app.Group("/api", gate.Require())
	api.Post("/logout", gate.HandleLogout)

	problemsHandler := problemsHttp.NewProblemHandler(
		storeProblemUC,
		listProblemsUC,
		problemsCsv.NewExporter(cfg.Location),
		leetcode.NewClient(cfg.LeetCodeURL),
		cfg.Location,
	)
	problemsHandler.Register(api)

	statsHandler := statsHttp.NewStatsHandler(getStatsUC, logger.WithPrefix("stats"))
	api.Get("/stats", statsHandler.GetStats)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Live stats feed
	hubLogger := logger.WithPrefix("live")
	hub := live.NewHub(hubLogger, func(r *http.Request) bool {
		return gate.Valid(auth.RequestToken(r))
	})

	liveMux := http.NewServeMux()
	liveMux.Handle("/ws", hub)
	liveServer := &http.Server{
		Addr:              cfg.LiveAddr,
		Handler:           liveMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	pqListener := statsRepoPg.NewPQListener(cfg.PostgresDSN, logger.WithPrefix("listener"))
	changes := statsRepoPg.NewChangeListener(pqListener, problemsRepoPg.ChangesChannel, logger.WithPrefix("listener"))
	defer changes.Close()

	watchUC := statsUsecase.NewWatchStatsUseCase(getStatsUC, changes, hubLogger)

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()

	go func() {
		err := watchUC.Run(watchCtx, func(s *statsDomain.Snapshot) {
			if err := hub.Broadcast("stats", statsHttp.NewStatsResponse(s)); err != nil {
				hubLogger.Error("broadcast stats", "err", err)
			}
		})
		if err != nil {
			hubLogger.Error("stats watcher stopped", "err", err)
		}
	}()

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Error("fiber stopped", "err", err)
		}
	}()

	go func() {
		if err := liveServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("live server stopped", "err", err)
		}
	}()

	log.Info("server started", "http", cfg.HTTPAddr, "live", cfg.LiveAddr, "timezone", cfg.Location.String())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down...")

	stopWatch()
	hub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("fiber shutdown error", "err", err)
	}
	if err := liveServer.Shutdown(ctx); err != nil {
		log.Error("live server shutdown error", "err", err)
	}

	log.Info("server exiting")
}
