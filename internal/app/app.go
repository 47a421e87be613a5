package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/PushtoStartCo/safeguards/internal/config"
	"github.com/PushtoStartCo/safeguards/internal/events"
	"github.com/PushtoStartCo/safeguards/internal/handler"
	"github.com/PushtoStartCo/safeguards/internal/middleware"
	"github.com/PushtoStartCo/safeguards/internal/notification"
	"github.com/PushtoStartCo/safeguards/internal/repository"
	"github.com/PushtoStartCo/safeguards/internal/router"
	"github.com/PushtoStartCo/safeguards/internal/scheduler"
	"github.com/PushtoStartCo/safeguards/internal/service"
	"github.com/PushtoStartCo/safeguards/internal/signals"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"Safeguards",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	alertRepo := repository.NewAlertRepo(a.db)
	enquiryRepo := repository.NewEnquiryRepo(a.db)
	checkRepo := repository.NewCheckRepo(a.db)
	djRepo := repository.NewDJRepo(a.db)
	calendarRepo := repository.NewCalendarRepo(a.db)

	notifier, err := notification.NewAdminNotifier(notification.Config{
		SendGridAPIKey:   a.cfg.Notifications.SendGridAPIKey,
		FromName:         a.cfg.Notifications.FromName,
		FromAddress:      a.cfg.Notifications.FromAddress,
		AdminEmail:       a.cfg.Notifications.AdminEmail,
		TwilioAccountSID: a.cfg.Notifications.TwilioAccountSID,
		TwilioAuthToken:  a.cfg.Notifications.TwilioAuthToken,
		TwilioFromNumber: a.cfg.Notifications.TwilioFromNumber,
		AdminPhone:       a.cfg.Notifications.AdminPhone,
		TelegramBotToken: a.cfg.Notifications.TelegramBotToken,
		TelegramChatID:   a.cfg.Notifications.TelegramChatID,
		Timeout:          a.cfg.Notifications.Timeout,
	}, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	tasks := notification.NewWebhookTaskClient(
		a.cfg.Notifications.TaskWebhookURL,
		a.cfg.Notifications.Timeout,
		a.log,
	)
	signalChecker := signals.NewLinkChecker(a.log)

	sg := a.cfg.Safeguards
	escalation := service.NewEscalationService(
		alertRepo, djRepo, notifier,
		sg.SuspensionThreshold, sg.SuspensionWindow,
		a.log,
	)
	tracker := service.NewEnquiryTracker(enquiryRepo, checkRepo, djRepo, a.log)
	monitor := service.NewAvailabilityMonitor(
		enquiryRepo, calendarRepo, djRepo, escalation, signalChecker,
		sg.HighSeverityWindow,
		a.log,
	)
	detectors := service.NewPatternDetectors(
		alertRepo, calendarRepo, djRepo, escalation,
		service.DetectorConfig{
			PatternWindow:       sg.PatternWindow,
			PatternThreshold:    sg.PatternThreshold,
			RatioWindow:         sg.RatioWindow,
			RatioMinUnavailable: sg.RatioMinUnavailable,
			RatioLimit:          sg.RatioLimit,
			DirectWindow:        sg.DirectWindow,
			DirectThreshold:     sg.DirectThreshold,
		},
		a.log,
	)
	review := service.NewReviewService(alertRepo, checkRepo, notifier, tasks, a.log)
	reporting := service.NewReportingService(alertRepo, checkRepo, sg.DashboardCacheTTL)
	retention := service.NewRetentionService(alertRepo, sg.LowRetention, a.log)
	checkRunner := service.NewCheckRunner(checkRepo, monitor, review, a.log)

	bus := events.NewBus(a.log)
	bus.SubscribeAvailability(monitor)
	bus.SubscribeClientContact(escalation)
	bus.SubscribeExternalBooking(escalation)

	a.scheduler = scheduler.New(
		checkRunner,
		detectors,
		retention,
		a.cfg.Scheduler.Interval,
		a.cfg.Scheduler.DetectorSchedule,
		a.cfg.Scheduler.RetentionSchedule,
		a.log,
	)

	h := handler.NewHandler(tracker, review, reporting, djRepo, bus)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := a.scheduler.Start(ctx); err != nil {
			a.log.LogAttrs(ctx, logger.ErrorLevel, "scheduler failed",
				logger.String("error", err.Error()),
			)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
