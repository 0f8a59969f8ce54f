package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"google.golang.org/api/option"

	"github.com/huluca/repairshop-backend/internal/application/cleanup"
	"github.com/huluca/repairshop-backend/internal/application/notify"
	"github.com/huluca/repairshop-backend/internal/application/provision"
	"github.com/huluca/repairshop-backend/internal/infrastructure/fcm"
	"github.com/huluca/repairshop-backend/internal/infrastructure/fireauth"
	infrafs "github.com/huluca/repairshop-backend/internal/infrastructure/firestore"
	httpRouter "github.com/huluca/repairshop-backend/internal/interfaces/http"
	"github.com/huluca/repairshop-backend/pkg/config"
	"github.com/huluca/repairshop-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}
	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize firebase app")
	}

	fsClient, err := infrafs.NewClient(ctx, cfg.Firebase)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to firestore")
	}
	defer fsClient.Close()

	messenger, err := fcm.New(ctx, fbApp)
	if err != nil {
		log.Fatal().Err(err).Msg("create messaging client")
	}
	identity, err := fireauth.New(ctx, fbApp)
	if err != nil {
		log.Fatal().Err(err).Msg("create auth client")
	}

	userRepo := infrafs.NewUserRepository(fsClient)
	repairRepo := infrafs.NewRepairRepository(fsClient)
	shopRepo := infrafs.NewShopRepository(fsClient)
	notificationRepo := infrafs.NewNotificationRepository(fsClient)
	settingsRepo := infrafs.NewSettingsRepository(fsClient)

	provisionUC := provision.NewUseCase(userRepo, shopRepo, identity, provision.Config{
		SuperAdminEmail: cfg.Notify.SuperAdminEmail,
	}, log)
	fanoutUC := notify.NewFanoutUseCase(userRepo, notificationRepo, messenger, notify.FanoutConfig{
		SuperAdminEmail: cfg.Notify.SuperAdminEmail,
	}, log)
	repairReactor := notify.NewRepairReactor(messenger, cfg.Notify.StaffTopic, log)
	chatReactor := notify.NewChatReactor(userRepo, messenger, log)
	cleanupUC := cleanup.NewUseCase(repairRepo, userRepo, settingsRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.WithTimeout(time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProvisionUC:   provisionUC,
		FanoutUC:      fanoutUC,
		RepairReactor: repairReactor,
		ChatReactor:   chatReactor,
		CleanupUC:     cleanupUC,
		Verifier:      identity,
		JobsSecret:    cfg.Jobs.Secret,
		Log:           log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
