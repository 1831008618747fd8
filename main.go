package main

import (
	"time"

	"github.com/coworkly/coworking-booking/config"
	"github.com/coworkly/coworking-booking/internal/handler"
	"github.com/coworkly/coworking-booking/internal/middleware"
	"github.com/coworkly/coworking-booking/internal/repository"
	"github.com/coworkly/coworking-booking/internal/service"
	"github.com/coworkly/coworking-booking/pkg/auth"
	"github.com/coworkly/coworking-booking/pkg/database"
	"github.com/coworkly/coworking-booking/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ is best-effort: booking operations succeed without it
	var publisher service.EventPublisher
	if p, err := rabbitmq.NewPublisher(cfg.RabbitURL); err != nil {
		logrus.Warnf("rabbitmq unavailable, lifecycle events disabled: %v", err)
	} else {
		defer p.Close()
		publisher = p
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	facilityRepo := repository.NewFacilityRepository(db)
	workspaceRepo := repository.NewWorkspaceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpireMin)*time.Minute)
	authSvc := service.NewAuthService(userRepo, issuer)
	workspaceSvc := service.NewWorkspaceService(workspaceRepo, facilityRepo)
	bookingSvc := service.NewBookingService(bookingRepo, workspaceRepo, publisher)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			logrus.Infof("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "coworking-booking"})
	})

	jwtMw := middleware.JWTAuth(issuer)
	handler.NewAuthHandler(authSvc).RegisterRoutes(e, jwtMw)
	handler.NewWorkspaceHandler(workspaceSvc).RegisterRoutes(e, jwtMw)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e, jwtMw)

	logrus.Infof("Coworking Booking API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
