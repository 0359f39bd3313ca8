package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/nattcha/hotel-booking-service/config"
	"github.com/nattcha/hotel-booking-service/internal/handler"
	"github.com/nattcha/hotel-booking-service/internal/middleware"
	"github.com/nattcha/hotel-booking-service/internal/repository"
	"github.com/nattcha/hotel-booking-service/internal/service"
	"github.com/nattcha/hotel-booking-service/pkg/database"
	"github.com/nattcha/hotel-booking-service/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())
	if err := database.Seed(db); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	// Lifecycle events are best effort: without a broker the API still runs.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Printf("rabbitmq unavailable, booking events disabled: %v", err)
		} else {
			publisher = p
			defer publisher.Close()
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	authSvc := service.NewAuthService(userRepo, []byte(cfg.JWTSecret), time.Duration(cfg.JWTExpiryDays)*24*time.Hour)
	roomSvc := service.NewRoomService(roomRepo, bookingRepo)
	bookingSvc := service.NewBookingService(bookingRepo, roomRepo, publisher, cfg.TaxRate)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "hotel-booking-service"})
	})

	auth := middleware.Authenticate([]byte(cfg.JWTSecret))
	handler.NewAuthHandler(authSvc).RegisterRoutes(e, auth)
	handler.NewRoomHandler(roomSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e, auth)

	log.Printf("Hotel Booking API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
