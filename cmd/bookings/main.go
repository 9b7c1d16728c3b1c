package main

import (
	bookingshandler "roombook/internal/bookings/handler"
	bookingsrepository "roombook/internal/bookings/repository"
	bookingsservice "roombook/internal/bookings/service"
	"roombook/internal/bookings/validator"
	roomshandler "roombook/internal/rooms/handler"
	roomsrepository "roombook/internal/rooms/repository"
	roomsservice "roombook/internal/rooms/service"
	"roombook/pkg/app"
	"roombook/pkg/config"
	"roombook/pkg/events"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Bookings service")

	roomRepo := roomsrepository.NewMongoRoomRepository(cfg)
	bookingRepo := bookingsrepository.NewMongoBookingRepository(cfg)

	eventPublisher := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaBookingEventTopic, ServiceName, cfg.Log)
	defer func() {
		if err := eventPublisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	}()

	bookingService := bookingsservice.NewBookingService(bookingRepo, roomRepo, eventPublisher, cfg)
	roomService := roomsservice.NewRoomService(roomRepo, cfg)

	bookingValidator := validator.NewBookingValidator(cfg.Log)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		bookingshandler.NewBookingHandler(bookingService, bookingValidator, cfg.Log),
		roomshandler.NewRoomHandler(roomService, cfg.Log),
	)
	serverApp.Run()
}
