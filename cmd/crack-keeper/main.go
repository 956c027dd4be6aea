package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "crackKeeper/docs"
	"crackKeeper/internal/auditor"
	"crackKeeper/internal/config"
	"crackKeeper/internal/exif"
	"crackKeeper/internal/http-server/handlers/crack/deleteCrack"
	"crackKeeper/internal/http-server/handlers/crack/editCrack"
	"crackKeeper/internal/http-server/handlers/crack/listCracks"
	"crackKeeper/internal/http-server/handlers/crack/submitCrack"
	"crackKeeper/internal/http-server/handlers/location/addLocation"
	"crackKeeper/internal/http-server/handlers/location/deleteLocation"
	"crackKeeper/internal/http-server/handlers/location/listLocations"
	"crackKeeper/internal/http-server/middleware/mwlogger"
	"crackKeeper/internal/kafka/consumer"
	"crackKeeper/internal/kafka/producer"
	"crackKeeper/internal/lib/logger/handlers/slogpretty"
	"crackKeeper/internal/lib/logger/sl"
	"crackKeeper/internal/locations"
	"crackKeeper/internal/records"
	"crackKeeper/internal/storage/blob"
	"crackKeeper/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// @title        Crack Keeper API
// @version      1.0
// @description  Record keeping for structural crack photos.
func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting crack keeper", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	blobStore, err := blob.New(&cfg.BlobStorage)
	if err != nil {
		log.Error("failed to init blob storage", sl.Err(err))
		os.Exit(1)
	}

	kafkaProducer, err := producer.NewProducer(&cfg.Kafka, log)
	if err != nil {
		log.Error("failed to create kafka producer", sl.Err(err))
		os.Exit(1)
	}

	kafkaConsumer, err := consumer.NewConsumer(&cfg.Kafka, log)
	if err != nil {
		log.Error("failed to create kafka consumer", sl.Err(err))
		os.Exit(1)
	}

	recordAuditor := auditor.NewAuditor(log, storage)

	go kafkaConsumer.ReadMessages(context.Background(), recordAuditor.ProcessMessage)

	locationList := locations.NewList(storage)
	if err = locationList.Load(context.Background()); err != nil {
		log.Error("failed to load custom locations", sl.Err(err))
		os.Exit(1)
	}

	collection := records.NewCollection(storage, cfg.Records.PageSize)

	extractor := exif.NewExtractor()

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/cracks", submitCrack.New(log, blobStore, storage, extractor, kafkaProducer))
	router.Get("/cracks", listCracks.New(log, collection))
	router.Post("/cracks/more", listCracks.More(log, collection))
	router.Put("/cracks/{id}", editCrack.New(log, storage, collection, kafkaProducer))
	router.Delete("/cracks/{id}", deleteCrack.New(log, storage, blobStore, collection, kafkaProducer))

	router.Get("/locations", listLocations.New(log, locationList))
	router.Post("/locations", addLocation.New(log, locationList))
	router.Delete("/locations/{id}", deleteLocation.New(log, locationList))

	router.Get("/swagger/*", httpSwagger.Handler())

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err = srv.ListenAndServe(); err != nil {
		log.Error("failed to start server", sl.Err(err))
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close database", slog.String("error", err.Error()))
	}

	log.Info("postgres connection closed")

	if err = kafkaProducer.Close(); err != nil {
		log.Error("failed to close kafka producer", slog.String("error", err.Error()))
	}

	if err = kafkaConsumer.Close(); err != nil {
		log.Error("failed to close kafka consumer", slog.String("error", err.Error()))
	}

	log.Info("kafka connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
