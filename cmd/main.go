package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getAvailabilityHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/get_availability"
	takeSlotHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/take_slot"
	"github.com/m04kA/SMC-SlotService/internal/api/middleware"
	"github.com/m04kA/SMC-SlotService/internal/config"
	slotServiceClient "github.com/m04kA/SMC-SlotService/internal/integrations/slotservice"
	getAvailableSlotsUC "github.com/m04kA/SMC-SlotService/internal/usecase/get_available_slots"
	takeSlotUC "github.com/m04kA/SMC-SlotService/internal/usecase/take_slot"
	"github.com/m04kA/SMC-SlotService/pkg/httpmetrics"
	"github.com/m04kA/SMC-SlotService/pkg/logger"
	"github.com/m04kA/SMC-SlotService/pkg/metrics"
)

func main() {
	// Подхватываем .env для локального запуска; в проде переменные приходят из окружения
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SlotService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиента Slot API (с метриками исходящих запросов или без)
	var clientOpts []slotServiceClient.Option
	if cfg.Metrics.Enabled {
		clientOpts = append(clientOpts, slotServiceClient.WithTransport(
			httpmetrics.Wrap(nil, metricsCollector, "slot_api"),
		))
	}

	slotClient := slotServiceClient.NewClient(
		slotServiceClient.Config{
			BaseURL:          cfg.SlotService.BaseURL,
			AvailabilityPath: cfg.SlotService.AvailabilityPath,
			TakeSlotPath:     cfg.SlotService.TakeSlotPath,
			Username:         cfg.SlotService.Username,
			Password:         cfg.SlotService.Password,
		},
		time.Duration(cfg.SlotService.Timeout)*time.Second,
		log,
		clientOpts...,
	)
	log.Info("Slot API client initialized (base_url=%s, timeout=%ds, legacy_day_mapping=%t)",
		cfg.SlotService.BaseURL, cfg.SlotService.Timeout, cfg.SlotService.LegacyDayMapping)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slotClient,
		cfg.SlotService.LegacyDayMapping,
		log,
	)
	takeSlotUseCase := takeSlotUC.NewUseCase(slotClient, log)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailableSlotsUseCase, log)
	takeSlot := takeSlotHandler.NewHandler(takeSlotUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Свободные слоты недели
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Бронирование слота
	api.HandleFunc("/reservation", takeSlot.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
