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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	cancelBookingHandler "github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers/cancel_booking"
	closeBookingHandler "github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers/close_booking"
	createBookingHandler "github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers/create_booking"
	getBayDiagramHandler "github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers/get_bay_diagram"
	getScheduleHandler "github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers/get_schedule"
	getSummaryHandler "github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers/get_summary"
	navigateScheduleHandler "github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers/navigate_schedule"
	overflowMenuHandler "github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers/overflow_menu"
	refreshScheduleHandler "github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers/refresh_schedule"
	rescheduleBookingHandler "github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers/reschedule_booking"
	searchLookupHandler "github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers/search_lookup"
	selectEventHandler "github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers/select_event"
	selectSlotHandler "github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers/select_slot"
	updateBookingHandler "github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers/update_booking"
	updateScheduleViewHandler "github.com/m04kA/SMC-SchedulingConsole/internal/api/handlers/update_schedule_view"
	"github.com/m04kA/SMC-SchedulingConsole/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingConsole/internal/config"
	"github.com/m04kA/SMC-SchedulingConsole/internal/infra/cache"
	"github.com/m04kA/SMC-SchedulingConsole/internal/infra/cachedfleet"
	fleetServiceClient "github.com/m04kA/SMC-SchedulingConsole/internal/integrations/fleetservice"
	"github.com/m04kA/SMC-SchedulingConsole/internal/push"
	diagramService "github.com/m04kA/SMC-SchedulingConsole/internal/service/diagram"
	gridService "github.com/m04kA/SMC-SchedulingConsole/internal/service/grid"
	lookupsService "github.com/m04kA/SMC-SchedulingConsole/internal/service/lookups"
	cancelBookingUC "github.com/m04kA/SMC-SchedulingConsole/internal/usecase/cancel_booking"
	closeBookingUC "github.com/m04kA/SMC-SchedulingConsole/internal/usecase/close_booking"
	createBookingUC "github.com/m04kA/SMC-SchedulingConsole/internal/usecase/create_booking"
	getSummaryUC "github.com/m04kA/SMC-SchedulingConsole/internal/usecase/get_summary"
	rescheduleBookingUC "github.com/m04kA/SMC-SchedulingConsole/internal/usecase/reschedule_booking"
	updateBookingUC "github.com/m04kA/SMC-SchedulingConsole/internal/usecase/update_booking"
	"github.com/m04kA/SMC-SchedulingConsole/pkg/logger"
	"github.com/m04kA/SMC-SchedulingConsole/pkg/metrics"
)

// cacheTTL верхняя граница жизни кэшированных ответов FleetService.
// Основной механизм актуализации push-инвалидация, TTL подстраховывает
// при потере realtime-канала.
const cacheTTL = 30 * time.Second

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func main() {
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

	log.Info("Starting SMC-SchedulingConsole...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс отображения (пустое значение = локальный)
	loc := time.Local
	if cfg.Server.Timezone != "" {
		loc, err = time.LoadLocation(cfg.Server.Timezone)
		if err != nil {
			log.Fatal("Failed to load timezone %q: %v", cfg.Server.Timezone, err)
		}
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Интерфейсные обёртки метрик: при выключенных метриках остаются nil,
	// потребители это учитывают
	var (
		fleetMetrics fleetServiceClient.Metrics
		cacheMetrics cache.Metrics
		gridMetrics  gridService.Metrics
		pushMetrics  push.Metrics
	)
	if cfg.Metrics.Enabled {
		fleetMetrics = metricsCollector
		cacheMetrics = metricsCollector
		gridMetrics = metricsCollector
		pushMetrics = metricsCollector
	}

	// Клиент FleetService и кэширующая обёртка над его читающей частью
	fleetClient := fleetServiceClient.NewClient(
		cfg.FleetService.URL,
		time.Duration(cfg.FleetService.Timeout)*time.Second,
		log,
		fleetMetrics,
	)
	store := cache.New(cacheTTL, log, cacheMetrics)
	port := cachedfleet.New(fleetClient, store)
	log.Info("FleetService client initialized (url=%s, timeout=%ds)",
		cfg.FleetService.URL, cfg.FleetService.Timeout)

	// Сервисы консоли
	lookupsSvc := lookupsService.NewService(port, log)
	diagramSvc := diagramService.NewService(port, lookupsSvc, cfg.Floorplan.LanePlan(), log)
	grid := gridService.NewController(port, lookupsSvc, log, gridMetrics, loc)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(fleetClient, store, grid, log)
	updateBookingUseCase := updateBookingUC.NewUseCase(fleetClient, store, grid, log)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(grid, fleetClient, store, grid, log)
	closeBookingUseCase := closeBookingUC.NewUseCase(fleetClient, store, grid, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(fleetClient, store, grid, log)
	getSummaryUseCase := getSummaryUC.NewUseCase(port, lookupsSvc, systemClock{}, log, loc)

	// Handlers
	getSchedule := getScheduleHandler.NewHandler(grid, log)
	updateScheduleView := updateScheduleViewHandler.NewHandler(grid, log)
	navigateSchedule := navigateScheduleHandler.NewHandler(grid, log, loc)
	refreshSchedule := refreshScheduleHandler.NewHandler(grid, log)
	selectSlot := selectSlotHandler.NewHandler(grid, log)
	selectEvent := selectEventHandler.NewHandler(grid, log)
	overflowMenu := overflowMenuHandler.NewHandler(grid, log, loc)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, grid, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, grid, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	closeBooking := closeBookingHandler.NewHandler(closeBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBayDiagram := getBayDiagramHandler.NewHandler(diagramSvc, log)
	searchLookup := searchLookupHandler.NewHandler(lookupsSvc, log)
	getSummary := getSummaryHandler.NewHandler(getSummaryUseCase, log)

	// Корневой контекст фоновых задач
	rootCtx, cancelRoot := context.WithCancel(context.Background())
	defer cancelRoot()

	// Первичная загрузка справочников, занятости и календаря.
	// Неудача не фатальна: фоновые обновления и push-канал дотянут.
	startupCtx, cancelStartup := context.WithTimeout(rootCtx, 30*time.Second)
	if err := lookupsSvc.RefreshAll(startupCtx); err != nil {
		log.Warn("Initial lookup load failed: %v", err)
	}
	if err := diagramSvc.Refresh(startupCtx); err != nil {
		log.Warn("Initial occupancy load failed: %v", err)
	}
	if err := grid.Refresh(startupCtx); err != nil {
		log.Warn("Initial schedule load failed: %v", err)
	}
	cancelStartup()

	// Фоновые обновления по расписанию
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Refresh.OccupancySpec, func() {
		if err := diagramSvc.Refresh(rootCtx); err != nil {
			log.Warn("Scheduled occupancy refresh failed: %v", err)
		}
	}); err != nil {
		log.Fatal("Invalid occupancy refresh spec %q: %v", cfg.Refresh.OccupancySpec, err)
	}
	if _, err := scheduler.AddFunc(cfg.Refresh.LookupsSpec, func() {
		if err := lookupsSvc.RefreshAll(rootCtx); err != nil {
			log.Warn("Scheduled lookup refresh failed: %v", err)
		}
	}); err != nil {
		log.Fatal("Invalid lookup refresh spec %q: %v", cfg.Refresh.LookupsSpec, err)
	}
	scheduler.Start()
	defer scheduler.Stop()
	log.Info("Background refresh scheduled (occupancy=%q, lookups=%q)",
		cfg.Refresh.OccupancySpec, cfg.Refresh.LookupsSpec)

	// Realtime-канал инвалидации
	if cfg.Realtime.Enabled {
		listener := push.NewListener(
			cfg.Realtime.URL,
			time.Duration(cfg.Realtime.ReconnectDelay)*time.Second,
			store,
			grid,
			log,
			pushMetrics,
		)
		go listener.Run(rootCtx)
		log.Info("Realtime invalidation channel enabled (url=%s)", cfg.Realtime.URL)
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Календарная сетка ---
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/view", updateScheduleView.Handle).Methods(http.MethodPut)
	api.HandleFunc("/schedule/date", navigateSchedule.Handle).Methods(http.MethodPut)
	api.HandleFunc("/schedule/refresh", refreshSchedule.Handle).Methods(http.MethodPost)
	api.HandleFunc("/schedule/slots/select", selectSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/schedule/events/{bookingId}/select", selectEvent.Handle).Methods(http.MethodPost)
	api.HandleFunc("/schedule/overflow", overflowMenu.HandleOpen).Methods(http.MethodPost)
	api.HandleFunc("/schedule/overflow", overflowMenu.HandleClose).Methods(http.MethodDelete)

	// --- Брони ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/close", closeBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- План-схема, справочники, сводка ---
	api.HandleFunc("/diagram", getBayDiagram.Handle).Methods(http.MethodGet)
	api.HandleFunc("/lookups/{kind}", searchLookup.Handle).Methods(http.MethodGet)
	api.HandleFunc("/summary", getSummary.Handle).Methods(http.MethodGet)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	cancelRoot()

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
