package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createCompanyHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/create_company"
	createShiftHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/create_shift"
	createTableHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/create_table"
	deleteShiftHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/delete_shift"
	deleteTableHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/delete_table"
	getAvailableShiftsHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/get_available_shifts"
	getCompanyHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/get_company"
	listConfigsHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/list_configs"
	listShiftsHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/list_shifts"
	listTablesHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/list_tables"
	shiftStatisticsHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/shift_statistics"
	updateCompanyHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/update_company"
	updateConfigHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/update_config"
	updateShiftHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/update_shift"
	updateTableHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/update_table"
	"github.com/m04kA/SMC-ShiftService/internal/api/middleware"
	"github.com/m04kA/SMC-ShiftService/internal/config"
	companyRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/company"
	settingRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/setting"
	shiftRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/shift"
	tableRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/table"
	companiesService "github.com/m04kA/SMC-ShiftService/internal/service/companies"
	settingsService "github.com/m04kA/SMC-ShiftService/internal/service/settings"
	shiftsService "github.com/m04kA/SMC-ShiftService/internal/service/shifts"
	tablesService "github.com/m04kA/SMC-ShiftService/internal/service/tables"
	createShiftUC "github.com/m04kA/SMC-ShiftService/internal/usecase/create_shift"
	getAvailableShiftsUC "github.com/m04kA/SMC-ShiftService/internal/usecase/get_available_shifts"
	shiftStatisticsUC "github.com/m04kA/SMC-ShiftService/internal/usecase/shift_statistics"
	updateShiftUC "github.com/m04kA/SMC-ShiftService/internal/usecase/update_shift"
	"github.com/m04kA/SMC-ShiftService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShiftService/pkg/logger"
	"github.com/m04kA/SMC-ShiftService/pkg/metrics"
	"github.com/m04kA/SMC-ShiftService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ShiftService/pkg/txmanager"
)

func main() {
	// .env локальной разработки, в проде переменные приходят извне
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

	log.Info("Starting SMC-ShiftService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		shiftRepository   *shiftRepo.Repository
		tableRepository   *tableRepo.Repository
		companyRepository *companyRepo.Repository
		settingRepository *settingRepo.Repository
	)

	// Интерфейс transaction manager, общий для обеих реализаций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		shiftRepository = shiftRepo.NewRepository(wrappedDB)
		tableRepository = tableRepo.NewRepository(wrappedDB)
		companyRepository = companyRepo.NewRepository(wrappedDB)
		settingRepository = settingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		shiftRepository = shiftRepo.NewRepository(db)
		tableRepository = tableRepo.NewRepository(db)
		companyRepository = companyRepo.NewRepository(db)
		settingRepository = settingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(settingRepository, log)
	tablesSvc := tablesService.NewService(tableRepository, log)
	shiftsSvc := shiftsService.NewService(shiftRepository, log)
	companiesSvc := companiesService.NewService(companyRepository, settingsSvc, txMgr, log)

	// Инициализируем use cases
	getAvailableShiftsUseCase := getAvailableShiftsUC.NewUseCase(
		shiftRepository,
		tableRepository,
		settingsSvc,
		log,
	)

	createShiftUseCase := createShiftUC.NewUseCase(
		shiftRepository,
		tableRepository,
		settingsSvc,
		txMgr,
		log,
	)

	updateShiftUseCase := updateShiftUC.NewUseCase(
		shiftRepository,
		tableRepository,
		settingsSvc,
		txMgr,
		log,
	)

	shiftStatisticsUseCase := shiftStatisticsUC.NewUseCase(shiftRepository, log)

	// Инициализируем handlers
	getAvailableShifts := getAvailableShiftsHandler.NewHandler(getAvailableShiftsUseCase, log)
	listShifts := listShiftsHandler.NewHandler(shiftsSvc, log)
	createShift := createShiftHandler.NewHandler(createShiftUseCase, log)
	updateShift := updateShiftHandler.NewHandler(updateShiftUseCase, log)
	deleteShift := deleteShiftHandler.NewHandler(shiftsSvc, log)
	shiftStatistics := shiftStatisticsHandler.NewHandler(shiftStatisticsUseCase, log)
	listTables := listTablesHandler.NewHandler(tablesSvc, log)
	createTable := createTableHandler.NewHandler(tablesSvc, log)
	updateTable := updateTableHandler.NewHandler(tablesSvc, log)
	deleteTable := deleteTableHandler.NewHandler(tablesSvc, log)
	listConfigs := listConfigsHandler.NewHandler(settingsSvc, log)
	updateConfig := updateConfigHandler.NewHandler(settingsSvc, log)
	createCompany := createCompanyHandler.NewHandler(companiesSvc, log)
	getCompany := getCompanyHandler.NewHandler(companiesSvc, log)
	updateCompany := updateCompanyHandler.NewHandler(companiesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Request-ID и определение компании запроса
	r.Use(middleware.WithRequestID(log))
	r.Use(middleware.WithCompanyCode(cfg.App.DefaultCompanyCode))

	// --- Брони (турносы) ---
	r.HandleFunc("/shifts/availables", getAvailableShifts.Handle).Methods(http.MethodGet)
	r.HandleFunc("/shifts/statistics", shiftStatistics.Handle).Methods(http.MethodGet)
	r.HandleFunc("/shifts", listShifts.Handle).Methods(http.MethodGet)
	r.HandleFunc("/shifts", createShift.Handle).Methods(http.MethodPost)
	r.HandleFunc("/shifts", updateShift.Handle).Methods(http.MethodPut)
	r.HandleFunc("/shifts/{shiftId}", deleteShift.Handle).Methods(http.MethodDelete)

	// --- Столы ---
	r.HandleFunc("/tables", listTables.Handle).Methods(http.MethodGet)
	r.HandleFunc("/tables", createTable.Handle).Methods(http.MethodPost)
	r.HandleFunc("/tables", updateTable.Handle).Methods(http.MethodPut)
	r.HandleFunc("/tables/{tableId}", deleteTable.Handle).Methods(http.MethodDelete)

	// --- Настройки ---
	r.HandleFunc("/configs", listConfigs.Handle).Methods(http.MethodGet)
	r.HandleFunc("/configs", updateConfig.Handle).Methods(http.MethodPut)

	// --- Компания ---
	r.HandleFunc("/company", createCompany.Handle).Methods(http.MethodPost)
	r.HandleFunc("/company", getCompany.Handle).Methods(http.MethodGet)
	r.HandleFunc("/company", updateCompany.Handle).Methods(http.MethodPut)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
