package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/LilVoxy/coursework_dwh/api"
	"github.com/LilVoxy/coursework_dwh/config"
	"github.com/LilVoxy/coursework_dwh/extractors"
	"github.com/LilVoxy/coursework_dwh/load"
	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/transform"
	"github.com/LilVoxy/coursework_dwh/utils"
	"github.com/LilVoxy/coursework_dwh/validation"
	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// PipelineRunner — оркестратор пакетной обработки хранилища
// Машина состояний запуска: in_progress -> validating -> published | failed
type PipelineRunner struct {
	config        config.PipelineConfig
	dbConnections *config.DBConnections
	logger        *utils.ETLLogger
	extractor     *extractors.Extractor
	transformer   *transform.Transformer
	loadManager   *load.LoadManager
	validator     *validation.Validator
	runLogRepo    *models.MySQLRunLogRepository
	reportRepo    *validation.MySQLReportRepository
	reader        *extractors.WarehouseReader

	// Против одновременных запусков в одном процессе; взаимное
	// исключение между процессами — внешняя забота
	runMu sync.Mutex
}

// NewPipelineRunner создает новый экземпляр PipelineRunner
func NewPipelineRunner() (*PipelineRunner, error) {
	// Получаем конфигурацию
	cfg := config.GetConfig()

	// Инициализируем логгер
	logger := utils.NewETLLogger(cfg.EnableDetailedLogging)
	logger.Info("Инициализация Pipeline Runner")

	// Подключаемся к базам данных
	connections, err := config.ConnectDatabases(cfg)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базам данных: %w", err)
	}

	// Инициализируем репозиторий журнала запусков
	runLogRepo := models.NewMySQLRunLogRepository(connections.WarehouseDB)
	if err := runLogRepo.CreateRunLogTable(); err != nil {
		return nil, fmt.Errorf("ошибка при создании таблицы журнала запусков: %w", err)
	}

	// Инициализируем репозиторий отчетов проверок
	reportRepo := validation.NewMySQLReportRepository(connections.WarehouseDB)
	if err := reportRepo.CreateReportTable(); err != nil {
		return nil, fmt.Errorf("ошибка при создании таблицы отчетов проверок: %w", err)
	}

	return &PipelineRunner{
		config:        cfg,
		dbConnections: connections,
		logger:        logger,
		extractor:     extractors.NewExtractor(connections.StagingDB, logger),
		transformer:   transform.NewTransformer(logger),
		loadManager:   load.NewLoadManager(connections.WarehouseDB, logger),
		validator:     validation.NewValidator(logger),
		runLogRepo:    runLogRepo,
		reportRepo:    reportRepo,
		reader:        extractors.NewWarehouseReader(connections.WarehouseDB, logger),
	}, nil
}

// Close закрывает соединения с базами данных
func (r *PipelineRunner) Close() {
	r.logger.Info("Завершение работы Pipeline Runner")
	config.CloseDatabases(r.dbConnections)
}

// ExecutePipeline выполняет полную пакетную обработку:
// Extract -> Transform -> Load -> Validation
// Повторный вызов на неизменном входе воспроизводит тот же выход
func (r *PipelineRunner) ExecutePipeline() error {
	if !r.runMu.TryLock() {
		return api.ErrRunInProgress
	}
	defer r.runMu.Unlock()

	startTime := time.Now()
	runID := uuid.NewString()
	r.logger.LogBatchStart(runID)

	// Создаем запись в журнале запусков
	logID, err := r.runLogRepo.CreateLogEntry(runID, startTime)
	if err != nil {
		r.logger.Error("Ошибка при создании записи в журнале запусков: %v", err)
		return fmt.Errorf("ошибка при создании записи в журнале запусков: %w", err)
	}

	runCtx := &models.RunContext{
		RunID:     runID,
		LogID:     logID,
		StartTime: startTime,
	}

	// 1. Фаза извлечения данных (Extract)
	extracted, err := r.extractor.Extract()
	if err != nil {
		return r.failRun(runCtx, "extract", err)
	}

	// 2. Фаза преобразования (Transform): приведение и моделирование
	// Метка обработки батча едина для всех записей (lineage)
	data, err := r.transformer.Transform(extracted, startTime)
	if err != nil {
		return r.failRun(runCtx, "transform", err)
	}

	// 3. Фаза загрузки (Load): полная атомарная замена каждой сущности
	if err := r.loadManager.Load(data, runCtx); err != nil {
		entity := "load"
		var entityErr *load.EntityError
		if errors.As(err, &entityErr) {
			entity = entityErr.Entity
		}
		return r.failRun(runCtx, entity, err)
	}

	// 4. Фаза проверок качества (Validation)
	if err := r.runLogRepo.MarkValidating(logID); err != nil {
		r.logger.Error("Ошибка при переводе запуска в состояние validating: %v", err)
	}

	results := r.validator.Run(&data.Conformed, &data.Modeled)
	if err := r.reportRepo.SaveResults(runID, time.Now(), results); err != nil {
		r.logger.Error("Ошибка при сохранении отчета проверок: %v", err)
	}

	// Блокирующие нарушения запрещают публикацию modeled слоя
	if validation.HasBlockingFailures(results) {
		err := fmt.Errorf("блокирующие проверки качества не пройдены")
		return r.failRun(runCtx, "validation", err)
	}

	// Публикация: фиксируем успешный запуск в журнале
	rowsConformed := len(data.Conformed.Customers) + len(data.Conformed.Products) +
		len(data.Conformed.SalesLines) + len(data.Conformed.Profiles) +
		len(data.Conformed.Locations) + len(data.Conformed.Categories)

	if err := r.runLogRepo.UpdateLogEntryPublished(
		logID,
		time.Now(),
		len(runCtx.Timings),
		rowsConformed,
		len(data.Modeled.SalesFacts)); err != nil {
		r.logger.Error("Ошибка при обновлении записи в журнале запусков: %v", err)
	}

	r.logger.LogBatchComplete(startTime, len(runCtx.Timings))
	return nil
}

// failRun фиксирует неудачный запуск в журнале и возвращает ошибку
// Уже замененные сущности не откатываются: каждая замена атомарна
// сама по себе, но свежести modeled слоя после failed доверять нельзя
func (r *PipelineRunner) failRun(runCtx *models.RunContext, failedEntity string, err error) error {
	errMsg := fmt.Sprintf("Ошибка на стадии %q: %v", failedEntity, err)
	r.logger.Error(errMsg)

	if updateErr := r.runLogRepo.UpdateLogEntryFailure(runCtx.LogID, time.Now(), failedEntity, errMsg); updateErr != nil {
		r.logger.Error("Ошибка при обновлении записи о неудачном запуске: %v", updateErr)
	}

	return fmt.Errorf("ошибка на стадии %q: %w", failedEntity, err)
}

// ExecuteValidation выполняет автономный запуск батареи проверок
// над текущим опубликованным содержимым warehouse
func (r *PipelineRunner) ExecuteValidation() ([]validation.CheckResult, error) {
	runID := uuid.NewString()
	r.logger.Info("Автономный запуск проверок качества. Идентификатор: %s", runID)

	conformed, err := r.reader.ReadConformed()
	if err != nil {
		r.logger.Error("Ошибка при чтении conformed слоя: %v", err)
		return nil, fmt.Errorf("ошибка при чтении conformed слоя: %w", err)
	}

	modeled, err := r.reader.ReadModeled()
	if err != nil {
		r.logger.Error("Ошибка при чтении modeled слоя: %v", err)
		return nil, fmt.Errorf("ошибка при чтении modeled слоя: %w", err)
	}

	results := r.validator.Run(conformed, modeled)
	if err := r.reportRepo.SaveResults(runID, time.Now(), results); err != nil {
		r.logger.Error("Ошибка при сохранении отчета проверок: %v", err)
	}

	return results, nil
}

// RunStats возвращает журнал запусков за период
func (r *PipelineRunner) RunStats(days int) ([]models.PipelineRunLog, error) {
	return r.runLogRepo.GetRunStats(days)
}

// StartScheduler запускает планировщик регулярной пакетной обработки
// и HTTP API управления пайплайном
func (r *PipelineRunner) StartScheduler(ctx context.Context) {
	scheduler := gocron.NewScheduler(time.UTC)

	r.logger.Info("Запуск планировщика пайплайна с интервалом %v", r.config.RunInterval)

	_, err := scheduler.Every(r.config.RunInterval).Do(func() {
		r.logger.Info("Запланированный запуск пакетной обработки")
		if err := r.ExecutePipeline(); err != nil {
			r.logger.Error("Ошибка при выполнении запланированной обработки: %v", err)
		}
	})

	if err != nil {
		r.logger.Error("Ошибка при настройке планировщика: %v", err)
		return
	}

	// Запускаем планировщик
	scheduler.StartAsync()

	// Поднимаем HTTP API управления
	router := mux.NewRouter()
	api.SetupRoutes(router, r)

	server := &http.Server{
		Addr:    r.config.HTTPAddr,
		Handler: router,
	}

	go func() {
		r.logger.Info("HTTP API управления пайплайном слушает %s", r.config.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			r.logger.Error("Ошибка HTTP сервера: %v", err)
		}
	}()

	// Ожидаем сигнал остановки из контекста
	<-ctx.Done()

	// Останавливаем планировщик и HTTP сервер
	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.logger.Error("Ошибка при остановке HTTP сервера: %v", err)
	}

	r.logger.Info("Планировщик пайплайна остановлен")
}
