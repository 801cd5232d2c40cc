package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// ETLLogger представляет логгер для процесса трансформации хранилища
type ETLLogger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	isVerbose   bool
	quiet       bool
}

// NewETLLogger создает новый экземпляр логгера для пайплайна
func NewETLLogger(verbose bool) *ETLLogger {
	// Создаем или открываем лог-файл для записи
	currentTime := time.Now().Format("2006-01-02")
	logFileName := fmt.Sprintf("dwh_pipeline_%s.log", currentTime)

	file, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Не удалось открыть или создать файл лога: %v", err)
	}

	// Инициализируем логгеры для разных уровней
	infoLogger := log.New(file, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	errorLogger := log.New(file, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	debugLogger := log.New(file, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

	return &ETLLogger{
		infoLogger:  infoLogger,
		errorLogger: errorLogger,
		debugLogger: debugLogger,
		isVerbose:   verbose,
	}
}

// NewSilentLogger создает логгер, не пишущий никуда — для тестов
func NewSilentLogger() *ETLLogger {
	return &ETLLogger{
		infoLogger:  log.New(io.Discard, "", 0),
		errorLogger: log.New(io.Discard, "", 0),
		debugLogger: log.New(io.Discard, "", 0),
		quiet:       true,
	}
}

// Info логирует информационное сообщение
func (l *ETLLogger) Info(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.infoLogger.Println(msg)

	// Также выводим в стандартный вывод
	if !l.quiet {
		log.Println("INFO:", msg)
	}
}

// Error логирует сообщение об ошибке
func (l *ETLLogger) Error(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.errorLogger.Println(msg)

	// Также выводим в стандартный вывод
	if !l.quiet {
		log.Println("ERROR:", msg)
	}
}

// Debug логирует отладочное сообщение (только если включен verbose режим)
func (l *ETLLogger) Debug(format string, v ...interface{}) {
	if !l.isVerbose {
		return
	}

	msg := fmt.Sprintf(format, v...)
	l.debugLogger.Println(msg)

	// Также выводим в стандартный вывод
	if !l.quiet {
		log.Println("DEBUG:", msg)
	}
}

// LogBatchStart логирует начало пакетной обработки
func (l *ETLLogger) LogBatchStart(runID string) {
	l.Info("Начало пакетной обработки хранилища. Идентификатор запуска: %s", runID)
}

// LogBatchComplete логирует завершение пакетной обработки
func (l *ETLLogger) LogBatchComplete(startTime time.Time, entitiesLoaded int) {
	duration := time.Since(startTime)
	l.Info("Пакетная обработка завершена. Загружено сущностей: %d. Длительность: %v", entitiesLoaded, duration)
}

// LogEntityStart логирует начало обработки отдельной сущности
func (l *ETLLogger) LogEntityStart(entity string) {
	l.Info("Обработка сущности %q...", entity)
}

// LogEntityComplete логирует завершение обработки отдельной сущности
func (l *ETLLogger) LogEntityComplete(entity string, rows int, duration time.Duration) {
	l.Info("Сущность %q обработана. Записей: %d. Длительность: %v", entity, rows, duration)
}

// LogValidationStart логирует начало фазы проверок качества данных
func (l *ETLLogger) LogValidationStart() {
	l.Info("Начало фазы Validation (Проверки качества данных)")
}

// LogValidationComplete логирует итог фазы проверок качества данных
func (l *ETLLogger) LogValidationComplete(passed, warnings, blocking int, duration time.Duration) {
	l.Info("Фаза Validation завершена. Пройдено: %d, предупреждений: %d, блокирующих: %d. Длительность: %v",
		passed, warnings, blocking, duration)
}
