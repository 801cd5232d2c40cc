package models

import (
	"time"
)

// Статусы запуска пайплайна (машина состояний оркестратора)
const (
	RunStatusInProgress = "in_progress"
	RunStatusValidating = "validating"
	RunStatusPublished  = "published"
	RunStatusFailed     = "failed"
)

// PipelineRunLog представляет запись о запуске пайплайна
type PipelineRunLog struct {
	ID                   int       `json:"id"`
	RunID                string    `json:"run_id"` // uuid запуска
	StartTime            time.Time `json:"start_time"`
	EndTime              time.Time `json:"end_time"`
	Status               string    `json:"status"`
	EntitiesLoaded       int       `json:"entities_loaded"`
	RowsConformed        int       `json:"rows_conformed"`
	FactsLoaded          int       `json:"facts_loaded"`
	FailedEntity         string    `json:"failed_entity,omitempty"`
	ErrorMessage         string    `json:"error_message,omitempty"`
	ExecutionTimeSeconds float64   `json:"execution_time_seconds"`
}

// RunLogRepository представляет репозиторий для работы с журналом запусков
type RunLogRepository interface {
	// CreateLogEntry создает новую запись о запуске пайплайна
	CreateLogEntry(runID string, startTime time.Time) (int, error)

	// MarkValidating переводит запись в состояние validating
	MarkValidating(id int) error

	// UpdateLogEntryPublished обновляет запись при успешной публикации
	UpdateLogEntryPublished(id int, endTime time.Time, entitiesLoaded, rowsConformed, factsLoaded int) error

	// UpdateLogEntryFailure обновляет запись при неудачном завершении
	UpdateLogEntryFailure(id int, endTime time.Time, failedEntity, errorMessage string) error

	// GetLastSuccessfulRun получает информацию о последнем опубликованном запуске
	GetLastSuccessfulRun() (*PipelineRunLog, error)

	// GetRunStats получает статистику о запусках за определенный период
	GetRunStats(days int) ([]PipelineRunLog, error)
}

// EntityTiming хранит измеренную длительность обработки одной сущности
type EntityTiming struct {
	Entity   string        `json:"entity"`
	Rows     int           `json:"rows"`
	Duration time.Duration `json:"duration"`
}

// RunContext — явный контекст запуска, протаскиваемый через все стадии
// вместо разделяемого глобального состояния
type RunContext struct {
	RunID     string
	LogID     int
	StartTime time.Time
	Timings   []EntityTiming
}

// AddTiming фиксирует длительность обработки сущности
func (rc *RunContext) AddTiming(entity string, rows int, duration time.Duration) {
	rc.Timings = append(rc.Timings, EntityTiming{Entity: entity, Rows: rows, Duration: duration})
}
