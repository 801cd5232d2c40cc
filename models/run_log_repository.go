package models

import (
	"database/sql"
	"fmt"
	"time"
)

// MySQLRunLogRepository реализация RunLogRepository для MySQL
type MySQLRunLogRepository struct {
	db *sql.DB
}

// NewMySQLRunLogRepository создает новый экземпляр MySQLRunLogRepository
func NewMySQLRunLogRepository(db *sql.DB) *MySQLRunLogRepository {
	return &MySQLRunLogRepository{
		db: db,
	}
}

// CreateRunLogTable создает таблицу журнала запусков, если она не существует
func (r *MySQLRunLogRepository) CreateRunLogTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS pipeline_run_log (
		id INT AUTO_INCREMENT PRIMARY KEY,
		run_id CHAR(36) NOT NULL,
		start_time TIMESTAMP NOT NULL,
		end_time TIMESTAMP NULL,
		status ENUM('in_progress', 'validating', 'published', 'failed') NOT NULL DEFAULT 'in_progress',
		entities_loaded INT DEFAULT 0,
		rows_conformed INT DEFAULT 0,
		facts_loaded INT DEFAULT 0,
		failed_entity VARCHAR(64),
		error_message TEXT,
		execution_time_seconds FLOAT
	);
	`

	_, err := r.db.Exec(query)
	if err != nil {
		return fmt.Errorf("ошибка при создании таблицы pipeline_run_log: %w", err)
	}

	return nil
}

// CreateLogEntry создает новую запись о запуске пайплайна
func (r *MySQLRunLogRepository) CreateLogEntry(runID string, startTime time.Time) (int, error) {
	query := `
	INSERT INTO pipeline_run_log (run_id, start_time, status)
	VALUES (?, ?, 'in_progress')
	`

	result, err := r.db.Exec(query, runID, startTime)
	if err != nil {
		return 0, fmt.Errorf("ошибка при создании записи о запуске пайплайна: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("ошибка при получении ID созданной записи: %w", err)
	}

	return int(id), nil
}

// MarkValidating переводит запись журнала в состояние validating
func (r *MySQLRunLogRepository) MarkValidating(id int) error {
	_, err := r.db.Exec("UPDATE pipeline_run_log SET status = 'validating' WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("ошибка при переводе записи журнала в состояние validating: %w", err)
	}

	return nil
}

// executionSeconds возвращает длительность запуска в секундах по его записи
func (r *MySQLRunLogRepository) executionSeconds(id int, endTime time.Time) (float64, error) {
	var startTime time.Time
	err := r.db.QueryRow("SELECT start_time FROM pipeline_run_log WHERE id = ?", id).Scan(&startTime)
	if err != nil {
		return 0, fmt.Errorf("ошибка при получении времени начала запуска: %w", err)
	}

	return endTime.Sub(startTime).Seconds(), nil
}

// UpdateLogEntryPublished обновляет запись при успешной публикации
func (r *MySQLRunLogRepository) UpdateLogEntryPublished(
	id int,
	endTime time.Time,
	entitiesLoaded, rowsConformed, factsLoaded int) error {

	executionTime, err := r.executionSeconds(id, endTime)
	if err != nil {
		return err
	}

	query := `
	UPDATE pipeline_run_log
	SET
		end_time = ?,
		status = 'published',
		entities_loaded = ?,
		rows_conformed = ?,
		facts_loaded = ?,
		execution_time_seconds = ?
	WHERE id = ?
	`

	_, err = r.db.Exec(query, endTime, entitiesLoaded, rowsConformed, factsLoaded, executionTime, id)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении записи о запуске пайплайна: %w", err)
	}

	return nil
}

// UpdateLogEntryFailure обновляет запись при неудачном завершении
func (r *MySQLRunLogRepository) UpdateLogEntryFailure(id int, endTime time.Time, failedEntity, errorMessage string) error {
	executionTime, err := r.executionSeconds(id, endTime)
	if err != nil {
		return err
	}

	query := `
	UPDATE pipeline_run_log
	SET
		end_time = ?,
		status = 'failed',
		failed_entity = ?,
		error_message = ?,
		execution_time_seconds = ?
	WHERE id = ?
	`

	_, err = r.db.Exec(query, endTime, failedEntity, errorMessage, executionTime, id)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении записи о неудачном запуске: %w", err)
	}

	return nil
}

// GetLastSuccessfulRun получает информацию о последнем опубликованном запуске
func (r *MySQLRunLogRepository) GetLastSuccessfulRun() (*PipelineRunLog, error) {
	query := `
	SELECT
		id, run_id, start_time, end_time, status,
		entities_loaded, rows_conformed, facts_loaded,
		IFNULL(failed_entity, ''), IFNULL(error_message, ''), execution_time_seconds
	FROM pipeline_run_log
	WHERE status = 'published'
	ORDER BY end_time DESC
	LIMIT 1
	`

	var runLog PipelineRunLog
	err := r.db.QueryRow(query).Scan(
		&runLog.ID, &runLog.RunID, &runLog.StartTime, &runLog.EndTime, &runLog.Status,
		&runLog.EntitiesLoaded, &runLog.RowsConformed, &runLog.FactsLoaded,
		&runLog.FailedEntity, &runLog.ErrorMessage, &runLog.ExecutionTimeSeconds,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Нет опубликованных запусков
		}
		return nil, fmt.Errorf("ошибка при получении информации о последнем опубликованном запуске: %w", err)
	}

	return &runLog, nil
}

// GetRunStats получает статистику о запусках за определенный период
func (r *MySQLRunLogRepository) GetRunStats(days int) ([]PipelineRunLog, error) {
	query := `
	SELECT
		id, run_id, start_time, IFNULL(end_time, NOW()), status,
		entities_loaded, rows_conformed, facts_loaded,
		IFNULL(failed_entity, ''), IFNULL(error_message, ''), IFNULL(execution_time_seconds, 0)
	FROM pipeline_run_log
	WHERE start_time >= DATE_SUB(NOW(), INTERVAL ? DAY)
	ORDER BY start_time DESC
	`

	rows, err := r.db.Query(query, days)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении статистики запусков пайплайна: %w", err)
	}
	defer rows.Close()

	var logs []PipelineRunLog
	for rows.Next() {
		var runLog PipelineRunLog
		err := rows.Scan(
			&runLog.ID, &runLog.RunID, &runLog.StartTime, &runLog.EndTime, &runLog.Status,
			&runLog.EntitiesLoaded, &runLog.RowsConformed, &runLog.FactsLoaded,
			&runLog.FailedEntity, &runLog.ErrorMessage, &runLog.ExecutionTimeSeconds,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка при сканировании записи о запуске пайплайна: %w", err)
		}
		logs = append(logs, runLog)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка после итерации по записям о запусках пайплайна: %w", err)
	}

	return logs, nil
}
