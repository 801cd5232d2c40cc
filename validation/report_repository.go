package validation

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang/snappy"
)

// MySQLReportRepository сохраняет отчеты проверок качества в warehouse
// Детальный список нарушителей сериализуется в JSON и сжимается snappy
// перед записью в BLOB
type MySQLReportRepository struct {
	db *sql.DB
}

// NewMySQLReportRepository создает новый экземпляр MySQLReportRepository
func NewMySQLReportRepository(db *sql.DB) *MySQLReportRepository {
	return &MySQLReportRepository{
		db: db,
	}
}

// CreateReportTable создает таблицу отчетов проверок, если она не существует
func (r *MySQLReportRepository) CreateReportTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS validation_report (
		id INT AUTO_INCREMENT PRIMARY KEY,
		run_id CHAR(36) NOT NULL,
		checked_at TIMESTAMP NOT NULL,
		check_name VARCHAR(64) NOT NULL,
		layer VARCHAR(16) NOT NULL,
		blocking BOOLEAN NOT NULL,
		passed BOOLEAN NOT NULL,
		offender_count INT NOT NULL,
		details_compressed BLOB
	);
	`

	_, err := r.db.Exec(query)
	if err != nil {
		return fmt.Errorf("ошибка при создании таблицы validation_report: %w", err)
	}

	return nil
}

// SaveResults сохраняет результаты батареи проверок одного запуска
func (r *MySQLReportRepository) SaveResults(runID string, checkedAt time.Time, results []CheckResult) error {
	stmt, err := r.db.Prepare(`
		INSERT INTO validation_report
		(run_id, checked_at, check_name, layer, blocking, passed, offender_count, details_compressed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("ошибка при подготовке запроса отчета проверок: %w", err)
	}
	defer stmt.Close()

	for _, result := range results {
		var details []byte
		if !result.Passed() {
			raw, err := json.Marshal(result.OffendingKeys)
			if err != nil {
				return fmt.Errorf("ошибка при сериализации нарушителей проверки %q: %w", result.Name, err)
			}
			details = snappy.Encode(nil, raw)
		}

		_, err := stmt.Exec(
			runID,
			checkedAt,
			result.Name,
			result.Layer,
			result.Blocking,
			result.Passed(),
			len(result.OffendingKeys),
			details,
		)
		if err != nil {
			return fmt.Errorf("ошибка при сохранении результата проверки %q: %w", result.Name, err)
		}
	}

	return nil
}

// GetOffenders восстанавливает список нарушителей сохраненной проверки
func (r *MySQLReportRepository) GetOffenders(runID, checkName string) ([]string, error) {
	var details []byte
	err := r.db.QueryRow(`
		SELECT details_compressed FROM validation_report
		WHERE run_id = ? AND check_name = ?
		ORDER BY checked_at DESC
		LIMIT 1
	`, runID, checkName).Scan(&details)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при чтении отчета проверки %q: %w", checkName, err)
	}

	if len(details) == 0 {
		return nil, nil
	}

	raw, err := snappy.Decode(nil, details)
	if err != nil {
		return nil, fmt.Errorf("ошибка при распаковке отчета проверки %q: %w", checkName, err)
	}

	var offenders []string
	if err := json.Unmarshal(raw, &offenders); err != nil {
		return nil, fmt.Errorf("ошибка при разборе отчета проверки %q: %w", checkName, err)
	}

	return offenders, nil
}
