package load

import (
	"database/sql"
	"fmt"

	"github.com/LilVoxy/coursework_dwh/utils"
)

// replaceInFull выполняет полную замену таблицы по схеме shadow-and-swap:
// строки пишутся в теневую таблицу, после чего таблицы атомарно меняются
// местами одним RENAME TABLE. Читатель видит либо полностью прежнее,
// либо полностью новое состояние, но никогда частичное
func replaceInFull(db *sql.DB, logger *utils.ETLLogger, table, ddl, insertSQL string, rows [][]interface{}) error {
	shadow := table + "_shadow"
	old := table + "_old"

	// Целевая таблица должна существовать до первого свопа
	if _, err := db.Exec(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table, ddl)); err != nil {
		return fmt.Errorf("ошибка при создании таблицы %s: %w", table, err)
	}

	// Готовим чистую теневую таблицу
	if _, err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", shadow)); err != nil {
		return fmt.Errorf("ошибка при удалении теневой таблицы %s: %w", shadow, err)
	}
	if _, err := db.Exec(fmt.Sprintf("CREATE TABLE %s (%s)", shadow, ddl)); err != nil {
		return fmt.Errorf("ошибка при создании теневой таблицы %s: %w", shadow, err)
	}

	// Наполняем теневую таблицу в одной транзакции
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("ошибка при начале транзакции для %s: %w", table, err)
	}

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("ошибка при подготовке запроса для %s: %w", table, err)
	}

	processed := 0
	for _, args := range rows {
		if _, err := stmt.Exec(args...); err != nil {
			stmt.Close()
			tx.Rollback()
			return fmt.Errorf("ошибка при вставке строки в %s: %w", shadow, err)
		}

		processed++

		// Логируем прогресс каждые 1000 строк
		if processed%1000 == 0 {
			logger.Debug("Загружено %d из %d строк в %s...", processed, len(rows), shadow)
		}
	}

	stmt.Close()
	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("ошибка при фиксации транзакции для %s: %w", table, err)
	}

	// Атомарный своп: текущая таблица уходит в _old, теневая становится текущей
	if _, err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", old)); err != nil {
		return fmt.Errorf("ошибка при удалении таблицы %s: %w", old, err)
	}
	if _, err := db.Exec(fmt.Sprintf("RENAME TABLE %s TO %s, %s TO %s", table, old, shadow, table)); err != nil {
		return fmt.Errorf("ошибка при атомарной замене таблицы %s: %w", table, err)
	}
	if _, err := db.Exec(fmt.Sprintf("DROP TABLE %s", old)); err != nil {
		return fmt.Errorf("ошибка при удалении прежней таблицы %s: %w", old, err)
	}

	return nil
}
