package extractors

import (
	"database/sql"
	"fmt"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
)

// ProductExtractor извлекает сырые записи товаров из staging
type ProductExtractor struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewProductExtractor создает новый экземпляр ProductExtractor
func NewProductExtractor(db *sql.DB, logger *utils.ETLLogger) *ProductExtractor {
	return &ProductExtractor{
		db:     db,
		logger: logger,
	}
}

// ExtractProducts извлекает все сырые записи товаров
// Каждая строка — версия товара; интервалы действия рассчитываются
// на фазе Transform
func (e *ProductExtractor) ExtractProducts() ([]models.RawProduct, error) {
	e.logger.Debug("Начало извлечения записей товаров")

	query := `
		SELECT product_id, product_key, product_name, cost, product_line,
			start_date, end_date
		FROM raw_products
	`

	rows, err := e.db.Query(query)
	if err != nil {
		e.logger.Error("Ошибка при извлечении записей товаров: %v", err)
		return nil, fmt.Errorf("ошибка запроса товаров: %w", err)
	}
	defer rows.Close()

	var products []models.RawProduct
	for rows.Next() {
		var (
			id        int
			key       sql.NullString
			name      sql.NullString
			cost      sql.NullFloat64
			line      sql.NullString
			startDate sql.NullTime
			endDate   sql.NullTime
		)

		if err := rows.Scan(&id, &key, &name, &cost, &line, &startDate, &endDate); err != nil {
			e.logger.Error("Ошибка при обработке записи товара: %v", err)
			return nil, fmt.Errorf("ошибка обработки записи товара: %w", err)
		}

		product := models.RawProduct{
			ID:   id,
			Key:  key.String,
			Name: name.String,
			Line: line.String,
		}

		if cost.Valid {
			v := cost.Float64
			product.Cost = &v
		}
		if startDate.Valid {
			t := startDate.Time
			product.StartDate = &t
		}
		if endDate.Valid {
			t := endDate.Time
			product.EndDate = &t
		}

		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		e.logger.Error("Ошибка после итерации по товарам: %v", err)
		return nil, fmt.Errorf("ошибка после итерации по товарам: %w", err)
	}

	e.logger.Debug("Извлечено %d записей товаров", len(products))
	return products, nil
}
