package extractors

import (
	"database/sql"
	"fmt"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
)

// SalesExtractor извлекает сырые строки продаж из staging
type SalesExtractor struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewSalesExtractor создает новый экземпляр SalesExtractor
func NewSalesExtractor(db *sql.DB, logger *utils.ETLLogger) *SalesExtractor {
	return &SalesExtractor{
		db:     db,
		logger: logger,
	}
}

// ExtractSalesLines извлекает все сырые строки продаж
// Даты приходят 8-значными целыми и разбираются на фазе Transform
func (e *SalesExtractor) ExtractSalesLines() ([]models.RawSalesLine, error) {
	e.logger.Debug("Начало извлечения строк продаж")

	query := `
		SELECT order_number, product_code, customer_id,
			order_date, ship_date, due_date,
			sales_amount, quantity, price
		FROM raw_sales_lines
	`

	rows, err := e.db.Query(query)
	if err != nil {
		e.logger.Error("Ошибка при извлечении строк продаж: %v", err)
		return nil, fmt.Errorf("ошибка запроса строк продаж: %w", err)
	}
	defer rows.Close()

	var lines []models.RawSalesLine
	for rows.Next() {
		var (
			orderNumber sql.NullString
			productCode sql.NullString
			customerID  sql.NullInt64
			orderDate   sql.NullInt64
			shipDate    sql.NullInt64
			dueDate     sql.NullInt64
			sales       sql.NullFloat64
			quantity    sql.NullInt64
			price       sql.NullFloat64
		)

		if err := rows.Scan(&orderNumber, &productCode, &customerID,
			&orderDate, &shipDate, &dueDate, &sales, &quantity, &price); err != nil {
			e.logger.Error("Ошибка при обработке строки продажи: %v", err)
			return nil, fmt.Errorf("ошибка обработки строки продажи: %w", err)
		}

		line := models.RawSalesLine{
			OrderNumber: orderNumber.String,
			ProductCode: productCode.String,
		}

		if customerID.Valid {
			v := int(customerID.Int64)
			line.CustomerID = &v
		}
		if orderDate.Valid {
			v := int(orderDate.Int64)
			line.OrderDate = &v
		}
		if shipDate.Valid {
			v := int(shipDate.Int64)
			line.ShipDate = &v
		}
		if dueDate.Valid {
			v := int(dueDate.Int64)
			line.DueDate = &v
		}
		if sales.Valid {
			v := sales.Float64
			line.Sales = &v
		}
		if quantity.Valid {
			v := int(quantity.Int64)
			line.Quantity = &v
		}
		if price.Valid {
			v := price.Float64
			line.Price = &v
		}

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		e.logger.Error("Ошибка после итерации по строкам продаж: %v", err)
		return nil, fmt.Errorf("ошибка после итерации по строкам продаж: %w", err)
	}

	e.logger.Debug("Извлечено %d строк продаж", len(lines))
	return lines, nil
}
