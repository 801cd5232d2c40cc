package extractors

import (
	"database/sql"
	"fmt"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
)

// CustomerExtractor извлекает сырые записи клиентов из staging
type CustomerExtractor struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewCustomerExtractor создает новый экземпляр CustomerExtractor
func NewCustomerExtractor(db *sql.DB, logger *utils.ETLLogger) *CustomerExtractor {
	return &CustomerExtractor{
		db:     db,
		logger: logger,
	}
}

// ExtractCustomers извлекает все сырые записи клиентов
// Порядок прихода берется из load_seq — автоинкрементного номера
// вставки, который сервис импорта присваивает строкам staging
// Скан таблицы без ORDER BY в MySQL не воспроизводим между запусками,
// поэтому ArrivalSeq читается из колонки, а не из порядка результата
func (e *CustomerExtractor) ExtractCustomers() ([]models.RawCustomer, error) {
	e.logger.Debug("Начало извлечения записей клиентов")

	query := `
		SELECT load_seq, customer_id, customer_number, first_name, last_name,
			marital_status, gender, created_at
		FROM raw_customers
		ORDER BY load_seq
	`

	rows, err := e.db.Query(query)
	if err != nil {
		e.logger.Error("Ошибка при извлечении записей клиентов: %v", err)
		return nil, fmt.Errorf("ошибка запроса клиентов: %w", err)
	}
	defer rows.Close()

	var customers []models.RawCustomer
	for rows.Next() {
		var (
			loadSeq       int
			id            sql.NullInt64
			number        sql.NullString
			firstName     sql.NullString
			lastName      sql.NullString
			maritalStatus sql.NullString
			gender        sql.NullString
			createdAt     sql.NullTime
		)

		if err := rows.Scan(&loadSeq, &id, &number, &firstName, &lastName, &maritalStatus, &gender, &createdAt); err != nil {
			e.logger.Error("Ошибка при обработке записи клиента: %v", err)
			return nil, fmt.Errorf("ошибка обработки записи клиента: %w", err)
		}

		customer := models.RawCustomer{
			Number:        number.String,
			FirstName:     firstName.String,
			LastName:      lastName.String,
			MaritalStatus: maritalStatus.String,
			Gender:        gender.String,
			ArrivalSeq:    loadSeq,
		}

		if id.Valid {
			v := int(id.Int64)
			customer.ID = &v
		}
		if createdAt.Valid {
			t := createdAt.Time
			customer.CreatedAt = &t
		}

		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		e.logger.Error("Ошибка после итерации по клиентам: %v", err)
		return nil, fmt.Errorf("ошибка после итерации по клиентам: %w", err)
	}

	e.logger.Debug("Извлечено %d записей клиентов", len(customers))
	return customers, nil
}
