package load

import (
	"database/sql"
	"time"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
)

// ConformedLoader отвечает за загрузку приведенных сущностей в warehouse
type ConformedLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewConformedLoader создает новый экземпляр ConformedLoader
func NewConformedLoader(db *sql.DB, logger *utils.ETLLogger) *ConformedLoader {
	return &ConformedLoader{
		db:     db,
		logger: logger,
	}
}

// LoadCustomers заменяет таблицу приведенных клиентов
func (l *ConformedLoader) LoadCustomers(customers []models.Customer) error {
	startTime := time.Now()
	l.logger.Info("Начало загрузки приведенных клиентов (всего: %d)", len(customers))

	ddl := `
		customer_id INT NOT NULL PRIMARY KEY,
		customer_number VARCHAR(32) NOT NULL,
		first_name VARCHAR(64),
		last_name VARCHAR(64),
		marital_status VARCHAR(16) NOT NULL,
		gender VARCHAR(16) NOT NULL,
		created_at DATE NULL,
		loaded_at TIMESTAMP NOT NULL`

	insertSQL := `
		INSERT INTO conformed_customers_shadow
		(customer_id, customer_number, first_name, last_name, marital_status, gender, created_at, loaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	rows := make([][]interface{}, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []interface{}{
			c.ID, c.Number, c.FirstName, c.LastName,
			c.MaritalStatus.String(), c.Gender.String(),
			c.CreatedAt, c.LoadedAt,
		})
	}

	if err := replaceInFull(l.db, l.logger, "conformed_customers", ddl, insertSQL, rows); err != nil {
		return err
	}

	l.logger.Info("Загрузка приведенных клиентов завершена. Длительность: %v", time.Since(startTime))
	return nil
}

// LoadProducts заменяет таблицу приведенных версий товаров
func (l *ConformedLoader) LoadProducts(products []models.Product) error {
	startTime := time.Now()
	l.logger.Info("Начало загрузки приведенных товаров (всего версий: %d)", len(products))

	ddl := `
		product_id INT NOT NULL,
		product_key VARCHAR(32) NOT NULL,
		category_id VARCHAR(8) NOT NULL,
		product_code VARCHAR(32) NOT NULL,
		product_name VARCHAR(128),
		cost DECIMAL(12,2) NOT NULL,
		product_line VARCHAR(16) NOT NULL,
		valid_from DATE NULL,
		valid_to DATE NULL,
		loaded_at TIMESTAMP NOT NULL`

	insertSQL := `
		INSERT INTO conformed_products_shadow
		(product_id, product_key, category_id, product_code, product_name, cost, product_line, valid_from, valid_to, loaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	rows := make([][]interface{}, 0, len(products))
	for _, p := range products {
		rows = append(rows, []interface{}{
			p.ID, p.Key, p.CategoryID, p.Code, p.Name,
			p.Cost, p.Line.String(), p.ValidFrom, p.ValidTo, p.LoadedAt,
		})
	}

	if err := replaceInFull(l.db, l.logger, "conformed_products", ddl, insertSQL, rows); err != nil {
		return err
	}

	l.logger.Info("Загрузка приведенных товаров завершена. Длительность: %v", time.Since(startTime))
	return nil
}

// LoadSalesLines заменяет таблицу приведенных строк продаж
func (l *ConformedLoader) LoadSalesLines(lines []models.SalesLine) error {
	startTime := time.Now()
	l.logger.Info("Начало загрузки приведенных строк продаж (всего: %d)", len(lines))

	ddl := `
		order_number VARCHAR(32) NOT NULL,
		product_code VARCHAR(32) NOT NULL,
		customer_id INT NOT NULL,
		order_date DATE NULL,
		ship_date DATE NULL,
		due_date DATE NULL,
		sales_amount DECIMAL(12,2) NULL,
		quantity INT NULL,
		price DECIMAL(12,2) NULL,
		loaded_at TIMESTAMP NOT NULL`

	insertSQL := `
		INSERT INTO conformed_sales_lines_shadow
		(order_number, product_code, customer_id, order_date, ship_date, due_date, sales_amount, quantity, price, loaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	rows := make([][]interface{}, 0, len(lines))
	for _, s := range lines {
		rows = append(rows, []interface{}{
			s.OrderNumber, s.ProductCode, s.CustomerID,
			s.OrderDate, s.ShipDate, s.DueDate,
			s.Sales, s.Quantity, s.Price, s.LoadedAt,
		})
	}

	if err := replaceInFull(l.db, l.logger, "conformed_sales_lines", ddl, insertSQL, rows); err != nil {
		return err
	}

	l.logger.Info("Загрузка приведенных строк продаж завершена. Длительность: %v", time.Since(startTime))
	return nil
}

// LoadProfiles заменяет демографический справочник
func (l *ConformedLoader) LoadProfiles(profiles []models.CustomerProfile) error {
	startTime := time.Now()
	l.logger.Info("Начало загрузки демографического справочника (всего: %d)", len(profiles))

	ddl := `
		customer_number VARCHAR(32) NOT NULL,
		birth_date DATE NULL,
		gender VARCHAR(16) NOT NULL,
		loaded_at TIMESTAMP NOT NULL`

	insertSQL := `
		INSERT INTO conformed_customer_profiles_shadow
		(customer_number, birth_date, gender, loaded_at)
		VALUES (?, ?, ?, ?)`

	rows := make([][]interface{}, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []interface{}{
			p.CustomerNumber, p.BirthDate, p.Gender.String(), p.LoadedAt,
		})
	}

	if err := replaceInFull(l.db, l.logger, "conformed_customer_profiles", ddl, insertSQL, rows); err != nil {
		return err
	}

	l.logger.Info("Загрузка демографического справочника завершена. Длительность: %v", time.Since(startTime))
	return nil
}

// LoadLocations заменяет справочник локаций
func (l *ConformedLoader) LoadLocations(locations []models.CustomerLocation) error {
	startTime := time.Now()
	l.logger.Info("Начало загрузки справочника локаций (всего: %d)", len(locations))

	ddl := `
		customer_number VARCHAR(32) NOT NULL,
		country VARCHAR(64) NOT NULL,
		loaded_at TIMESTAMP NOT NULL`

	insertSQL := `
		INSERT INTO conformed_customer_locations_shadow
		(customer_number, country, loaded_at)
		VALUES (?, ?, ?)`

	rows := make([][]interface{}, 0, len(locations))
	for _, loc := range locations {
		rows = append(rows, []interface{}{loc.CustomerNumber, loc.Country, loc.LoadedAt})
	}

	if err := replaceInFull(l.db, l.logger, "conformed_customer_locations", ddl, insertSQL, rows); err != nil {
		return err
	}

	l.logger.Info("Загрузка справочника локаций завершена. Длительность: %v", time.Since(startTime))
	return nil
}

// LoadCategories заменяет справочник категорий
func (l *ConformedLoader) LoadCategories(categories []models.ProductCategory) error {
	startTime := time.Now()
	l.logger.Info("Начало загрузки справочника категорий (всего: %d)", len(categories))

	ddl := `
		category_id VARCHAR(8) NOT NULL,
		category VARCHAR(64),
		subcategory VARCHAR(64),
		maintenance VARCHAR(8),
		loaded_at TIMESTAMP NOT NULL`

	insertSQL := `
		INSERT INTO conformed_product_categories_shadow
		(category_id, category, subcategory, maintenance, loaded_at)
		VALUES (?, ?, ?, ?, ?)`

	rows := make([][]interface{}, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []interface{}{c.CategoryID, c.Category, c.Subcategory, c.Maintenance, c.LoadedAt})
	}

	if err := replaceInFull(l.db, l.logger, "conformed_product_categories", ddl, insertSQL, rows); err != nil {
		return err
	}

	l.logger.Info("Загрузка справочника категорий завершена. Длительность: %v", time.Since(startTime))
	return nil
}
