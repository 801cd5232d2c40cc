package load

import (
	"database/sql"
	"time"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
)

// StarLoader отвечает за загрузку измерений и фактов в warehouse
type StarLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewStarLoader создает новый экземпляр StarLoader
func NewStarLoader(db *sql.DB, logger *utils.ETLLogger) *StarLoader {
	return &StarLoader{
		db:     db,
		logger: logger,
	}
}

// LoadCustomerDimension заменяет измерение клиентов
func (l *StarLoader) LoadCustomerDimension(dim []models.CustomerDimension) error {
	startTime := time.Now()
	l.logger.Info("Начало загрузки измерения клиентов (всего: %d)", len(dim))

	ddl := `
		customer_key INT NOT NULL PRIMARY KEY,
		customer_id INT NOT NULL,
		customer_number VARCHAR(32) NOT NULL,
		first_name VARCHAR(64),
		last_name VARCHAR(64),
		country VARCHAR(64) NOT NULL,
		marital_status VARCHAR(16) NOT NULL,
		gender VARCHAR(16) NOT NULL,
		birth_date DATE NULL,
		created_at DATE NULL`

	insertSQL := `
		INSERT INTO dim_customers_shadow
		(customer_key, customer_id, customer_number, first_name, last_name, country, marital_status, gender, birth_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	rows := make([][]interface{}, 0, len(dim))
	for _, d := range dim {
		rows = append(rows, []interface{}{
			d.SurrogateKey, d.CustomerID, d.CustomerNumber,
			d.FirstName, d.LastName, d.Country,
			d.MaritalStatus, d.Gender, d.BirthDate, d.CreatedAt,
		})
	}

	if err := replaceInFull(l.db, l.logger, "dim_customers", ddl, insertSQL, rows); err != nil {
		return err
	}

	l.logger.Info("Загрузка измерения клиентов завершена. Длительность: %v", time.Since(startTime))
	return nil
}

// LoadProductDimension заменяет измерение товаров
func (l *StarLoader) LoadProductDimension(dim []models.ProductDimension) error {
	startTime := time.Now()
	l.logger.Info("Начало загрузки измерения товаров (всего: %d)", len(dim))

	ddl := `
		product_key INT NOT NULL PRIMARY KEY,
		product_id INT NOT NULL,
		product_code VARCHAR(32) NOT NULL,
		product_name VARCHAR(128),
		category_id VARCHAR(8) NOT NULL,
		category VARCHAR(64) NOT NULL,
		subcategory VARCHAR(64) NOT NULL,
		maintenance VARCHAR(8) NOT NULL,
		cost DECIMAL(12,2) NOT NULL,
		product_line VARCHAR(16) NOT NULL,
		start_date DATE NULL`

	insertSQL := `
		INSERT INTO dim_products_shadow
		(product_key, product_id, product_code, product_name, category_id, category, subcategory, maintenance, cost, product_line, start_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	rows := make([][]interface{}, 0, len(dim))
	for _, d := range dim {
		rows = append(rows, []interface{}{
			d.SurrogateKey, d.ProductID, d.ProductCode, d.ProductName,
			d.CategoryID, d.Category, d.Subcategory, d.Maintenance,
			d.Cost, d.Line, d.StartDate,
		})
	}

	if err := replaceInFull(l.db, l.logger, "dim_products", ddl, insertSQL, rows); err != nil {
		return err
	}

	l.logger.Info("Загрузка измерения товаров завершена. Длительность: %v", time.Since(startTime))
	return nil
}

// LoadSalesFacts заменяет факты продаж
// Суррогатные ссылки остаются NULL для строк без сопоставленного измерения
func (l *StarLoader) LoadSalesFacts(facts []models.SalesFact) error {
	startTime := time.Now()
	l.logger.Info("Начало загрузки фактов продаж (всего: %d)", len(facts))

	ddl := `
		order_number VARCHAR(32) NOT NULL,
		product_key INT NULL,
		customer_key INT NULL,
		order_date DATE NULL,
		ship_date DATE NULL,
		due_date DATE NULL,
		sales_amount DECIMAL(12,2) NULL,
		quantity INT NULL,
		price DECIMAL(12,2) NULL`

	insertSQL := `
		INSERT INTO fact_sales_shadow
		(order_number, product_key, customer_key, order_date, ship_date, due_date, sales_amount, quantity, price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	rows := make([][]interface{}, 0, len(facts))
	for _, f := range facts {
		rows = append(rows, []interface{}{
			f.OrderNumber, f.ProductKey, f.CustomerKey,
			f.OrderDate, f.ShipDate, f.DueDate,
			f.Sales, f.Quantity, f.Price,
		})
	}

	if err := replaceInFull(l.db, l.logger, "fact_sales", ddl, insertSQL, rows); err != nil {
		return err
	}

	l.logger.Info("Загрузка фактов продаж завершена. Длительность: %v", time.Since(startTime))
	return nil
}
