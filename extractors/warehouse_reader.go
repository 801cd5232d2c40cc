package extractors

import (
	"database/sql"
	"fmt"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
)

// WarehouseReader читает опубликованные conformed и modeled отношения
// обратно в модель — для автономного запуска батареи проверок качества
type WarehouseReader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewWarehouseReader создает новый экземпляр WarehouseReader
func NewWarehouseReader(db *sql.DB, logger *utils.ETLLogger) *WarehouseReader {
	return &WarehouseReader{
		db:     db,
		logger: logger,
	}
}

// ReadConformed читает приведенные сущности, участвующие в проверках
func (r *WarehouseReader) ReadConformed() (*models.ConformedData, error) {
	data := &models.ConformedData{}
	var err error

	if data.Customers, err = r.readCustomers(); err != nil {
		return nil, err
	}
	if data.Products, err = r.readProducts(); err != nil {
		return nil, err
	}
	if data.SalesLines, err = r.readSalesLines(); err != nil {
		return nil, err
	}
	if data.Profiles, err = r.readProfiles(); err != nil {
		return nil, err
	}
	if data.Locations, err = r.readLocations(); err != nil {
		return nil, err
	}
	if data.Categories, err = r.readCategories(); err != nil {
		return nil, err
	}

	return data, nil
}

// ReadModeled читает измерения и факты
func (r *WarehouseReader) ReadModeled() (*models.ModeledData, error) {
	data := &models.ModeledData{}
	var err error

	if data.CustomerDim, err = r.readCustomerDimension(); err != nil {
		return nil, err
	}
	if data.ProductDim, err = r.readProductDimension(); err != nil {
		return nil, err
	}
	if data.SalesFacts, err = r.readSalesFacts(); err != nil {
		return nil, err
	}

	return data, nil
}

func (r *WarehouseReader) readCustomers() ([]models.Customer, error) {
	rows, err := r.db.Query(`
		SELECT customer_id, customer_number, first_name, last_name,
			marital_status, gender, created_at, loaded_at
		FROM conformed_customers
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при чтении приведенных клиентов: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var (
			c             models.Customer
			firstName     sql.NullString
			lastName      sql.NullString
			maritalStatus string
			gender        string
			createdAt     sql.NullTime
		)

		if err := rows.Scan(&c.ID, &c.Number, &firstName, &lastName,
			&maritalStatus, &gender, &createdAt, &c.LoadedAt); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании приведенного клиента: %w", err)
		}

		c.FirstName = firstName.String
		c.LastName = lastName.String
		c.MaritalStatus = models.ParseMaritalStatus(maritalStatus)
		c.Gender = models.ParseGender(gender)
		if createdAt.Valid {
			t := createdAt.Time
			c.CreatedAt = &t
		}

		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка после итерации по приведенным клиентам: %w", err)
	}

	r.logger.Debug("Прочитано %d приведенных клиентов", len(customers))
	return customers, nil
}

func (r *WarehouseReader) readProducts() ([]models.Product, error) {
	rows, err := r.db.Query(`
		SELECT product_id, product_key, category_id, product_code, product_name,
			cost, product_line, valid_from, valid_to, loaded_at
		FROM conformed_products
		ORDER BY product_key, valid_from
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при чтении приведенных товаров: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var (
			p         models.Product
			name      sql.NullString
			line      string
			validFrom sql.NullTime
			validTo   sql.NullTime
		)

		if err := rows.Scan(&p.ID, &p.Key, &p.CategoryID, &p.Code, &name,
			&p.Cost, &line, &validFrom, &validTo, &p.LoadedAt); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании приведенного товара: %w", err)
		}

		p.Name = name.String
		p.Line = models.ParseProductLine(line)
		if validFrom.Valid {
			t := validFrom.Time
			p.ValidFrom = &t
		}
		if validTo.Valid {
			t := validTo.Time
			p.ValidTo = &t
		}

		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка после итерации по приведенным товарам: %w", err)
	}

	r.logger.Debug("Прочитано %d версий приведенных товаров", len(products))
	return products, nil
}

func (r *WarehouseReader) readSalesLines() ([]models.SalesLine, error) {
	rows, err := r.db.Query(`
		SELECT order_number, product_code, customer_id, order_date, ship_date, due_date,
			sales_amount, quantity, price, loaded_at
		FROM conformed_sales_lines
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при чтении приведенных строк продаж: %w", err)
	}
	defer rows.Close()

	var lines []models.SalesLine
	for rows.Next() {
		var (
			s         models.SalesLine
			orderDate sql.NullTime
			shipDate  sql.NullTime
			dueDate   sql.NullTime
			sales     sql.NullFloat64
			quantity  sql.NullInt64
			price     sql.NullFloat64
		)

		if err := rows.Scan(&s.OrderNumber, &s.ProductCode, &s.CustomerID,
			&orderDate, &shipDate, &dueDate, &sales, &quantity, &price, &s.LoadedAt); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании приведенной строки продажи: %w", err)
		}

		if orderDate.Valid {
			t := orderDate.Time
			s.OrderDate = &t
		}
		if shipDate.Valid {
			t := shipDate.Time
			s.ShipDate = &t
		}
		if dueDate.Valid {
			t := dueDate.Time
			s.DueDate = &t
		}
		if sales.Valid {
			v := sales.Float64
			s.Sales = &v
		}
		if quantity.Valid {
			v := int(quantity.Int64)
			s.Quantity = &v
		}
		if price.Valid {
			v := price.Float64
			s.Price = &v
		}

		lines = append(lines, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка после итерации по приведенным строкам продаж: %w", err)
	}

	r.logger.Debug("Прочитано %d приведенных строк продаж", len(lines))
	return lines, nil
}

func (r *WarehouseReader) readProfiles() ([]models.CustomerProfile, error) {
	rows, err := r.db.Query(`
		SELECT customer_number, birth_date, gender, loaded_at
		FROM conformed_customer_profiles
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при чтении демографического справочника: %w", err)
	}
	defer rows.Close()

	var profiles []models.CustomerProfile
	for rows.Next() {
		var (
			p         models.CustomerProfile
			birthDate sql.NullTime
			gender    string
		)

		if err := rows.Scan(&p.CustomerNumber, &birthDate, &gender, &p.LoadedAt); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании записи демографического справочника: %w", err)
		}

		p.Gender = models.ParseGender(gender)
		if birthDate.Valid {
			t := birthDate.Time
			p.BirthDate = &t
		}

		profiles = append(profiles, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка после итерации по демографическому справочнику: %w", err)
	}

	r.logger.Debug("Прочитано %d записей демографического справочника", len(profiles))
	return profiles, nil
}

func (r *WarehouseReader) readLocations() ([]models.CustomerLocation, error) {
	rows, err := r.db.Query(`
		SELECT customer_number, country, loaded_at
		FROM conformed_customer_locations
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при чтении справочника локаций: %w", err)
	}
	defer rows.Close()

	var locations []models.CustomerLocation
	for rows.Next() {
		var l models.CustomerLocation
		if err := rows.Scan(&l.CustomerNumber, &l.Country, &l.LoadedAt); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании записи справочника локаций: %w", err)
		}
		locations = append(locations, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка после итерации по справочнику локаций: %w", err)
	}

	r.logger.Debug("Прочитано %d записей справочника локаций", len(locations))
	return locations, nil
}

func (r *WarehouseReader) readCategories() ([]models.ProductCategory, error) {
	rows, err := r.db.Query(`
		SELECT category_id, category, subcategory, maintenance, loaded_at
		FROM conformed_product_categories
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при чтении справочника категорий: %w", err)
	}
	defer rows.Close()

	var categories []models.ProductCategory
	for rows.Next() {
		var (
			c           models.ProductCategory
			category    sql.NullString
			subcategory sql.NullString
			maintenance sql.NullString
		)

		if err := rows.Scan(&c.CategoryID, &category, &subcategory, &maintenance, &c.LoadedAt); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании записи справочника категорий: %w", err)
		}

		c.Category = category.String
		c.Subcategory = subcategory.String
		c.Maintenance = maintenance.String

		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка после итерации по справочнику категорий: %w", err)
	}

	r.logger.Debug("Прочитано %d записей справочника категорий", len(categories))
	return categories, nil
}

func (r *WarehouseReader) readCustomerDimension() ([]models.CustomerDimension, error) {
	rows, err := r.db.Query(`
		SELECT customer_key, customer_id, customer_number, first_name, last_name,
			country, marital_status, gender, birth_date, created_at
		FROM dim_customers
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при чтении измерения клиентов: %w", err)
	}
	defer rows.Close()

	var dim []models.CustomerDimension
	for rows.Next() {
		var (
			d         models.CustomerDimension
			firstName sql.NullString
			lastName  sql.NullString
			birthDate sql.NullTime
			createdAt sql.NullTime
		)

		if err := rows.Scan(&d.SurrogateKey, &d.CustomerID, &d.CustomerNumber,
			&firstName, &lastName, &d.Country, &d.MaritalStatus, &d.Gender,
			&birthDate, &createdAt); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании строки измерения клиентов: %w", err)
		}

		d.FirstName = firstName.String
		d.LastName = lastName.String
		if birthDate.Valid {
			t := birthDate.Time
			d.BirthDate = &t
		}
		if createdAt.Valid {
			t := createdAt.Time
			d.CreatedAt = &t
		}

		dim = append(dim, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка после итерации по измерению клиентов: %w", err)
	}

	r.logger.Debug("Прочитано %d строк измерения клиентов", len(dim))
	return dim, nil
}

func (r *WarehouseReader) readProductDimension() ([]models.ProductDimension, error) {
	rows, err := r.db.Query(`
		SELECT product_key, product_id, product_code, product_name, category_id,
			category, subcategory, maintenance, cost, product_line, start_date
		FROM dim_products
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при чтении измерения товаров: %w", err)
	}
	defer rows.Close()

	var dim []models.ProductDimension
	for rows.Next() {
		var (
			d         models.ProductDimension
			name      sql.NullString
			startDate sql.NullTime
		)

		if err := rows.Scan(&d.SurrogateKey, &d.ProductID, &d.ProductCode, &name,
			&d.CategoryID, &d.Category, &d.Subcategory, &d.Maintenance,
			&d.Cost, &d.Line, &startDate); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании строки измерения товаров: %w", err)
		}

		d.ProductName = name.String
		if startDate.Valid {
			t := startDate.Time
			d.StartDate = &t
		}

		dim = append(dim, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка после итерации по измерению товаров: %w", err)
	}

	r.logger.Debug("Прочитано %d строк измерения товаров", len(dim))
	return dim, nil
}

func (r *WarehouseReader) readSalesFacts() ([]models.SalesFact, error) {
	rows, err := r.db.Query(`
		SELECT order_number, product_key, customer_key, order_date, ship_date, due_date,
			sales_amount, quantity, price
		FROM fact_sales
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при чтении фактов продаж: %w", err)
	}
	defer rows.Close()

	var facts []models.SalesFact
	for rows.Next() {
		var (
			f           models.SalesFact
			productKey  sql.NullInt64
			customerKey sql.NullInt64
			orderDate   sql.NullTime
			shipDate    sql.NullTime
			dueDate     sql.NullTime
			sales       sql.NullFloat64
			quantity    sql.NullInt64
			price       sql.NullFloat64
		)

		if err := rows.Scan(&f.OrderNumber, &productKey, &customerKey,
			&orderDate, &shipDate, &dueDate, &sales, &quantity, &price); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании факта продажи: %w", err)
		}

		if productKey.Valid {
			v := int(productKey.Int64)
			f.ProductKey = &v
		}
		if customerKey.Valid {
			v := int(customerKey.Int64)
			f.CustomerKey = &v
		}
		if orderDate.Valid {
			t := orderDate.Time
			f.OrderDate = &t
		}
		if shipDate.Valid {
			t := shipDate.Time
			f.ShipDate = &t
		}
		if dueDate.Valid {
			t := dueDate.Time
			f.DueDate = &t
		}
		if sales.Valid {
			v := sales.Float64
			f.Sales = &v
		}
		if quantity.Valid {
			v := int(quantity.Int64)
			f.Quantity = &v
		}
		if price.Valid {
			v := price.Float64
			f.Price = &v
		}

		facts = append(facts, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка после итерации по фактам продаж: %w", err)
	}

	r.logger.Debug("Прочитано %d фактов продаж", len(facts))
	return facts, nil
}
