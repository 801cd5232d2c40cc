package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
)

// WarehouseLoader объединяет загрузчики conformed и modeled слоев
// в единую реализацию Loader
type WarehouseLoader struct {
	*ConformedLoader
	*StarLoader
}

// NewWarehouseLoader создает новый экземпляр WarehouseLoader
func NewWarehouseLoader(db *sql.DB, logger *utils.ETLLogger) *WarehouseLoader {
	return &WarehouseLoader{
		ConformedLoader: NewConformedLoader(db, logger),
		StarLoader:      NewStarLoader(db, logger),
	}
}

// LoadManager отвечает за управление процессом загрузки данных в warehouse
// Сущности загружаются в фиксированном порядке зависимостей: сначала
// независимые справочники и приведенные сущности, затем измерения и факты
type LoadManager struct {
	db     *sql.DB
	logger *utils.ETLLogger
	loader Loader
}

// NewLoadManager создает новый экземпляр LoadManager
func NewLoadManager(db *sql.DB, logger *utils.ETLLogger) *LoadManager {
	return &LoadManager{
		db:     db,
		logger: logger,
		loader: NewWarehouseLoader(db, logger),
	}
}

// entityStep описывает один шаг загрузки: имя сущности, число строк
// и операцию полной замены
type entityStep struct {
	entity string
	rows   int
	load   func() error
}

// EntityError сообщает, на какой сущности оборвалась загрузка
type EntityError struct {
	Entity string
	Err    error
}

// Error возвращает текст ошибки с именем сущности
func (e *EntityError) Error() string {
	return fmt.Sprintf("сущность %q: %v", e.Entity, e.Err)
}

// Unwrap возвращает исходную ошибку
func (e *EntityError) Unwrap() error {
	return e.Err
}

// Load выполняет фазу загрузки: полная атомарная замена каждой сущности
// Ошибка на любом шаге прерывает оставшиеся сущности; уже замененные
// сущности не откатываются — каждая замена атомарна сама по себе
func (m *LoadManager) Load(data *models.TransformedData, runCtx *models.RunContext) error {
	startTime := time.Now()
	m.logger.Info("Начало фазы Load (Загрузка данных)")

	steps := []entityStep{
		{"conformed_product_categories", len(data.Conformed.Categories), func() error {
			return m.loader.LoadCategories(data.Conformed.Categories)
		}},
		{"conformed_customer_locations", len(data.Conformed.Locations), func() error {
			return m.loader.LoadLocations(data.Conformed.Locations)
		}},
		{"conformed_customer_profiles", len(data.Conformed.Profiles), func() error {
			return m.loader.LoadProfiles(data.Conformed.Profiles)
		}},
		{"conformed_customers", len(data.Conformed.Customers), func() error {
			return m.loader.LoadCustomers(data.Conformed.Customers)
		}},
		{"conformed_products", len(data.Conformed.Products), func() error {
			return m.loader.LoadProducts(data.Conformed.Products)
		}},
		{"conformed_sales_lines", len(data.Conformed.SalesLines), func() error {
			return m.loader.LoadSalesLines(data.Conformed.SalesLines)
		}},
		{"dim_customers", len(data.Modeled.CustomerDim), func() error {
			return m.loader.LoadCustomerDimension(data.Modeled.CustomerDim)
		}},
		{"dim_products", len(data.Modeled.ProductDim), func() error {
			return m.loader.LoadProductDimension(data.Modeled.ProductDim)
		}},
		{"fact_sales", len(data.Modeled.SalesFacts), func() error {
			return m.loader.LoadSalesFacts(data.Modeled.SalesFacts)
		}},
	}

	for _, step := range steps {
		m.logger.LogEntityStart(step.entity)
		entityStart := time.Now()

		if err := step.load(); err != nil {
			m.logger.Error("Ошибка при загрузке сущности %q: %v", step.entity, err)
			return &EntityError{Entity: step.entity, Err: err}
		}

		entityDuration := time.Since(entityStart)
		runCtx.AddTiming(step.entity, step.rows, entityDuration)
		m.logger.LogEntityComplete(step.entity, step.rows, entityDuration)
	}

	duration := time.Since(startTime)
	m.logger.Info("Фаза Load завершена. Длительность: %v", duration)

	return nil
}
