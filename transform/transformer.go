package transform

import (
	"time"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
)

// Transformer координирует приведение сырых записей и построение
// звездной схемы
type Transformer struct {
	logger             *utils.ETLLogger
	customerConformer  *CustomerConformer
	productConformer   *ProductConformer
	salesConformer     *SalesConformer
	referenceConformer *ReferenceConformer
	customerDimBuilder *CustomerDimensionBuilder
	productDimBuilder  *ProductDimensionBuilder
	salesFactBuilder   *SalesFactBuilder
}

// NewTransformer создает новый экземпляр Transformer
func NewTransformer(logger *utils.ETLLogger) *Transformer {
	return &Transformer{
		logger:             logger,
		customerConformer:  NewCustomerConformer(logger),
		productConformer:   NewProductConformer(logger),
		salesConformer:     NewSalesConformer(logger),
		referenceConformer: NewReferenceConformer(logger),
		customerDimBuilder: NewCustomerDimensionBuilder(logger),
		productDimBuilder:  NewProductDimensionBuilder(logger),
		salesFactBuilder:   NewSalesFactBuilder(logger),
	}
}

// Transform выполняет полное преобразование батча: сначала приведение
// всех сущностей, затем построение измерений и фактов
// loadedAt — единая метка обработки батча (lineage)
func (t *Transformer) Transform(extracted *models.ExtractedData, loadedAt time.Time) (*models.TransformedData, error) {
	startTime := time.Now()
	t.logger.Info("Начало фазы Transform (Приведение и моделирование)")

	data := &models.TransformedData{}

	// 1. Приведение независимых справочных фидов
	t.logger.Info("Приведение справочных фидов...")
	data.Conformed.Profiles = t.referenceConformer.ConformProfiles(extracted.Profiles, loadedAt)
	data.Conformed.Locations = t.referenceConformer.ConformLocations(extracted.Locations, loadedAt)
	data.Conformed.Categories = t.referenceConformer.ConformCategories(extracted.Categories, loadedAt)

	// 2. Приведение клиентов
	t.logger.Info("Приведение клиентов...")
	data.Conformed.Customers = t.customerConformer.ConformCustomers(extracted.Customers, loadedAt)

	// 3. Приведение товаров с расчетом интервалов действия
	t.logger.Info("Приведение товаров...")
	data.Conformed.Products = t.productConformer.ConformProducts(extracted.Products, loadedAt)

	// 4. Приведение строк продаж с согласованием мер
	t.logger.Info("Приведение строк продаж...")
	data.Conformed.SalesLines = t.salesConformer.ConformSalesLines(extracted.SalesLines, loadedAt)

	// 5. Построение измерения клиентов
	t.logger.Info("Построение измерения клиентов...")
	data.Modeled.CustomerDim = t.customerDimBuilder.BuildCustomerDimension(
		data.Conformed.Customers,
		data.Conformed.Profiles,
		data.Conformed.Locations,
	)

	// 6. Построение измерения товаров
	t.logger.Info("Построение измерения товаров...")
	data.Modeled.ProductDim = t.productDimBuilder.BuildProductDimension(
		data.Conformed.Products,
		data.Conformed.Categories,
	)

	// 7. Построение фактов продаж по суррогатным ключам измерений
	t.logger.Info("Построение фактов продаж...")
	data.Modeled.SalesFacts = t.salesFactBuilder.BuildSalesFacts(
		data.Conformed.SalesLines,
		data.Modeled.ProductDim,
		data.Modeled.CustomerDim,
	)

	duration := time.Since(startTime)
	t.logger.Info("Фаза Transform завершена. Длительность: %v", duration)

	return data, nil
}
