package transform

import (
	"sort"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
)

// ProductDimensionBuilder отвечает за построение измерения товаров
// из текущих версий приведенных товаров и справочника категорий
type ProductDimensionBuilder struct {
	logger *utils.ETLLogger
}

// NewProductDimensionBuilder создает новый экземпляр ProductDimensionBuilder
func NewProductDimensionBuilder(logger *utils.ETLLogger) *ProductDimensionBuilder {
	return &ProductDimensionBuilder{
		logger: logger,
	}
}

// BuildProductDimension строит измерение товаров: в него входят только
// текущие версии (открытый интервал), обогащенные справочником категорий
func (b *ProductDimensionBuilder) BuildProductDimension(
	products []models.Product,
	categories []models.ProductCategory) []models.ProductDimension {

	b.logger.Debug("Построение измерения товаров...")

	categoryByID := make(map[string]models.ProductCategory, len(categories))
	for _, c := range categories {
		categoryByID[c.CategoryID] = c
	}

	// В измерение входят только текущие версии товара;
	// суррогатные ключи назначаются уже по отфильтрованному набору
	current := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ValidTo == nil {
			current = append(current, p)
		}
	}

	surrogates := AssignProductSurrogates(current)

	dimension := make([]models.ProductDimension, 0, len(current))
	for i, p := range current {
		row := models.ProductDimension{
			SurrogateKey: surrogates[i],
			ProductID:    p.ID,
			ProductCode:  p.Code,
			ProductName:  p.Name,
			CategoryID:   p.CategoryID,
			Category:     models.Sentinel,
			Subcategory:  models.Sentinel,
			Maintenance:  models.Sentinel,
			Cost:         p.Cost,
			Line:         p.Line.String(),
			StartDate:    p.ValidFrom,
		}

		if category, ok := categoryByID[p.CategoryID]; ok {
			row.Category = category.Category
			row.Subcategory = category.Subcategory
			row.Maintenance = category.Maintenance
		}

		dimension = append(dimension, row)
	}

	// Упорядочиваем по суррогатному ключу для воспроизводимости выхода
	sort.Slice(dimension, func(i, j int) bool {
		return dimension[i].SurrogateKey < dimension[j].SurrogateKey
	})

	b.logger.Info("Измерение товаров построено. Строк: %d (версий всего: %d)", len(dimension), len(products))
	return dimension
}
