package transform

import (
	"testing"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProductDimensionCurrentVersionsOnly(t *testing.T) {
	builder := NewProductDimensionBuilder(utils.NewSilentLogger())

	products := []models.Product{
		{ID: 1, Key: "CO_RF", Code: "FR-R92B-58", ValidFrom: datePtr(2011, 7, 1), ValidTo: datePtr(2011, 12, 27)},
		{ID: 2, Key: "CO_RF", Code: "FR-R92B-58", ValidFrom: datePtr(2011, 12, 28), ValidTo: nil},
		{ID: 3, Key: "BK_MT", Code: "BK-M82S-38", ValidFrom: datePtr(2012, 5, 30), ValidTo: nil},
	}

	dimension := builder.BuildProductDimension(products, nil)

	// Закрытые интервалы в измерение не попадают
	require.Len(t, dimension, 2)
	assert.Equal(t, 3, dimension[0].ProductID, "более ранняя текущая версия получает меньший ключ")
	assert.Equal(t, 2, dimension[1].ProductID)
	// Суррогатные ключи назначены по отфильтрованному набору без разрывов
	assert.Equal(t, 1, dimension[0].SurrogateKey)
	assert.Equal(t, 2, dimension[1].SurrogateKey)
}

func TestBuildProductDimensionCategoryEnrichment(t *testing.T) {
	builder := NewProductDimensionBuilder(utils.NewSilentLogger())

	products := []models.Product{
		{ID: 1, Key: "BK_MT", CategoryID: "BK_MT", Code: "BK-M82S-38", ValidFrom: datePtr(2012, 5, 30)},
		{ID: 2, Key: "CO_RF", CategoryID: "CO_RF", Code: "FR-R92B-58", ValidFrom: datePtr(2011, 7, 1)},
	}
	categories := []models.ProductCategory{
		{CategoryID: "BK_MT", Category: "Bikes", Subcategory: "Mountain Bikes", Maintenance: "Yes"},
	}

	dimension := builder.BuildProductDimension(products, categories)

	require.Len(t, dimension, 2)

	enriched := dimension[1]
	assert.Equal(t, "Bikes", enriched.Category)
	assert.Equal(t, "Mountain Bikes", enriched.Subcategory)
	assert.Equal(t, "Yes", enriched.Maintenance)

	// Отсутствующая категория заполняется сентинелами
	orphan := dimension[0]
	assert.Equal(t, models.Sentinel, orphan.Category)
	assert.Equal(t, models.Sentinel, orphan.Subcategory)
	assert.Equal(t, models.Sentinel, orphan.Maintenance)
}
