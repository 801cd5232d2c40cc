package transform

import (
	"testing"
	"time"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleExtractedData() *models.ExtractedData {
	return &models.ExtractedData{
		Customers: []models.RawCustomer{
			{ID: intPtr(11000), Number: "AW00011000", FirstName: " Jon ", LastName: "Yang",
				MaritalStatus: "M", Gender: "M", CreatedAt: datePtr(2025, 12, 1), ArrivalSeq: 1},
			{ID: intPtr(11000), Number: "AW00011000", FirstName: "Jon", LastName: "Yang",
				MaritalStatus: "M", Gender: "M", CreatedAt: datePtr(2026, 1, 15), ArrivalSeq: 2},
			{ID: intPtr(11001), Number: "AW00011001", FirstName: "Eugene", LastName: "Huang",
				MaritalStatus: "S", Gender: "", CreatedAt: datePtr(2025, 11, 3), ArrivalSeq: 3},
		},
		Products: []models.RawProduct{
			{ID: 210, Key: "BK-RO-BK-R93R-62", Name: "Road-150 Red, 62", Cost: floatPtr(2171.29),
				Line: "R", StartDate: datePtr(2011, 7, 1)},
			{ID: 211, Key: "BK-RO-BK-R93R-62", Name: "Road-150 Red, 62", Cost: floatPtr(2443.35),
				Line: "R", StartDate: datePtr(2012, 7, 1)},
		},
		SalesLines: []models.RawSalesLine{
			{OrderNumber: "SO43697", ProductCode: "BK-R93R-62", CustomerID: intPtr(11000),
				OrderDate: intPtr(20260105), ShipDate: intPtr(20260112), DueDate: intPtr(20260117),
				Sales: nil, Quantity: intPtr(1), Price: floatPtr(3578.27)},
		},
		Profiles: []models.RawCustomerProfile{
			{ID: "NASAW00011000", BirthDate: datePtr(1971, 10, 6), Gender: "F"},
		},
		Locations: []models.RawCustomerLocation{
			{ID: "AW-000-110-00", Country: "US"},
		},
		Categories: []models.RawProductCategory{
			{ID: "BK_RO", Category: "Bikes", Subcategory: "Road Bikes", Maintenance: "Yes"},
		},
	}
}

func TestTransformEndToEnd(t *testing.T) {
	transformer := NewTransformer(utils.NewSilentLogger())
	loadedAt := time.Date(2026, 2, 1, 3, 0, 0, 0, time.UTC)

	data, err := transformer.Transform(sampleExtractedData(), loadedAt)
	require.NoError(t, err)

	// Дубликат клиента схлопнут до последней версии
	require.Len(t, data.Conformed.Customers, 2)
	assert.Equal(t, *datePtr(2026, 1, 15), *data.Conformed.Customers[0].CreatedAt)

	// Две версии товара получили смежные интервалы действия
	require.Len(t, data.Conformed.Products, 2)
	require.NotNil(t, data.Conformed.Products[0].ValidTo)
	assert.Equal(t, *datePtr(2012, 6, 30), *data.Conformed.Products[0].ValidTo)
	assert.Nil(t, data.Conformed.Products[1].ValidTo)

	// Выручка восстановлена из количества и цены
	require.Len(t, data.Conformed.SalesLines, 1)
	require.NotNil(t, data.Conformed.SalesLines[0].Sales)
	assert.InDelta(t, 3578.27, *data.Conformed.SalesLines[0].Sales, 0.001)

	// В измерение товаров вошла только текущая версия
	require.Len(t, data.Modeled.ProductDim, 1)
	assert.Equal(t, 211, data.Modeled.ProductDim[0].ProductID)

	// Измерение клиентов обогащено фидами: префикс и дефисы источников сняты
	require.Len(t, data.Modeled.CustomerDim, 2)
	assert.Equal(t, "United States", data.Modeled.CustomerDim[0].Country)
	require.NotNil(t, data.Modeled.CustomerDim[0].BirthDate)

	// Факт сопоставился с обоими измерениями
	require.Len(t, data.Modeled.SalesFacts, 1)
	require.NotNil(t, data.Modeled.SalesFacts[0].ProductKey)
	require.NotNil(t, data.Modeled.SalesFacts[0].CustomerKey)
}

func TestTransformIdempotent(t *testing.T) {
	transformer := NewTransformer(utils.NewSilentLogger())
	loadedAt := time.Date(2026, 2, 1, 3, 0, 0, 0, time.UTC)

	first, err := transformer.Transform(sampleExtractedData(), loadedAt)
	require.NoError(t, err)

	second, err := transformer.Transform(sampleExtractedData(), loadedAt)
	require.NoError(t, err)

	// Повторный прогон на том же входе дает идентичный результат
	assert.Equal(t, first, second)
}
