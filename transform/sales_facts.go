package transform

import (
	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
)

// SalesFactBuilder отвечает за построение фактов продаж
// из приведенных строк продаж и построенных измерений
type SalesFactBuilder struct {
	logger *utils.ETLLogger
}

// NewSalesFactBuilder создает новый экземпляр SalesFactBuilder
func NewSalesFactBuilder(logger *utils.ETLLogger) *SalesFactBuilder {
	return &SalesFactBuilder{
		logger: logger,
	}
}

// BuildSalesFacts строит факты продаж left join-ом строк продаж с обоими
// измерениями по натуральным ключам
// Строка, не сопоставившаяся с измерением, сохраняется с nil-ссылкой:
// потерю ловят проверки качества, а не молчаливое отбрасывание
func (b *SalesFactBuilder) BuildSalesFacts(
	lines []models.SalesLine,
	productDim []models.ProductDimension,
	customerDim []models.CustomerDimension) []models.SalesFact {

	b.logger.Debug("Построение фактов продаж...")

	productSKByCode := make(map[string]int, len(productDim))
	for _, p := range productDim {
		productSKByCode[p.ProductCode] = p.SurrogateKey
	}

	customerSKByID := make(map[int]int, len(customerDim))
	for _, c := range customerDim {
		customerSKByID[c.CustomerID] = c.SurrogateKey
	}

	facts := make([]models.SalesFact, 0, len(lines))
	orphans := 0
	for _, line := range lines {
		fact := models.SalesFact{
			OrderNumber: line.OrderNumber,
			OrderDate:   line.OrderDate,
			ShipDate:    line.ShipDate,
			DueDate:     line.DueDate,
			Sales:       line.Sales,
			Quantity:    line.Quantity,
			Price:       line.Price,
		}

		if sk, ok := productSKByCode[line.ProductCode]; ok {
			key := sk
			fact.ProductKey = &key
		}

		if sk, ok := customerSKByID[line.CustomerID]; ok {
			key := sk
			fact.CustomerKey = &key
		}

		if fact.ProductKey == nil || fact.CustomerKey == nil {
			orphans++
		}

		facts = append(facts, fact)
	}

	if orphans > 0 {
		b.logger.Info("Обнаружены строки продаж без сопоставленного измерения: %d", orphans)
	}

	b.logger.Info("Факты продаж построены. Строк: %d", len(facts))
	return facts
}
