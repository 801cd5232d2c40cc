package transform

import (
	"strings"
	"time"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
)

// SalesConformer отвечает за приведение строк продаж: санацию дат
// и согласование мер (sales = quantity * price)
type SalesConformer struct {
	logger *utils.ETLLogger
}

// NewSalesConformer создает новый экземпляр SalesConformer
func NewSalesConformer(logger *utils.ETLLogger) *SalesConformer {
	return &SalesConformer{
		logger: logger,
	}
}

// ConformSalesLines приводит сырые строки продаж
// Строки не отбрасываются: невосстановимые поля остаются nil и
// отлавливаются проверками качества
func (c *SalesConformer) ConformSalesLines(raw []models.RawSalesLine, loadedAt time.Time) []models.SalesLine {
	c.logger.Debug("Приведение строк продаж...")

	if len(raw) == 0 {
		c.logger.Debug("Нет строк продаж для приведения")
		return []models.SalesLine{}
	}

	conformed := make([]models.SalesLine, 0, len(raw))
	repaired := 0
	for _, r := range raw {
		sales, price, fixed := ReconcileMeasures(r.Sales, r.Quantity, r.Price)
		if fixed {
			repaired++
		}

		customerID := 0
		if r.CustomerID != nil {
			customerID = *r.CustomerID
		}

		conformed = append(conformed, models.SalesLine{
			OrderNumber: strings.TrimSpace(r.OrderNumber),
			ProductCode: strings.TrimSpace(r.ProductCode),
			CustomerID:  customerID,
			OrderDate:   ParseCompactDate(r.OrderDate),
			ShipDate:    ParseCompactDate(r.ShipDate),
			DueDate:     ParseCompactDate(r.DueDate),
			Sales:       sales,
			Quantity:    r.Quantity,
			Price:       price,
			LoadedAt:    loadedAt,
		})
	}

	c.logger.Info("Приведение строк продаж завершено. Строк: %d, согласовано мер: %d", len(conformed), repaired)
	return conformed
}

// ReconcileMeasures согласует тройку мер, считая количество достоверным
// Продажи пересчитываются, если отсутствуют, неположительны или не равны
// quantity * |price|; цена пересчитывается из продаж делением на количество
// Невосстановимые значения остаются nil; возвращаемый флаг сообщает,
// было ли хоть одно значение пересчитано
func ReconcileMeasures(sales *float64, quantity *int, price *float64) (*float64, *float64, bool) {
	fixed := false

	// Продажи: пересчет через количество и модуль цены
	// Модуль маскирует отрицательную цену как ошибку ввода — поведение
	// источника сохранено, см. открытый вопрос в DESIGN.md
	if price != nil {
		absPrice := *price
		if absPrice < 0 {
			absPrice = -absPrice
		}

		if quantity != nil {
			expected := float64(*quantity) * absPrice
			if sales == nil || *sales <= 0 || *sales != expected {
				sales = &expected
				fixed = true
			}
		}
	}

	// Цена: восстановление из продаж и количества
	if price == nil || *price <= 0 {
		if sales != nil && quantity != nil && *quantity != 0 {
			derived := *sales / float64(*quantity)
			price = &derived

			// Деление не точно в IEEE: продажи пересчитываются из
			// восстановленной цены, чтобы тройка удовлетворяла закону
			// sales = quantity * price без остатка
			recomputed := float64(*quantity) * derived
			sales = &recomputed
			fixed = true
		} else if price != nil && *price <= 0 {
			// Неположительная цена без возможности восстановления
			price = nil
			fixed = true
		}
	}

	return sales, price, fixed
}
