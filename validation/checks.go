package validation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/LilVoxy/coursework_dwh/models"
)

// Каждая проверка возвращает ключи нарушающих строк; пустой результат
// означает, что проверка пройдена. Проверки ничего не чинят — только
// перечисляют нарушителей для расследования.

// CheckDimensionKeyUniqueness находит дубликаты суррогатных ключей измерения
func CheckDimensionKeyUniqueness(keys []int) []string {
	seen := make(map[int]int)
	for _, k := range keys {
		seen[k]++
	}

	var offending []string
	for k, count := range seen {
		if count > 1 {
			offending = append(offending, fmt.Sprintf("%d", k))
		}
	}
	return offending
}

// CheckFactReferentialIntegrity находит факты с неразрешенной ссылкой
// на измерение (nil после join)
func CheckFactReferentialIntegrity(facts []models.SalesFact) []string {
	var offending []string
	for i, f := range facts {
		if f.ProductKey == nil || f.CustomerKey == nil {
			offending = append(offending, fmt.Sprintf("%s[%d]", f.OrderNumber, i))
		}
	}
	return offending
}

// CheckCustomerKeyUniqueness находит дубликаты бизнес-ключей
// в приведенных клиентах
func CheckCustomerKeyUniqueness(customers []models.Customer) []string {
	seen := make(map[int]int)
	for _, c := range customers {
		seen[c.ID]++
	}

	var offending []string
	for id, count := range seen {
		if count > 1 {
			offending = append(offending, fmt.Sprintf("%d", id))
		}
	}
	return offending
}

// CheckTrimmedStrings находит строки с необрезанными пробелами
// в текстовых полях приведенных клиентов
func CheckTrimmedStrings(customers []models.Customer) []string {
	var offending []string
	for _, c := range customers {
		if c.Number != strings.TrimSpace(c.Number) ||
			c.FirstName != strings.TrimSpace(c.FirstName) ||
			c.LastName != strings.TrimSpace(c.LastName) {
			offending = append(offending, fmt.Sprintf("%d", c.ID))
		}
	}
	return offending
}

// CheckProductCost находит версии товара с отрицательной стоимостью
// (стоимость не бывает nil после приведения)
func CheckProductCost(products []models.Product) []string {
	var offending []string
	for _, p := range products {
		if p.Cost < 0 {
			offending = append(offending, p.Key)
		}
	}
	return offending
}

// CheckValidityIntervals проверяет интервалы действия версий товара:
// начало раньше конца, непрерывность соседних интервалов и ровно одна
// открытая версия на ключ
func CheckValidityIntervals(products []models.Product) []string {
	byKey := make(map[string][]models.Product)
	for _, p := range products {
		byKey[p.Key] = append(byKey[p.Key], p)
	}

	var offending []string
	for key, versions := range byKey {
		open := 0
		for i, v := range versions {
			if v.ValidTo == nil {
				open++
				continue
			}

			if v.ValidFrom != nil && v.ValidFrom.After(*v.ValidTo) {
				offending = append(offending, key)
				continue
			}

			// Конец версии — день перед началом следующей
			if i+1 < len(versions) && versions[i+1].ValidFrom != nil {
				expected := versions[i+1].ValidFrom.AddDate(0, 0, -1)
				if !v.ValidTo.Equal(expected) {
					offending = append(offending, key)
				}
			}
		}

		if open != 1 {
			offending = append(offending, key)
		}
	}
	return offending
}

// CheckSalesDates проверяет порядок дат в строках продаж:
// дата заказа не позже даты отгрузки и даты исполнения (nil пропускается)
func CheckSalesDates(lines []models.SalesLine) []string {
	var offending []string
	for i, s := range lines {
		if s.OrderDate == nil {
			continue
		}

		if s.ShipDate != nil && s.OrderDate.After(*s.ShipDate) {
			offending = append(offending, fmt.Sprintf("%s[%d]", s.OrderNumber, i))
			continue
		}

		if s.DueDate != nil && s.OrderDate.After(*s.DueDate) {
			offending = append(offending, fmt.Sprintf("%s[%d]", s.OrderNumber, i))
		}
	}
	return offending
}

// Принимаемое окно дат продаж; даты за его пределами — мусор источника
var (
	saneDateMin = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	saneDateMax = time.Date(2050, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// CheckSalesDateRange находит строки продаж с датами вне принимаемого
// окна (nil пропускается)
func CheckSalesDateRange(lines []models.SalesLine) []string {
	var offending []string
	for i, s := range lines {
		for _, d := range []*time.Time{s.OrderDate, s.ShipDate, s.DueDate} {
			if d != nil && (d.Before(saneDateMin) || d.After(saneDateMax)) {
				offending = append(offending, fmt.Sprintf("%s[%d]", s.OrderNumber, i))
				break
			}
		}
	}
	return offending
}

// CheckProductTrimmedStrings находит версии товара с необрезанными
// пробелами в текстовых полях
func CheckProductTrimmedStrings(products []models.Product) []string {
	var offending []string
	for _, p := range products {
		if p.Key != strings.TrimSpace(p.Key) ||
			p.Code != strings.TrimSpace(p.Code) ||
			p.Name != strings.TrimSpace(p.Name) {
			offending = append(offending, p.Key)
		}
	}
	return offending
}

// CheckReferenceTrimmedStrings находит записи справочных фидов
// с необрезанными пробелами; ключ нарушителя несет имя фида
func CheckReferenceTrimmedStrings(
	profiles []models.CustomerProfile,
	locations []models.CustomerLocation,
	categories []models.ProductCategory) []string {

	var offending []string
	for _, p := range profiles {
		if p.CustomerNumber != strings.TrimSpace(p.CustomerNumber) {
			offending = append(offending, "profile:"+p.CustomerNumber)
		}
	}
	for _, l := range locations {
		if l.CustomerNumber != strings.TrimSpace(l.CustomerNumber) ||
			l.Country != strings.TrimSpace(l.Country) {
			offending = append(offending, "location:"+l.CustomerNumber)
		}
	}
	for _, c := range categories {
		if c.CategoryID != strings.TrimSpace(c.CategoryID) ||
			c.Category != strings.TrimSpace(c.Category) ||
			c.Subcategory != strings.TrimSpace(c.Subcategory) ||
			c.Maintenance != strings.TrimSpace(c.Maintenance) {
			offending = append(offending, "category:"+c.CategoryID)
		}
	}
	return offending
}

// CheckMeasureConsistency проверяет закон согласования мер:
// sales = quantity * price, все три строго положительны
// Меры хранятся в DECIMAL с точностью до цента, поэтому равенство
// проверяется с допуском на округление цены в каждой единице
func CheckMeasureConsistency(lines []models.SalesLine) []string {
	var offending []string
	for i, s := range lines {
		key := fmt.Sprintf("%s[%d]", s.OrderNumber, i)

		if s.Sales == nil || s.Quantity == nil || s.Price == nil {
			offending = append(offending, key)
			continue
		}

		if *s.Sales <= 0 || *s.Quantity <= 0 || *s.Price <= 0 {
			offending = append(offending, key)
			continue
		}

		tolerance := 0.005*float64(*s.Quantity) + 0.005
		if math.Abs(*s.Sales-float64(*s.Quantity)**s.Price) > tolerance {
			offending = append(offending, key)
		}
	}
	return offending
}

// Допустимые метки категориальных доменов измерений
var (
	allowedMaritalStatuses = map[string]bool{"Single": true, "Married": true, models.Sentinel: true}
	allowedGenders         = map[string]bool{"Female": true, "Male": true, models.Sentinel: true}
	allowedProductLines    = map[string]bool{"Mountain": true, "Road": true, "Other Sales": true, "Touring": true, models.Sentinel: true}
)

// CheckCustomerDomains проверяет принадлежность категориальных полей
// измерения клиентов закрытым доменам
func CheckCustomerDomains(dim []models.CustomerDimension) []string {
	var offending []string
	for _, d := range dim {
		if !allowedMaritalStatuses[d.MaritalStatus] || !allowedGenders[d.Gender] {
			offending = append(offending, fmt.Sprintf("%d", d.CustomerID))
		}
	}
	return offending
}

// CheckProductDomains проверяет принадлежность категориальных полей
// измерения товаров закрытым доменам
func CheckProductDomains(dim []models.ProductDimension) []string {
	var offending []string
	for _, d := range dim {
		if !allowedProductLines[d.Line] {
			offending = append(offending, d.ProductCode)
		}
	}
	return offending
}
