package transform

import (
	"sort"
	"strings"
	"time"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
)

// ProductConformer отвечает за приведение сырых записей товаров:
// разбор составного ключа, ремонт стоимости и расчет интервалов действия
type ProductConformer struct {
	logger *utils.ETLLogger
}

// NewProductConformer создает новый экземпляр ProductConformer
func NewProductConformer(logger *utils.ETLLogger) *ProductConformer {
	return &ProductConformer{
		logger: logger,
	}
}

// ConformProducts приводит сырые записи товаров к версионированным записям
// с интервалами действия [valid_from, valid_to)
func (c *ProductConformer) ConformProducts(raw []models.RawProduct, loadedAt time.Time) []models.Product {
	c.logger.Debug("Приведение записей товаров...")

	if len(raw) == 0 {
		c.logger.Debug("Нет записей товаров для приведения")
		return []models.Product{}
	}

	conformed := make([]models.Product, 0, len(raw))
	for _, r := range raw {
		key := strings.TrimSpace(r.Key)
		categoryID, code := SplitProductKey(key)

		// Отсутствующая или отрицательная стоимость заменяется нулем:
		// стоимость никогда не остается null
		cost := 0.0
		if r.Cost != nil && *r.Cost > 0 {
			cost = *r.Cost
		}

		conformed = append(conformed, models.Product{
			ID:         r.ID,
			Key:        key,
			CategoryID: categoryID,
			Code:       code,
			Name:       strings.TrimSpace(r.Name),
			Cost:       cost,
			Line:       models.ParseProductLine(r.Line),
			ValidFrom:  r.StartDate,
			LoadedAt:   loadedAt,
		})
	}

	assignValidityIntervals(conformed)

	c.logger.Info("Приведение товаров завершено. Версий: %d", len(conformed))
	return conformed
}

// SplitProductKey разбирает составной ключ товара позиционным срезом:
// первые 5 символов с заменой дефиса на подчеркивание дают идентификатор
// категории, остаток с 7-й позиции — код товара
// Слишком короткий ключ остается кодом товара целиком
func SplitProductKey(key string) (categoryID, code string) {
	if len(key) < 7 {
		return "", key
	}

	categoryID = strings.ReplaceAll(key[:5], "-", "_")
	code = key[6:]
	return categoryID, code
}

// assignValidityIntervals назначает интервалы действия версиям товара
// Внутри одного ключа версии сортируются по дате начала; конец каждой
// версии — день перед началом следующей, последняя версия открыта
func assignValidityIntervals(products []models.Product) {
	// Индексы версий по ключу товара
	byKey := make(map[string][]int)
	for i, p := range products {
		byKey[p.Key] = append(byKey[p.Key], i)
	}

	for _, indexes := range byKey {
		sort.SliceStable(indexes, func(a, b int) bool {
			pa, pb := products[indexes[a]], products[indexes[b]]
			switch {
			case pa.ValidFrom == nil:
				return pb.ValidFrom != nil
			case pb.ValidFrom == nil:
				return false
			default:
				return pa.ValidFrom.Before(*pb.ValidFrom)
			}
		})

		for pos, idx := range indexes {
			if pos == len(indexes)-1 {
				// Последняя версия остается открытой
				products[idx].ValidTo = nil
				continue
			}

			next := products[indexes[pos+1]]
			if next.ValidFrom == nil {
				products[idx].ValidTo = nil
				continue
			}

			end := next.ValidFrom.AddDate(0, 0, -1)
			products[idx].ValidTo = &end
		}
	}

	// Упорядочиваем версии по (ключ, дата начала) для воспроизводимости
	sort.SliceStable(products, func(i, j int) bool {
		if products[i].Key != products[j].Key {
			return products[i].Key < products[j].Key
		}
		a, b := products[i].ValidFrom, products[j].ValidFrom
		switch {
		case a == nil:
			return b != nil
		case b == nil:
			return false
		default:
			return a.Before(*b)
		}
	})
}
