package transform

import (
	"sort"

	"github.com/LilVoxy/coursework_dwh/models"
)

// Суррогатные ключи назначаются строго возрастающими целыми с единицы
// по фиксированному детерминированному порядку. Они воспроизводимы
// только при неизменном составе и порядке входа — сохранять их как
// внешние постоянные идентификаторы нельзя.

// AssignCustomerSurrogates упорядочивает клиентов по бизнес-ключу
// и возвращает отображение бизнес-ключ → суррогатный ключ
func AssignCustomerSurrogates(customers []models.Customer) map[int]int {
	ordered := make([]int, 0, len(customers))
	for _, c := range customers {
		ordered = append(ordered, c.ID)
	}
	sort.Ints(ordered)

	surrogates := make(map[int]int, len(ordered))
	for i, id := range ordered {
		surrogates[id] = i + 1
	}
	return surrogates
}

// AssignProductSurrogates упорядочивает версии товаров по
// (дата начала, ключ) и возвращает отображение индекс версии → суррогатный ключ
func AssignProductSurrogates(products []models.Product) map[int]int {
	indexes := make([]int, len(products))
	for i := range products {
		indexes[i] = i
	}

	sort.SliceStable(indexes, func(a, b int) bool {
		pa, pb := products[indexes[a]], products[indexes[b]]
		af, bf := pa.ValidFrom, pb.ValidFrom
		switch {
		case af == nil && bf == nil:
			return pa.Key < pb.Key
		case af == nil:
			return true
		case bf == nil:
			return false
		case af.Equal(*bf):
			return pa.Key < pb.Key
		default:
			return af.Before(*bf)
		}
	})

	surrogates := make(map[int]int, len(indexes))
	for pos, idx := range indexes {
		surrogates[idx] = pos + 1
	}
	return surrogates
}
