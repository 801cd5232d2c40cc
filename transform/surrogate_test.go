package transform

import (
	"testing"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignCustomerSurrogates(t *testing.T) {
	customers := []models.Customer{
		{ID: 300},
		{ID: 100},
		{ID: 200},
	}

	surrogates := AssignCustomerSurrogates(customers)

	// Ключи строго возрастают с единицы по возрастанию бизнес-ключа
	assert.Equal(t, 1, surrogates[100])
	assert.Equal(t, 2, surrogates[200])
	assert.Equal(t, 3, surrogates[300])
}

func TestAssignProductSurrogates(t *testing.T) {
	products := []models.Product{
		{Key: "B", ValidFrom: datePtr(2022, 1, 1)},
		{Key: "A", ValidFrom: datePtr(2022, 1, 1)},
		{Key: "C", ValidFrom: datePtr(2021, 1, 1)},
	}

	surrogates := AssignProductSurrogates(products)

	// Порядок: (дата начала, ключ)
	assert.Equal(t, 1, surrogates[2], "самая ранняя дата начала")
	assert.Equal(t, 2, surrogates[1], "при равных датах побеждает меньший ключ")
	assert.Equal(t, 3, surrogates[0])
}

func TestAssignProductSurrogatesNilDatesFirst(t *testing.T) {
	products := []models.Product{
		{Key: "A", ValidFrom: datePtr(2021, 1, 1)},
		{Key: "B", ValidFrom: nil},
	}

	surrogates := AssignProductSurrogates(products)

	assert.Equal(t, 1, surrogates[1], "версия без даты начала идет первой")
	assert.Equal(t, 2, surrogates[0])
}

func TestSurrogatesDeterministic(t *testing.T) {
	customers := []models.Customer{{ID: 5}, {ID: 9}, {ID: 1}}

	first := AssignCustomerSurrogates(customers)
	second := AssignCustomerSurrogates(customers)

	require.Equal(t, first, second, "повторное назначение на том же входе воспроизводит тот же результат")
}
