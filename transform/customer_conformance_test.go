package transform

import (
	"testing"
	"time"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConformCustomersDeduplication(t *testing.T) {
	conformer := NewCustomerConformer(utils.NewSilentLogger())
	loadedAt := time.Now()

	// Два сырых экземпляра одного бизнес-ключа: побеждает более поздний
	// по метке создания
	raw := []models.RawCustomer{
		{
			ID:            intPtr(7),
			MaritalStatus: "S",
			Gender:        "m",
			CreatedAt:     datePtr(2021, 1, 1),
			ArrivalSeq:    0,
		},
		{
			ID:            intPtr(7),
			MaritalStatus: "M",
			Gender:        "F",
			CreatedAt:     datePtr(2022, 6, 1),
			ArrivalSeq:    1,
		},
	}

	conformed := conformer.ConformCustomers(raw, loadedAt)

	require.Len(t, conformed, 1)
	assert.Equal(t, 7, conformed[0].ID)
	assert.Equal(t, "Married", conformed[0].MaritalStatus.String())
	assert.Equal(t, "Female", conformed[0].Gender.String())
	assert.Equal(t, loadedAt, conformed[0].LoadedAt)
}

func TestConformCustomersTieBreakByArrivalOrder(t *testing.T) {
	conformer := NewCustomerConformer(utils.NewSilentLogger())
	created := datePtr(2022, 6, 1)

	// Равные метки создания: побеждает пришедший позже
	raw := []models.RawCustomer{
		{ID: intPtr(1), FirstName: "первый", CreatedAt: created, ArrivalSeq: 0},
		{ID: intPtr(1), FirstName: "второй", CreatedAt: created, ArrivalSeq: 1},
	}

	conformed := conformer.ConformCustomers(raw, time.Now())

	require.Len(t, conformed, 1)
	assert.Equal(t, "второй", conformed[0].FirstName)
}

func TestConformCustomersDropsNullBusinessKey(t *testing.T) {
	conformer := NewCustomerConformer(utils.NewSilentLogger())

	raw := []models.RawCustomer{
		{ID: nil, FirstName: "без ключа"},
		{ID: intPtr(2), FirstName: "с ключом", CreatedAt: datePtr(2021, 1, 1)},
	}

	conformed := conformer.ConformCustomers(raw, time.Now())

	require.Len(t, conformed, 1)
	assert.Equal(t, 2, conformed[0].ID)
}

func TestConformCustomersNormalization(t *testing.T) {
	conformer := NewCustomerConformer(utils.NewSilentLogger())

	raw := []models.RawCustomer{
		{
			ID:            intPtr(3),
			Number:        "  AW00011000  ",
			FirstName:     "  Jon ",
			LastName:      " Yang  ",
			MaritalStatus: "X",
			Gender:        "",
			CreatedAt:     datePtr(2021, 1, 1),
		},
	}

	conformed := conformer.ConformCustomers(raw, time.Now())

	require.Len(t, conformed, 1)
	c := conformed[0]
	assert.Equal(t, "AW00011000", c.Number)
	assert.Equal(t, "Jon", c.FirstName)
	assert.Equal(t, "Yang", c.LastName)
	assert.Equal(t, models.Sentinel, c.MaritalStatus.String())
	assert.Equal(t, models.Sentinel, c.Gender.String())
}

func TestConformCustomersRecordWithoutTimestampLoses(t *testing.T) {
	conformer := NewCustomerConformer(utils.NewSilentLogger())

	// Запись без метки создания считается старше любой с меткой
	raw := []models.RawCustomer{
		{ID: intPtr(5), FirstName: "без метки", ArrivalSeq: 1},
		{ID: intPtr(5), FirstName: "с меткой", CreatedAt: datePtr(2020, 1, 1), ArrivalSeq: 0},
	}

	conformed := conformer.ConformCustomers(raw, time.Now())

	require.Len(t, conformed, 1)
	assert.Equal(t, "с меткой", conformed[0].FirstName)
}

func TestConformCustomersOutputOrderedByKey(t *testing.T) {
	conformer := NewCustomerConformer(utils.NewSilentLogger())

	raw := []models.RawCustomer{
		{ID: intPtr(30), CreatedAt: datePtr(2021, 1, 1)},
		{ID: intPtr(10), CreatedAt: datePtr(2021, 1, 1)},
		{ID: intPtr(20), CreatedAt: datePtr(2021, 1, 1)},
	}

	conformed := conformer.ConformCustomers(raw, time.Now())

	require.Len(t, conformed, 3)
	assert.Equal(t, []int{10, 20, 30}, []int{conformed[0].ID, conformed[1].ID, conformed[2].ID})
}
