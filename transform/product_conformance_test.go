package transform

import (
	"testing"
	"time"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestSplitProductKey(t *testing.T) {
	tests := []struct {
		key          string
		wantCategory string
		wantCode     string
	}{
		{"CO-RF-AB-1234", "CO_RF", "AB-1234"},
		{"AC-HE-HL-U509", "AC_HE", "HL-U509"},
		// Слишком короткий ключ целиком остается кодом товара
		{"AB-12", "", "AB-12"},
		{"", "", ""},
	}

	for _, tt := range tests {
		categoryID, code := SplitProductKey(tt.key)
		assert.Equal(t, tt.wantCategory, categoryID, "категория для ключа %q", tt.key)
		assert.Equal(t, tt.wantCode, code, "код для ключа %q", tt.key)
	}
}

func TestConformProductsCostRepair(t *testing.T) {
	conformer := NewProductConformer(utils.NewSilentLogger())

	raw := []models.RawProduct{
		{ID: 1, Key: "CO-RF-AB-0001", Cost: nil},
		{ID: 2, Key: "CO-RF-AB-0002", Cost: floatPtr(-5)},
		{ID: 3, Key: "CO-RF-AB-0003", Cost: floatPtr(12.5)},
	}

	conformed := conformer.ConformProducts(raw, time.Now())

	require.Len(t, conformed, 3)
	costs := make(map[int]float64)
	for _, p := range conformed {
		costs[p.ID] = p.Cost
	}
	assert.Equal(t, 0.0, costs[1], "отсутствующая стоимость заменяется нулем")
	assert.Equal(t, 0.0, costs[2], "отрицательная стоимость заменяется нулем")
	assert.Equal(t, 12.5, costs[3])
}

func TestConformProductsValidityIntervals(t *testing.T) {
	conformer := NewProductConformer(utils.NewSilentLogger())

	// Две версии одного ключа: первая закрывается днем перед началом
	// второй, вторая остается открытой
	raw := []models.RawProduct{
		{ID: 1, Key: "CO-RF-P1-0001", StartDate: datePtr(2021, 1, 1)},
		{ID: 2, Key: "CO-RF-P1-0001", StartDate: datePtr(2022, 1, 1)},
	}

	conformed := conformer.ConformProducts(raw, time.Now())

	require.Len(t, conformed, 2)

	first, second := conformed[0], conformed[1]
	require.NotNil(t, first.ValidFrom)
	assert.True(t, first.ValidFrom.Equal(*datePtr(2021, 1, 1)))
	require.NotNil(t, first.ValidTo)
	assert.True(t, first.ValidTo.Equal(*datePtr(2021, 12, 31)), "конец первой версии — день перед началом второй")

	assert.Nil(t, second.ValidTo, "последняя версия остается открытой")
}

func TestConformProductsIntervalContiguity(t *testing.T) {
	conformer := NewProductConformer(utils.NewSilentLogger())

	// Три версии в перемешанном порядке прихода
	raw := []models.RawProduct{
		{ID: 3, Key: "CO-RF-P2-0001", StartDate: datePtr(2023, 5, 10)},
		{ID: 1, Key: "CO-RF-P2-0001", StartDate: datePtr(2021, 3, 1)},
		{ID: 2, Key: "CO-RF-P2-0001", StartDate: datePtr(2022, 7, 15)},
	}

	conformed := conformer.ConformProducts(raw, time.Now())

	require.Len(t, conformed, 3)

	// Выход упорядочен по дате начала
	assert.Equal(t, 1, conformed[0].ID)
	assert.Equal(t, 2, conformed[1].ID)
	assert.Equal(t, 3, conformed[2].ID)

	// Непрерывность: конец каждой версии — день перед началом следующей
	require.NotNil(t, conformed[0].ValidTo)
	assert.True(t, conformed[0].ValidTo.Equal(conformed[1].ValidFrom.AddDate(0, 0, -1)))
	require.NotNil(t, conformed[1].ValidTo)
	assert.True(t, conformed[1].ValidTo.Equal(conformed[2].ValidFrom.AddDate(0, 0, -1)))

	// Ровно одна открытая версия
	open := 0
	for _, p := range conformed {
		if p.ValidTo == nil {
			open++
		}
	}
	assert.Equal(t, 1, open)
}

func TestConformProductsIndependentKeys(t *testing.T) {
	conformer := NewProductConformer(utils.NewSilentLogger())

	// Версии разных ключей не влияют друг на друга
	raw := []models.RawProduct{
		{ID: 1, Key: "CO-RF-P3-0001", StartDate: datePtr(2021, 1, 1)},
		{ID: 2, Key: "CO-RF-P4-0001", StartDate: datePtr(2022, 1, 1)},
	}

	conformed := conformer.ConformProducts(raw, time.Now())

	require.Len(t, conformed, 2)
	assert.Nil(t, conformed[0].ValidTo)
	assert.Nil(t, conformed[1].ValidTo)
}

func TestConformProductsLineNormalization(t *testing.T) {
	conformer := NewProductConformer(utils.NewSilentLogger())

	raw := []models.RawProduct{
		{ID: 1, Key: "CO-RF-P5-0001", Line: " m "},
		{ID: 2, Key: "CO-RF-P5-0002", Line: "T"},
		{ID: 3, Key: "CO-RF-P5-0003", Line: "Z"},
	}

	conformed := conformer.ConformProducts(raw, time.Now())

	require.Len(t, conformed, 3)
	lines := make(map[int]string)
	for _, p := range conformed {
		lines[p.ID] = p.Line.String()
	}
	assert.Equal(t, "Mountain", lines[1])
	assert.Equal(t, "Touring", lines[2])
	assert.Equal(t, models.Sentinel, lines[3])
}
