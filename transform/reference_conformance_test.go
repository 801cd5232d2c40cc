package transform

import (
	"testing"
	"time"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConformProfiles(t *testing.T) {
	conformer := NewReferenceConformer(utils.NewSilentLogger())
	loadedAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	raw := []models.RawCustomerProfile{
		{ID: "NASAW00011000", BirthDate: datePtr(1971, 10, 6), Gender: "F"},
		{ID: "AW00011001", BirthDate: datePtr(2076, 1, 1), Gender: "m"},
	}

	conformed := conformer.ConformProfiles(raw, loadedAt)

	require.Len(t, conformed, 2)
	// Шумовой префикс срезается, легитимный идентификатор не трогается
	assert.Equal(t, "AW00011000", conformed[0].CustomerNumber)
	assert.Equal(t, "AW00011001", conformed[1].CustomerNumber)
	assert.Equal(t, models.GenderFemale, conformed[0].Gender)
	// Дата рождения в будущем отбрасывается
	assert.NotNil(t, conformed[0].BirthDate)
	assert.Nil(t, conformed[1].BirthDate)
}

func TestConformLocations(t *testing.T) {
	conformer := NewReferenceConformer(utils.NewSilentLogger())
	loadedAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	raw := []models.RawCustomerLocation{
		{ID: "AW-000-110-00", Country: "US"},
		{ID: "AW00011001", Country: ""},
	}

	conformed := conformer.ConformLocations(raw, loadedAt)

	require.Len(t, conformed, 2)
	assert.Equal(t, "AW00011000", conformed[0].CustomerNumber)
	assert.Equal(t, "United States", conformed[0].Country)
	assert.Equal(t, models.Sentinel, conformed[1].Country)
}

func TestConformCategories(t *testing.T) {
	conformer := NewReferenceConformer(utils.NewSilentLogger())
	loadedAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	raw := []models.RawProductCategory{
		{ID: " BK_MT ", Category: "Bikes ", Subcategory: " Mountain Bikes", Maintenance: "Yes"},
	}

	conformed := conformer.ConformCategories(raw, loadedAt)

	require.Len(t, conformed, 1)
	assert.Equal(t, "BK_MT", conformed[0].CategoryID)
	assert.Equal(t, "Bikes", conformed[0].Category)
	assert.Equal(t, "Mountain Bikes", conformed[0].Subcategory)
	assert.Equal(t, loadedAt, conformed[0].LoadedAt)
}
