package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMaritalStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want MaritalStatus
	}{
		{"S", MaritalSingle},
		{"s", MaritalSingle},
		{"Single", MaritalSingle},
		{"M", MaritalMarried},
		{" Married ", MaritalMarried},
		{"", MaritalUnknown},
		{"X", MaritalUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseMaritalStatus(tt.raw), "вход: %q", tt.raw)
	}
}

func TestParseGender(t *testing.T) {
	tests := []struct {
		raw  string
		want Gender
	}{
		{"F", GenderFemale},
		{"FEMALE", GenderFemale},
		{"m", GenderMale},
		{"Male", GenderMale},
		{"", GenderUnknown},
		{"unknown", GenderUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseGender(tt.raw), "вход: %q", tt.raw)
	}
}

func TestParseProductLine(t *testing.T) {
	tests := []struct {
		raw  string
		want ProductLine
	}{
		{"M", LineMountain},
		{"R", LineRoad},
		{"S", LineOtherSales},
		{"T", LineTouring},
		{"Touring", LineTouring},
		{"other sales", LineOtherSales},
		{"", LineUnknown},
		{"Z", LineUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseProductLine(tt.raw), "вход: %q", tt.raw)
	}
}

func TestDomainLabels(t *testing.T) {
	// Нераспознанное значение рендерится сентинелом на границе представления
	assert.Equal(t, Sentinel, MaritalUnknown.String())
	assert.Equal(t, Sentinel, GenderUnknown.String())
	assert.Equal(t, Sentinel, LineUnknown.String())

	assert.Equal(t, "Single", MaritalSingle.String())
	assert.Equal(t, "Female", GenderFemale.String())
	assert.Equal(t, "Other Sales", LineOtherSales.String())
}

func TestDomainRoundTrip(t *testing.T) {
	// Каноническая метка разбирается обратно в то же значение домена
	for _, m := range []MaritalStatus{MaritalSingle, MaritalMarried} {
		assert.Equal(t, m, ParseMaritalStatus(m.String()))
	}
	for _, g := range []Gender{GenderFemale, GenderMale} {
		assert.Equal(t, g, ParseGender(g.String()))
	}
	for _, p := range []ProductLine{LineMountain, LineRoad, LineOtherSales, LineTouring} {
		assert.Equal(t, p, ParseProductLine(p.String()))
	}
}

func TestNormalizeCountry(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"DE", "Germany"},
		{"US", "United States"},
		{"USA", "United States"},
		{"", Sentinel},
		{"  ", Sentinel},
		{" Australia ", "Australia"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCountry(tt.raw), "вход: %q", tt.raw)
	}
}
