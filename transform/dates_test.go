package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestParseCompactDate(t *testing.T) {
	tests := []struct {
		name string
		raw  *int
		want *time.Time
	}{
		{
			name: "корректная дата",
			raw:  intPtr(20211225),
			want: datePtr(2021, 12, 25),
		},
		{
			name: "nil на входе",
			raw:  nil,
			want: nil,
		},
		{
			name: "ноль отбрасывается",
			raw:  intPtr(0),
			want: nil,
		},
		{
			name: "семь цифр отбрасываются",
			raw:  intPtr(2021122),
			want: nil,
		},
		{
			name: "девять цифр отбрасываются",
			raw:  intPtr(202112250),
			want: nil,
		},
		{
			name: "несуществующий месяц",
			raw:  intPtr(20211325),
			want: nil,
		},
		{
			name: "несуществующий день",
			raw:  intPtr(20210231),
			want: nil,
		},
		{
			name: "раньше нижней границы",
			raw:  intPtr(18991231),
			want: nil,
		},
		{
			name: "нижняя граница включительно",
			raw:  intPtr(19000101),
			want: datePtr(1900, 1, 1),
		},
		{
			name: "верхняя граница включительно",
			raw:  intPtr(20500101),
			want: datePtr(2050, 1, 1),
		},
		{
			name: "позже верхней границы",
			raw:  intPtr(20500102),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCompactDate(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.True(t, got.Equal(*tt.want), "получено %v, ожидалось %v", got, tt.want)
		})
	}
}

func TestSanitizeBirthDate(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	past := time.Date(1985, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, &past, SanitizeBirthDate(&past, now))

	future := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, SanitizeBirthDate(&future, now))

	assert.Nil(t, SanitizeBirthDate(nil, now))
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
