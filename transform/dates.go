package transform

import (
	"time"
)

// Границы вменяемого календарного диапазона для дат источника
var (
	minSaneDate = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	maxSaneDate = time.Date(2050, 1, 1, 0, 0, 0, 0, time.UTC)
)

// ParseCompactDate разбирает дату, переданную 8-значным целым YYYYMMDD
// Принимаются только ненулевые значения ровно из 8 цифр, дающие
// корректную календарную дату в диапазоне 1900-01-01..2050-01-01;
// все остальное дает nil
func ParseCompactDate(raw *int) *time.Time {
	if raw == nil {
		return nil
	}

	v := *raw
	// Ноль и значения не из 8 цифр отбрасываются сразу
	if v == 0 || v < 10000000 || v > 99999999 {
		return nil
	}

	year := v / 10000
	month := v / 100 % 100
	day := v % 100

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date нормализует переполнение (например, 31 февраля),
	// поэтому несовпадение компонентов означает несуществующую дату
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return nil
	}

	if t.Before(minSaneDate) || t.After(maxSaneDate) {
		return nil
	}

	return &t
}

// SanitizeBirthDate отбрасывает даты рождения в будущем
func SanitizeBirthDate(birthDate *time.Time, now time.Time) *time.Time {
	if birthDate == nil {
		return nil
	}

	if birthDate.After(now) {
		return nil
	}

	return birthDate
}
