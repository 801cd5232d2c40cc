package models

import (
	"strings"
)

// Sentinel — значение, подставляемое на границе представления для
// отсутствующих или нераспознанных категориальных значений
const Sentinel = "N/A"

// MaritalStatus — закрытый домен семейного положения
type MaritalStatus int

const (
	MaritalUnknown MaritalStatus = iota
	MaritalSingle
	MaritalMarried
)

// ParseMaritalStatus приводит код источника к закрытому домену
// Нераспознанные значения (включая пустые) дают MaritalUnknown
func ParseMaritalStatus(raw string) MaritalStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "S", "SINGLE":
		return MaritalSingle
	case "M", "MARRIED":
		return MaritalMarried
	default:
		return MaritalUnknown
	}
}

// String возвращает каноническую метку домена
func (m MaritalStatus) String() string {
	switch m {
	case MaritalSingle:
		return "Single"
	case MaritalMarried:
		return "Married"
	default:
		return Sentinel
	}
}

// Gender — закрытый домен пола
type Gender int

const (
	GenderUnknown Gender = iota
	GenderFemale
	GenderMale
)

// ParseGender приводит код источника к закрытому домену
// Принимаются как однобуквенные коды, так и развернутые значения
func ParseGender(raw string) Gender {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "F", "FEMALE":
		return GenderFemale
	case "M", "MALE":
		return GenderMale
	default:
		return GenderUnknown
	}
}

// String возвращает каноническую метку домена
func (g Gender) String() string {
	switch g {
	case GenderFemale:
		return "Female"
	case GenderMale:
		return "Male"
	default:
		return Sentinel
	}
}

// ProductLine — закрытый домен линейки товаров
type ProductLine int

const (
	LineUnknown ProductLine = iota
	LineMountain
	LineRoad
	LineOtherSales
	LineTouring
)

// ParseProductLine приводит код источника к закрытому домену
func ParseProductLine(raw string) ProductLine {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "M", "MOUNTAIN":
		return LineMountain
	case "R", "ROAD":
		return LineRoad
	case "S", "OTHER SALES":
		return LineOtherSales
	case "T", "TOURING":
		return LineTouring
	default:
		return LineUnknown
	}
}

// String возвращает каноническую метку домена
func (p ProductLine) String() string {
	switch p {
	case LineMountain:
		return "Mountain"
	case LineRoad:
		return "Road"
	case LineOtherSales:
		return "Other Sales"
	case LineTouring:
		return "Touring"
	default:
		return Sentinel
	}
}

// NormalizeCountry приводит код страны к каноническому названию
// Страны — открытый домен: известные коды раскрываются, пустые значения
// дают сентинел, остальные пропускаются после обрезки пробелов
func NormalizeCountry(raw string) string {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToUpper(trimmed) {
	case "DE":
		return "Germany"
	case "US", "USA":
		return "United States"
	case "":
		return Sentinel
	default:
		return trimmed
	}
}
