package models

import (
	"time"
)

// Customer представляет приведенную запись клиента
// Инвариант: ровно одна запись на бизнес-ключ — экземпляр с максимальной
// меткой создания в источнике
type Customer struct {
	ID            int
	Number        string
	FirstName     string
	LastName      string
	MaritalStatus MaritalStatus
	Gender        Gender
	CreatedAt     *time.Time
	LoadedAt      time.Time // метка обработки (lineage)
}

// Product представляет приведенную версию товара с интервалом действия
// Инвариант: для одного ключа интервалы непрерывны, последняя версия
// открыта (ValidTo == nil)
type Product struct {
	ID         int
	Key        string // исходный составной ключ
	CategoryID string // первые 5 символов ключа, '-' заменен на '_'
	Code       string // остаток ключа с 7-й позиции
	Name       string
	Cost       float64
	Line       ProductLine
	ValidFrom  *time.Time
	ValidTo    *time.Time // nil — текущая версия
	LoadedAt   time.Time
}

// SalesLine представляет приведенную строку продажи
// После согласования мер выполняется Sales = Quantity * Price,
// невосстановимые значения остаются nil
type SalesLine struct {
	OrderNumber string
	ProductCode string
	CustomerID  int
	OrderDate   *time.Time
	ShipDate    *time.Time
	DueDate     *time.Time
	Sales       *float64
	Quantity    *int
	Price       *float64
	LoadedAt    time.Time
}

// CustomerProfile представляет приведенную запись демографического фида
type CustomerProfile struct {
	CustomerNumber string // без префикса "NAS"
	BirthDate      *time.Time
	Gender         Gender
	LoadedAt       time.Time
}

// CustomerLocation представляет приведенную запись фида локаций
type CustomerLocation struct {
	CustomerNumber string // без дефисов, сопоставим с Customer.Number
	Country        string
	LoadedAt       time.Time
}

// ProductCategory представляет приведенную запись справочника категорий
type ProductCategory struct {
	CategoryID  string
	Category    string
	Subcategory string
	Maintenance string
	LoadedAt    time.Time
}
