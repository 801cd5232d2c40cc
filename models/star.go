package models

import (
	"time"
)

// CustomerDimension представляет строку измерения клиентов
// Категориальные поля отрисованы в канонические метки, отсутствующие —
// в сентинел "N/A"
type CustomerDimension struct {
	SurrogateKey   int
	CustomerID     int
	CustomerNumber string
	FirstName      string
	LastName       string
	Country        string
	MaritalStatus  string
	Gender         string
	BirthDate      *time.Time
	CreatedAt      *time.Time
}

// ProductDimension представляет строку измерения товаров
// В измерение входят только текущие версии товара
type ProductDimension struct {
	SurrogateKey int
	ProductID    int
	ProductCode  string
	ProductName  string
	CategoryID   string
	Category     string
	Subcategory  string
	Maintenance  string
	Cost         float64
	Line         string
	StartDate    *time.Time
}

// SalesFact представляет строку фактов продаж
// Суррогатные ссылки nil, если строка не сопоставилась с измерением —
// такие строки сохраняются и отлавливаются проверками качества
type SalesFact struct {
	OrderNumber string
	ProductKey  *int
	CustomerKey *int
	OrderDate   *time.Time
	ShipDate    *time.Time
	DueDate     *time.Time
	Sales       *float64
	Quantity    *int
	Price       *float64
}
