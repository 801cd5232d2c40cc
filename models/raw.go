package models

import (
	"time"
)

// RawCustomer представляет сырую запись клиента из staging
// Поля приходят как есть: возможны null, дубликаты бизнес-ключей и
// неприведенные строки
type RawCustomer struct {
	ID            *int       // бизнес-ключ; может отсутствовать
	Number        string     // клиентский номер, например "AW00011000"
	FirstName     string
	LastName      string
	MaritalStatus string     // код: 'S', 'M' или мусор
	Gender        string     // код: 'F'/'M'/'FEMALE'/'MALE' или мусор
	CreatedAt     *time.Time // метка создания записи в источнике
	ArrivalSeq    int        // номер вставки в staging (load_seq источника)
}

// RawProduct представляет сырую запись товара из staging
type RawProduct struct {
	ID        int
	Key       string // составной ключ: категория + код, например "CO-RF-AB-1234"
	Name      string
	Cost      *float64
	Line      string // код линейки: 'M', 'R', 'S', 'T'
	StartDate *time.Time
	EndDate   *time.Time
}

// RawSalesLine представляет сырую строку продажи из staging
// Даты передаются как 8-значные целые числа вида YYYYMMDD
type RawSalesLine struct {
	OrderNumber string
	ProductCode string
	CustomerID  *int
	OrderDate   *int
	ShipDate    *int
	DueDate     *int
	Sales       *float64
	Quantity    *int
	Price       *float64
}

// RawCustomerProfile представляет сырую запись демографического фида
// Идентификатор может нести шумовой префикс "NAS"
type RawCustomerProfile struct {
	ID        string
	BirthDate *time.Time
	Gender    string
}

// RawCustomerLocation представляет сырую запись фида локаций
// Идентификатор может содержать дефисы, отсутствующие в клиентском номере
type RawCustomerLocation struct {
	ID      string
	Country string
}

// RawProductCategory представляет сырую запись справочника категорий
type RawProductCategory struct {
	ID          string
	Category    string
	Subcategory string
	Maintenance string
}
