package models

// ExtractedData содержит сырые записи всех сущностей, извлеченные из staging
type ExtractedData struct {
	Customers  []RawCustomer
	Products   []RawProduct
	SalesLines []RawSalesLine
	Profiles   []RawCustomerProfile
	Locations  []RawCustomerLocation
	Categories []RawProductCategory
}

// ConformedData содержит приведенные записи всех сущностей
type ConformedData struct {
	Customers  []Customer
	Products   []Product
	SalesLines []SalesLine
	Profiles   []CustomerProfile
	Locations  []CustomerLocation
	Categories []ProductCategory
}

// ModeledData содержит построенную звездную схему
type ModeledData struct {
	CustomerDim []CustomerDimension
	ProductDim  []ProductDimension
	SalesFacts  []SalesFact
}

// TransformedData объединяет результат фазы Transform
type TransformedData struct {
	Conformed ConformedData
	Modeled   ModeledData
}
