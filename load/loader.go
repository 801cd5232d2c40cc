package load

import (
	"github.com/LilVoxy/coursework_dwh/models"
)

// Loader интерфейс для загрузки приведенных и смоделированных данных
// в warehouse. Каждый метод заменяет свою таблицу целиком и атомарно
type Loader interface {
	// LoadCustomers заменяет приведенных клиентов
	LoadCustomers(customers []models.Customer) error

	// LoadProducts заменяет приведенные версии товаров
	LoadProducts(products []models.Product) error

	// LoadSalesLines заменяет приведенные строки продаж
	LoadSalesLines(lines []models.SalesLine) error

	// LoadProfiles заменяет демографический справочник
	LoadProfiles(profiles []models.CustomerProfile) error

	// LoadLocations заменяет справочник локаций
	LoadLocations(locations []models.CustomerLocation) error

	// LoadCategories заменяет справочник категорий
	LoadCategories(categories []models.ProductCategory) error

	// LoadCustomerDimension заменяет измерение клиентов
	LoadCustomerDimension(dim []models.CustomerDimension) error

	// LoadProductDimension заменяет измерение товаров
	LoadProductDimension(dim []models.ProductDimension) error

	// LoadSalesFacts заменяет факты продаж
	LoadSalesFacts(facts []models.SalesFact) error
}
