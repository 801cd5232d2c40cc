package transform

import (
	"sort"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
)

// CustomerDimensionBuilder отвечает за построение измерения клиентов
// из приведенного клиента и справочных фидов
type CustomerDimensionBuilder struct {
	logger *utils.ETLLogger
}

// NewCustomerDimensionBuilder создает новый экземпляр CustomerDimensionBuilder
func NewCustomerDimensionBuilder(logger *utils.ETLLogger) *CustomerDimensionBuilder {
	return &CustomerDimensionBuilder{
		logger: logger,
	}
}

// BuildCustomerDimension строит измерение клиентов left join-ом
// приведенных клиентов с демографическим фидом и фидом локаций
// по клиентскому номеру
func (b *CustomerDimensionBuilder) BuildCustomerDimension(
	customers []models.Customer,
	profiles []models.CustomerProfile,
	locations []models.CustomerLocation) []models.CustomerDimension {

	b.logger.Debug("Построение измерения клиентов...")

	profileByNumber := make(map[string]models.CustomerProfile, len(profiles))
	for _, p := range profiles {
		profileByNumber[p.CustomerNumber] = p
	}

	locationByNumber := make(map[string]models.CustomerLocation, len(locations))
	for _, l := range locations {
		locationByNumber[l.CustomerNumber] = l
	}

	surrogates := AssignCustomerSurrogates(customers)

	dimension := make([]models.CustomerDimension, 0, len(customers))
	for _, c := range customers {
		profile, hasProfile := profileByNumber[c.Number]

		// Пол: значение основного источника побеждает, если оно задано;
		// иначе берем демографический фид, иначе сентинел
		gender := c.Gender
		if gender == models.GenderUnknown && hasProfile {
			gender = profile.Gender
		}

		row := models.CustomerDimension{
			SurrogateKey:   surrogates[c.ID],
			CustomerID:     c.ID,
			CustomerNumber: c.Number,
			FirstName:      c.FirstName,
			LastName:       c.LastName,
			Country:        models.Sentinel,
			MaritalStatus:  c.MaritalStatus.String(),
			Gender:         gender.String(),
			CreatedAt:      c.CreatedAt,
		}

		if hasProfile {
			row.BirthDate = profile.BirthDate
		}

		if location, ok := locationByNumber[c.Number]; ok {
			row.Country = location.Country
		}

		dimension = append(dimension, row)
	}

	// Упорядочиваем по суррогатному ключу для воспроизводимости выхода
	sort.Slice(dimension, func(i, j int) bool {
		return dimension[i].SurrogateKey < dimension[j].SurrogateKey
	})

	b.logger.Info("Измерение клиентов построено. Строк: %d", len(dimension))
	return dimension
}
