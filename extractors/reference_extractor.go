package extractors

import (
	"database/sql"
	"fmt"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
)

// ReferenceExtractor извлекает справочные фиды из staging
type ReferenceExtractor struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewReferenceExtractor создает новый экземпляр ReferenceExtractor
func NewReferenceExtractor(db *sql.DB, logger *utils.ETLLogger) *ReferenceExtractor {
	return &ReferenceExtractor{
		db:     db,
		logger: logger,
	}
}

// ExtractProfiles извлекает записи демографического фида
func (e *ReferenceExtractor) ExtractProfiles() ([]models.RawCustomerProfile, error) {
	e.logger.Debug("Начало извлечения демографического фида")

	rows, err := e.db.Query(`SELECT customer_id, birth_date, gender FROM raw_customer_profiles`)
	if err != nil {
		e.logger.Error("Ошибка при извлечении демографического фида: %v", err)
		return nil, fmt.Errorf("ошибка запроса демографического фида: %w", err)
	}
	defer rows.Close()

	var profiles []models.RawCustomerProfile
	for rows.Next() {
		var (
			id        sql.NullString
			birthDate sql.NullTime
			gender    sql.NullString
		)

		if err := rows.Scan(&id, &birthDate, &gender); err != nil {
			e.logger.Error("Ошибка при обработке записи демографического фида: %v", err)
			return nil, fmt.Errorf("ошибка обработки записи демографического фида: %w", err)
		}

		profile := models.RawCustomerProfile{
			ID:     id.String,
			Gender: gender.String,
		}

		if birthDate.Valid {
			t := birthDate.Time
			profile.BirthDate = &t
		}

		profiles = append(profiles, profile)
	}

	if err = rows.Err(); err != nil {
		e.logger.Error("Ошибка после итерации по демографическому фиду: %v", err)
		return nil, fmt.Errorf("ошибка после итерации по демографическому фиду: %w", err)
	}

	e.logger.Debug("Извлечено %d записей демографического фида", len(profiles))
	return profiles, nil
}

// ExtractLocations извлекает записи фида локаций
func (e *ReferenceExtractor) ExtractLocations() ([]models.RawCustomerLocation, error) {
	e.logger.Debug("Начало извлечения фида локаций")

	rows, err := e.db.Query(`SELECT customer_id, country FROM raw_customer_locations`)
	if err != nil {
		e.logger.Error("Ошибка при извлечении фида локаций: %v", err)
		return nil, fmt.Errorf("ошибка запроса фида локаций: %w", err)
	}
	defer rows.Close()

	var locations []models.RawCustomerLocation
	for rows.Next() {
		var id, country sql.NullString

		if err := rows.Scan(&id, &country); err != nil {
			e.logger.Error("Ошибка при обработке записи фида локаций: %v", err)
			return nil, fmt.Errorf("ошибка обработки записи фида локаций: %w", err)
		}

		locations = append(locations, models.RawCustomerLocation{
			ID:      id.String,
			Country: country.String,
		})
	}

	if err = rows.Err(); err != nil {
		e.logger.Error("Ошибка после итерации по фиду локаций: %v", err)
		return nil, fmt.Errorf("ошибка после итерации по фиду локаций: %w", err)
	}

	e.logger.Debug("Извлечено %d записей фида локаций", len(locations))
	return locations, nil
}

// ExtractCategories извлекает записи справочника категорий
func (e *ReferenceExtractor) ExtractCategories() ([]models.RawProductCategory, error) {
	e.logger.Debug("Начало извлечения справочника категорий")

	rows, err := e.db.Query(`SELECT category_id, category, subcategory, maintenance FROM raw_product_categories`)
	if err != nil {
		e.logger.Error("Ошибка при извлечении справочника категорий: %v", err)
		return nil, fmt.Errorf("ошибка запроса справочника категорий: %w", err)
	}
	defer rows.Close()

	var categories []models.RawProductCategory
	for rows.Next() {
		var id, category, subcategory, maintenance sql.NullString

		if err := rows.Scan(&id, &category, &subcategory, &maintenance); err != nil {
			e.logger.Error("Ошибка при обработке записи справочника категорий: %v", err)
			return nil, fmt.Errorf("ошибка обработки записи справочника категорий: %w", err)
		}

		categories = append(categories, models.RawProductCategory{
			ID:          id.String,
			Category:    category.String,
			Subcategory: subcategory.String,
			Maintenance: maintenance.String,
		})
	}

	if err = rows.Err(); err != nil {
		e.logger.Error("Ошибка после итерации по справочнику категорий: %v", err)
		return nil, fmt.Errorf("ошибка после итерации по справочнику категорий: %w", err)
	}

	e.logger.Debug("Извлечено %d записей справочника категорий", len(categories))
	return categories, nil
}
