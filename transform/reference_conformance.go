package transform

import (
	"strings"
	"time"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
)

// Шумовой префикс идентификаторов демографического фида
const profileIDNoisePrefix = "NAS"

// ReferenceConformer отвечает за приведение справочных фидов:
// демографии, локаций и категорий товаров
// Справочники не дедуплицируются — только чистятся
type ReferenceConformer struct {
	logger *utils.ETLLogger
}

// NewReferenceConformer создает новый экземпляр ReferenceConformer
func NewReferenceConformer(logger *utils.ETLLogger) *ReferenceConformer {
	return &ReferenceConformer{
		logger: logger,
	}
}

// ConformProfiles приводит записи демографического фида:
// срезает префикс "NAS" и отбрасывает даты рождения в будущем
func (c *ReferenceConformer) ConformProfiles(raw []models.RawCustomerProfile, loadedAt time.Time) []models.CustomerProfile {
	c.logger.Debug("Приведение демографического фида...")

	conformed := make([]models.CustomerProfile, 0, len(raw))
	for _, r := range raw {
		id := strings.TrimSpace(r.ID)
		id = strings.TrimPrefix(id, profileIDNoisePrefix)

		conformed = append(conformed, models.CustomerProfile{
			CustomerNumber: id,
			BirthDate:      SanitizeBirthDate(r.BirthDate, loadedAt),
			Gender:         models.ParseGender(r.Gender),
			LoadedAt:       loadedAt,
		})
	}

	c.logger.Info("Приведение демографического фида завершено. Записей: %d", len(conformed))
	return conformed
}

// ConformLocations приводит записи фида локаций:
// убирает дефисы из идентификатора, чтобы он сопоставлялся с клиентским
// номером, и нормализует страну
func (c *ReferenceConformer) ConformLocations(raw []models.RawCustomerLocation, loadedAt time.Time) []models.CustomerLocation {
	c.logger.Debug("Приведение фида локаций...")

	conformed := make([]models.CustomerLocation, 0, len(raw))
	for _, r := range raw {
		conformed = append(conformed, models.CustomerLocation{
			CustomerNumber: strings.ReplaceAll(strings.TrimSpace(r.ID), "-", ""),
			Country:        models.NormalizeCountry(r.Country),
			LoadedAt:       loadedAt,
		})
	}

	c.logger.Info("Приведение фида локаций завершено. Записей: %d", len(conformed))
	return conformed
}

// ConformCategories приводит записи справочника категорий обрезкой пробелов
func (c *ReferenceConformer) ConformCategories(raw []models.RawProductCategory, loadedAt time.Time) []models.ProductCategory {
	c.logger.Debug("Приведение справочника категорий...")

	conformed := make([]models.ProductCategory, 0, len(raw))
	for _, r := range raw {
		conformed = append(conformed, models.ProductCategory{
			CategoryID:  strings.TrimSpace(r.ID),
			Category:    strings.TrimSpace(r.Category),
			Subcategory: strings.TrimSpace(r.Subcategory),
			Maintenance: strings.TrimSpace(r.Maintenance),
			LoadedAt:    loadedAt,
		})
	}

	c.logger.Info("Приведение справочника категорий завершено. Записей: %d", len(conformed))
	return conformed
}
