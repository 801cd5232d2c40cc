package extractors

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
)

// Extractor координирует извлечение сырых записей всех сущностей из staging
type Extractor struct {
	db                 *sql.DB
	logger             *utils.ETLLogger
	customerExtractor  *CustomerExtractor
	productExtractor   *ProductExtractor
	salesExtractor     *SalesExtractor
	referenceExtractor *ReferenceExtractor
}

// NewExtractor создает новый экземпляр Extractor
func NewExtractor(db *sql.DB, logger *utils.ETLLogger) *Extractor {
	return &Extractor{
		db:                 db,
		logger:             logger,
		customerExtractor:  NewCustomerExtractor(db, logger),
		productExtractor:   NewProductExtractor(db, logger),
		salesExtractor:     NewSalesExtractor(db, logger),
		referenceExtractor: NewReferenceExtractor(db, logger),
	}
}

// Extract извлекает полный батч сырых записей
// Каждый запуск читает staging целиком: пайплайн пересчитывает все заново
func (e *Extractor) Extract() (*models.ExtractedData, error) {
	startTime := time.Now()
	e.logger.Info("Начало фазы Extract (Извлечение данных)")

	data := &models.ExtractedData{}
	var err error

	if data.Customers, err = e.customerExtractor.ExtractCustomers(); err != nil {
		return nil, fmt.Errorf("ошибка при извлечении клиентов: %w", err)
	}

	if data.Products, err = e.productExtractor.ExtractProducts(); err != nil {
		return nil, fmt.Errorf("ошибка при извлечении товаров: %w", err)
	}

	if data.SalesLines, err = e.salesExtractor.ExtractSalesLines(); err != nil {
		return nil, fmt.Errorf("ошибка при извлечении строк продаж: %w", err)
	}

	if data.Profiles, err = e.referenceExtractor.ExtractProfiles(); err != nil {
		return nil, fmt.Errorf("ошибка при извлечении демографического фида: %w", err)
	}

	if data.Locations, err = e.referenceExtractor.ExtractLocations(); err != nil {
		return nil, fmt.Errorf("ошибка при извлечении фида локаций: %w", err)
	}

	if data.Categories, err = e.referenceExtractor.ExtractCategories(); err != nil {
		return nil, fmt.Errorf("ошибка при извлечении справочника категорий: %w", err)
	}

	duration := time.Since(startTime)
	e.logger.Info("Фаза Extract завершена. Длительность: %v", duration)
	e.logger.Info("Извлечено: %d клиентов, %d товаров, %d строк продаж, %d справочных записей",
		len(data.Customers), len(data.Products), len(data.SalesLines),
		len(data.Profiles)+len(data.Locations)+len(data.Categories))

	return data, nil
}
