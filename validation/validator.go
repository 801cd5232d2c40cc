package validation

import (
	"time"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
)

// Слои проверки
const (
	LayerConformed = "conformed"
	LayerModeled   = "modeled"
)

// CheckResult — результат одной проверки качества данных
type CheckResult struct {
	Name          string   `json:"name"`
	Layer         string   `json:"layer"`
	Blocking      bool     `json:"blocking"`
	OffendingKeys []string `json:"offending_keys,omitempty"`
}

// Passed сообщает, пройдена ли проверка
func (r CheckResult) Passed() bool {
	return len(r.OffendingKeys) == 0
}

// Validator выполняет батарею проверок качества над приведенными
// и смоделированными данными
// Политика: нарушения уникальности и ссылочной целостности в modeled
// слое блокируют публикацию; нарушения conformed слоя — предупреждения
type Validator struct {
	logger *utils.ETLLogger
}

// NewValidator создает новый экземпляр Validator
func NewValidator(logger *utils.ETLLogger) *Validator {
	return &Validator{
		logger: logger,
	}
}

// Run прогоняет все проверки и возвращает их результаты
func (v *Validator) Run(conformed *models.ConformedData, modeled *models.ModeledData) []CheckResult {
	startTime := time.Now()
	v.logger.LogValidationStart()

	customerKeys := make([]int, 0, len(modeled.CustomerDim))
	for _, d := range modeled.CustomerDim {
		customerKeys = append(customerKeys, d.SurrogateKey)
	}

	productKeys := make([]int, 0, len(modeled.ProductDim))
	for _, d := range modeled.ProductDim {
		productKeys = append(productKeys, d.SurrogateKey)
	}

	results := []CheckResult{
		// Modeled слой: блокирующие проверки
		{
			Name:          "dim_customers_key_uniqueness",
			Layer:         LayerModeled,
			Blocking:      true,
			OffendingKeys: CheckDimensionKeyUniqueness(customerKeys),
		},
		{
			Name:          "dim_products_key_uniqueness",
			Layer:         LayerModeled,
			Blocking:      true,
			OffendingKeys: CheckDimensionKeyUniqueness(productKeys),
		},
		{
			Name:          "fact_sales_referential_integrity",
			Layer:         LayerModeled,
			Blocking:      true,
			OffendingKeys: CheckFactReferentialIntegrity(modeled.SalesFacts),
		},
		{
			Name:          "dim_customers_domain_membership",
			Layer:         LayerModeled,
			OffendingKeys: CheckCustomerDomains(modeled.CustomerDim),
		},
		{
			Name:          "dim_products_domain_membership",
			Layer:         LayerModeled,
			OffendingKeys: CheckProductDomains(modeled.ProductDim),
		},
		// Conformed слой: предупреждения
		{
			Name:          "conformed_customers_key_uniqueness",
			Layer:         LayerConformed,
			OffendingKeys: CheckCustomerKeyUniqueness(conformed.Customers),
		},
		{
			Name:          "conformed_customers_trimmed_strings",
			Layer:         LayerConformed,
			OffendingKeys: CheckTrimmedStrings(conformed.Customers),
		},
		{
			Name:          "conformed_products_cost",
			Layer:         LayerConformed,
			OffendingKeys: CheckProductCost(conformed.Products),
		},
		{
			Name:          "conformed_products_validity_intervals",
			Layer:         LayerConformed,
			OffendingKeys: CheckValidityIntervals(conformed.Products),
		},
		{
			Name:          "conformed_products_trimmed_strings",
			Layer:         LayerConformed,
			OffendingKeys: CheckProductTrimmedStrings(conformed.Products),
		},
		{
			Name:          "conformed_references_trimmed_strings",
			Layer:         LayerConformed,
			OffendingKeys: CheckReferenceTrimmedStrings(conformed.Profiles, conformed.Locations, conformed.Categories),
		},
		{
			Name:          "conformed_sales_date_order",
			Layer:         LayerConformed,
			OffendingKeys: CheckSalesDates(conformed.SalesLines),
		},
		{
			Name:          "conformed_sales_date_range",
			Layer:         LayerConformed,
			OffendingKeys: CheckSalesDateRange(conformed.SalesLines),
		},
		{
			Name:          "conformed_sales_measure_consistency",
			Layer:         LayerConformed,
			OffendingKeys: CheckMeasureConsistency(conformed.SalesLines),
		},
	}

	passed, warnings, blocking := 0, 0, 0
	for _, r := range results {
		switch {
		case r.Passed():
			passed++
		case r.Blocking:
			blocking++
			v.logger.Error("Блокирующая проверка %q не пройдена. Нарушителей: %d", r.Name, len(r.OffendingKeys))
		default:
			warnings++
			v.logger.Info("Проверка %q не пройдена (предупреждение). Нарушителей: %d", r.Name, len(r.OffendingKeys))
		}
	}

	v.logger.LogValidationComplete(passed, warnings, blocking, time.Since(startTime))
	return results
}

// HasBlockingFailures сообщает, есть ли среди результатов блокирующие
// нарушения, запрещающие публикацию modeled слоя
func HasBlockingFailures(results []CheckResult) bool {
	for _, r := range results {
		if r.Blocking && !r.Passed() {
			return true
		}
	}
	return false
}
