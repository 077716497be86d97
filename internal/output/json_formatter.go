package output

import (
	"encoding/json"

	"github.com/kredcalc/india-tax-engine/internal/domain"
)

// JSONFormatter serializes results as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) FormatResult(result *domain.TaxCalculationResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

func (j JSONFormatter) FormatComparison(comparison *domain.RegimeComparisonResult) ([]byte, error) {
	return json.MarshalIndent(comparison, "", "  ")
}
