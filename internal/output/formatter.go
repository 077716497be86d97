package output

import (
	"fmt"
	"strings"

	"github.com/kredcalc/india-tax-engine/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte
// slice. Implementations should be pure (no side effects besides
// deterministic formatting).
type Formatter interface {
	FormatResult(result *domain.TaxCalculationResult) ([]byte, error)
	FormatComparison(comparison *domain.RegimeComparisonResult) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) (Formatter, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unknown output format %q (have: %s)", name, FormatterNames())
}

// FormatterNames lists the registered formatter names.
func FormatterNames() string {
	names := make([]string, len(builtInFormatters))
	for i, f := range builtInFormatters {
		names[i] = f.Name()
	}
	return strings.Join(names, ", ")
}
