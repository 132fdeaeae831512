package output

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/phtax/tax-calculator/internal/domain"
	"github.com/samber/lo"
)

// ErrUnsupportedFormat is returned when no formatter matches a requested name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(result *domain.TaxResult) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.TaxResult) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.TaxResult) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                               { return ff.ID }

// ReportFilename returns a timestamped report name with the given extension.
func ReportFilename(ext string) string {
	return fmt.Sprintf("tax_report_%s.%s", time.Now().Format("20060102_150405"), ext)
}

// WriteFormatted runs a formatter and writes output to filename. An empty
// filename falls back to a timestamped name with extension ext.
func WriteFormatted(f Formatter, result *domain.TaxResult, filename, ext string) (string, error) {
	data, err := f.Format(result)
	if err != nil {
		return "", err
	}
	if filename == "" {
		filename = ReportFilename(ext)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", filename, err)
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	BreakdownFormatter{},
	CSVSummarizer{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	f, ok := lo.Find(builtInFormatters, func(f Formatter) bool { return f.Name() == n })
	if !ok {
		return nil
	}
	return f
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"txt":         "console",
	"detailed":    "breakdown",
	"verbose":     "breakdown",
	"csv-summary": "csv",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := lo.Map(builtInFormatters, func(f Formatter, _ int) string { return f.Name() })
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := lo.Keys(aliasMap)
	sort.Strings(keys)
	return keys
}

// Extension returns the file extension used when a formatter's output is saved.
func Extension(f Formatter) string {
	switch f.Name() {
	case "csv":
		return "csv"
	case "json":
		return "json"
	default:
		return "txt"
	}
}
