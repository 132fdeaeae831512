package output

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/phtax/tax-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport renders result with the named formatter and writes it to w.
func GenerateReport(w io.Writer, result *domain.TaxResult, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(result)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// SaveConfiguration writes config as TOML when filename ends in .toml, YAML otherwise.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	var (
		b   []byte
		err error
	)
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(config)
		b = buf.Bytes()
	} else {
		b, err = yaml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return os.WriteFile(filename, b, 0644)
}
