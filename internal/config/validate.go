package config

import (
	"errors"
	"fmt"
	"strings"
)

// sheetNameForbidden lists the characters spreadsheet applications reject
// in worksheet names.
const sheetNameForbidden = `[]:*?/\`

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateReport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateReport() error {
	name := c.Report.SheetName
	if len(name) > 31 {
		return fmt.Errorf("report.sheet_name %q exceeds 31 characters", name)
	}
	if strings.ContainsAny(name, sheetNameForbidden) {
		return fmt.Errorf("report.sheet_name %q contains a forbidden character (%s)", name, sheetNameForbidden)
	}
	if c.Report.EmphasisSize < 1 || c.Report.EmphasisSize > 409 {
		return errors.New("report.emphasis_size must be between 1 and 409 points")
	}
	if err := validateColor("report.current_color", c.Report.CurrentColor); err != nil {
		return err
	}
	return validateColor("report.correct_color", c.Report.CorrectColor)
}

func validateColor(field, value string) error {
	if len(value) != 8 {
		return fmt.Errorf("%s must be 8 hex digits (ARGB), got %q", field, value)
	}
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'A' && r <= 'F':
		default:
			return fmt.Errorf("%s must be 8 hex digits (ARGB), got %q", field, value)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
