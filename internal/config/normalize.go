package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	var err error
	if strings.TrimSpace(c.Paths.ReportDir) == "" {
		c.Paths.ReportDir = defaultReportDir
	}
	if c.Paths.ReportDir, err = expandPath(c.Paths.ReportDir); err != nil {
		return fmt.Errorf("paths.report_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
			return fmt.Errorf("paths.log_dir: %w", err)
		}
	}

	c.Report.SheetName = strings.TrimSpace(c.Report.SheetName)
	if c.Report.SheetName == "" {
		c.Report.SheetName = defaultSheetName
	}
	c.Report.CurrentColor = strings.ToUpper(strings.TrimSpace(c.Report.CurrentColor))
	c.Report.CorrectColor = strings.ToUpper(strings.TrimSpace(c.Report.CorrectColor))
	if c.Report.CurrentColor == "" {
		c.Report.CurrentColor = defaultCurrentColor
	}
	if c.Report.CorrectColor == "" {
		c.Report.CorrectColor = defaultCorrectColor
	}
	if c.Report.EmphasisSize == 0 {
		c.Report.EmphasisSize = defaultEmphasisSize
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
