package config

const (
	defaultReportDir    = "~/titlecheck"
	defaultDataDir      = "~/.local/share/titlecheck"
	defaultSheetName    = "Result"
	defaultEmphasisSize = 12.0
	defaultCurrentColor = "FFFF0000"
	defaultCorrectColor = "FF008000"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ReportDir: defaultReportDir,
			DataDir:   defaultDataDir,
		},
		Report: Report{
			SheetName:    defaultSheetName,
			EmphasisSize: defaultEmphasisSize,
			CurrentColor: defaultCurrentColor,
			CorrectColor: defaultCorrectColor,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
