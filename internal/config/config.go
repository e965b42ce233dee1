// Package config provides the fixed settings that drive a structure scan.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	excludedNamesKey       = "excluded_names"
	sourceExtensionsKey    = "source_extensions"
	maxFileSizeBytesKey    = "max_file_size_bytes"
	symbolDisplayLimitKey  = "symbol_display_limit"
	descriptionLimitKey    = "description_limit"
	errorMessageLimitKey   = "error_message_limit"
	outputFileNameKey      = "output_file_name"
	decodeSettingsErrorFmt = "decode settings: %w"

	// DefaultOutputFileName is the name of the document written into the scanned root.
	DefaultOutputFileName = "STRUCTURE.md"
	// DefaultMaxFileSizeBytes is the per-file size ceiling for symbol extraction.
	DefaultMaxFileSizeBytes int64 = 5 * 1024 * 1024
	// DefaultSymbolDisplayLimit is the number of symbols rendered inline per file.
	DefaultSymbolDisplayLimit = 8
	// DefaultDescriptionLimit is the maximum description length in runes.
	DefaultDescriptionLimit = 150
	// DefaultErrorMessageLimit is the maximum length in runes of an unexpected error message.
	DefaultErrorMessageLimit = 50
)

// defaultExcludedNames lists build, dependency and version-control artifacts that are never traversed or shown.
var defaultExcludedNames = []string{
	"node_modules",
	"venv",
	"__pycache__",
	"dist",
	".git",
	".DS_Store",
	"structure.txt",
	"structure.md",
	DefaultOutputFileName,
	".next",
	"build",
	"coverage",
	".turbo",
	"data",
}

// defaultSourceExtensions lists the file name suffixes eligible for description and symbol extraction.
var defaultSourceExtensions = []string{".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs"}

// Settings holds the immutable constants of one scan. Production code obtains
// them from DefaultSettings; tests construct their own values.
type Settings struct {
	ExcludedNames      []string `mapstructure:"excluded_names"`
	SourceExtensions   []string `mapstructure:"source_extensions"`
	MaxFileSizeBytes   int64    `mapstructure:"max_file_size_bytes"`
	SymbolDisplayLimit int      `mapstructure:"symbol_display_limit"`
	DescriptionLimit   int      `mapstructure:"description_limit"`
	ErrorMessageLimit  int      `mapstructure:"error_message_limit"`
	OutputFileName     string   `mapstructure:"output_file_name"`
}

// registerDefaults records every fixed constant on reader. No file,
// environment or flag source is bound, so the defaults are the only values.
func registerDefaults(reader *viper.Viper) {
	reader.SetDefault(excludedNamesKey, append([]string{}, defaultExcludedNames...))
	reader.SetDefault(sourceExtensionsKey, append([]string{}, defaultSourceExtensions...))
	reader.SetDefault(maxFileSizeBytesKey, DefaultMaxFileSizeBytes)
	reader.SetDefault(symbolDisplayLimitKey, DefaultSymbolDisplayLimit)
	reader.SetDefault(descriptionLimitKey, DefaultDescriptionLimit)
	reader.SetDefault(errorMessageLimitKey, DefaultErrorMessageLimit)
	reader.SetDefault(outputFileNameKey, DefaultOutputFileName)
}

// LoadSettings decodes the registered defaults into Settings.
func LoadSettings() (Settings, error) {
	reader := viper.New()
	registerDefaults(reader)
	var settings Settings
	if decodeError := reader.Unmarshal(&settings); decodeError != nil {
		return Settings{}, fmt.Errorf(decodeSettingsErrorFmt, decodeError)
	}
	return settings, nil
}

// DefaultSettings returns the built-in settings. The defaults always decode, so
// a failure here indicates a programming error.
func DefaultSettings() Settings {
	settings, loadError := LoadSettings()
	if loadError != nil {
		panic(loadError)
	}
	return settings
}
