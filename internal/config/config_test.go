package config_test

import (
	"reflect"
	"testing"

	"github.com/temirov/mdstructure/internal/config"
)

// TestLoadSettingsDefaults verifies every fixed constant survives decoding.
func TestLoadSettingsDefaults(testingHandle *testing.T) {
	settings, loadError := config.LoadSettings()
	if loadError != nil {
		testingHandle.Fatalf("LoadSettings failed: %v", loadError)
	}
	expectedExtensions := []string{".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs"}
	if !reflect.DeepEqual(settings.SourceExtensions, expectedExtensions) {
		testingHandle.Fatalf("unexpected extensions: got %v want %v", settings.SourceExtensions, expectedExtensions)
	}
	if settings.MaxFileSizeBytes != 5*1024*1024 {
		testingHandle.Fatalf("unexpected size ceiling %d", settings.MaxFileSizeBytes)
	}
	if settings.SymbolDisplayLimit != 8 || settings.DescriptionLimit != 150 || settings.ErrorMessageLimit != 50 {
		testingHandle.Fatalf("unexpected limits: %+v", settings)
	}
	if settings.OutputFileName != config.DefaultOutputFileName {
		testingHandle.Fatalf("unexpected output name %s", settings.OutputFileName)
	}
}

// TestDefaultSettingsExcludesArtifacts verifies the exclusion set covers dependency and output names.
func TestDefaultSettingsExcludesArtifacts(testingHandle *testing.T) {
	settings := config.DefaultSettings()
	excluded := make(map[string]bool, len(settings.ExcludedNames))
	for _, name := range settings.ExcludedNames {
		excluded[name] = true
	}
	for _, name := range []string{"node_modules", ".git", "dist", "build", "coverage", "data", settings.OutputFileName} {
		if !excluded[name] {
			testingHandle.Errorf("expected %s to be excluded", name)
		}
	}
	if len(settings.ExcludedNames) != 14 {
		testingHandle.Errorf("expected 14 excluded names, got %d", len(settings.ExcludedNames))
	}
}

// TestDefaultSettingsAreIndependent verifies callers cannot mutate each other's settings.
func TestDefaultSettingsAreIndependent(testingHandle *testing.T) {
	first := config.DefaultSettings()
	first.ExcludedNames[0] = "mutated"
	second := config.DefaultSettings()
	if second.ExcludedNames[0] == "mutated" {
		testingHandle.Fatalf("default exclusion set was mutated through a previous result")
	}
}
