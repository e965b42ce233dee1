// Package utils contains general helper functions used across the mdstructure tool.
package utils

import (
	"strings"
	"unicode/utf8"
)

// hiddenEntryPrefix marks file names that are never shown.
const hiddenEntryPrefix = "."

// ExclusionPolicy decides which directory and file names are skipped during traversal.
// Names are compared literally against the leaf name only; there are no glob semantics.
type ExclusionPolicy struct {
	excludedNames map[string]struct{}
}

// NewExclusionPolicy builds a policy from the provided literal names.
func NewExclusionPolicy(excludedNames []string) ExclusionPolicy {
	nameSet := make(map[string]struct{}, len(excludedNames))
	for _, excludedName := range excludedNames {
		nameSet[excludedName] = struct{}{}
	}
	return ExclusionPolicy{excludedNames: nameSet}
}

// ShouldSkipDirectory reports whether a directory with the given leaf name is pruned before descending.
func (policy ExclusionPolicy) ShouldSkipDirectory(directoryName string) bool {
	_, excluded := policy.excludedNames[directoryName]
	return excluded
}

// ShouldSkipFile reports whether a file with the given name is omitted from output.
// Files starting with a dot are always skipped.
func (policy ExclusionPolicy) ShouldSkipFile(fileName string) bool {
	if strings.HasPrefix(fileName, hiddenEntryPrefix) {
		return true
	}
	_, excluded := policy.excludedNames[fileName]
	return excluded
}

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// HasAnySuffix reports whether value ends with one of the provided suffixes.
func HasAnySuffix(value string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(value, suffix) {
			return true
		}
	}
	return false
}

// TruncateRunes returns at most limit runes of value.
func TruncateRunes(value string, limit int) string {
	if limit <= 0 {
		return EmptyString
	}
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runeCount := 0
	for byteIndex := range value {
		if runeCount == limit {
			return value[:byteIndex]
		}
		runeCount++
	}
	return value
}
