package utils_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/temirov/mdstructure/internal/utils"
)

// excludedDirectoryName defines a directory name present in the test exclusion set.
const excludedDirectoryName = "node_modules"

// excludedFileName defines a file name present in the test exclusion set.
const excludedFileName = "STRUCTURE.md"

// regularName defines a name that is not excluded.
const regularName = "src"

// TestExclusionPolicyDirectories verifies literal leaf-name matching for directories.
func TestExclusionPolicyDirectories(testingInstance *testing.T) {
	policy := utils.NewExclusionPolicy([]string{excludedDirectoryName, excludedFileName})
	testCases := []struct {
		testName     string
		name         string
		expectedSkip bool
	}{
		{testName: "excluded name", name: excludedDirectoryName, expectedSkip: true},
		{testName: "regular name", name: regularName, expectedSkip: false},
		{testName: "case differs", name: strings.ToUpper(excludedDirectoryName), expectedSkip: false},
		{testName: "path is not a leaf name", name: regularName + "/" + excludedDirectoryName, expectedSkip: false},
		{testName: "dot directory not in set", name: ".github", expectedSkip: false},
	}
	for index, testCase := range testCases {
		actual := policy.ShouldSkipDirectory(testCase.name)
		if actual != testCase.expectedSkip {
			testingInstance.Errorf("case %d (%s): expected %t, got %t", index, testCase.testName, testCase.expectedSkip, actual)
		}
	}
}

// TestExclusionPolicyFiles verifies the exclusion set and the dotfile rule for files.
func TestExclusionPolicyFiles(testingInstance *testing.T) {
	policy := utils.NewExclusionPolicy([]string{excludedDirectoryName, excludedFileName})
	testCases := []struct {
		testName     string
		name         string
		expectedSkip bool
	}{
		{testName: "excluded name", name: excludedFileName, expectedSkip: true},
		{testName: "dotfile", name: ".env", expectedSkip: true},
		{testName: "dotfile with source extension", name: ".eslintrc.js", expectedSkip: true},
		{testName: "regular file", name: "index.js", expectedSkip: false},
		{testName: "lower case variant", name: strings.ToLower(excludedFileName), expectedSkip: false},
	}
	for index, testCase := range testCases {
		actual := policy.ShouldSkipFile(testCase.name)
		if actual != testCase.expectedSkip {
			testingInstance.Errorf("case %d (%s): expected %t, got %t", index, testCase.testName, testCase.expectedSkip, actual)
		}
	}
}

// TestDeduplicatePatterns verifies that DeduplicatePatterns removes duplicate patterns.
func TestDeduplicatePatterns(testingInstance *testing.T) {
	actual := utils.DeduplicatePatterns([]string{"a", "b", "a"})
	if strings.Join(actual, ",") != "a,b" {
		testingInstance.Fatalf("unexpected result %v", actual)
	}
}

// TestHasAnySuffix verifies suffix matching against several candidates.
func TestHasAnySuffix(testingInstance *testing.T) {
	suffixes := []string{".ts", ".js"}
	if !utils.HasAnySuffix("types.d.ts", suffixes) {
		testingInstance.Errorf("expected declaration file to match")
	}
	if utils.HasAnySuffix("README", suffixes) {
		testingInstance.Errorf("expected README not to match")
	}
}

// TestTruncateRunes verifies truncation counts runes rather than bytes.
func TestTruncateRunes(testingInstance *testing.T) {
	testCases := []struct {
		testName string
		value    string
		limit    int
		expected string
	}{
		{testName: "shorter than limit", value: "abc", limit: 5, expected: "abc"},
		{testName: "exact limit", value: "abc", limit: 3, expected: "abc"},
		{testName: "ascii truncated", value: "abcdef", limit: 4, expected: "abcd"},
		{testName: "multibyte truncated", value: "héllo wörld", limit: 7, expected: "héllo w"},
		{testName: "zero limit", value: "abc", limit: 0, expected: ""},
	}
	for index, testCase := range testCases {
		actual := utils.TruncateRunes(testCase.value, testCase.limit)
		if actual != testCase.expected {
			testingInstance.Errorf("case %d (%s): expected %q, got %q", index, testCase.testName, testCase.expected, actual)
		}
	}
}

// TestReadLossyText verifies invalid bytes are replaced and a byte order mark is dropped.
func TestReadLossyText(testingInstance *testing.T) {
	testCases := []struct {
		testName string
		input    []byte
		expected string
	}{
		{testName: "valid text", input: []byte("const a = 1;"), expected: "const a = 1;"},
		{testName: "invalid byte", input: []byte("ab\xffcd"), expected: "ab�cd"},
		{testName: "byte order mark", input: []byte("\xef\xbb\xbfexport"), expected: "export"},
		{testName: "empty", input: nil, expected: ""},
	}
	for index, testCase := range testCases {
		actual, readError := utils.ReadLossyText(bytes.NewReader(testCase.input))
		if readError != nil {
			testingInstance.Errorf("case %d (%s): unexpected error %v", index, testCase.testName, readError)
			continue
		}
		if actual != testCase.expected {
			testingInstance.Errorf("case %d (%s): expected %q, got %q", index, testCase.testName, testCase.expected, actual)
		}
	}
}
