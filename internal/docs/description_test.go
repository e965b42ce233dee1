package docs_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/temirov/mdstructure/internal/docs"
)

const descriptionLimit = 150

// TestExtractDescription verifies documentation block cleanup and the fallback.
func TestExtractDescription(testingHandle *testing.T) {
	testCases := []struct {
		testName string
		content  string
		expected string
	}{
		{testName: "single line block", content: "/** Utility helpers. */\nexport const a = 1;", expected: "Utility helpers."},
		{testName: "multi line block", content: "/**\n * Utility helpers.\n *   for   numbers\n */", expected: "Utility helpers. for numbers"},
		{testName: "first block wins", content: "/** first */ code /** second */", expected: "first"},
		{testName: "inline star kept", content: "/**\n * Multiplies a*b.\n */", expected: "Multiplies a*b."},
		{testName: "plain comment ignored", content: "/* not docs */\n// nor this", expected: docs.DescriptionFallback},
		{testName: "no comment", content: "const a = 1;", expected: docs.DescriptionFallback},
		{testName: "unterminated block", content: "/** never closed", expected: docs.DescriptionFallback},
		{testName: "empty block", content: "/** */", expected: ""},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.testName, func(testingHandle *testing.T) {
			actual := docs.ExtractDescription(testCase.content, descriptionLimit)
			if actual != testCase.expected {
				testingHandle.Fatalf("got %q want %q", actual, testCase.expected)
			}
		})
	}
}

// TestExtractDescriptionTruncates verifies the description never exceeds the limit.
func TestExtractDescriptionTruncates(testingHandle *testing.T) {
	content := "/** " + strings.Repeat("ü word ", 60) + " */"
	actual := docs.ExtractDescription(content, descriptionLimit)
	if utf8.RuneCountInString(actual) != descriptionLimit {
		testingHandle.Fatalf("expected %d runes, got %d", descriptionLimit, utf8.RuneCountInString(actual))
	}
	if !strings.HasPrefix(actual, "ü word ü word") {
		testingHandle.Fatalf("unexpected description prefix %q", actual)
	}
}
