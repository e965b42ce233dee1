package docs

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/temirov/mdstructure/internal/utils"
)

const (
	documentationBlockOpener = "/**"
	documentationBlockCloser = "*/"
	continuationMarker       = "*"
)

var documentationBlockExpression = regexp.MustCompile(`/\*\*[\s\S]*?\*/`)

// ExtractDescription returns the text of the first /** ... */ block with its
// delimiters and leading star markers removed, whitespace collapsed and the
// result cut to limit runes. DescriptionFallback is returned when no block exists.
func ExtractDescription(content string, limit int) string {
	block := documentationBlockExpression.FindString(content)
	if block == "" {
		return DescriptionFallback
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(block, documentationBlockOpener), documentationBlockCloser)
	lines := strings.Split(inner, "\n")
	for lineIndex, line := range lines {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		lines[lineIndex] = strings.TrimLeft(trimmed, continuationMarker)
	}
	collapsed := strings.Join(strings.Fields(strings.Join(lines, " ")), " ")
	return utils.TruncateRunes(collapsed, limit)
}
