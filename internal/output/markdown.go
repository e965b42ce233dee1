// Package output renders the structure document and the status report.
package output

import (
	"fmt"
	"strings"

	"github.com/temirov/mdstructure/internal/types"
)

const (
	indentSpacer  = "  "
	lineSeparator = "\n"

	titleFormat            = "# 🏗️ %s Structure"
	directoryLineFormat    = "%s- 📁 **%s/**"
	sourceFileLineFormat   = "%s- 📄 **%s**"
	descriptionLineFormat  = "%s  > *%s*"
	symbolsLineFormat      = "%s  - ⚙️ %s"
	plainFileLineFormat    = "%s- 📄 %s"
	symbolFormat           = "`%s`"
	symbolSeparator        = ", "
	remainingSymbolsFormat = ", ... (+%d more)"
)

// MarkdownRenderer turns a scanned tree into the structure document.
type MarkdownRenderer struct {
	SymbolDisplayLimit int
}

// NewMarkdownRenderer creates a renderer that shows at most symbolDisplayLimit symbols per file.
func NewMarkdownRenderer(symbolDisplayLimit int) MarkdownRenderer {
	return MarkdownRenderer{SymbolDisplayLimit: symbolDisplayLimit}
}

// Render returns the document text: the lines joined by newlines without a trailing newline.
func (renderer MarkdownRenderer) Render(rootNode *types.TreeOutputNode) string {
	return strings.Join(renderer.Lines(rootNode), lineSeparator)
}

// Lines returns the document lines in depth-first pre-order, starting with the
// title and an empty line.
// A directory line precedes its file lines, which precede its subdirectories.
func (renderer MarkdownRenderer) Lines(rootNode *types.TreeOutputNode) []string {
	lines := []string{fmt.Sprintf(titleFormat, rootNode.Name), ""}
	return renderer.appendDirectory(lines, rootNode)
}

func (renderer MarkdownRenderer) appendDirectory(lines []string, directoryNode *types.TreeOutputNode) []string {
	lines = append(lines, fmt.Sprintf(directoryLineFormat, indentation(directoryNode.Depth), directoryNode.Name))
	fileIndent := indentation(directoryNode.Depth + 1)
	for _, fileNode := range directoryNode.Files {
		lines = renderer.appendFile(lines, fileNode, fileIndent)
	}
	for _, subdirectoryNode := range directoryNode.Directories {
		lines = renderer.appendDirectory(lines, subdirectoryNode)
	}
	return lines
}

func (renderer MarkdownRenderer) appendFile(lines []string, fileNode *types.TreeOutputNode, fileIndent string) []string {
	if fileNode.Summary == nil {
		return append(lines, fmt.Sprintf(plainFileLineFormat, fileIndent, fileNode.Name))
	}
	lines = append(lines,
		fmt.Sprintf(sourceFileLineFormat, fileIndent, fileNode.Name),
		fmt.Sprintf(descriptionLineFormat, fileIndent, fileNode.Summary.Description),
	)
	if len(fileNode.Summary.Symbols) > 0 {
		lines = append(lines, fmt.Sprintf(symbolsLineFormat, fileIndent, renderer.FormatSymbols(fileNode.Summary.Symbols)))
	}
	return lines
}

// FormatSymbols quotes up to SymbolDisplayLimit symbols with backticks and
// appends a count of the symbols left out.
func (renderer MarkdownRenderer) FormatSymbols(symbols []string) string {
	displayed := symbols
	if len(displayed) > renderer.SymbolDisplayLimit {
		displayed = displayed[:renderer.SymbolDisplayLimit]
	}
	quoted := make([]string, 0, len(displayed))
	for _, symbol := range displayed {
		quoted = append(quoted, fmt.Sprintf(symbolFormat, symbol))
	}
	formatted := strings.Join(quoted, symbolSeparator)
	if remaining := len(symbols) - len(displayed); remaining > 0 {
		formatted += fmt.Sprintf(remainingSymbolsFormat, remaining)
	}
	return formatted
}

func indentation(depth int) string {
	return strings.Repeat(indentSpacer, depth)
}
