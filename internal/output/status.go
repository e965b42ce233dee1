package output

import (
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/temirov/mdstructure/internal/types"
)

const (
	scanningFormat        = "🔍 Scanning %s...\n"
	generatedFormat       = "✅ Successfully generated %s\n"
	outputSizeFormat      = "📊 Output size: %d characters\n"
	estimatedTokensFormat = "🔢 Estimated tokens: %d (%s)\n"
	missingRootFormat     = "❌ Error: %s not found\n"
	notDirectoryFormat    = "❌ Error: %s is not a directory\n"
)

// StatusReporter prints progress and result lines for one run.
// Colors are applied only when writing to a terminal.
type StatusReporter struct {
	writer   io.Writer
	progress *color.Color
	success  *color.Color
	failure  *color.Color
	plain    *color.Color
}

// NewStatusReporter creates a reporter writing to writer.
func NewStatusReporter(writer io.Writer) *StatusReporter {
	reporter := &StatusReporter{
		writer:   writer,
		progress: color.New(color.FgCyan),
		success:  color.New(color.FgGreen),
		failure:  color.New(color.FgRed, color.Bold),
		plain:    color.New(color.Reset),
	}
	if !isTerminal(writer) {
		for _, palette := range []*color.Color{reporter.progress, reporter.success, reporter.failure, reporter.plain} {
			palette.DisableColor()
		}
	}
	return reporter
}

// isTerminal reports whether writer is a standard stream attached to a color-capable terminal.
func isTerminal(writer io.Writer) bool {
	if writer != os.Stdout && writer != os.Stderr {
		return false
	}
	return !color.NoColor
}

// Scanning reports the start of a scan.
func (reporter *StatusReporter) Scanning(rootPath string) {
	reporter.progress.Fprintf(reporter.writer, scanningFormat, rootPath)
}

// MissingRoot reports a root that does not exist.
func (reporter *StatusReporter) MissingRoot(rootPath string) {
	reporter.failure.Fprintf(reporter.writer, missingRootFormat, rootPath)
}

// NotDirectory reports a root that is not a directory.
func (reporter *StatusReporter) NotDirectory(rootPath string) {
	reporter.failure.Fprintf(reporter.writer, notDirectoryFormat, rootPath)
}

// Generated reports the written document and its size.
func (reporter *StatusReporter) Generated(summary types.OutputSummary) {
	reporter.success.Fprintf(reporter.writer, generatedFormat, summary.OutputPath)
	reporter.plain.Fprintf(reporter.writer, outputSizeFormat, summary.Characters)
	if summary.Encoding != "" {
		reporter.plain.Fprintf(reporter.writer, estimatedTokensFormat, summary.Tokens, summary.Encoding)
	}
}
