// Package docs summarizes web-scripting source files with a short description
// and a heuristic list of declared symbol names.
package docs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"syscall"

	"go.uber.org/zap"

	"github.com/temirov/mdstructure/internal/config"
	"github.com/temirov/mdstructure/internal/types"
	"github.com/temirov/mdstructure/internal/utils"
)

// Extractor produces file summaries. It never returns an error: every failure
// is folded into the summary description.
type Extractor struct {
	maxFileSizeBytes  int64
	descriptionLimit  int
	errorMessageLimit int
	matchers          []SymbolMatcher
	logger            *zap.Logger
}

// NewExtractor creates an Extractor using the limits from settings and the default matchers.
func NewExtractor(settings config.Settings, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		maxFileSizeBytes:  settings.MaxFileSizeBytes,
		descriptionLimit:  settings.DescriptionLimit,
		errorMessageLimit: settings.ErrorMessageLimit,
		matchers:          DefaultSymbolMatchers(),
		logger:            logger,
	}
}

// Summarize reads the file at filePath and summarizes it.
func (extractor *Extractor) Summarize(filePath string) (summary types.FileSummary) {
	defer func() {
		if recovered := recover(); recovered != nil {
			summary = extractor.unexpectedFailure(filePath, fmt.Sprintf(recoveredPanicFormat, recovered))
		}
	}()

	fileHandle, openError := os.Open(filePath)
	if openError != nil {
		return extractor.readFailure(filePath, openError)
	}
	defer fileHandle.Close()

	fileInfo, statError := fileHandle.Stat()
	if statError != nil {
		return extractor.readFailure(filePath, statError)
	}
	if fileInfo.Size() > extractor.maxFileSizeBytes {
		extractor.logger.Debug(extractionFailureLogMessage, zap.String("path", filePath), zap.Int64("size", fileInfo.Size()))
		return types.FileSummary{Status: types.ExtractionStatusTooLarge, Description: TooLargeDescription}
	}

	content, readError := utils.ReadLossyText(io.LimitReader(fileHandle, extractor.maxFileSizeBytes))
	if readError != nil {
		return extractor.readFailure(filePath, readError)
	}
	return extractor.SummarizeContent(content)
}

// SummarizeContent summarizes already decoded source text.
func (extractor *Extractor) SummarizeContent(content string) types.FileSummary {
	return types.FileSummary{
		Status:      types.ExtractionStatusExtracted,
		Description: ExtractDescription(content, extractor.descriptionLimit),
		Symbols:     extractor.collectSymbols(content),
	}
}

// collectSymbols unions the matches of every matcher, removes duplicates and sorts the result.
func (extractor *Extractor) collectSymbols(content string) []string {
	var collected []string
	for _, matcher := range extractor.matchers {
		collected = append(collected, matcher.Match(content)...)
	}
	symbols := utils.DeduplicatePatterns(collected)
	sort.Strings(symbols)
	return symbols
}

func (extractor *Extractor) readFailure(filePath string, readError error) types.FileSummary {
	category, recognized := classifyReadError(readError)
	if !recognized {
		return extractor.unexpectedFailure(filePath, readError.Error())
	}
	extractor.logger.Debug(extractionFailureLogMessage, zap.String("path", filePath), zap.Error(readError))
	return types.FileSummary{
		Status:      types.ExtractionStatusAccessDenied,
		Description: fmt.Sprintf(accessDeniedDescriptionFormat, category),
	}
}

func (extractor *Extractor) unexpectedFailure(filePath string, message string) types.FileSummary {
	extractor.logger.Debug(extractionFailureLogMessage, zap.String("path", filePath), zap.String("reason", message))
	return types.FileSummary{
		Status:      types.ExtractionStatusFailed,
		Description: fmt.Sprintf(unexpectedErrorFormat, utils.TruncateRunes(message, extractor.errorMessageLimit)),
	}
}

// classifyReadError maps file access errors to a failure category. Errors that
// do not originate from the file system are not recognized.
func classifyReadError(readError error) (string, bool) {
	switch {
	case errors.Is(readError, fs.ErrPermission):
		return failureCategoryPermission, true
	case errors.Is(readError, fs.ErrNotExist):
		return failureCategoryNotFound, true
	}
	var pathError *fs.PathError
	if errors.As(readError, &pathError) {
		return failureCategoryOS, true
	}
	var errno syscall.Errno
	if errors.As(readError, &errno) {
		return failureCategoryOS, true
	}
	return "", false
}
