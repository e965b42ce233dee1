package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/temirov/mdstructure/internal/commands"
	"github.com/temirov/mdstructure/internal/config"
	"github.com/temirov/mdstructure/internal/docs"
	"github.com/temirov/mdstructure/internal/output"
	"github.com/temirov/mdstructure/internal/tokenizer"
	"github.com/temirov/mdstructure/internal/types"
	"github.com/temirov/mdstructure/internal/utils"
)

const (
	outputFilePermissions = 0o644

	errorResolveRootFormat   = "resolve root directory: %w"
	errorExecutablePathFmt   = "locate executable: %w"
	errorResolveSymlinksFmt  = "resolve executable symlinks: %w"
	errorAbsolutePathFormat  = "abs failed for '%s': %w"
	errorStatFormat          = "stat failed for '%s': %w"
	errorWriteOutputFormat   = "write %s: %w"
	warningTokenizerMessage  = "token estimate unavailable"
	warningTokenCountMessage = "failed to count tokens"
	debugDocumentWritten     = "structure document written"
)

// Application wires the scan of one root directory into a written document.
type Application struct {
	Settings    config.Settings
	Logger      *zap.Logger
	Stdout      io.Writer
	ResolveRoot func() (string, error)
	// NewCounter is optional; without it no token estimate is reported.
	NewCounter func() (tokenizer.Counter, error)
}

// Run validates the root, renders the structure document and writes it into the root.
// A missing root or a root that is not a directory is reported and ends the run
// without error and without writing anything.
func (application *Application) Run() error {
	logger := application.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reporter := output.NewStatusReporter(application.Stdout)

	rootPath, resolveError := application.ResolveRoot()
	if resolveError != nil {
		return fmt.Errorf(errorResolveRootFormat, resolveError)
	}
	validatedRoot, validationError := validateRoot(rootPath)
	if validationError != nil {
		return validationError
	}
	if !validatedRoot.exists {
		reporter.MissingRoot(validatedRoot.AbsolutePath)
		return nil
	}
	if !validatedRoot.IsDir {
		reporter.NotDirectory(validatedRoot.AbsolutePath)
		return nil
	}

	reporter.Scanning(validatedRoot.AbsolutePath)
	extractor := docs.NewExtractor(application.Settings, logger)
	treeBuilder := commands.NewTreeBuilder(application.Settings, extractor, logger)
	rootNode, treeError := treeBuilder.GetTreeData(validatedRoot.AbsolutePath)
	if treeError != nil {
		return treeError
	}
	document := output.NewMarkdownRenderer(application.Settings.SymbolDisplayLimit).Render(rootNode)

	outputPath := filepath.Join(validatedRoot.AbsolutePath, application.Settings.OutputFileName)
	if writeError := os.WriteFile(outputPath, []byte(document), outputFilePermissions); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, outputPath, writeError)
	}

	summary := types.OutputSummary{
		OutputPath: outputPath,
		Characters: utf8.RuneCountInString(document),
		Bytes:      len(document),
	}
	logger.Debug(debugDocumentWritten, zap.String("path", outputPath), zap.String("size", utils.FormatFileSize(int64(summary.Bytes))))
	countResult := application.countTokens(document, logger)
	if countResult.Counted {
		summary.Tokens = countResult.Tokens
		summary.Encoding = countResult.Encoding
	}
	reporter.Generated(summary)
	return nil
}

// countTokens estimates the document size in tokens. Failures only produce a warning.
func (application *Application) countTokens(document string, logger *zap.Logger) tokenizer.CountResult {
	if application.NewCounter == nil {
		return tokenizer.CountResult{}
	}
	counter, counterError := application.NewCounter()
	if counterError != nil {
		logger.Warn(warningTokenizerMessage, zap.Error(counterError))
		return tokenizer.CountResult{}
	}
	countResult, countError := tokenizer.CountDocument(counter, document)
	if countError != nil {
		logger.Warn(warningTokenCountMessage, zap.Error(countError))
		return tokenizer.CountResult{}
	}
	return countResult
}

// rootCandidate is a resolved root path together with its existence.
type rootCandidate struct {
	types.ValidatedPath
	exists bool
}

// validateRoot converts rootPath to absolute form and reports whether it exists and is a directory.
func validateRoot(rootPath string) (rootCandidate, error) {
	absolutePath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return rootCandidate{}, fmt.Errorf(errorAbsolutePathFormat, rootPath, absolutePathError)
	}
	cleanPath := filepath.Clean(absolutePath)
	info, statError := os.Stat(cleanPath)
	if statError != nil {
		if errors.Is(statError, fs.ErrNotExist) {
			return rootCandidate{ValidatedPath: types.ValidatedPath{AbsolutePath: cleanPath}}, nil
		}
		return rootCandidate{}, fmt.Errorf(errorStatFormat, rootPath, statError)
	}
	return rootCandidate{
		ValidatedPath: types.ValidatedPath{AbsolutePath: cleanPath, IsDir: info.IsDir()},
		exists:        true,
	}, nil
}

// ResolveExecutableDirectory returns the absolute directory containing the running executable with symlinks resolved.
func ResolveExecutableDirectory() (string, error) {
	executablePath, executableError := os.Executable()
	if executableError != nil {
		return "", fmt.Errorf(errorExecutablePathFmt, executableError)
	}
	resolvedPath, resolveError := filepath.EvalSymlinks(executablePath)
	if resolveError != nil {
		return "", fmt.Errorf(errorResolveSymlinksFmt, resolveError)
	}
	return filepath.Abs(filepath.Dir(resolvedPath))
}
