package commands

import (
	"go.uber.org/zap"

	"github.com/temirov/mdstructure/internal/config"
	"github.com/temirov/mdstructure/internal/types"
	"github.com/temirov/mdstructure/internal/utils"
)

// Summarizer produces a summary for one source file and never fails.
type Summarizer interface {
	Summarize(filePath string) types.FileSummary
}

// TreeBuilder builds directory tree nodes using configured options.
type TreeBuilder struct {
	Policy           utils.ExclusionPolicy
	SourceExtensions []string
	Summarizer       Summarizer
	Logger           *zap.Logger
}

// NewTreeBuilder creates a TreeBuilder from settings and the provided summarizer.
func NewTreeBuilder(settings config.Settings, summarizer Summarizer, logger *zap.Logger) *TreeBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TreeBuilder{
		Policy:           utils.NewExclusionPolicy(settings.ExcludedNames),
		SourceExtensions: append([]string{}, settings.SourceExtensions...),
		Summarizer:       summarizer,
		Logger:           logger,
	}
}

// isSourceFile reports whether the file name carries a recognized source extension.
func (treeBuilder *TreeBuilder) isSourceFile(fileName string) bool {
	return utils.HasAnySuffix(fileName, treeBuilder.SourceExtensions)
}
