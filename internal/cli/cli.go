// Package cli provides the command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/mdstructure/internal/config"
	"github.com/temirov/mdstructure/internal/tokenizer"
)

const (
	rootUse              = "mdstructure"
	rootShortDescription = "write a Markdown summary of the directory holding this program"
	rootLongDescription  = `mdstructure scans the directory that contains the executable and writes
STRUCTURE.md next to it. The document lists folders and files; TypeScript and
JavaScript sources also get their first /** */ comment and the names of the
functions, classes and bindings found in them.
Dependency, build and version-control directories are skipped.`
)

// Execute runs the mdstructure application with production dependencies.
func Execute(logger *zap.Logger) error {
	application := &Application{
		Settings:    config.DefaultSettings(),
		Logger:      logger,
		Stdout:      os.Stdout,
		ResolveRoot: ResolveExecutableDirectory,
		NewCounter: func() (tokenizer.Counter, error) {
			return tokenizer.NewCounter(tokenizer.DefaultEncodingName)
		},
	}
	return NewRootCommand(application).Execute()
}

// NewRootCommand builds the root Cobra command. The command accepts no arguments.
func NewRootCommand(application *Application) *cobra.Command {
	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.Run()
		},
	}
	rootCommand.CompletionOptions.DisableDefaultCmd = true
	return rootCommand
}
