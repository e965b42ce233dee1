// Package tokenizer estimates how many language-model tokens a document occupies.
package tokenizer

import (
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Counter estimates token counts for text content.
type Counter interface {
	Name() string
	CountString(input string) (int, error)
}

// DefaultEncodingName is the encoding used when no other encoding is requested.
const DefaultEncodingName = "cl100k_base"

const errorInitializeFormat = "initialize tokenizer %s: %w"

// NewCounter returns a tiktoken Counter for encodingName, falling back to DefaultEncodingName when empty.
// Encodings are loaded through tiktoken's cache, which may require network access on first use.
func NewCounter(encodingName string) (Counter, error) {
	resolvedName := strings.TrimSpace(encodingName)
	if resolvedName == "" {
		resolvedName = DefaultEncodingName
	}
	encoding, encodingError := tiktoken.GetEncoding(resolvedName)
	if encodingError != nil {
		return nil, wrapInitializeError(resolvedName, encodingError)
	}
	return openAICounter{encoding: encoding, name: resolvedName}, nil
}
