package tokenizer

import (
	"errors"
	"fmt"
)

// CountResult captures the outcome of counting a document.
type CountResult struct {
	Tokens   int
	Encoding string
	Counted  bool
}

// CountDocument estimates tokens for document. A nil counter yields an uncounted result.
func CountDocument(counter Counter, document string) (CountResult, error) {
	if counter == nil {
		return CountResult{}, nil
	}
	tokens, countError := counter.CountString(document)
	if countError != nil {
		return CountResult{}, countError
	}
	return CountResult{Tokens: tokens, Encoding: counter.Name(), Counted: true}, nil
}

func wrapInitializeError(encodingName string, cause error) error {
	if cause == nil {
		return errors.New("tokenizer initialization failed")
	}
	return fmt.Errorf(errorInitializeFormat, encodingName, cause)
}
