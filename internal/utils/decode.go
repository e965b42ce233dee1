package utils

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadLossyText reads all of reader as UTF-8 text. A leading byte order mark is
// dropped and invalid byte sequences are replaced with U+FFFD, so malformed
// input never produces a decoding error.
func ReadLossyText(reader io.Reader) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decodedBytes, readError := io.ReadAll(transform.NewReader(reader, decoder))
	if readError != nil {
		return EmptyString, readError
	}
	return string(decodedBytes), nil
}
