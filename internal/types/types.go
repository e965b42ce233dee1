// Package types defines every cross‑package data structure used by the mdstructure CLI.
package types

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"
)

// ValidatedPath is an absolute root path that already passed existence checks.
type ValidatedPath struct {
	AbsolutePath string
	IsDir        bool
}

// TreeOutputNode represents a node of the scanned directory tree.
// Directory nodes keep their child files and child directories apart so the
// renderer can emit files before descending.
type TreeOutputNode struct {
	Path        string
	Name        string
	Type        string
	Depth       int
	Files       []*TreeOutputNode
	Directories []*TreeOutputNode
	// Summary is set only for files with a recognized source extension.
	Summary *FileSummary
}

// ExtractionStatus reports how a file summary was produced.
type ExtractionStatus int

const (
	// ExtractionStatusExtracted means the file was read and scanned.
	ExtractionStatusExtracted ExtractionStatus = iota
	// ExtractionStatusTooLarge means the file exceeded the size ceiling and was not read.
	ExtractionStatusTooLarge
	// ExtractionStatusAccessDenied means the file could not be opened or read.
	ExtractionStatusAccessDenied
	// ExtractionStatusFailed means an unexpected failure interrupted extraction.
	ExtractionStatusFailed
)

// String returns a short label for the status.
func (status ExtractionStatus) String() string {
	switch status {
	case ExtractionStatusExtracted:
		return "extracted"
	case ExtractionStatusTooLarge:
		return "too-large"
	case ExtractionStatusAccessDenied:
		return "access-denied"
	case ExtractionStatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FileSummary is the description and symbol list extracted from one source file.
// Failures are folded into Description; Symbols is empty whenever Status is not
// ExtractionStatusExtracted.
type FileSummary struct {
	Status      ExtractionStatus
	Description string
	Symbols     []string
}

// OutputSummary captures aggregate information about the written document.
type OutputSummary struct {
	OutputPath string
	Characters int
	Bytes      int
	Tokens     int
	Encoding   string
}
