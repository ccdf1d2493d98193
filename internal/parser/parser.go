package parser

import (
	"io"

	"fjacquet/receipt-csv/internal/models"
)

type Parser interface {
	// Parse reads OCR receipt text from the provided io.Reader and returns the
	// structured receipt record. Implementations never fail on messy text:
	// every extraction stage has a deterministic fallback, so an error is only
	// returned for I/O failures.
	Parse(r io.Reader) (*models.ParsedReceipt, error)

	// ParseFile is a convenience wrapper around Parse for a file path.
	ParseFile(filePath string) (*models.ParsedReceipt, error)
}
