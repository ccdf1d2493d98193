// Package common provides shared output functionality for the CLI commands.
package common

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"fjacquet/receipt-csv/internal/logging"
	"fjacquet/receipt-csv/internal/models"
)

var log = logging.GetLogger()

// Delimiter is the global CSV delimiter, configurable via CSV_DELIMITER.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// WriteReceiptToCSV writes the receipt's line items to a CSV file, one row
// per item with the merchant and date repeated on every row.
func WriteReceiptToCSV(receipt *models.ParsedReceipt, csvFile string) error {
	if receipt == nil {
		return fmt.Errorf("cannot write nil receipt to CSV")
	}
	return WriteRowsToCSV(receipt.ToRows(), csvFile)
}

// WriteRowsToCSV writes flattened item rows to a CSV file, creating the
// target directory as needed.
func WriteRowsToCSV(rows []models.ItemRow, csvFile string) error {
	log.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Writing receipt items to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		log.WithError(err).Error("Failed to write CSV data")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithField(logging.FieldCount, len(rows)).Info("Successfully wrote CSV data")
	return nil
}

// WriteReceiptToJSON writes the full receipt record as indented JSON.
func WriteReceiptToJSON(receipt *models.ParsedReceipt, jsonFile string) error {
	if receipt == nil {
		return fmt.Errorf("cannot write nil receipt to JSON")
	}

	log.WithField(logging.FieldOutputFile, jsonFile).Info("Writing receipt to JSON file")

	dir := filepath.Dir(jsonFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := json.MarshalIndent(receipt, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding receipt to JSON: %w", err)
	}
	if err := os.WriteFile(jsonFile, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("error writing JSON file: %w", err)
	}
	return nil
}
