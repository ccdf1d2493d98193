// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"strings"

	"fjacquet/receipt-csv/internal/categorizer"
	"fjacquet/receipt-csv/internal/common"
	"fjacquet/receipt-csv/internal/config"
	"fjacquet/receipt-csv/internal/logging"
	"fjacquet/receipt-csv/internal/models"
	"fjacquet/receipt-csv/internal/receiptparser"
	"fjacquet/receipt-csv/internal/store"
)

// BuildParser assembles the receipt parser from the loaded configuration:
// store table, categorizer, and extraction thresholds.
func BuildParser(cfg *config.Config, log logging.Logger) *receiptparser.Parser {
	st := store.NewCategoryStore(cfg.Stores.File, log)
	cat := categorizer.NewCategorizer(st, log)
	return receiptparser.New(cat, receiptparser.OptionsFromConfig(cfg), log)
}

// BuildCategorizer assembles just the categorizer, for commands that resolve
// categories without parsing a receipt.
func BuildCategorizer(cfg *config.Config, log logging.Logger) *categorizer.Categorizer {
	st := store.NewCategoryStore(cfg.Stores.File, log)
	return categorizer.NewCategorizer(st, log)
}

// ProcessFile parses a single receipt text file and writes the result in the
// requested format. An empty output path prints the record to stdout.
func ProcessFile(p *receiptparser.Parser, inputFile, outputFile, format string, log logging.Logger) {
	receipt, err := p.ParseFile(inputFile)
	if err != nil {
		log.Fatalf("Error parsing receipt: %v", err)
	}

	if outputFile == "" {
		PrintReceipt(receipt)
		return
	}

	switch strings.ToLower(format) {
	case "", "csv":
		err = common.WriteReceiptToCSV(receipt, outputFile)
	case "json":
		err = common.WriteReceiptToJSON(receipt, outputFile)
	default:
		log.Fatalf("Unknown output format: %s", format)
	}
	if err != nil {
		log.Fatalf("Error writing output: %v", err)
	}
	log.Info("Receipt processed successfully!")
}

// PrintReceipt writes a human-readable summary of the record to stdout.
func PrintReceipt(receipt *models.ParsedReceipt) {
	fmt.Printf("Merchant: %s\n", receipt.Merchant)
	fmt.Printf("Date:     %s\n", receipt.Date)
	fmt.Printf("Category: %s\n", receipt.Category)
	fmt.Printf("Total:    %s\n", receipt.TotalAmount.StringFixed(2))
	fmt.Printf("Items (%d):\n", len(receipt.Items))
	for _, item := range receipt.Items {
		fmt.Printf("  %-40s %10s  %s\n", item.Name, item.Price.StringFixed(2), item.Category)
	}
}
