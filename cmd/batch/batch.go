// Package batch handles batch processing of receipt files
package batch

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"fjacquet/receipt-csv/cmd/common"
	"fjacquet/receipt-csv/cmd/root"
	internalcommon "fjacquet/receipt-csv/internal/common"
	"fjacquet/receipt-csv/internal/logging"
	"fjacquet/receipt-csv/internal/models"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process receipt files from a directory",
	Long: `Batch process all .txt receipt files in the input directory.

Each file is parsed independently; a file that fails to parse is logged and
skipped. The combined item rows of all receipts are written to a single CSV
in the output directory.

Example:
  receipt-csv batch -i receipts/ -o out/`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	log := root.GetLogrusAdapter()

	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	log.Infof("Input directory: %s", inputDir)
	log.Infof("Output directory: %s", outputDir)

	if inputDir == "" || outputDir == "" {
		log.Fatal("Input and output directories must be specified")
	}
	if err := os.MkdirAll(outputDir, 0750); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		log.Fatalf("Failed to read input directory: %v", err)
	}

	p := common.BuildParser(root.Cfg, log)

	var rows []models.ItemRow
	processed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}
		inputFile := filepath.Join(inputDir, entry.Name())

		receipt, err := p.ParseFile(inputFile)
		if err != nil {
			log.WithError(err).WithField(logging.FieldInputFile, inputFile).Error("Failed to parse receipt, skipping")
			continue
		}
		rows = append(rows, receipt.ToRows()...)
		processed++
	}

	if processed == 0 {
		log.Fatal("No receipt files were processed")
	}

	outputFile := filepath.Join(outputDir, "receipts.csv")
	if err := internalcommon.WriteRowsToCSV(rows, outputFile); err != nil {
		log.Fatalf("Failed to write combined CSV: %v", err)
	}
	log.WithFields(
		logging.Field{Key: logging.FieldCount, Value: processed},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile},
	).Info("Batch processing completed successfully!")
}
