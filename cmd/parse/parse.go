// Package parse handles single-receipt parsing commands
package parse

import (
	"github.com/spf13/cobra"

	"fjacquet/receipt-csv/cmd/common"
	"fjacquet/receipt-csv/cmd/root"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a receipt text file",
	Long: `Parse a single OCR receipt text file into a structured record.

Without -o the record is printed to stdout. With -o it is written as CSV
(one row per item) or JSON depending on -f.

Example:
  receipt-csv parse -i receipt.txt -o receipt.csv`,
	Run: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) {
	log := root.GetLogrusAdapter()
	log.Infof("Input receipt file: %s", root.SharedFlags.Input)

	if root.SharedFlags.Input == "" {
		log.Fatal("Input file must be specified")
	}

	p := common.BuildParser(root.Cfg, log)
	common.ProcessFile(p, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Format, log)
}
