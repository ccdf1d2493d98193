// Package stores handles store-table inspection commands
package stores

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/receipt-csv/cmd/common"
	"fjacquet/receipt-csv/cmd/root"
)

// Cmd represents the stores command
var Cmd = &cobra.Command{
	Use:   "stores",
	Short: "List the store-to-category mappings",
	Long: `List the store-to-category mappings in their match order.

The first fragment found in a cleaned merchant name wins, so the order shown
here is the order the parser scans.`,
	Run: storesFunc,
}

func storesFunc(cmd *cobra.Command, args []string) {
	log := root.GetLogrusAdapter()
	cat := common.BuildCategorizer(root.Cfg, log)

	for _, mapping := range cat.StoreMappings() {
		if mapping.ItemDefault != "" {
			fmt.Printf("%-22s %-24s items: %s\n", mapping.Match, mapping.Overall, mapping.ItemDefault)
		} else {
			fmt.Printf("%-22s %s\n", mapping.Match, mapping.Overall)
		}
	}
}
