// Package categorize handles ad-hoc category resolution commands
package categorize

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fjacquet/receipt-csv/cmd/common"
	"fjacquet/receipt-csv/cmd/root"
	"fjacquet/receipt-csv/internal/categorizer"
	"fjacquet/receipt-csv/internal/config"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Resolve the category for a merchant or item",
	Long: `Resolve the spend category for a merchant name, or for a single item
in the context of that merchant, using the same rules the parser applies.

Examples:
  receipt-csv categorize -m "Apollo Pharmacy"
  receipt-csv categorize -m "Big Bazaar" -t "basmati rice"`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.MerchantName, "merchant", "m", "", "Merchant name to categorize")
	Cmd.Flags().StringVarP(&root.ItemName, "item", "t", "", "Item name to categorize (optional)")
	_ = Cmd.MarkFlagRequired("merchant")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	log := root.GetLogrusAdapter()
	config.LoadEnv()

	cat := common.BuildCategorizer(root.Cfg, log)

	var ai categorizer.AIClient
	if root.Cfg.AI.Enabled && root.Cfg.AI.APIKey != "" {
		client, err := categorizer.NewGeminiClient(
			context.Background(),
			root.Cfg.AI.APIKey,
			root.Cfg.AI.Model,
			time.Duration(root.Cfg.AI.TimeoutSeconds)*time.Second,
			log,
		)
		if err != nil {
			log.WithError(err).Warn("AI categorization unavailable")
		} else {
			defer func() {
				if err := client.Close(); err != nil {
					log.WithError(err).Warn("Failed to close AI client")
				}
			}()
			ai = client
		}
	}

	overall := cat.ResolveOverallWithAI(context.Background(), ai, root.MerchantName, root.MerchantName)
	fmt.Printf("Merchant category: %s\n", overall)

	if root.ItemName != "" {
		item := cat.ResolveItem(root.ItemName, overall, root.ItemName)
		fmt.Printf("Item category:     %s\n", item)
	}
}
