package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	listJSON   bool
	listLimit  int
	listOffset int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents on the backend",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService()

		page, err := svc.Store.Documents(context.Background(), listLimit, listOffset)
		if err != nil {
			fatal("Failed to list documents", err)
		}

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(page); err != nil {
				fatal("Failed to encode listing", err)
			}
			return
		}

		fmt.Printf("%d of %d document(s)\n", len(page.Documents), page.Total)
		for _, doc := range page.Documents {
			fmt.Printf("  %s  %-10s  v%d  %d page(s)\n", doc.ID, doc.Status, doc.Version, doc.PageCount)
		}
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "Page size")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "Page offset")
	rootCmd.AddCommand(listCmd)
}
