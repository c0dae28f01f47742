package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/caarlosandree/editor-pdf/pkg/core"
)

var getJSON bool

var getCmd = &cobra.Command{
	Use:   "get <document-id>",
	Short: "Show one document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService()

		doc, err := svc.Store.Document(context.Background(), args[0])
		if errors.Is(err, core.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Document %s not found\n", args[0])
			os.Exit(1)
		}
		if err != nil {
			fatal("Failed to fetch document", err)
		}

		if getJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(doc); err != nil {
				fatal("Failed to encode document", err)
			}
			return
		}

		fmt.Printf("ID:       %s\n", doc.ID)
		fmt.Printf("Status:   %s\n", doc.Status)
		fmt.Printf("Version:  %d\n", doc.Version)
		fmt.Printf("Pages:    %d\n", doc.PageCount)
		fmt.Printf("Updated:  %s\n", doc.UpdatedAt)
	},
}

func init() {
	getCmd.Flags().BoolVar(&getJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(getCmd)
}
