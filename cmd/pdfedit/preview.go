package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/caarlosandree/editor-pdf/pkg/core"
)

var (
	previewPage int
	previewOut  string
)

var previewCmd = &cobra.Command{
	Use:   "preview <document-id>",
	Short: "Download the raster preview of one page",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService()

		data, err := svc.API.FetchPreview(context.Background(), args[0], previewPage, time.Now().UnixMilli())
		if errors.Is(err, core.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Document %s not found\n", args[0])
			os.Exit(1)
		}
		if err != nil {
			fatal("Failed to fetch preview", err)
		}

		out := previewOut
		if out == "" {
			out = fmt.Sprintf("%s-page%d.png", args[0], previewPage)
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			fatal("Failed to write preview", err)
		}
		fmt.Printf("Wrote page %d to %s (%d bytes)\n", previewPage, out, len(data))
	},
}

func init() {
	previewCmd.Flags().IntVarP(&previewPage, "page", "p", 1, "Page number")
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "", "Output file (default <id>-page<N>.png)")
	rootCmd.AddCommand(previewCmd)
}
