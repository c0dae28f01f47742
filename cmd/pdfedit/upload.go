package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file.pdf>",
	Short: "Upload a PDF document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService()

		f, err := os.Open(args[0])
		if err != nil {
			fatal("Failed to open file", err)
		}
		defer f.Close()

		res, err := svc.API.UploadDocument(context.Background(), filepath.Base(args[0]), f)
		if err != nil {
			fatal("Upload failed", err)
		}

		fmt.Printf("Uploaded %s as %s (%d page(s))\n", args[0], res.Document.ID, res.Document.PageCount)
		if res.Message != "" {
			fmt.Println(res.Message)
		}
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
