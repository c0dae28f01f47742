package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/caarlosandree/editor-pdf/pkg/core"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <document-id>",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !deleteForce {
			fmt.Printf("Delete document %s? [y/N] ", args[0])
			answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted")
				return
			}
		}

		svc := newService()
		err := svc.API.DeleteDocument(context.Background(), args[0])
		if errors.Is(err, core.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Document %s not found\n", args[0])
			os.Exit(1)
		}
		if err != nil {
			fatal("Delete failed", err)
		}

		svc.Registry.Invalidate(core.DocumentCacheKey(args[0]))
		svc.Registry.InvalidatePrefix(core.DocumentListPrefix)
		fmt.Printf("Deleted %s\n", args[0])
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation")
	rootCmd.AddCommand(deleteCmd)
}
