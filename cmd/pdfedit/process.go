package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/caarlosandree/editor-pdf/pkg/core"
	"github.com/caarlosandree/editor-pdf/pkg/editor"
)

var batchFile string

var processCmd = &cobra.Command{
	Use:   "process <document-id>",
	Short: "Submit an annotation batch",
	Long: `Read an annotation batch from a YAML file, validate it and submit it
to the backend in one atomic request. Instructions are applied in file order.

Example batch file:

    instructions:
      - type: text
        page: 1
        x: 100
        y: 100
        content: "Reviewed"
        fontSize: 12
      - type: drawing
        page: 2
        x: 50
        y: 50
        width: 100
        height: 40
        metadata: {x2: 150, y2: 90, strokeWidth: 2, drawingType: line}`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if batchFile == "" {
			fmt.Fprintln(os.Stderr, "Error: --batch is required")
			cmd.Usage()
			os.Exit(1)
		}

		data, err := os.ReadFile(batchFile)
		if err != nil {
			fatal("Failed to read batch file", err)
		}

		var req core.ProcessRequest
		if err := yaml.Unmarshal(data, &req); err != nil {
			fatal("Failed to parse batch file", err)
		}

		if errs := core.ValidateRequest(req); len(errs) > 0 {
			fmt.Fprintln(os.Stderr, "Batch rejected:")
			for _, fe := range errs {
				fmt.Fprintf(os.Stderr, "  %s\n", fe)
			}
			os.Exit(1)
		}

		svc := newService()
		gateway := editor.NewGateway(svc.API, svc.Registry, svc.Notifier, svc.Logger)
		res, err := gateway.Submit(context.Background(), args[0], req.Instructions)
		if err != nil {
			os.Exit(1) // the gateway already surfaced the notice
		}

		fmt.Printf("Document %s is now version %d (%s)\n", res.Document.ID, res.Document.Version, res.Document.Status)
	},
}

func init() {
	processCmd.Flags().StringVarP(&batchFile, "batch", "b", "", "YAML file with the instruction batch")
	rootCmd.AddCommand(processCmd)
}
