package main

import (
	"fmt"

	"github.com/spf13/cobra"

	editorpdf "github.com/caarlosandree/editor-pdf"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pdfedit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pdfedit version %s\n", editorpdf.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
