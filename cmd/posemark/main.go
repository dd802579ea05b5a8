package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/posemark/posemark/version"
)

var rootCmd = &cobra.Command{
	Use:   "posemark",
	Short: "A CLI tool for annotating joint angles on pose reference images",
	Long: `posemark annotates body-pose reference images with joint angles.
Click three points on an image to measure an angle, give it a name and
tolerance, and export the measurements as JSON, an annotated image, and
pose configuration entries.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
