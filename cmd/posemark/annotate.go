package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/posemark/posemark/internal/app"
)

var (
	annotateConfig  string
	annotateOutDir  string
	annotateMaxSize int
)

var annotateCmd = &cobra.Command{
	Use:   "annotate [image]",
	Short: "Open an image and measure joint angles interactively",
	Long: `Open a pose reference image in an interactive window.
Click three points (end, joint, end) to measure an angle, then name it
and set its tolerance and weight. Press S to save the measurement JSON
and the annotated image.`,
	Args: cobra.ExactArgs(1),
	Run:  runAnnotate,
}

func init() {
	rootCmd.AddCommand(annotateCmd)

	annotateCmd.Flags().StringVar(&annotateConfig, "config", "", "pose configuration artifact to insert entries into")
	annotateCmd.Flags().StringVar(&annotateOutDir, "out-dir", "", "directory for output artifacts (default: next to the image)")
	annotateCmd.Flags().IntVar(&annotateMaxSize, "max-size", app.DefaultMaxSize, "maximum display dimension in pixels")
}

func runAnnotate(cmd *cobra.Command, args []string) {
	opts := app.Options{
		ImagePath:  args[0],
		ConfigPath: annotateConfig,
		OutDir:     annotateOutDir,
		MaxSize:    annotateMaxSize,
	}

	if err := app.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
