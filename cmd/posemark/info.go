package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/posemark/posemark/internal/measurement"
)

var infoCmd = &cobra.Command{
	Use:   "info [angles.json]",
	Short: "Display the contents of a measurement file",
	Long:  "Show the measurements of a saved angle file: names, target angles, tolerances, weights and point coordinates.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	record, err := measurement.ReadRecord(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading measurement file: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Angle Measurement File")
	fmt.Println("======================")
	fmt.Printf("Image: %s\n", record.Image)
	fmt.Printf("File: %s\n\n", filename)

	fmt.Printf("Measurements: %d\n", record.TotalAngles)
	for i, m := range record.Measurements {
		fmt.Printf("\n%d. %s\n", i+1, m.Name)
		fmt.Printf("   Target angle: %.1f degrees\n", m.TargetAngle)
		fmt.Printf("   Tolerance: %.1f degrees\n", m.Tolerance)
		fmt.Printf("   Weight: %.1f\n", m.Weight)
		fmt.Printf("   Points: (%d, %d) (%d, %d) (%d, %d)\n",
			m.Points[0][0], m.Points[0][1],
			m.Points[1][0], m.Points[1][1],
			m.Points[2][0], m.Points[2][1],
		)
	}
}
