package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/posemark/posemark/pkg/geometry"
)

var (
	point1X, point1Y int
	vertexX, vertexY int
	point3X, point3Y int
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Compute the angle between three points",
	Long: `Compute the joint angle at a vertex given three pixel coordinates.
The angle is measured between the segments vertex-point1 and vertex-point2.`,
	Run: runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().IntVar(&point1X, "x1", 0, "X coordinate of the first point")
	measureCmd.Flags().IntVar(&point1Y, "y1", 0, "Y coordinate of the first point")
	measureCmd.Flags().IntVar(&vertexX, "x2", 0, "X coordinate of the joint vertex")
	measureCmd.Flags().IntVar(&vertexY, "y2", 0, "Y coordinate of the joint vertex")
	measureCmd.Flags().IntVar(&point3X, "x3", 0, "X coordinate of the second point")
	measureCmd.Flags().IntVar(&point3Y, "y3", 0, "Y coordinate of the second point")

	for _, flag := range []string{"x1", "y1", "x2", "y2", "x3", "y3"} {
		measureCmd.MarkFlagRequired(flag)
	}
}

func runMeasure(cmd *cobra.Command, args []string) {
	p1 := geometry.NewPoint(point1X, point1Y)
	vertex := geometry.NewPoint(vertexX, vertexY)
	p3 := geometry.NewPoint(point3X, point3Y)

	angle, err := geometry.Angle(p1, vertex, p3)
	if err != nil {
		if errors.Is(err, geometry.ErrDegenerateAngle) {
			fmt.Fprintln(os.Stderr, "Error: the points do not form an angle, each point must differ from the vertex")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Println("Joint Angle Measurement")
	fmt.Println("=======================")
	fmt.Printf("\nPoint 1: (%d, %d)\n", p1.X, p1.Y)
	fmt.Printf("Vertex:  (%d, %d)\n", vertex.X, vertex.Y)
	fmt.Printf("Point 2: (%d, %d)\n", p3.X, p3.Y)
	fmt.Printf("\nAngle: %.1f degrees\n", angle)
}
