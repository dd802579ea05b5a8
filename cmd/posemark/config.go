package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/posemark/posemark/internal/measurement"
	"github.com/posemark/posemark/pkg/poseconfig"
)

var (
	configArtifact  string
	configPoseID    string
	configView      string
	configName      string
	configKeypoints string
	configOverwrite bool
)

var configCmd = &cobra.Command{
	Use:   "config [angles.json]",
	Short: "Insert a measurement file into a pose configuration artifact",
	Long: `Convert a saved measurement file into a pose configuration entry and
insert it into the artifact. Known angle names (left/right leg, left/right
hand) resolve to their landmark triples; other angles get placeholder
landmark names to fill in by hand.`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVar(&configArtifact, "config", "", "pose configuration artifact (required)")
	configCmd.Flags().StringVar(&configPoseID, "pose-id", "", "pose id (default: derived from the image stem)")
	configCmd.Flags().StringVar(&configView, "view", "", "camera view, front or side (default: derived from the image stem)")
	configCmd.Flags().StringVar(&configName, "name", "", "display name (default: derived from the image stem)")
	configCmd.Flags().StringVar(&configKeypoints, "keypoints", "", "comma-separated keypoint names (default: the standard set)")
	configCmd.Flags().BoolVar(&configOverwrite, "overwrite", false, "replace an existing pose entry")

	configCmd.MarkFlagRequired("config")
}

func runConfig(cmd *cobra.Command, args []string) {
	record, err := measurement.ReadRecord(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading measurement file: %v\n", err)
		os.Exit(1)
	}

	stem := filepath.Base(record.Image)
	stem = strings.TrimSuffix(stem, filepath.Ext(stem))

	meta := poseconfig.MetadataFromStem(stem)
	if configPoseID != "" {
		meta.PoseID = configPoseID
	}
	if configView != "" {
		meta.View = configView
	}
	if configName != "" {
		meta.DisplayName = configName
	}
	if err := meta.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var keypoints []string
	for _, kp := range strings.Split(configKeypoints, ",") {
		if trimmed := strings.TrimSpace(kp); trimmed != "" {
			keypoints = append(keypoints, trimmed)
		}
	}

	artifact, err := poseconfig.LoadArtifact(configArtifact)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading pose configuration: %v\n", err)
		os.Exit(1)
	}

	cfg := poseconfig.NewPoseConfig(meta, keypoints,
		poseconfig.FromMeasurements(record.ToMeasurements()))

	if err := artifact.Insert(meta.PoseID, cfg, configOverwrite); err != nil {
		if errors.Is(err, poseconfig.ErrPoseExists) {
			fmt.Fprintf(os.Stderr, "Error: %v (use --overwrite to replace it)\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if err := artifact.Save(configArtifact); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing pose configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Pose %q written to %s (%d angles)\n", meta.PoseID, configArtifact, len(cfg.RequiredAngles))
}
