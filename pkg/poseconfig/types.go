package poseconfig

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/posemark/posemark/internal/measurement"
)

// AngleDefinition is one joint-angle entry of a pose configuration. Points
// holds the (point1, vertex, point2) landmark names.
type AngleDefinition struct {
	Name        string    `yaml:"name"`
	Points      [3]string `yaml:"points,flow"`
	TargetAngle float64   `yaml:"target_angle"`
	Tolerance   float64   `yaml:"tolerance"`
	Weight      float64   `yaml:"weight"`
}

// ConnectionDefinition describes a body-part contact check, for example a
// hand holding a foot. MaxDistance is in normalized image space.
type ConnectionDefinition struct {
	Name        string  `yaml:"name"`
	Point1      string  `yaml:"point1"`
	Point2      string  `yaml:"point2"`
	MaxDistance float64 `yaml:"max_distance"`
	Weight      float64 `yaml:"weight"`
}

// PoseConfig is the per-pose entry of the configuration artifact.
type PoseConfig struct {
	PoseName            string                 `yaml:"pose_name"`
	View                string                 `yaml:"view"`
	RequiredKeypoints   []string               `yaml:"required_keypoints"`
	RequiredAngles      []AngleDefinition      `yaml:"required_angles"`
	RequiredConnections []ConnectionDefinition `yaml:"required_connections,omitempty"`
}

// DefaultKeypoints is the standard full-body landmark set.
var DefaultKeypoints = []string{
	"nose",
	"left_shoulder", "right_shoulder",
	"left_elbow", "right_elbow",
	"left_wrist", "right_wrist",
	"left_hip", "right_hip",
	"left_knee", "right_knee",
	"left_ankle", "right_ankle",
}

// PlaceholderPoints marks angle entries whose landmark names the operator
// has to resolve by hand.
var PlaceholderPoints = [3]string{"point1_name", "vertex_name", "point2_name"}

var angleKeypointMap = map[string][3]string{
	"left leg":   {"left_hip", "left_knee", "left_ankle"},
	"right leg":  {"right_hip", "right_knee", "right_ankle"},
	"left hand":  {"left_shoulder", "left_elbow", "left_wrist"},
	"right hand": {"right_shoulder", "right_elbow", "right_wrist"},
}

// ResolveKeypoints maps a conventional angle name (case-insensitive) to its
// landmark triple. Unknown names report ok=false.
func ResolveKeypoints(angleName string) ([3]string, bool) {
	points, ok := angleKeypointMap[strings.ToLower(strings.TrimSpace(angleName))]
	return points, ok
}

// FromMeasurements converts captured measurements into angle definitions,
// in capture order. Conventional angle names get their landmark triples;
// everything else gets placeholder names.
func FromMeasurements(measurements []measurement.Measurement) []AngleDefinition {
	angles := make([]AngleDefinition, 0, len(measurements))
	for _, m := range measurements {
		points, ok := ResolveKeypoints(m.Name)
		if !ok {
			points = PlaceholderPoints
		}
		angles = append(angles, AngleDefinition{
			Name:        m.Name,
			Points:      points,
			TargetAngle: m.TargetAngle(),
			Tolerance:   m.Tolerance,
			Weight:      m.Weight,
		})
	}
	return angles
}

// NewPoseConfig assembles a pose entry from its metadata, the keypoint set
// and the measured angles. An empty keypoint list falls back to
// DefaultKeypoints.
func NewPoseConfig(meta Metadata, keypoints []string, angles []AngleDefinition) PoseConfig {
	if len(keypoints) == 0 {
		keypoints = append([]string(nil), DefaultKeypoints...)
	}
	return PoseConfig{
		PoseName:          meta.DisplayName,
		View:              meta.View,
		RequiredKeypoints: keypoints,
		RequiredAngles:    angles,
	}
}

// Metadata identifies a pose entry in the artifact.
type Metadata struct {
	PoseID      string
	DisplayName string
	View        string
}

// displayTitle capitalizes each word of the derived display name without
// lowering letters that are already capitals, so "Warrior_II" keeps "II".
var displayTitle = cases.Title(language.Und, cases.NoLower)

// MetadataFromStem derives pose metadata from an image file stem, for
// example "tree_pose_front" -> id "tree_pose_front", view "front",
// display name "Tree Pose".
func MetadataFromStem(stem string) Metadata {
	view := "front"
	base := stem
	switch {
	case strings.HasSuffix(stem, "_front"):
		base = strings.TrimSuffix(stem, "_front")
	case strings.HasSuffix(stem, "_side"):
		view = "side"
		base = strings.TrimSuffix(stem, "_side")
	}
	return Metadata{
		PoseID:      stem,
		DisplayName: displayTitle.String(strings.ReplaceAll(base, "_", " ")),
		View:        view,
	}
}

// Validate rejects metadata the artifact cannot hold.
func (m Metadata) Validate() error {
	if strings.TrimSpace(m.PoseID) == "" {
		return fmt.Errorf("pose id must not be empty")
	}
	if strings.TrimSpace(m.View) == "" {
		return fmt.Errorf("view must not be empty")
	}
	return nil
}
