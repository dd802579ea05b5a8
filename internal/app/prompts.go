package app

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/posemark/posemark/internal/measurement"
	"github.com/posemark/posemark/pkg/geometry"
	"github.com/posemark/posemark/pkg/poseconfig"
)

// positiveFloatOrEmpty validates numeric form entries. Empty input is
// accepted and falls back to the field's default.
func positiveFloatOrEmpty(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

func parseFloatOrDefault(text string, fallback float64) float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// showMetadataForm prompts for the name, tolerance and weight of the angle
// that was just completed. Confirming records the measurement; cancelling
// discards the three clicked points.
func (a *App) showMetadataForm(angle float64) {
	defaultName := fmt.Sprintf("Angle_%d", a.Capture.store.Len()+1)

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder(defaultName)

	toleranceEntry := widget.NewEntry()
	toleranceEntry.SetPlaceHolder(fmt.Sprintf("%.1f", measurement.DefaultTolerance))
	toleranceEntry.Validator = positiveFloatOrEmpty

	weightEntry := widget.NewEntry()
	weightEntry.SetPlaceHolder(fmt.Sprintf("%.1f", measurement.DefaultWeight))
	weightEntry.Validator = positiveFloatOrEmpty

	items := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("Tolerance (deg)", toleranceEntry),
		widget.NewFormItem("Weight", weightEntry),
	}

	title := fmt.Sprintf("Angle: %.1f deg", angle)
	d := dialog.NewForm(title, "Add", "Discard", items, func(confirmed bool) {
		a.finishMetadata(confirmed, angle, nameEntry.Text, toleranceEntry.Text, weightEntry.Text)
	}, a.window)
	d.Show()
}

// finishMetadata resolves the metadata dialog: the selection is cleared
// before the final redraw in both branches so the three finalized points
// never linger on screen as a pending selection.
func (a *App) finishMetadata(confirmed bool, angle float64, nameText, toleranceText, weightText string) {
	if !confirmed {
		a.Capture.selection.Finish()
		a.setStatus("Measurement discarded")
		a.redraw()
		return
	}

	name := strings.TrimSpace(nameText)
	if name == "" {
		name = fmt.Sprintf("Angle_%d", a.Capture.store.Len()+1)
	}

	points := a.Capture.selection.Points()
	m := measurement.Measurement{
		Name:         name,
		Points:       [3]geometry.Point{points[0], points[1], points[2]},
		AngleDegrees: angle,
		Tolerance:    parseFloatOrDefault(toleranceText, measurement.DefaultTolerance),
		Weight:       parseFloatOrDefault(weightText, measurement.DefaultWeight),
	}
	a.Capture.selection.Finish()
	a.Capture.store.Append(m)

	a.setStatus(fmt.Sprintf("Recorded %s (%.1f deg)", name, m.TargetAngle()))
	a.updateCounts()
	a.redraw()
}

// showConfigForm prompts for the pose metadata and inserts the session's
// measurements into the configuration artifact.
func (a *App) showConfigForm() {
	meta := poseconfig.MetadataFromStem(imageStem(a.Image.sourcePath))

	idEntry := widget.NewEntry()
	idEntry.SetText(meta.PoseID)

	nameEntry := widget.NewEntry()
	nameEntry.SetText(meta.DisplayName)

	viewEntry := widget.NewSelectEntry([]string{"front", "side"})
	viewEntry.SetText(meta.View)

	keypointsEntry := widget.NewEntry()
	keypointsEntry.SetPlaceHolder("comma-separated, empty for the standard set")

	items := []*widget.FormItem{
		widget.NewFormItem("Pose ID", idEntry),
		widget.NewFormItem("Display name", nameEntry),
		widget.NewFormItem("View", viewEntry),
		widget.NewFormItem("Keypoints", keypointsEntry),
	}

	d := dialog.NewForm("Add to pose configuration", "Add", "Skip", items, func(confirmed bool) {
		if !confirmed {
			a.setStatus("Pose configuration skipped")
			return
		}

		meta := poseconfig.Metadata{
			PoseID:      strings.TrimSpace(idEntry.Text),
			DisplayName: strings.TrimSpace(nameEntry.Text),
			View:        strings.TrimSpace(viewEntry.Text),
		}
		if err := meta.Validate(); err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		a.insertIntoConfig(meta, parseKeypoints(keypointsEntry.Text))
	}, a.window)
	d.Show()
}

// insertIntoConfig loads the artifact and adds the pose entry, asking
// before an existing entry gets replaced. Declining leaves the artifact
// untouched.
func (a *App) insertIntoConfig(meta poseconfig.Metadata, keypoints []string) {
	artifact, err := poseconfig.LoadArtifact(a.Output.configPath)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	cfg := poseconfig.NewPoseConfig(meta, keypoints,
		poseconfig.FromMeasurements(a.Capture.store.Measurements()))

	if !artifact.Has(meta.PoseID) {
		a.writeConfigEntry(artifact, meta.PoseID, cfg, false)
		return
	}

	message := fmt.Sprintf("Pose %q already exists in the configuration.\nOverwrite it?", meta.PoseID)
	dialog.ShowConfirm("Pose exists", message, func(overwrite bool) {
		if !overwrite {
			a.setStatus("Pose configuration unchanged")
			return
		}
		a.writeConfigEntry(artifact, meta.PoseID, cfg, true)
	}, a.window)
}

func (a *App) writeConfigEntry(artifact *poseconfig.Artifact, id string, cfg poseconfig.PoseConfig, overwrite bool) {
	if err := artifact.Insert(id, cfg, overwrite); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if err := artifact.Save(a.Output.configPath); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.setStatus(fmt.Sprintf("Pose %q written to %s", id, a.Output.configPath))
}

func parseKeypoints(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	parts := strings.Split(text, ",")
	keypoints := make([]string, 0, len(parts))
	for _, p := range parts {
		if kp := strings.TrimSpace(p); kp != "" {
			keypoints = append(keypoints, kp)
		}
	}
	return keypoints
}
