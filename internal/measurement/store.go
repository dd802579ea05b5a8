package measurement

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/posemark/posemark/pkg/geometry"
)

// Store holds the ordered measurements of one annotation session. The
// list is append-only and duplicate names are allowed; insertion order is
// the order angles appear in the generated pose configuration.
type Store struct {
	measurements []Measurement
}

// NewStore creates an empty measurement store
func NewStore() *Store {
	return &Store{measurements: make([]Measurement, 0)}
}

// Append adds a finished measurement to the end of the list
func (s *Store) Append(m Measurement) {
	s.measurements = append(s.measurements, m)
}

// Len returns the number of stored measurements
func (s *Store) Len() int {
	return len(s.measurements)
}

// Measurements returns the stored measurements in insertion order
func (s *Store) Measurements() []Measurement {
	return s.measurements
}

// Record is the JSON document written on save
type Record struct {
	Image        string            `json:"image"`
	TotalAngles  int               `json:"total_angles"`
	Measurements []MeasurementData `json:"measurements"`
}

// MeasurementData is the serialized form of a single measurement. Points
// are [x, y] pairs in click order (point1, vertex, point3), in
// original-image coordinates.
type MeasurementData struct {
	Name        string    `json:"name"`
	TargetAngle float64   `json:"target_angle"`
	Tolerance   float64   `json:"tolerance"`
	Weight      float64   `json:"weight"`
	Points      [3][2]int `json:"points"`
}

// Record produces the serializable session document for the given source
// image path
func (s *Store) Record(imagePath string) Record {
	rec := Record{
		Image:        imagePath,
		TotalAngles:  len(s.measurements),
		Measurements: make([]MeasurementData, 0, len(s.measurements)),
	}

	for _, m := range s.measurements {
		rec.Measurements = append(rec.Measurements, MeasurementData{
			Name:        m.Name,
			TargetAngle: m.TargetAngle(),
			Tolerance:   m.Tolerance,
			Weight:      m.Weight,
			Points: [3][2]int{
				{m.Points[0].X, m.Points[0].Y},
				{m.Points[1].X, m.Points[1].Y},
				{m.Points[2].X, m.Points[2].Y},
			},
		})
	}

	return rec
}

// ToMeasurements converts a loaded record back into measurements, used by
// the read-only info and config commands
func (r Record) ToMeasurements() []Measurement {
	out := make([]Measurement, 0, len(r.Measurements))
	for _, d := range r.Measurements {
		out = append(out, Measurement{
			Name: d.Name,
			Points: [3]geometry.Point{
				{X: d.Points[0][0], Y: d.Points[0][1]},
				{X: d.Points[1][0], Y: d.Points[1][1]},
				{X: d.Points[2][0], Y: d.Points[2][1]},
			},
			AngleDegrees: d.TargetAngle,
			Tolerance:    d.Tolerance,
			Weight:       d.Weight,
		})
	}
	return out
}

// WriteRecord writes the record as indented JSON. The write fails loudly:
// either the complete document lands on disk or an error is returned.
func WriteRecord(path string, r Record) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal measurements: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write measurements file: %w", err)
	}
	return nil
}

// ReadRecord loads a measurement record written by WriteRecord
func ReadRecord(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("failed to read measurements file: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("failed to parse measurements file: %w", err)
	}
	return rec, nil
}
