package poseconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrArtifactMissing reports that the configuration artifact does not
	// exist at the given path.
	ErrArtifactMissing = errors.New("pose configuration artifact not found")

	// ErrPoseExists reports an insertion that would silently replace an
	// existing pose entry.
	ErrPoseExists = errors.New("pose already exists in the artifact")
)

// Artifact is a loaded pose configuration file, a YAML mapping from pose id
// to pose entry. Edits go through the parsed node tree so that untouched
// entries keep their order and formatting.
type Artifact struct {
	doc     *yaml.Node
	mapping *yaml.Node
}

// LoadArtifact parses the artifact at path. A missing file reports
// ErrArtifactMissing; malformed YAML reports a wrapped parse error and the
// file stays untouched.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactMissing, path)
		}
		return nil, fmt.Errorf("failed to read pose configuration: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse pose configuration: %w", err)
	}

	a := &Artifact{doc: &doc}
	if len(doc.Content) == 0 {
		// Empty file: start a fresh mapping
		a.mapping = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		a.doc = &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{a.mapping}}
		return a, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("failed to parse pose configuration: top level is not a mapping")
	}
	a.mapping = root
	return a, nil
}

// NewArtifact returns an empty artifact, for building a configuration file
// from scratch.
func NewArtifact() *Artifact {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	return &Artifact{
		doc:     &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{mapping}},
		mapping: mapping,
	}
}

// Has reports whether the artifact already holds an entry for id.
func (a *Artifact) Has(id string) bool {
	return a.valueNode(id) != nil
}

// PoseIDs lists the entry ids in file order.
func (a *Artifact) PoseIDs() []string {
	ids := make([]string, 0, len(a.mapping.Content)/2)
	for i := 0; i < len(a.mapping.Content); i += 2 {
		ids = append(ids, a.mapping.Content[i].Value)
	}
	return ids
}

// Get decodes the entry for id.
func (a *Artifact) Get(id string) (PoseConfig, error) {
	node := a.valueNode(id)
	if node == nil {
		return PoseConfig{}, fmt.Errorf("pose %q not found in the artifact", id)
	}
	var cfg PoseConfig
	if err := node.Decode(&cfg); err != nil {
		return PoseConfig{}, fmt.Errorf("failed to decode pose %q: %w", id, err)
	}
	return cfg, nil
}

// Insert adds the entry for id. An existing id without overwrite reports
// ErrPoseExists. Overwriting replaces the value at its original position;
// new ids go to the end of the mapping.
func (a *Artifact) Insert(id string, cfg PoseConfig, overwrite bool) error {
	var value yaml.Node
	if err := value.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode pose %q: %w", id, err)
	}

	for i := 0; i < len(a.mapping.Content); i += 2 {
		if a.mapping.Content[i].Value == id {
			if !overwrite {
				return fmt.Errorf("%w: %s", ErrPoseExists, id)
			}
			a.mapping.Content[i+1] = &value
			return nil
		}
	}

	key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: id}
	a.mapping.Content = append(a.mapping.Content, key, &value)
	return nil
}

// Save rewrites the artifact at path. The write goes through a temporary
// file in the same directory so a failure cannot leave a truncated
// artifact behind.
func (a *Artifact) Save(path string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(a.doc); err != nil {
		return fmt.Errorf("failed to encode pose configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode pose configuration: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".poseconfig-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to write pose configuration: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write pose configuration: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write pose configuration: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write pose configuration: %w", err)
	}
	return nil
}

func (a *Artifact) valueNode(id string) *yaml.Node {
	for i := 0; i < len(a.mapping.Content); i += 2 {
		if a.mapping.Content[i].Value == id {
			return a.mapping.Content[i+1]
		}
	}
	return nil
}
