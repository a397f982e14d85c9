package writing

import (
	_ "embed"
	"fmt"

	models "inkwell/internal/domain/models/writing"

	"gopkg.in/yaml.v3"
)

//go:embed skeleton.yaml
var skeletonYAML []byte

// skeletonNode is one entry of the embedded default structure.
type skeletonNode struct {
	Kind     models.NodeKind `yaml:"kind"`
	Title    string          `yaml:"title"`
	Children []skeletonNode  `yaml:"children"`
}

type skeletonFile struct {
	Nodes []skeletonNode `yaml:"nodes"`
}

// loadSkeleton parses the embedded default work structure and verifies
// every kind belongs to the closed set.
func loadSkeleton() ([]skeletonNode, error) {
	var file skeletonFile
	if err := yaml.Unmarshal(skeletonYAML, &file); err != nil {
		return nil, fmt.Errorf("unmarshal skeleton: %w", err)
	}

	if err := validateSkeleton(file.Nodes); err != nil {
		return nil, err
	}

	return file.Nodes, nil
}

func validateSkeleton(nodes []skeletonNode) error {
	for _, n := range nodes {
		if !n.Kind.Valid() {
			return fmt.Errorf("skeleton node '%s': unknown kind %q", n.Title, n.Kind)
		}
		if n.Title == "" {
			return fmt.Errorf("skeleton node of kind %q: missing title", n.Kind)
		}
		if err := validateSkeleton(n.Children); err != nil {
			return err
		}
	}
	return nil
}
