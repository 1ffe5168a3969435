package handlers

import (
	"fmt"
	"math"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/vexxhost/magnum/internal/cluster"
	"github.com/vexxhost/magnum/internal/heat"
	"github.com/vexxhost/magnum/internal/templatedef"
)

// Documents names the template and cluster input documents.
type Documents struct {
	TemplatePath string
	ClusterPath  string
}

func (d Documents) load() (*cluster.Template, *cluster.Cluster, error) {
	var tmpl cluster.Template
	if err := readDocument(d.TemplatePath, &tmpl); err != nil {
		return nil, nil, fmt.Errorf("failed to read cluster template: %w", err)
	}

	var c cluster.Cluster
	if err := readDocument(d.ClusterPath, &c); err != nil {
		return nil, nil, fmt.Errorf("failed to read cluster: %w", err)
	}

	return &tmpl, &c, nil
}

// readDocument decodes the YAML or JSON document at path into v using its
// JSON field names.
func readDocument(path string, v any) error {
	if path == "" {
		return fmt.Errorf("no document path given")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.UnmarshalStrict(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// readSeed reads pre-populated parameters. Whole numbers are decoded as int.
func readSeed(path string) (templatedef.Params, error) {
	if path == "" {
		return nil, nil
	}
	var raw map[string]any
	if err := readDocument(path, &raw); err != nil {
		return nil, fmt.Errorf("failed to read seed parameters: %w", err)
	}

	seed := make(templatedef.Params, len(raw))
	for k, v := range raw {
		if f, ok := v.(float64); ok && f == math.Trunc(f) && math.Abs(f) < math.MaxInt32 {
			v = int(f)
		}
		seed[k] = v
	}
	return seed, nil
}

func readStack(path string) (heat.Outputs, error) {
	var outputs heat.Outputs
	if err := readDocument(path, &outputs); err != nil {
		return nil, fmt.Errorf("failed to read stack outputs: %w", err)
	}
	return outputs, nil
}
