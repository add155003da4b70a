package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/drills/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// PolygonFile is the on-disk shape of a polygon definition.
//
//	points:
//	  - {x: 100, y: 100}
//	  - {x: 200, y: 50}
type PolygonFile struct {
	Points []geometry.Point `json:"points" yaml:"points"`
}

// LoadPolygon reads a polygon definition (YAML unless the file ends in .json).
func LoadPolygon(path string) ([]geometry.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read polygon: %w", err)
	}

	var file PolygonFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &file)
	} else {
		err = yaml.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file.Points, nil
}
