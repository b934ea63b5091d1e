package institutions

import (
	"os"

	"gopkg.in/yaml.v3"

	"unirate/internal/core"
)

// LoadDataset reads a YAML school dataset from path. The adapter itself does
// no I/O; callers load the dataset once and inject it.
func LoadDataset(path string) ([]RawSchool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &core.DatasetError{Path: path, Message: "read dataset", Err: err}
	}

	var records []RawSchool
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, &core.DatasetError{Path: path, Message: "parse dataset", Err: err}
	}

	return records, nil
}
