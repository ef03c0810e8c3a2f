package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"farmtrack/entities"
)

func readJSON(_ context.Context, path string) ([]entities.CropRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raws []rawRecord
	if err := json.Unmarshal(b, &raws); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return records(raws)
}

func readYAML(_ context.Context, path string) ([]entities.CropRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raws []rawRecord
	if err := yaml.Unmarshal(b, &raws); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return records(raws)
}
