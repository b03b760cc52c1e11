package storage

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/timelog/internal/model"
)

// LoadGoals reads a goals.yaml. A missing file yields an empty GoalFile.
func LoadGoals(path string) (model.GoalFile, error) {
	gf := model.GoalFile{Goals: map[string]string{}}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return gf, nil
	}
	if err != nil {
		return gf, fmt.Errorf("storage error reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &gf); err != nil {
		return gf, fmt.Errorf("corrupt goals file %s: %w", path, err)
	}
	if gf.Goals == nil {
		gf.Goals = map[string]string{}
	}
	return gf, nil
}

// SaveGoals atomically writes a goals.yaml.
func SaveGoals(path string, gf model.GoalFile) error {
	data, err := yaml.Marshal(gf)
	if err != nil {
		return fmt.Errorf("storage error marshalling YAML: %w", err)
	}
	return writeAtomic(path, data)
}
