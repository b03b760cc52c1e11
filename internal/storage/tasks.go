package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/timelog/internal/model"
)

// CreateTask stores a new task. It fails with ErrTaskExists if the task directory exists.
func CreateTask(base string, task model.Task) error {
	dir, err := TaskDir(base, task.Mnemonic)
	if err != nil {
		return err
	}
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("%w: %s", ErrTaskExists, task.Mnemonic)
	}
	return SaveTask(base, task)
}

// LoadTask reads tasks/<mnemonic>/task.yaml.
func LoadTask(base, mnemonic string) (model.Task, error) {
	dir, err := TaskDir(base, mnemonic)
	if err != nil {
		return model.Task{}, err
	}
	path := filepath.Join(dir, taskFileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return model.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, mnemonic)
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("storage error reading %s: %w", path, err)
	}
	var task model.Task
	if err := yaml.Unmarshal(data, &task); err != nil {
		return model.Task{}, fmt.Errorf("corrupt task file %s: %w", path, err)
	}
	task.Mnemonic = mnemonic
	return task, nil
}

// SaveTask atomically writes tasks/<mnemonic>/task.yaml.
func SaveTask(base string, task model.Task) error {
	dir, err := TaskDir(base, task.Mnemonic)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(task)
	if err != nil {
		return fmt.Errorf("storage error marshalling YAML: %w", err)
	}
	return writeAtomic(filepath.Join(dir, taskFileName), data)
}

// DeleteTask removes the task directory with its log and goals.
func DeleteTask(base, mnemonic string) error {
	dir, err := TaskDir(base, mnemonic)
	if err != nil {
		return err
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, mnemonic)
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("storage error removing %s: %w", dir, err)
	}
	return nil
}

// ListTasks returns the mnemonics of all stored tasks, sorted.
func ListTasks(base string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(base, "tasks"))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error listing tasks: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
