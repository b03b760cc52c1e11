package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	logFileName   = "sessions.log"
	taskFileName  = "task.yaml"
	goalsFileName = "goals.yaml"
)

var (
	ErrTaskExists      = errors.New("task already exists")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
)

// BaseDir returns the default data directory (~/.timelog).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".timelog"), nil
}

// ValidateMnemonic rejects mnemonics that cannot be used as a directory name.
func ValidateMnemonic(mnemonic string) error {
	if mnemonic == "" || mnemonic == "." || mnemonic == ".." ||
		strings.ContainsAny(mnemonic, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidMnemonic, mnemonic)
	}
	return nil
}

// TaskDir returns tasks/<mnemonic> under base.
func TaskDir(base, mnemonic string) (string, error) {
	if err := ValidateMnemonic(mnemonic); err != nil {
		return "", err
	}
	return filepath.Join(base, "tasks", mnemonic), nil
}

// scopeDir is the directory holding the log and goals of a task, or of the
// workday in general when mnemonic is nil.
func scopeDir(base string, mnemonic *string) (string, error) {
	if mnemonic == nil {
		return filepath.Join(base, "work"), nil
	}
	return TaskDir(base, *mnemonic)
}

// LogPath returns work/sessions.log, or tasks/<mnemonic>/sessions.log.
func LogPath(base string, mnemonic *string) (string, error) {
	dir, err := scopeDir(base, mnemonic)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logFileName), nil
}

// GoalsPath returns the goals.yaml next to the scope's sessions.log.
func GoalsPath(base string, mnemonic *string) (string, error) {
	dir, err := scopeDir(base, mnemonic)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, goalsFileName), nil
}

// writeAtomic writes data to a temp file and renames it over path.
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
