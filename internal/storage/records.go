package storage

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tiliavir/timelog/internal/model"
)

// LoadRecords reads every record of a sessions.log. A missing file yields no
// records. A corrupt file is backed up to <path>.corrupt and an error returned.
func LoadRecords(path string) ([]model.Record, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []model.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	records := []model.Record{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		var rec model.Record
		if err := json.Unmarshal(text, &rec); err != nil {
			backupPath := path + ".corrupt"
			_ = os.Rename(path, backupPath)
			return nil, fmt.Errorf("corrupt record on line %d of %s (backed up to %s): %w", line, path, backupPath, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}
	return records, nil
}

// AppendRecord appends one record to a sessions.log, creating it if needed.
func AppendRecord(path string, rec model.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("storage error opening %s: %w", path, err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		_ = f.Close()
		return fmt.Errorf("storage error writing %s: %w", path, err)
	}
	return f.Close()
}
