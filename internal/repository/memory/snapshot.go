// Package memory provides in-process implementations of the record store
// repositories. Each store is a map from id to record guarded by a lock,
// optionally persisted as one JSON file per store (a flat array of records)
// so the engine survives restarts without a database.
package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// loadSnapshot reads a store's JSON file into v. A missing file is not an
// error: the store simply starts empty.
func loadSnapshot(path string, v interface{}) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("snapshot read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("corrupt snapshot %s: %w", path, err)
	}
	return nil
}

// saveSnapshot atomically writes v as the store's JSON file: write to a temp
// file, then rename over the old one.
func saveSnapshot(path string, v interface{}) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("snapshot mkdir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot marshal: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("snapshot write: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("snapshot rename: %w", err)
	}
	return nil
}

// storeFile resolves the snapshot path for a store name, or "" when the
// repository runs without persistence.
func storeFile(dir, name string) string {
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, name+".json")
}
