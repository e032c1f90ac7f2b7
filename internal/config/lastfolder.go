package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// lastFolderState is a small JSON object remembering the last scanned
// folder between sessions.
type lastFolderState struct {
	LastFolder string `json:"last_folder"`
}

// LoadLastFolder returns the previously saved root directory, or "" if
// no state exists or it is unreadable. It never fails the caller.
func LoadLastFolder(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var state lastFolderState
	if err := json.Unmarshal(data, &state); err != nil {
		return ""
	}
	return state.LastFolder
}

// SaveLastFolder persists the root directory for the next session.
func SaveLastFolder(path, folder string) error {
	data, err := json.Marshal(lastFolderState{LastFolder: folder})
	if err != nil {
		return fmt.Errorf("encoding last folder: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
