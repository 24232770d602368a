// Package savegame persists the player record as a small JSON file. Writes
// go through a temp file and rename, so a crash mid-save never leaves a
// half-written record behind.
package savegame

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"chosenoffset.com/embervale/internal/player"
)

const fileName = "player_data.json"

// ErrNoSave reports that no save file exists yet.
var ErrNoSave = errors.New("no save file")

// Dir resolves the save directory: dir itself when non-empty, otherwise a
// game-specific folder under the user's config directory.
func Dir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(base, "embervale"), nil
}

// Path returns the save file path inside the resolved directory.
func Path(dir string) (string, error) {
	resolved, err := Dir(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(resolved, fileName), nil
}

// Save writes the record, creating the save directory if needed.
func Save(dir string, data *player.Data) error {
	path, err := Path(dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating save dir: %w", err)
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding save data: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("writing save file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing save file: %w", err)
	}
	return nil
}

// Load reads the record. A missing file returns ErrNoSave so callers can
// fall back to a fresh start.
func Load(dir string) (*player.Data, error) {
	path, err := Path(dir)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("reading save file: %w", err)
	}

	var data player.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing save file: %w", err)
	}
	return &data, nil
}
