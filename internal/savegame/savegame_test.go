package savegame

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/embervale/internal/player"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	data := &player.Data{
		Name:      "root",
		Direction: player.DirectionLeft,
		Position:  player.Position{X: 120, Y: 88},
	}

	if err := Save(dir, data); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Name != "root" {
		t.Errorf("Expected name 'root', got %q", loaded.Name)
	}
	if loaded.Direction != player.DirectionLeft {
		t.Errorf("Expected DirectionLeft, got %v", loaded.Direction)
	}
	if loaded.Position.X != 120 || loaded.Position.Y != 88 {
		t.Errorf("Expected position (120, 88), got (%v, %v)", loaded.Position.X, loaded.Position.Y)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "saves")

	if err := Save(dir, &player.Data{Name: "root"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	path, err := Path(dir)
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected save file at %s, got %v", path, err)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()

	if err := Save(dir, &player.Data{Name: "root"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected only the save file, got %d entries", len(entries))
	}
	if entries[0].Name() != "player_data.json" {
		t.Errorf("Expected player_data.json, got %q", entries[0].Name())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrNoSave) {
		t.Errorf("Expected ErrNoSave, got %v", err)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path, err := Path(dir)
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err = Load(dir)
	if err == nil {
		t.Error("Expected error for corrupt save, got nil")
	}
	if errors.Is(err, ErrNoSave) {
		t.Error("Expected corrupt save to not report ErrNoSave")
	}
}

func TestSaveOverwritesExisting(t *testing.T) {
	dir := t.TempDir()

	if err := Save(dir, &player.Data{Name: "first", Direction: player.DirectionDownwards}); err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	if err := Save(dir, &player.Data{Name: "second", Direction: player.DirectionUpwards}); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Name != "second" || loaded.Direction != player.DirectionUpwards {
		t.Errorf("Expected the second record, got %+v", loaded)
	}
}
