// Package savegame stores game snapshots as indented JSON files.
package savegame

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"fourd_chess/internal/game"
)

// Version is the file format written by Save.
const Version = 1

const saveDir = "fourd-chess/saves"

var ErrUnsupportedVersion = errors.New("savegame: unsupported file version")

// File is the on-disk envelope around a snapshot.
type File struct {
	Version int           `json:"version"`
	SavedAt time.Time     `json:"savedAt"`
	Game    game.Snapshot `json:"game"`
}

// Save writes s to path, creating parent directories as needed.
func Save(path string, s game.Snapshot) error {
	data, err := json.MarshalIndent(File{Version: Version, SavedAt: time.Now().UTC(), Game: s}, "", "  ")
	if err != nil {
		return fmt.Errorf("savegame: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("savegame: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("savegame: %w", err)
	}
	return nil
}

// Load reads a snapshot written by Save. The snapshot is not validated; pass
// it to game.Restore for that.
func Load(path string) (game.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("savegame: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return game.Snapshot{}, fmt.Errorf("savegame: decode %s: %w", path, err)
	}
	if f.Version != Version {
		return game.Snapshot{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, f.Version)
	}
	return f.Game, nil
}

// DefaultPath places a named save under the user's data directory.
func DefaultPath(name string) (string, error) {
	return xdg.DataFile(filepath.Join(saveDir, name+".json"))
}

// Resolve turns a save name into a path. Anything that already looks like a
// path is returned unchanged; bare names go to dir, or to DefaultPath when
// dir is empty.
func Resolve(dir, name string) (string, error) {
	if name == "" {
		return "", errors.New("savegame: empty save name")
	}
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') || filepath.Ext(name) == ".json" {
		return name, nil
	}
	if dir != "" {
		return filepath.Join(dir, name+".json"), nil
	}
	return DefaultPath(name)
}
