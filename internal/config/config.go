package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"go.uber.org/zap"

	"fourd_chess/internal/game"
	"fourd_chess/internal/shared"
)

var (
	cfgFile = "fourd-chess/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type GameConfig struct {
	Shape   string `json:"shape"`
	Players int    `json:"players"`
}

type LogConfig struct {
	Level       string `json:"level"`
	Development bool   `json:"development"`
}

type Config struct {
	Game    GameConfig `json:"game"`
	Log     LogConfig  `json:"log"`
	SaveDir string     `json:"save_dir"`
}

// InitConfig starts from the defaults and overlays the user's config file
// when one exists.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig
		if err := config.Validate(); err != nil {
			return nil, err
		}
		return &config, nil
	}
	return Load(absPath)
}

// Load reads the config at filePath over the defaults.
func Load(filePath string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(filePath, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if _, err := c.EngineConfig(); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	return nil
}

// EngineConfig converts the game section into engine construction input.
func (c *Config) EngineConfig() (game.Config, error) {
	shape, err := shared.ParseShape(c.Game.Shape)
	if err != nil {
		return game.Config{}, err
	}
	if !shape.Valid() {
		return game.Config{}, fmt.Errorf("shape %s has an empty axis", c.Game.Shape)
	}
	if c.Game.Players < game.MinPlayers || c.Game.Players > game.MaxPlayers {
		return game.Config{}, fmt.Errorf("players must be between %d and %d, got %d", game.MinPlayers, game.MaxPlayers, c.Game.Players)
	}
	return game.Config{Shape: shape, Players: c.Game.Players}, nil
}

// Logger builds a zap logger for the configured level, with the development
// encoder when Development is set.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
