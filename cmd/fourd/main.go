// Command fourd plays four-dimensional chess in the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"fourd_chess/internal/config"
	"fourd_chess/internal/game"
	"fourd_chess/internal/savegame"
	"fourd_chess/internal/shell"
)

func main() {
	// A missing .env is fine; anything else is worth knowing about.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("env file: %v", err)
	}

	cfgPath := flag.String("config", getenv("FOURD_CONFIG", ""), "config file (default: XDG config dir)")
	shape := flag.String("shape", getenv("FOURD_SHAPE", ""), "board extents, e.g. 4x4x4x4 (overrides config)")
	players := flag.Int("players", getenvInt("FOURD_PLAYERS", 0), "number of players, 2-4 (overrides config)")
	load := flag.String("load", getenv("FOURD_LOAD", ""), "saved game name or path to resume")
	debug := flag.Bool("debug", getenb("FOURD_DEBUG", false), "development logging at debug level")
	writeCfg := flag.Bool("write-config", false, "save the effective config to the XDG config dir and exit")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	fatalIf(err, "config")
	if *shape != "" {
		cfg.Game.Shape = *shape
	}
	if *players != 0 {
		cfg.Game.Players = *players
	}
	if *debug {
		cfg.Log.Level = "debug"
		cfg.Log.Development = true
	}
	fatalIf(cfg.Validate(), "config")
	if *writeCfg {
		fatalIf(cfg.Save(), "write config")
		return
	}

	logger, err := cfg.Logger()
	fatalIf(err, "logger")
	defer logger.Sync()

	engCfg, err := cfg.EngineConfig()
	fatalIf(err, "config")

	eng, err := startGame(engCfg, cfg.SaveDir, *load, logger)
	fatalIf(err, "game")

	sh := shell.New(eng, shell.Options{Config: engCfg, SaveDir: cfg.SaveDir, Logger: logger})
	if err := sh.Run(os.Stdin, os.Stdout); err != nil {
		logger.Fatal("shell stopped", zap.Error(err))
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.InitConfig()
}

func startGame(cfg game.Config, saveDir, load string, logger *zap.Logger) (*game.Engine, error) {
	if load == "" {
		return game.NewEngine(cfg, logger)
	}
	path, err := savegame.Resolve(saveDir, load)
	if err != nil {
		return nil, err
	}
	snap, err := savegame.Load(path)
	if err != nil {
		return nil, err
	}
	return game.Restore(snap, logger)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			log.Fatalf("%s: %v", key, err)
		}
		return n
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

func fatalIf(err error, label string) {
	if err != nil {
		log.Fatal(fmt.Errorf("%s: %w", label, err))
	}
}
