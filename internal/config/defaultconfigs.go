package config

var DefaultConfig Config

func init() {
	DefaultConfig = Config{
		Game: GameConfig{
			Shape:   "4x4x4x4",
			Players: 2,
		},
		Log: LogConfig{
			Level:       "info",
			Development: false,
		},
		SaveDir: "",
	}
}
