package config

// Config holds all application configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Session SessionConfig `mapstructure:"session" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	UI      UIConfig      `mapstructure:"ui" validate:"required"`
}

// StorageConfig selects where the session list lives.
type StorageConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=file memory"`
	Dir     string `mapstructure:"dir" validate:"required"`
}

// SessionConfig identifies the session. Two shells get two lists.
type SessionConfig struct {
	ID string `mapstructure:"id" validate:"required,excludesall=/"`
}

// LogConfig controls the slog logger.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	File  string `mapstructure:"file"`
}

// UIConfig tunes rendering.
type UIConfig struct {
	Theme  string `mapstructure:"theme" validate:"required,oneof=classic neon mono"`
	Locale string `mapstructure:"locale" validate:"required,bcp47_language_tag"`
	Sort   string `mapstructure:"sort" validate:"required,oneof=input name checked"`
}
