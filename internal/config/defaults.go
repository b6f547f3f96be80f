package config

const (
	defaultCategoriesFile   = "categories.json"
	defaultLogDir           = "logs"
	defaultStateDir         = "~/.local/share/tidy"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 30
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CategoriesFile: defaultCategoriesFile,
			LogDir:         defaultLogDir,
			StateDir:       defaultStateDir,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
		History: History{
			Enabled: true,
		},
	}
}
