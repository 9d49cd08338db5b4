package config

const (
	defaultSidecarExtension = "xmp"
	defaultLanguage         = "en"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultHistoryPath      = "~/.local/share/imagetriage/history.db"
)

// defaultExtensions mirrors the historical default set of camera formats.
var defaultExtensions = []string{"arw", "arq", "axr", "jpg", "jpeg", "tif", "tiff", "heif"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Files: Files{
			Extensions:       append([]string(nil), defaultExtensions...),
			SidecarExtension: defaultSidecarExtension,
		},
		UI: UI{
			Language: defaultLanguage,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
	}
}
