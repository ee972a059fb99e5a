package config

import "path/filepath"

const (
	FormatPlain  = "plain"
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

type Flags struct {
	Browser  string // Force browser, skip detection
	Format   string // Output format
	JSON     bool   // JSON output
	Field    string // Field to print
	ColorStr string // WithColor enable color output
	Color    bool   // Application color enable
	Verbose  int    // Verbose flag
}

// App is the default application configuration.
var App = &AppConfig{
	Name:   appName,
	Cmd:    command,
	Flags:  &Flags{},
	Format: FormatPlain,
	Info: information{
		URL:     "https://github.com/mateconpizza/bma#readme",
		Title:   "bma: bookmark analyzer",
		Desc:    "Read the bookmarks of your default browser",
		Version: version,
	},
	Env: environment{
		Browser: "BMA_BROWSER",
		Format:  "BMA_FORMAT",
	},
}

// SetAppPaths sets the app config path.
func SetAppPaths(p string) {
	App.Path.Config = p
	App.Path.ConfigFile = filepath.Join(p, configFilename)
}

// Version returns the application version.
func Version() string {
	return version
}
