// Package browser identifies the system default web browser and resolves the
// location of its bookmark store.
package browser

import (
	"context"
	"log/slog"
	"strings"

	browserpath "github.com/mateconpizza/bma/internal/browser/paths"
	"github.com/mateconpizza/bma/internal/sys"
)

// Kind is one of the recognized browser families.
type Kind int

const (
	Unknown Kind = iota
	Chrome
	Firefox
	Brave
	Edge
	Zen
)

func (k Kind) String() string {
	switch k {
	case Chrome:
		return "Chrome"
	case Firefox:
		return "Firefox"
	case Brave:
		return "Brave"
	case Edge:
		return "Edge"
	case Zen:
		return "Zen"
	case Unknown:
		return "Unknown"
	}

	return "Unknown"
}

// MarshalText encodes the browser by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Engine groups browsers sharing a bookmark storage technology.
type Engine int

const (
	EngineNone  Engine = iota
	EngineBlink        // JSON tree
	EngineGecko        // relational store
)

// Engine returns the storage family of the browser.
func (k Kind) Engine() Engine {
	switch k {
	case Chrome, Brave, Edge:
		return EngineBlink
	case Firefox, Zen:
		return EngineGecko
	case Unknown:
		return EngineNone
	}

	return EngineNone
}

// token order matters: some Zen identifiers contain firefox-like substrings.
var detectionOrder = []struct {
	token string
	kind  Kind
}{
	{"zen", Zen},
	{"chrome", Chrome},
	{"firefox", Firefox},
	{"brave", Brave},
	{"edge", Edge},
}

// vendor subdirectories under ~/.config.
var blinkBrowserPaths = map[Kind]string{
	Chrome: "google-chrome",
	Brave:  "BraveSoftware/Brave-Browser",
	Edge:   "microsoft-edge",
}

// profile registry directories under $HOME.
var geckoBrowserPaths = map[Kind]string{
	Firefox: ".mozilla/firefox",
	Zen:     ".zen",
}

// Classify maps a free-text browser identifier to a Kind.
func Classify(s string) Kind {
	s = strings.ToLower(s)
	for _, d := range detectionOrder {
		if strings.Contains(s, d.token) {
			return d.kind
		}
	}

	return Unknown
}

// Runner runs an external command and returns its standard output.
type Runner func(ctx context.Context, name string, arg ...string) ([]byte, error)

// Detector queries the OS for the default web browser.
type Detector struct {
	run Runner
}

// NewDetector returns a Detector using the given runner, a nil runner uses
// sys.Output.
func NewDetector(r Runner) *Detector {
	if r == nil {
		r = sys.Output
	}

	return &Detector{run: r}
}

// Detect returns the default browser family.
//
// Failure to query the OS is not an error, it yields Unknown.
func (d *Detector) Detect(ctx context.Context) Kind {
	out, err := d.run(ctx, "xdg-settings", "get", "default-web-browser")
	if err != nil {
		slog.Debug("querying default browser", "error", err)
		return Unknown
	}

	k := Classify(string(out))
	slog.Debug("default browser", "output", strings.TrimSpace(string(out)), "kind", k)

	return k
}

// Detect returns the default browser family using xdg-settings.
func Detect(ctx context.Context) Kind {
	return NewDetector(nil).Detect(ctx)
}

// BookmarkPath returns the base bookmark location for the browser.
//
// Blink browsers resolve to the bookmarks file itself. Gecko browsers resolve
// to the home directory, the real store is found through the profile
// registry.
func BookmarkPath(k Kind) (string, bool) {
	home, ok := browserpath.Home()
	if !ok {
		return "", false
	}

	switch k.Engine() {
	case EngineBlink:
		return browserpath.BlinkBookmarksPath(home, blinkBrowserPaths[k]), true
	case EngineGecko:
		return home, true
	case EngineNone:
		return "", false
	}

	return "", false
}

// RegistryPath returns the profile registry directory of a Gecko browser.
func RegistryPath(k Kind) (string, bool) {
	p, ok := geckoBrowserPaths[k]
	if !ok {
		return "", false
	}

	home, ok := browserpath.Home()
	if !ok {
		return "", false
	}

	return browserpath.GeckoRegistryPath(home, p), true
}
