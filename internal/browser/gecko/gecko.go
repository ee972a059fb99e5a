// Package gecko provides functionalities for reading bookmarks from
// Gecko-based web browsers like Firefox and Zen.
package gecko

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ini "gopkg.in/ini.v1"

	"github.com/mateconpizza/bma/internal/browser"
	browserpath "github.com/mateconpizza/bma/internal/browser/paths"
	"github.com/mateconpizza/bma/internal/sys/files"
)

var ErrBrowserUnsupported = errors.New("browser is unsupported")

const pathKey = "Path="

// FindProfile returns the active profile directory of a Gecko browser.
//
// Any other browser kind yields false.
func FindProfile(k browser.Kind) (string, bool) {
	registry, ok := browser.RegistryPath(k)
	if !ok {
		return "", false
	}

	return findProfileIn(registry)
}

// findProfileIn reads the profiles.ini inside registry. The last "Path=" line
// in the file wins, other keys are ignored.
func findProfileIn(registry string) (string, bool) {
	p := browserpath.GeckoProfilesFile(registry)
	f, err := os.Open(p)
	if err != nil {
		slog.Debug("opening profiles file", "path", p, "error", err)
		return "", false
	}

	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("closing profiles file", "path", p, "error", err)
		}
	}()

	var (
		profile string
		found   bool
	)

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if v, ok := strings.CutPrefix(sc.Text(), pathKey); ok {
			profile, found = v, true
		}
	}

	if err := sc.Err(); err != nil {
		slog.Error("reading profiles file", "path", p, "error", err)
		return "", false
	}

	if !found {
		return "", false
	}

	return filepath.Join(registry, profile), true
}

// Profile is an entry of the profile registry.
type Profile struct {
	Section string `json:"section"`
	Name    string `json:"name"`
	Path    string `json:"path"`
	Default bool   `json:"default"`
}

// Profiles lists the profiles registered for a Gecko browser.
func Profiles(k browser.Kind) ([]Profile, error) {
	registry, ok := browser.RegistryPath(k)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBrowserUnsupported, k)
	}

	return allProfiles(registry)
}

// allProfiles loads every [Profile*] section of the registry profiles.ini.
func allProfiles(registry string) ([]Profile, error) {
	p := browserpath.GeckoProfilesFile(registry)
	if !files.Exists(p) {
		return nil, fmt.Errorf("%w: %q", files.ErrFileNotFound, p)
	}

	inidata, err := ini.Load(p)
	if err != nil {
		return nil, fmt.Errorf("error loading file: %w", err)
	}

	result := make([]Profile, 0)
	for _, sec := range inidata.Sections() {
		if !strings.HasPrefix(sec.Name(), "Profile") {
			continue
		}

		path := sec.Key("Path").String()
		if path == "" {
			continue
		}

		if sec.Key("IsRelative").MustInt(1) == 1 {
			path = filepath.Join(registry, path)
		}

		result = append(result, Profile{
			Section: sec.Name(),
			Name:    sec.Key("Name").String(),
			Path:    path,
			Default: sec.Key("Default").MustInt(0) == 1,
		})
	}

	return result, nil
}
