// Package browserpath provides functions to generate the on-disk locations
// of browser bookmark stores under the user's home directory.
package browserpath

import (
	"os"
	"path/filepath"
)

const (
	blinkProfile   = "Default"
	blinkBookmarks = "Bookmarks"
	geckoProfiles  = "profiles.ini"
	geckoPlaces    = "places.sqlite"
)

// Home returns the user's home directory.
//
// It reports false when $HOME is unset or empty.
func Home() (string, bool) {
	h, err := os.UserHomeDir()
	if err != nil || h == "" {
		return "", false
	}

	return h, true
}

// BlinkBookmarksPath returns the path to the Blink-based browser's bookmarks
// file for the default profile.
//
//	~/.config/<vendor>/Default/Bookmarks
func BlinkBookmarksPath(home, vendor string) string {
	return filepath.Join(home, ".config", vendor, blinkProfile, blinkBookmarks)
}

// GeckoRegistryPath returns the directory holding the Gecko-based browser's
// profile registry.
func GeckoRegistryPath(home, p string) string {
	return filepath.Join(home, p)
}

// GeckoProfilesFile returns the path to the profile registry file inside the
// given registry directory.
func GeckoProfilesFile(registry string) string {
	return filepath.Join(registry, geckoProfiles)
}

// GeckoPlacesPath returns the path to the bookmarks database inside a Gecko
// profile directory.
func GeckoPlacesPath(profile string) string {
	return filepath.Join(profile, geckoPlaces)
}
