package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/mateconpizza/bma/internal/bookmark"
	"github.com/mateconpizza/bma/internal/browser"
	"github.com/mateconpizza/bma/internal/browser/gecko"
	"github.com/mateconpizza/bma/internal/sys/files"
)

const chromeBookmarks = `{"roots": {
	"bookmark_bar": {"type": "folder", "children": [
		{"type": "folder", "name": "dev", "children": [
			{"type": "url", "name": "A", "url": "http://a"},
			{"type": "url", "name": "broken"}
		]}
	]},
	"other": {"type": "folder", "children": [
		{"type": "url", "name": "B", "url": "http://b"}
	]}
}}`

// setupHome sets $HOME to a new temporary directory.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	return home
}

func writeFile(t *testing.T, p, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
}

// setupGeckoProfile creates a profile registry with a places database
// holding two URL bookmarks, one of them without title.
func setupGeckoProfile(t *testing.T, registry string) string {
	t.Helper()
	writeFile(t, filepath.Join(registry, "profiles.ini"), "[Profile0]\nPath=old.default\n[Profile1]\nPath=abc.default-release\n")

	profile := filepath.Join(registry, "abc.default-release")
	require.NoError(t, os.MkdirAll(profile, 0o755))

	db, err := sqlx.Open("sqlite", filepath.Join(profile, "places.sqlite"))
	require.NoError(t, err)

	stmts := []string{
		"CREATE TABLE moz_places (id INTEGER PRIMARY KEY, url LONGVARCHAR)",
		"CREATE TABLE moz_bookmarks (id INTEGER PRIMARY KEY, type INTEGER, fk INTEGER, title LONGVARCHAR)",
		"INSERT INTO moz_places (id, url) VALUES (1, 'https://zen-browser.app/'), (2, 'https://go.dev/'), (3, NULL)",
		"INSERT INTO moz_bookmarks (type, fk, title) VALUES (2, NULL, 'toolbar'), (1, 1, 'Zen'), (1, 2, NULL), (1, 3, 'null url')",
	}
	for _, s := range stmts {
		_, err := db.Exec(s)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	return profile
}

func assertValid(t *testing.T, bs []bookmark.Bookmark) {
	t.Helper()
	for _, b := range bs {
		assert.True(t, b.Valid(), "bookmark without url: %+v", b)
	}
}

func TestExtractUnknown(t *testing.T) {
	setupHome(t)

	e := New(WithDetector(Fixed(browser.Unknown)))
	bs, err := e.Extract(context.Background())
	assert.ErrorIs(t, err, ErrDetectionFailed)
	assert.Equal(t, "could not detect browser", err.Error())
	assert.Nil(t, bs)
}

func TestExtractBlink(t *testing.T) {
	home := setupHome(t)

	tests := []struct {
		kind   browser.Kind
		vendor string
	}{
		{browser.Chrome, "google-chrome"},
		{browser.Brave, "BraveSoftware/Brave-Browser"},
		{browser.Edge, "microsoft-edge"},
	}

	for _, tt := range tests {
		writeFile(t, filepath.Join(home, ".config", tt.vendor, "Default", "Bookmarks"), chromeBookmarks)

		e := New(WithDetector(Fixed(tt.kind)))
		bs, err := e.Extract(context.Background())
		require.NoError(t, err, tt.kind.String())

		assert.ElementsMatch(t, []bookmark.Bookmark{
			bookmark.New("A", "http://a"),
			bookmark.New("B", "http://b"),
		}, bs, tt.kind.String())
		assertValid(t, bs)
	}
}

func TestExtractBlinkFileNotFound(t *testing.T) {
	home := setupHome(t)

	e := New(WithDetector(Fixed(browser.Chrome)))
	bs, err := e.Extract(context.Background())
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Contains(t, err.Error(), filepath.Join(home, ".config", "google-chrome", "Default", "Bookmarks"))
	assert.Nil(t, bs)
}

func TestExtractBlinkMalformed(t *testing.T) {
	home := setupHome(t)
	writeFile(t, filepath.Join(home, ".config", "microsoft-edge", "Default", "Bookmarks"), "{not json")

	e := New(WithDetector(Fixed(browser.Edge)))
	bs, err := e.Extract(context.Background())
	assert.ErrorIs(t, err, ErrParse)
	assert.Nil(t, bs)
}

func TestExtractBlinkNoRoots(t *testing.T) {
	home := setupHome(t)
	writeFile(t, filepath.Join(home, ".config", "google-chrome", "Default", "Bookmarks"), `{"version": 1}`)

	e := New(WithDetector(Fixed(browser.Chrome)))
	bs, err := e.Extract(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bs)
}

func TestExtractNoHome(t *testing.T) {
	t.Setenv("HOME", "")

	e := New(WithDetector(Fixed(browser.Brave)))
	_, err := e.Extract(context.Background())
	assert.ErrorIs(t, err, ErrPathUnresolved)

	e = New(WithDetector(Fixed(browser.Firefox)))
	_, err = e.Extract(context.Background())
	assert.ErrorIs(t, err, ErrPathUnresolved)
}

func TestExtractGecko(t *testing.T) {
	home := setupHome(t)
	setupGeckoProfile(t, filepath.Join(home, ".zen"))
	setupGeckoProfile(t, filepath.Join(home, ".mozilla", "firefox"))

	for _, k := range []browser.Kind{browser.Zen, browser.Firefox} {
		tmp := t.TempDir()
		e := New(WithDetector(Fixed(k)), WithTempDir(tmp))

		bs, err := e.Extract(context.Background())
		require.NoError(t, err, k.String())

		assert.ElementsMatch(t, []bookmark.Bookmark{
			bookmark.New("Zen", "https://zen-browser.app/"),
			bookmark.New(bookmark.UntitledName, "https://go.dev/"),
		}, bs, k.String())
		assertValid(t, bs)
		assert.False(t, files.Exists(filepath.Join(tmp, gecko.TempName)))
	}
}

func TestExtractGeckoProfileNotFound(t *testing.T) {
	setupHome(t)

	e := New(WithDetector(Fixed(browser.Firefox)))
	bs, err := e.Extract(context.Background())
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.ErrorIs(t, err, ErrPathUnresolved)
	assert.Contains(t, err.Error(), "could not find profile")
	assert.Nil(t, bs)
}

func TestExtractGeckoStoreNotFound(t *testing.T) {
	home := setupHome(t)
	writeFile(t, filepath.Join(home, ".zen", "profiles.ini"), "Path=empty.default\n")

	e := New(WithDetector(Fixed(browser.Zen)), WithTempDir(t.TempDir()))
	_, err := e.Extract(context.Background())
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Contains(t, err.Error(), filepath.Join(home, ".zen", "empty.default", "places.sqlite"))
}

func TestExtractGeckoStoreError(t *testing.T) {
	home := setupHome(t)
	writeFile(t, filepath.Join(home, ".zen", "profiles.ini"), "Path=broken.default\n")
	writeFile(t, filepath.Join(home, ".zen", "broken.default", "places.sqlite"), "definitely not a database file, only text")

	tmp := t.TempDir()
	e := New(WithDetector(Fixed(browser.Zen)), WithTempDir(tmp))
	bs, err := e.Extract(context.Background())
	assert.ErrorIs(t, err, ErrStore)
	assert.Nil(t, bs)
	assert.False(t, files.Exists(filepath.Join(tmp, gecko.TempName)))
}

func TestResolve(t *testing.T) {
	home := setupHome(t)
	profile := setupGeckoProfile(t, filepath.Join(home, ".mozilla", "firefox"))

	e := New(WithDetector(Fixed(browser.Firefox)))
	src, err := e.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Source{Kind: browser.Firefox, Path: profile}, src)
}

func TestDetectorFunc(t *testing.T) {
	t.Parallel()

	called := false
	d := DetectorFunc(func(context.Context) browser.Kind {
		called = true
		return browser.Zen
	})

	assert.Equal(t, browser.Zen, d.Detect(context.Background()))
	assert.True(t, called)
}
