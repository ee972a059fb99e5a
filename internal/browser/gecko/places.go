package gecko

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/mateconpizza/bma/internal/bookmark"
	browserpath "github.com/mateconpizza/bma/internal/browser/paths"
	"github.com/mateconpizza/bma/internal/sys/files"
)

// TempName is the fixed name of the store copy. A copy leaked by a previous
// run is overwritten.
const TempName = "places_temp.sqlite"

// bookmarkTypeURL is the moz_bookmarks.type of URL bookmarks, folders are 2
// and separators 3.
const bookmarkTypeURL = 1

const queryBookmarks = `
	SELECT mb.title AS title, mp.url AS url
	FROM moz_bookmarks mb
	JOIN moz_places mp ON mb.fk = mp.id
	WHERE mb.type = ? AND mp.url IS NOT NULL`

type placesRow struct {
	Title sql.NullString `db:"title"`
	URL   sql.NullString `db:"url"`
}

// Store reads the places database of a Gecko profile.
//
// The browser holds a lock on the live database while running, so the store
// is always read from a copy.
type Store struct {
	tempDir string
}

// NewStore returns a Store copying the database into tempDir, an empty
// tempDir uses os.TempDir.
func NewStore(tempDir string) *Store {
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	return &Store{tempDir: tempDir}
}

// TempPath returns the path of the database copy.
func (s *Store) TempPath() string {
	return filepath.Join(s.tempDir, TempName)
}

// Parse returns the URL bookmarks found in the profile's places.sqlite.
func (s *Store) Parse(ctx context.Context, profile string) ([]bookmark.Bookmark, error) {
	places := browserpath.GeckoPlacesPath(profile)
	if !files.Exists(places) {
		return nil, fmt.Errorf("%w: %q", files.ErrFileNotFound, places)
	}

	tmp := s.TempPath()
	defer files.CleanupTemp(tmp)

	if err := files.Copy(places, tmp); err != nil {
		return nil, fmt.Errorf("copying places database: %w", err)
	}

	db, err := openDatabase(ctx, tmp)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("closing database", "path", tmp, "error", err)
		}
	}()

	bs, err := queryURLBookmarks(ctx, db)
	if err != nil {
		return nil, err
	}

	slog.Debug("gecko bookmarks parsed", "profile", profile, "count", len(bs))

	return bs, nil
}

// openDatabase opens the SQLite database and verifies the connection.
func openDatabase(ctx context.Context, p string) (*sqlx.DB, error) {
	slog.Debug("opening database", "path", p)

	db, err := sqlx.Open("sqlite", p)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// queryURLBookmarks joins moz_bookmarks to moz_places. A row without title
// is named UntitledName, a row that cannot be read or has no URL is skipped.
func queryURLBookmarks(ctx context.Context, db *sqlx.DB) ([]bookmark.Bookmark, error) {
	rows, err := db.QueryxContext(ctx, queryBookmarks, bookmarkTypeURL)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}

	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("closing rows", "error", err)
		}
	}()

	bs := make([]bookmark.Bookmark, 0)
	for rows.Next() {
		var r placesRow
		if err := rows.StructScan(&r); err != nil {
			slog.Warn("skipping row", "error", err)
			continue
		}

		if !r.URL.Valid || r.URL.String == "" {
			continue
		}

		name := bookmark.UntitledName
		if r.Title.Valid {
			name = r.Title.String
		}

		bs = append(bs, bookmark.New(name, r.URL.String))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return bs, nil
}
