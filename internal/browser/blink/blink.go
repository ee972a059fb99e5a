// Package blink provides functionalities for reading bookmarks from
// Blink-based web browsers like Chrome, Brave, and Edge.
package blink

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mateconpizza/bma/internal/bookmark"
)

type Record = bookmark.Bookmark

var (
	ErrReadBookmarks = errors.New("error reading bookmarks file")
	ErrInvalidJSON   = errors.New("invalid bookmarks JSON")
)

// rootKeys are the bookmark roots read from the file, in output order.
var rootKeys = []string{"bookmark_bar", "other", "synced"}

const (
	nodeURL    = "url"
	nodeFolder = "folder"
)

// Parse reads a Blink bookmarks file and returns its records.
func Parse(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadBookmarks, err)
	}

	bs, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, path)
	}

	slog.Debug("blink bookmarks parsed", "path", path, "count", len(bs))

	return bs, nil
}

// Decode extracts the records from the contents of a Blink bookmarks file.
//
// The JSON must be valid. A missing or non-object "roots" value yields no
// records.
//
//	{
//	  "roots": {
//	    "bookmark_bar": {"type": "folder", "children": [...]},
//	    "other": {...},
//	    "synced": {...}
//	  }
//	}
func Decode(data []byte) ([]Record, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	results := make([]Record, 0)

	top, ok := doc.(map[string]any)
	if !ok {
		return results, nil
	}

	roots, ok := top["roots"].(map[string]any)
	if !ok {
		return results, nil
	}

	for _, key := range rootKeys {
		node, ok := roots[key]
		if !ok {
			continue
		}

		traverse(node, &results)
	}

	return results, nil
}

// traverse walks a bookmark node depth-first appending url nodes to bs.
func traverse(node any, bs *[]Record) {
	m, ok := node.(map[string]any)
	if !ok {
		return
	}

	typeStr, ok := m["type"].(string)
	if !ok {
		return
	}

	switch typeStr {
	case nodeURL:
		name, okName := m["name"].(string)
		url, okURL := m["url"].(string)
		if !okName || !okURL || url == "" {
			return
		}

		*bs = append(*bs, bookmark.New(name, url))
	case nodeFolder:
		children, ok := m["children"].([]any)
		if !ok {
			return
		}

		for _, child := range children {
			traverse(child, bs)
		}
	}
}
