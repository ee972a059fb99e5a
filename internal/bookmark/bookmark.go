// Package bookmark provides the canonical record extracted from a browser
// bookmark store.
package bookmark

import (
	"errors"
	"fmt"
)

// UntitledName is used when the source store has no title for a record.
const UntitledName = "Untitled"

var ErrUnknownField = errors.New("bookmark field unknown")

// Bookmark represents a bookmark.
type Bookmark struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// New returns a new bookmark.
func New(name, url string) Bookmark {
	return Bookmark{Name: name, URL: url}
}

// Valid reports whether the bookmark can be emitted.
func (b *Bookmark) Valid() bool {
	return b.URL != ""
}

// Field returns the value of a field.
func (b *Bookmark) Field(f string) (string, error) {
	var s string
	switch f {
	case "name", "title", "n", "1":
		s = b.Name
	case "url", "u", "2":
		s = b.URL
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, f)
	}

	return s, nil
}

func (b Bookmark) String() string {
	return fmt.Sprintf("%s: %s", b.Name, b.URL)
}
