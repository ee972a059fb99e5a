// Package format renders bookmark records for output.
package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/mateconpizza/bma/internal/bookmark"
	"github.com/mateconpizza/bma/internal/format/color"
)

var ErrUnknownFormat = errors.New("unknown format")

const (
	Plain  = "plain"
	JSON   = "json"
	Pretty = "pretty"
)

// Render writes bs to w in the given format.
func Render(w io.Writer, bs []bookmark.Bookmark, f string) error {
	switch f {
	case Plain:
		return ToPlain(w, bs)
	case JSON:
		return ToJSON(w, bs)
	case Pretty:
		return ToPretty(w, bs)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// ToJSON writes the records as an indented JSON array.
func ToJSON(w io.Writer, v any) error {
	if bs, ok := v.([]bookmark.Bookmark); ok && bs == nil {
		v = []bookmark.Bookmark{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}

	return nil
}

// ToPlain writes one "name<TAB>url" line per record.
func ToPlain(w io.Writer, bs []bookmark.Bookmark) error {
	for _, b := range bs {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", b.Name, b.URL); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	return nil
}

// ToPretty writes numbered records, the name on the first line and the URL
// below it.
func ToPretty(w io.Writer, bs []bookmark.Bookmark) error {
	pad := len(strconv.Itoa(len(bs)))
	for i, b := range bs {
		n := color.BrightGray(fmt.Sprintf("%*d", pad, i+1)).String()
		name := color.BrightGreen(b.Name).Bold().String()
		url := color.BrightBlue(b.URL).String()
		if _, err := fmt.Fprintf(w, "%s %s\n%*s %s\n", n, name, pad, "", url); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	return nil
}

// ToField writes a single field of every record, one per line.
func ToField(w io.Writer, bs []bookmark.Bookmark, field string) error {
	for i := range bs {
		s, err := bs[i].Field(field)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		if _, err := fmt.Fprintln(w, s); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	return nil
}
