// Package extract detects the default browser and reads its bookmarks into
// canonical records.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mateconpizza/bma/internal/bookmark"
	"github.com/mateconpizza/bma/internal/browser"
	"github.com/mateconpizza/bma/internal/browser/blink"
	"github.com/mateconpizza/bma/internal/browser/gecko"
	"github.com/mateconpizza/bma/internal/sys/files"
)

var (
	ErrDetectionFailed = errors.New("could not detect browser")
	ErrPathUnresolved  = errors.New("could not determine bookmark path")
	ErrProfileNotFound = fmt.Errorf("%w: could not find profile", ErrPathUnresolved)
	ErrFileNotFound    = errors.New("bookmark file not found")
	ErrParse           = errors.New("parsing bookmarks")
	ErrStore           = errors.New("reading bookmark store")
)

// Detector identifies the default browser.
type Detector interface {
	Detect(ctx context.Context) browser.Kind
}

// DetectorFunc adapts a function to a Detector.
type DetectorFunc func(ctx context.Context) browser.Kind

func (f DetectorFunc) Detect(ctx context.Context) browser.Kind { return f(ctx) }

// Fixed returns a Detector that always reports k.
func Fixed(k browser.Kind) Detector {
	return DetectorFunc(func(context.Context) browser.Kind { return k })
}

// OptFn is an option function for the extractor.
type OptFn func(*Options)

// Options represents the options for the extractor.
type Options struct {
	detector Detector
	tempDir  string
}

func defaultOpts() Options {
	return Options{
		detector: browser.NewDetector(nil),
	}
}

// WithDetector sets the detector used to identify the browser.
func WithDetector(d Detector) OptFn {
	return func(o *Options) {
		o.detector = d
	}
}

// WithTempDir sets the directory where the Gecko store is copied.
func WithTempDir(s string) OptFn {
	return func(o *Options) {
		o.tempDir = s
	}
}

// Extractor reads the bookmarks of the default browser.
type Extractor struct {
	Options
	store *gecko.Store
}

// New returns a new extractor.
func New(opts ...OptFn) *Extractor {
	o := defaultOpts()
	for _, fn := range opts {
		fn(&o)
	}

	return &Extractor{
		Options: o,
		store:   gecko.NewStore(o.tempDir),
	}
}

// Source is the resolved bookmark location of a browser.
type Source struct {
	Kind browser.Kind `json:"browser"`
	// Path is the bookmarks file for Blink browsers and the profile
	// directory for Gecko browsers.
	Path string `json:"path"`
}

// Resolve detects the browser and resolves where its bookmarks are stored.
func (e *Extractor) Resolve(ctx context.Context) (*Source, error) {
	k := e.detector.Detect(ctx)
	slog.Info("detected browser", "browser", k)

	switch k.Engine() {
	case browser.EngineBlink:
		p, ok := browser.BookmarkPath(k)
		if !ok {
			return nil, ErrPathUnresolved
		}

		if !files.Exists(p) {
			return nil, fmt.Errorf("%w: %q", ErrFileNotFound, p)
		}

		return &Source{Kind: k, Path: p}, nil

	case browser.EngineGecko:
		p, ok := gecko.FindProfile(k)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, k)
		}

		slog.Info("using profile", "path", p)

		return &Source{Kind: k, Path: p}, nil

	case browser.EngineNone:
		return nil, ErrDetectionFailed
	}

	return nil, ErrDetectionFailed
}

// Extract returns the bookmarks of the detected browser.
//
// Every failure is terminal, nothing is retried and no partial list is
// returned.
func (e *Extractor) Extract(ctx context.Context) ([]bookmark.Bookmark, error) {
	src, err := e.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	var bs []bookmark.Bookmark
	switch src.Kind.Engine() {
	case browser.EngineBlink:
		bs, err = blink.Parse(src.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}

	case browser.EngineGecko:
		bs, err = e.store.Parse(ctx, src.Path)
		if errors.Is(err, files.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStore, err)
		}

	case browser.EngineNone:
		return nil, ErrDetectionFailed
	}

	slog.Info("bookmarks found", "count", len(bs))

	return bs, nil
}
