package main

import (
	"errors"
	"fmt"
	"sync/atomic"
	"unicode/utf8"
)

// Sentinel errors for the closed set of render failures.
var (
	ErrUnknownFont  = errors.New("unknown font")
	ErrEmptyInput   = errors.New("empty input")
	ErrTextTooLong  = errors.New("text too long")
	ErrInvalidStyle = errors.New("invalid style")
)

// ErrorKind is the stable failure classification carried by RenderResult.
type ErrorKind string

const (
	KindUnknownFont     ErrorKind = "UnknownFont"
	KindEmptyInput      ErrorKind = "EmptyInput"
	KindTextTooLong     ErrorKind = "TextTooLong"
	KindInvalidStyle    ErrorKind = "InvalidStyle"
	KindInternalFailure ErrorKind = "InternalCompositionError"
)

// errorKindOf maps a pipeline error to its kind. Anything unrecognized is an
// internal composition failure.
func errorKindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrUnknownFont):
		return KindUnknownFont
	case errors.Is(err, ErrEmptyInput):
		return KindEmptyInput
	case errors.Is(err, ErrTextTooLong):
		return KindTextTooLong
	case errors.Is(err, ErrInvalidStyle):
		return KindInvalidStyle
	default:
		return KindInternalFailure
	}
}

// GenerationRequest is one render request from the UI boundary. The core
// never retains it past the Render call.
type GenerationRequest struct {
	Text      string
	FontName  string
	Scheme    ColorScheme
	Animation AnimationTag
}

// RenderStats summarizes a successful render.
type RenderStats struct {
	RowCount  int
	ColCount  int
	CharCount int
}

// RenderError is the failure half of a RenderResult.
type RenderError struct {
	Kind    ErrorKind
	Message string
}

// RenderResult is what every Render call returns: either Art+Stats or Err.
type RenderResult struct {
	Art   StyledArt
	Stats RenderStats
	Err   *RenderError
}

// Ok reports whether the render succeeded.
func (r RenderResult) Ok() bool { return r.Err == nil }

// Metrics exposes the renderer's instrumentation counters. Compositions only
// grow on cache misses, which is how tests observe the hit path.
type Metrics struct {
	Hits         uint64
	Misses       uint64
	Compositions uint64
}

// Renderer is the single entry point the UI calls: it validates, consults the
// cache, and runs compose → style → store on a miss. Errors never escape as
// panics; everything comes back as a RenderResult.
type Renderer struct {
	dict     *FontDictionary
	composer *GlyphComposer
	styler   *StyleApplicator
	cache    *RenderCache
	cfg      Config

	hits         atomic.Uint64
	misses       atomic.Uint64
	compositions atomic.Uint64
}

// NewRenderer wires the full pipeline from one immutable config.
func NewRenderer(cfg Config) (*Renderer, error) {
	dict, err := NewFontDictionary(cfg)
	if err != nil {
		return nil, fmt.Errorf("building font dictionary: %w", err)
	}
	return &Renderer{
		dict:     dict,
		composer: NewGlyphComposer(dict, cfg),
		styler:   NewStyleApplicator(cfg),
		cache:    NewRenderCache(cfg.CacheCapacity),
		cfg:      cfg,
	}, nil
}

// Fonts returns the registered font names for UI selectors.
func (r *Renderer) Fonts() []string {
	return r.dict.ListNames()
}

// Metrics returns a snapshot of the instrumentation counters.
func (r *Renderer) Metrics() Metrics {
	return Metrics{
		Hits:         r.hits.Load(),
		Misses:       r.misses.Load(),
		Compositions: r.compositions.Load(),
	}
}

// Render runs one request through the pipeline. A failed render never
// corrupts the cache or affects later requests, and nothing is retried.
func (r *Renderer) Render(req GenerationRequest) (result RenderResult) {
	// Composition and styling are pure string work, but a font-data bug must
	// surface as a result record, not take down the host.
	defer func() {
		if rec := recover(); rec != nil {
			result = failure(KindInternalFailure, fmt.Sprintf("render panic: %v", rec))
		}
	}()

	text := normalizeText(req.Text, r.cfg.CaseFolding)
	key := cacheKey(text, req.FontName, string(req.Scheme), string(req.Animation))

	if art, ok := r.cache.Get(key); ok {
		r.hits.Add(1)
		return success(art)
	}

	composed, err := r.composer.Compose(text, req.FontName)
	if err != nil {
		return failure(errorKindOf(err), err.Error())
	}

	styled, err := r.styler.Apply(composed, req.Scheme, req.Animation)
	if err != nil {
		return failure(errorKindOf(err), err.Error())
	}

	r.compositions.Add(1)
	r.misses.Add(1)
	r.cache.Put(key, styled)

	return success(styled)
}

func success(art StyledArt) RenderResult {
	stats := RenderStats{
		RowCount:  len(art.Rows),
		CharCount: len(art.Spans),
	}
	if len(art.Rows) > 0 {
		stats.ColCount = utf8.RuneCountInString(art.Rows[0])
	}
	return RenderResult{Art: art, Stats: stats}
}

func failure(kind ErrorKind, message string) RenderResult {
	return RenderResult{Err: &RenderError{Kind: kind, Message: message}}
}
