package text

import (
	"log"

	"github.com/charmbracelet/glamour"
	"github.com/pkg/errors"

	"github.com/DaanHessen/encounter-tui/internal/engine"
)

// Renderer turns draw results into displayable text. Renderers only read the
// catalog; they never draw.
type Renderer interface {
	Encounter(res engine.EncounterResult, catalog *engine.Catalog) (string, error)
	Summary(sum engine.DrawSummary, odds engine.Odds) (string, error)
	Catalog(d *engine.Drawer) (string, error)
}

// styledRenderer pipes markdown through glamour for terminal output.
type styledRenderer struct {
	md Renderer
	tr *glamour.TermRenderer
}

// NewStyled renders markdown with glamour. An empty style picks one from the terminal.
func NewStyled(style string, width int) (Renderer, error) {
	opts := []glamour.TermRendererOption{}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "glamour renderer")
	}
	return &styledRenderer{md: NewMarkdown(), tr: tr}, nil
}

func (s *styledRenderer) render(md string, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return s.tr.Render(md)
}

func (s *styledRenderer) Encounter(res engine.EncounterResult, catalog *engine.Catalog) (string, error) {
	return s.render(s.md.Encounter(res, catalog))
}

func (s *styledRenderer) Summary(sum engine.DrawSummary, odds engine.Odds) (string, error) {
	return s.render(s.md.Summary(sum, odds))
}

func (s *styledRenderer) Catalog(d *engine.Drawer) (string, error) {
	return s.render(s.md.Catalog(d))
}

// WithFallback returns a renderer that prefers primary and falls back to backup on
// error. Lookup failures are not retried: they come from the data, not the renderer.
func WithFallback(primary, fallback Renderer) Renderer {
	return &fallbackRenderer{p: primary, f: fallback}
}

type fallbackRenderer struct{ p, f Renderer }

func retryable(err error) bool { return !errors.Is(err, engine.ErrNotFound) }

func (r *fallbackRenderer) Encounter(res engine.EncounterResult, catalog *engine.Catalog) (string, error) {
	if r.p == nil {
		return r.f.Encounter(res, catalog)
	}
	s, err := r.p.Encounter(res, catalog)
	if err == nil || !retryable(err) {
		return s, err
	}
	return r.f.Encounter(res, catalog)
}

func (r *fallbackRenderer) Summary(sum engine.DrawSummary, odds engine.Odds) (string, error) {
	if r.p == nil {
		return r.f.Summary(sum, odds)
	}
	if s, err := r.p.Summary(sum, odds); err == nil {
		return s, nil
	}
	return r.f.Summary(sum, odds)
}

func (r *fallbackRenderer) Catalog(d *engine.Drawer) (string, error) {
	if r.p == nil {
		return r.f.Catalog(d)
	}
	if s, err := r.p.Catalog(d); err == nil {
		return s, nil
	}
	return r.f.Catalog(d)
}

// ForFormat picks the renderer for a CLI format name. Styled output falls back to
// plain text when glamour cannot start.
func ForFormat(format string, width int) (Renderer, error) {
	switch format {
	case "", "text":
		return NewPlain(), nil
	case "markdown":
		return NewMarkdown(), nil
	case "styled":
		styled, err := NewStyled("", width)
		if err != nil {
			log.Printf("styled output unavailable: %v", err)
			return NewPlain(), nil
		}
		return WithFallback(styled, NewPlain()), nil
	default:
		return nil, errors.Errorf("unknown format %q", format)
	}
}
