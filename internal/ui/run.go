package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaanHessen/encounter-tui/internal/engine"
	"github.com/DaanHessen/encounter-tui/internal/text"
	"github.com/DaanHessen/encounter-tui/internal/util"
)

// Run boots the TUI program and blocks until it exits. A draw failure ends the
// program and is returned.
func Run(ctx context.Context, drawer *engine.Drawer, seed engine.RunSeed, cfg util.Config) error {
	renderer, err := text.ForFormat(util.FormatStyled, 0)
	if err != nil {
		return err
	}
	m := initialModel(drawer, seed, cfg, renderer)
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
