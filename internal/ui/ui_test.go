package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaanHessen/encounter-tui/internal/engine"
	"github.com/DaanHessen/encounter-tui/internal/text"
	"github.com/DaanHessen/encounter-tui/internal/util"
)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	quitKey  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
)

func runeKey(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func newTestModel(t *testing.T, seedText string, r text.Renderer) model {
	t.Helper()
	d, err := engine.DefaultDrawer()
	if err != nil {
		t.Fatalf("DefaultDrawer: %v", err)
	}
	seed, err := engine.NewRunSeed(seedText)
	if err != nil {
		t.Fatalf("NewRunSeed: %v", err)
	}
	cfg := util.Config{Rounds: util.DefaultRounds, Theme: "catppuccin"}
	m := initialModel(d, seed, cfg, r)
	if m.err != nil {
		t.Fatalf("initialModel: %v", m.err)
	}
	return m
}

func press(t *testing.T, m model, keys ...tea.KeyMsg) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(model)
	}
	return m, cmd
}

func TestDrawKeyRecordsEncounter(t *testing.T) {
	m := newTestModel(t, "tui-draw", text.NewPlain())
	m, _ = press(t, m, enterKey, tea.KeyMsg{Type: tea.KeySpace})
	if m.draws != 2 || len(m.recent) != 2 {
		t.Fatalf("draws=%d recent=%d", m.draws, len(m.recent))
	}
	if !strings.Contains(m.card, "draws a card") {
		t.Fatalf("card not rendered: %q", m.card)
	}
}

func TestSameSeedSameSession(t *testing.T) {
	keys := []tea.KeyMsg{enterKey, enterKey, enterKey, enterKey, enterKey}
	a, _ := press(t, newTestModel(t, "tui-replay", text.NewPlain()), keys...)
	b, _ := press(t, newTestModel(t, "tui-replay", text.NewPlain()), keys...)
	for i := range a.recent {
		if a.recent[i] != b.recent[i] {
			t.Fatalf("draw %d differs: %v vs %v", i, a.recent[i], b.recent[i])
		}
	}
}

func TestResetReplaysFromSeed(t *testing.T) {
	m := newTestModel(t, "tui-reset", text.NewPlain())
	m, _ = press(t, m, enterKey, enterKey, enterKey)
	first := append([]engine.EncounterResult{}, m.recent...)
	m, _ = press(t, m, runeKey("r"))
	if m.draws != 0 || len(m.recent) != 0 || m.card != "" {
		t.Fatalf("reset left state behind: draws=%d recent=%d", m.draws, len(m.recent))
	}
	m, _ = press(t, m, enterKey, enterKey, enterKey)
	for i := range first {
		if first[i] != m.recent[i] {
			t.Fatalf("replay draw %d differs: %v vs %v", i, first[i], m.recent[i])
		}
	}
}

func TestSimulateKeyRendersSummary(t *testing.T) {
	m := newTestModel(t, "tui-sim", text.NewPlain())
	m, _ = press(t, m, runeKey("s"))
	if m.view != viewSummary || !strings.Contains(m.summary, "Summary of 10 draws") {
		t.Fatalf("view=%s summary=%q", m.view, m.summary)
	}
	m, _ = press(t, m, runeKey("+"), runeKey("s"))
	if !strings.Contains(m.summary, "Summary of 20 draws") {
		t.Fatalf("batch size not applied: %q", m.summary)
	}
}

func TestBatchSizeFloorsAtZero(t *testing.T) {
	m := newTestModel(t, "tui-batch", text.NewPlain())
	m, _ = press(t, m, runeKey("-"), runeKey("-"), runeKey("-"))
	if m.rounds != 0 {
		t.Fatalf("rounds = %d, want 0", m.rounds)
	}
	m, _ = press(t, m, runeKey("s"))
	if !strings.Contains(m.summary, "Summary of 0 draws") {
		t.Fatalf("zero batch summary: %q", m.summary)
	}
}

func TestThemeCycle(t *testing.T) {
	m := newTestModel(t, "tui-theme", text.NewPlain())
	seen := map[string]bool{m.theme: true}
	for range themeNames() {
		m, _ = press(t, m, runeKey("t"))
		seen[m.theme] = true
	}
	if m.theme != "catppuccin" || len(seen) != len(palettes) {
		t.Fatalf("theme cycle ended at %s after visiting %d themes", m.theme, len(seen))
	}
	if got := nextThemeName("catppuccin", -1); got != "solarized_dark" {
		t.Fatalf("backwards from first theme = %s", got)
	}
	if got := nextThemeName("unknown", 1); got != "dracula" {
		t.Fatalf("unknown theme should start from the first, got %s", got)
	}
}

func TestViewCycling(t *testing.T) {
	m := newTestModel(t, "tui-views", text.NewPlain())
	tab := tea.KeyMsg{Type: tea.KeyTab}
	want := []string{viewSummary, viewCatalog, viewDraw}
	for _, v := range want {
		m, _ = press(t, m, tab)
		if m.view != v {
			t.Fatalf("view = %s, want %s", m.view, v)
		}
	}
	m, _ = press(t, m, runeKey("?"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewDraw {
		t.Fatalf("esc should return to the draw view, got %s", m.view)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, "tui-quit", text.NewPlain())
	if _, cmd := press(t, m, quitKey); cmd == nil {
		t.Fatal("expected quit command")
	}
}

type brokenRenderer struct{ text.Renderer }

func (brokenRenderer) Encounter(engine.EncounterResult, *engine.Catalog) (string, error) {
	return "", errors.New("render failed")
}

func TestRenderFailureStopsProgram(t *testing.T) {
	m := newTestModel(t, "tui-fail", brokenRenderer{Renderer: text.NewPlain()})
	m, cmd := press(t, m, enterKey)
	if m.err == nil || cmd == nil {
		t.Fatalf("err=%v cmd=%v", m.err, cmd)
	}
	if m.draws != 0 {
		t.Fatalf("failed draw counted")
	}
}

func TestViewShowsSeedAndRecent(t *testing.T) {
	m := newTestModel(t, "tui-view", text.NewPlain())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(model)
	if m.width != 120 || m.height != 40 {
		t.Fatalf("window size not stored: %dx%d", m.width, m.height)
	}
	m, _ = press(t, m, enterKey)
	out := m.View()
	for _, want := range []string{"seed tui-view", "Draws 1", "Recent draws"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}
