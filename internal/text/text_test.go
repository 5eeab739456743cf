package text

import (
	"errors"
	"strings"
	"testing"

	"github.com/DaanHessen/encounter-tui/internal/engine"
)

func defaultDrawer(t *testing.T) *engine.Drawer {
	t.Helper()
	d, err := engine.DefaultDrawer()
	if err != nil {
		t.Fatalf("DefaultDrawer: %v", err)
	}
	return d
}

type failingRenderer struct{ err error }

func (f failingRenderer) Encounter(engine.EncounterResult, *engine.Catalog) (string, error) {
	return "", f.err
}
func (f failingRenderer) Summary(engine.DrawSummary, engine.Odds) (string, error) { return "", f.err }
func (f failingRenderer) Catalog(*engine.Drawer) (string, error)                 { return "", f.err }

func TestPlainEncounterCard(t *testing.T) {
	d := defaultDrawer(t)
	out, err := NewPlain().Encounter(engine.MonsterEncounter("Event Beast"), d.Catalog())
	if err != nil {
		t.Fatalf("Encounter: %v", err)
	}
	for _, want := range []string{"You meet Event Beast (LV: —)", "HP: 100 | ATK: 20 | DEF: 8", "EXP: 40 | Drop: Rare Component", "Skill: Falls into deep sleep"} {
		if !strings.Contains(out, want) {
			t.Fatalf("card missing %q:\n%s", want, out)
		}
	}
	empty, _ := NewPlain().Encounter(engine.NoEncounter(), d.Catalog())
	if !strings.Contains(empty, "No Encounter") || strings.Contains(empty, "You meet") {
		t.Fatalf("unexpected empty card:\n%s", empty)
	}
}

func TestEncounterUnknownMonster(t *testing.T) {
	d := defaultDrawer(t)
	for name, r := range map[string]Renderer{"plain": NewPlain(), "markdown": NewMarkdown()} {
		if _, err := r.Encounter(engine.MonsterEncounter("Ghost"), d.Catalog()); !errors.Is(err, engine.ErrNotFound) {
			t.Fatalf("%s: expected ErrNotFound, got %v", name, err)
		}
	}
}

func TestPlainSummaryListsSeenOnly(t *testing.T) {
	d := defaultDrawer(t)
	sum, err := d.SimulateMultipleDraws(engine.NewStream(5), 0)
	if err != nil {
		t.Fatal(err)
	}
	out, _ := NewPlain().Summary(sum, d.Probabilities())
	if !strings.Contains(out, "Summary of 0 draws") || !strings.Contains(out, "(none)") {
		t.Fatalf("unexpected zero summary:\n%s", out)
	}

	seed, _ := engine.NewRunSeed("text-summary")
	sum, _ = d.SimulateMultipleDraws(seed.Stream("draws"), 200)
	out, _ = NewPlain().Summary(sum, d.Probabilities())
	if !strings.Contains(out, "Monsters met: ") {
		t.Fatalf("summary missing totals:\n%s", out)
	}
	for _, mc := range sum.Ordered() {
		if listed := strings.Contains(out, "• "+mc.Name); listed != (mc.Count > 0) {
			t.Fatalf("%s listed=%v with count %d:\n%s", mc.Name, listed, mc.Count, out)
		}
	}
}

func TestMarkdownSummaryTable(t *testing.T) {
	d := defaultDrawer(t)
	sum, _ := d.SimulateMultipleDraws(firstOnly{}, 10)
	out, err := NewMarkdown().Summary(sum, d.Probabilities())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	for _, want := range []string{"| Monster | 10 | 6.0 |", "| No Encounter | 0 | 4.0 |", "| Sproutkin | 10 |"} {
		if !strings.Contains(out, want) {
			t.Fatalf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestCatalogListings(t *testing.T) {
	d := defaultDrawer(t)
	for name, r := range map[string]Renderer{"plain": NewPlain(), "markdown": NewMarkdown()} {
		out, err := r.Catalog(d)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		for _, rec := range d.Catalog().Records() {
			if !strings.Contains(out, rec.Name) {
				t.Fatalf("%s listing missing %q", name, rec.Name)
			}
		}
		if !strings.Contains(out, "2.9%") {
			t.Fatalf("%s listing missing Event Beast chance:\n%s", name, out)
		}
	}
}

func TestWriteColumnsAlignsWideRunes(t *testing.T) {
	var b strings.Builder
	writeColumns(&b, [][]string{{"Name", "LV"}, {"Beast", "—"}, {"竜", "3"}})
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[2], "竜     3") {
		t.Fatalf("wide rune not padded by display width: %q", lines[2])
	}
}

func TestStyledRendererUsesGlamour(t *testing.T) {
	r, err := NewStyled("notty", 80)
	if err != nil {
		t.Fatalf("NewStyled: %v", err)
	}
	out, err := r.Encounter(engine.MonsterEncounter("Vine Wolf"), defaultDrawer(t).Catalog())
	if err != nil {
		t.Fatalf("Encounter: %v", err)
	}
	for _, want := range []string{"Vine Wolf", "Wolf Pelt", "May attack twice"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered card missing %q:\n%s", want, out)
		}
	}
}

func TestWithFallback(t *testing.T) {
	d := defaultDrawer(t)
	r := WithFallback(failingRenderer{err: errors.New("boom")}, NewPlain())
	out, err := r.Encounter(engine.NoEncounter(), d.Catalog())
	if err != nil || !strings.Contains(out, "No Encounter") {
		t.Fatalf("fallback not used: %q %v", out, err)
	}
	if _, err := r.Catalog(d); err != nil {
		t.Fatalf("Catalog fallback: %v", err)
	}
	notFound := WithFallback(failingRenderer{err: engine.ErrNotFound}, NewPlain())
	if _, err := notFound.Encounter(engine.MonsterEncounter("Ghost"), d.Catalog()); !errors.Is(err, engine.ErrNotFound) {
		t.Fatalf("lookup failure should propagate, got %v", err)
	}
}

func TestForFormat(t *testing.T) {
	for _, f := range []string{"", "text", "markdown", "styled"} {
		if r, err := ForFormat(f, 80); err != nil || r == nil {
			t.Fatalf("ForFormat(%q) = %v, %v", f, r, err)
		}
	}
	if _, err := ForFormat("html", 80); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

type firstOnly struct{}

func (firstOnly) Intn(int) int     { return 0 }
func (firstOnly) Float64() float64 { return 0 }
