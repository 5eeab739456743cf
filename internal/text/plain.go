package text

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/DaanHessen/encounter-tui/internal/engine"
)

const rule = "---------------------------------"

// plainRenderer writes the classic console card and tally.
type plainRenderer struct{}

func NewPlain() Renderer { return plainRenderer{} }

func (plainRenderer) Encounter(res engine.EncounterResult, catalog *engine.Catalog) (string, error) {
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("🎴 The player draws a card...\n")
	name, ok := res.Monster()
	if !ok {
		b.WriteString("✨ Empty card (No Encounter): nothing happens\n")
		return b.String(), nil
	}
	m, err := catalog.Lookup(name)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "⚔️ You meet %s (LV: %s)\n", m.Name, m.Level)
	fmt.Fprintf(&b, "HP: %d | ATK: %d | DEF: %d\n", m.HP, m.Attack, m.Defense)
	fmt.Fprintf(&b, "EXP: %d | Drop: %s\n", m.Experience, m.Drop)
	fmt.Fprintf(&b, "Skill: %s\n", m.Skill)
	b.WriteString(rule + "\n")
	return b.String(), nil
}

func (plainRenderer) Summary(sum engine.DrawSummary, odds engine.Odds) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "\n📊 Summary of %d draws\n", sum.Rounds)
	fmt.Fprintf(&b, "- Monsters met: %d\n", sum.Monster)
	fmt.Fprintf(&b, "- Empty cards: %d\n", sum.NoEncounter)
	b.WriteString("\n🐉 Monsters encountered:\n")
	seen := sum.Seen()
	if len(seen) == 0 {
		b.WriteString("  (none)\n")
		return b.String(), nil
	}
	width := 0
	for _, mc := range seen {
		width = max(width, runewidth.StringWidth(mc.Name))
	}
	for _, mc := range seen {
		expected := float64(sum.Rounds) * odds.Overall(mc.Name)
		fmt.Fprintf(&b, "  • %s : %d (expected %.1f)\n", runewidth.FillRight(mc.Name, width), mc.Count, expected)
	}
	return b.String(), nil
}

func (plainRenderer) Catalog(d *engine.Drawer) (string, error) {
	odds := d.Probabilities()
	header := []string{"Name", "LV", "HP", "ATK", "DEF", "EXP", "Drop", "Chance"}
	rows := [][]string{header}
	for _, m := range d.Catalog().Records() {
		rows = append(rows, []string{
			m.Name,
			m.Level.String(),
			fmt.Sprint(m.HP),
			fmt.Sprint(m.Attack),
			fmt.Sprint(m.Defense),
			fmt.Sprint(m.Experience),
			m.Drop,
			fmt.Sprintf("%.1f%%", odds.Overall(m.Name)*100),
		})
	}
	var b strings.Builder
	writeColumns(&b, rows)
	fmt.Fprintf(&b, "\nMonster %.0f%% / No encounter %.0f%%\n",
		odds.Events[engine.EventMonster]*100, odds.Events[engine.EventNoEncounter]*100)
	return b.String(), nil
}

// writeColumns pads by display width so wide runes and the "—" level stay aligned.
func writeColumns(b *strings.Builder, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " ") + "\n")
	}
}
