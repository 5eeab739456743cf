package text

import (
	"fmt"
	"strings"

	"github.com/DaanHessen/encounter-tui/internal/engine"
)

// markdownRenderer emits GitHub-flavoured markdown; the styled renderer and the TUI
// feed it to glamour.
type markdownRenderer struct{}

func NewMarkdown() Renderer { return markdownRenderer{} }

func escapeCell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }

func (markdownRenderer) Encounter(res engine.EncounterResult, catalog *engine.Catalog) (string, error) {
	name, ok := res.Monster()
	if !ok {
		return "## ✨ No Encounter\n\nThe card is empty. Nothing happens.\n", nil
	}
	m, err := catalog.Lookup(name)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## ⚔️ %s\n\n", m.Name)
	b.WriteString("| LV | HP | ATK | DEF | EXP | Drop |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %s | %d | %d | %d | %d | %s |\n\n", m.Level, m.HP, m.Attack, m.Defense, m.Experience, escapeCell(m.Drop))
	fmt.Fprintf(&b, "> **Skill:** %s\n", m.Skill)
	return b.String(), nil
}

func (markdownRenderer) Summary(sum engine.DrawSummary, odds engine.Odds) (string, error) {
	var b strings.Builder
	n := float64(sum.Rounds)
	fmt.Fprintf(&b, "## 📊 Summary of %d draws\n\n", sum.Rounds)
	b.WriteString("| Outcome | Count | Expected |\n")
	b.WriteString("|---|---:|---:|\n")
	fmt.Fprintf(&b, "| Monster | %d | %.1f |\n", sum.Monster, n*odds.Events[engine.EventMonster])
	fmt.Fprintf(&b, "| No Encounter | %d | %.1f |\n\n", sum.NoEncounter, n*odds.Events[engine.EventNoEncounter])
	b.WriteString("### 🐉 Monsters encountered\n\n")
	seen := sum.Seen()
	if len(seen) == 0 {
		b.WriteString("_None this run._\n")
		return b.String(), nil
	}
	b.WriteString("| Monster | Count | Expected |\n")
	b.WriteString("|---|---:|---:|\n")
	for _, mc := range seen {
		fmt.Fprintf(&b, "| %s | %d | %.1f |\n", escapeCell(mc.Name), mc.Count, n*odds.Overall(mc.Name))
	}
	return b.String(), nil
}

func (markdownRenderer) Catalog(d *engine.Drawer) (string, error) {
	odds := d.Probabilities()
	var b strings.Builder
	b.WriteString("## Monster catalog\n\n")
	fmt.Fprintf(&b, "Monster %.0f%% · No encounter %.0f%%\n\n",
		odds.Events[engine.EventMonster]*100, odds.Events[engine.EventNoEncounter]*100)
	b.WriteString("| Name | LV | HP | ATK | DEF | EXP | Drop | Skill | Chance |\n")
	b.WriteString("|---|---|---:|---:|---:|---:|---|---|---:|\n")
	for _, m := range d.Catalog().Records() {
		fmt.Fprintf(&b, "| %s | %s | %d | %d | %d | %d | %s | %s | %.1f%% |\n",
			escapeCell(m.Name), m.Level, m.HP, m.Attack, m.Defense, m.Experience,
			escapeCell(m.Drop), escapeCell(m.Skill), odds.Overall(m.Name)*100)
	}
	return b.String(), nil
}
