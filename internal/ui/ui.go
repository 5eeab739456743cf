package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/encounter-tui/internal/engine"
	"github.com/DaanHessen/encounter-tui/internal/text"
	"github.com/DaanHessen/encounter-tui/internal/util"
)

const (
	viewDraw    = "draw"
	viewSummary = "summary"
	viewCatalog = "catalog"
	viewHelp    = "help"
)

var primaryViews = []string{viewDraw, viewSummary, viewCatalog}

const (
	maxRecent  = 12
	roundsStep = 10
)

type model struct {
	drawer   *engine.Drawer
	runSeed  engine.RunSeed
	renderer text.Renderer
	// single feeds one-off draws, batch feeds simulated runs
	single *engine.Stream
	batch  *engine.Stream

	rounds  int
	draws   int
	recent  []engine.EncounterResult
	card    string
	summary string
	catalog string

	theme  string
	view   string
	status string
	err    error
	width  int
	height int
}

func initialModel(drawer *engine.Drawer, seed engine.RunSeed, cfg util.Config, renderer text.Renderer) model {
	root := seed.Stream("tui")
	m := model{
		drawer:   drawer,
		runSeed:  seed,
		renderer: renderer,
		single:   root.Child("single"),
		batch:    root.Child("draws"),
		rounds:   max(cfg.Rounds, 0),
		theme:    cfg.Theme,
		view:     viewDraw,
	}
	if _, ok := palettes[m.theme]; !ok {
		m.theme = defaultTheme
	}
	m.catalog, m.err = renderer.Catalog(drawer)
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter", " ", "d":
			m.drawOne()
		case "s":
			m.simulate()
		case "+", "=":
			m.rounds += roundsStep
			m.status = fmt.Sprintf("rounds: %d", m.rounds)
		case "-", "_":
			m.rounds = max(m.rounds-roundsStep, 0)
			m.status = fmt.Sprintf("rounds: %d", m.rounds)
		case "t":
			m.theme = nextThemeName(m.theme, 1)
			m.status = "theme: " + m.theme
		case "r":
			m.reset()
		case "tab":
			m.cyclePrimaryViews()
		case "c":
			m.view = viewCatalog
		case "?":
			m.view = viewHelp
		case "esc":
			m.view = viewDraw
		}
		if m.err != nil {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *model) drawOne() {
	res, err := m.drawer.SimulateEncounter(m.single)
	if err != nil {
		m.err = err
		return
	}
	card, err := m.renderer.Encounter(res, m.drawer.Catalog())
	if err != nil {
		m.err = err
		return
	}
	m.draws++
	m.card = card
	m.recent = append([]engine.EncounterResult{res}, m.recent...)
	if len(m.recent) > maxRecent {
		m.recent = m.recent[:maxRecent]
	}
	m.view = viewDraw
	m.status = ""
}

func (m *model) simulate() {
	sum, err := m.drawer.SimulateMultipleDraws(m.batch, m.rounds)
	if err != nil {
		m.err = err
		return
	}
	out, err := m.renderer.Summary(sum, m.drawer.Probabilities())
	if err != nil {
		m.err = err
		return
	}
	m.summary = out
	m.view = viewSummary
	m.status = ""
}

// reset rewinds both streams so the session replays from the run seed.
func (m *model) reset() {
	m.single.Reset()
	m.batch.Reset()
	m.draws = 0
	m.recent = nil
	m.card = ""
	m.summary = ""
	m.view = viewDraw
	m.status = "replaying seed " + m.runSeed.Text
}

func (m *model) cyclePrimaryViews() {
	for i, v := range primaryViews {
		if v == m.view {
			m.view = primaryViews[(i+1)%len(primaryViews)]
			return
		}
	}
	m.view = viewDraw
}

func (m model) View() string {
	p := paletteFor(m.theme)
	w := m.width
	if w <= 0 {
		w = 100
	}
	if m.err != nil {
		return lipgloss.NewStyle().Foreground(p.Error).Render("error: "+m.err.Error()) + "\n"
	}
	var body string
	switch m.view {
	case viewSummary:
		body = orPlaceholder(m.summary, fmt.Sprintf("Press s to simulate %d draws.", m.rounds))
	case viewCatalog:
		body = m.catalog
	case viewHelp:
		body = m.renderHelp()
	default:
		body = orPlaceholder(m.card, "Press Enter to draw a card.")
	}
	sidebarWidth := 28
	mainWidth := max(w-sidebarWidth-4, 20)
	main := lipgloss.NewStyle().Width(mainWidth).Foreground(p.Text).Render(body)
	side := lipgloss.NewStyle().
		Width(sidebarWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1).
		Render(m.renderSidebar(p))
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTopBar(p, w),
		lipgloss.JoinHorizontal(lipgloss.Top, main, side),
		m.renderBottomBar(p),
	)
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

func (m model) renderTopBar(p palette, w int) string {
	left := strings.Join([]string{"ENCOUNTER", "seed " + m.runSeed.Text, m.theme}, " • ")
	right := fmt.Sprintf("Draws %d", m.draws)
	gap := max(w-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(left + strings.Repeat(" ", gap) + right)
}

func (m model) renderSidebar(p palette) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render("Recent draws") + "\n")
	if len(m.recent) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(p.Muted).Render("(none yet)") + "\n")
	}
	for _, res := range m.recent {
		b.WriteString(m.recentLine(p, res) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(p.Muted).Render(fmt.Sprintf("Batch size: %d", m.rounds)))
	return b.String()
}

func (m model) recentLine(p palette, res engine.EncounterResult) string {
	name, ok := res.Monster()
	if !ok {
		return lipgloss.NewStyle().Foreground(p.Empty).Render("· empty card")
	}
	color := p.Monster
	if rec, err := m.drawer.Catalog().Lookup(name); err == nil && !rec.Level.Specified() {
		color = p.Rare
	}
	return lipgloss.NewStyle().Foreground(color).Render("⚔ " + name)
}

func (m model) renderBottomBar(p palette) string {
	keys := "[Enter] draw  [s] simulate  [+/-] batch  [Tab] views  [c] catalog  [t] theme  [r] replay  [?] help  [q] quit"
	line := keys
	if m.status != "" {
		line += "\n" + m.status
	}
	return lipgloss.NewStyle().Foreground(p.Muted).Render(line)
}

func (m model) renderHelp() string {
	odds := m.drawer.Probabilities()
	return fmt.Sprintf("ABOUT\n\nSeed: %s\n\nEach card is a Monster (%.0f%%) or an empty card (%.0f%%)."+
		" A monster card then picks one catalog entry by weight; rare monsters carry less weight."+
		" Replaying with the same seed repeats every draw.\n\nControls: Enter/Space draw | s simulate a batch | +/- change batch size |"+
		" Tab cycle views | c catalog | t theme | r replay from seed | Esc back | q quit.",
		m.runSeed.Text, odds.Events[engine.EventMonster]*100, odds.Events[engine.EventNoEncounter]*100)
}
