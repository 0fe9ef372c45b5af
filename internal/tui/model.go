package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/its-serah/SheRages/internal/engine"
	"github.com/its-serah/SheRages/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	rec      engine.Progress
	scenario *engine.Scenario
	result   *engine.PlayResult

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	rec      engine.Progress
	scenario *engine.Scenario
	err      error
}

type playedMsg struct {
	res *engine.PlayResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		rec, err := m.svc.Progress(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		sc, err := m.svc.DrawScenario(m.ctx)
		if err != nil && !errors.Is(err, engine.ErrCatalogExhausted) {
			return loadedMsg{err: err}
		}
		return loadedMsg{rec: rec, scenario: sc}
	}
}

func (m boardModel) playCmd(id engine.ScenarioID, choice int) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteScenario(m.ctx, id, choice)
		return playedMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.rec = msg.rec
		m.scenario = msg.scenario
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case playedMsg:
		if msg.err != nil {
			m.lastLog = "Play failed: " + msg.err.Error()
			return m, nil
		}
		m.result = msg.res
		var parts []string
		parts = append(parts, fmt.Sprintf("+%d XP", msg.res.XPAwarded))
		for _, ev := range msg.res.Events {
			parts = append(parts, ev.Title)
		}
		m.lastLog = strings.Join(parts, " | ")
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.result = nil
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "1", "2", "3":
			if m.scenario == nil {
				m.lastLog = "All scenarios played. Reset to start over."
				return m, nil
			}
			idx := int(msg.String()[0] - '1')
			if idx >= len(m.scenario.Choices) {
				return m, nil
			}
			m.lastLog = "Applying choice…"
			return m, m.playCmd(m.scenario.ID, idx)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.loading && m.rec.Level == 0 {
		return "SheRages — loading…"
	}
	bar := ui.ProgressBar(engine.XPIntoLevel(m.rec.XP), engine.XPPerLevel, 30)
	return fmt.Sprintf("SheRages | Level %d | %s | Score %d | %s",
		m.rec.Level, bar, m.rec.Score, ui.StreakText(m.rec.Streak))
}

func (m boardModel) renderSidebar() string {
	lines := []string{"Badges"}
	for _, b := range engine.AllBadges() {
		if m.rec.HasBadge(b.ID) {
			lines = append(lines, fmt.Sprintf("%s %s", b.Icon, b.Name))
		} else {
			lines = append(lines, "🔒 "+b.Name)
		}
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- 1/2/3: pick a response")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}

	var out []string
	if m.result != nil {
		out = append(out, "Last round")
		out = append(out, "  "+m.result.Choice.Feedback)
		for _, ev := range m.result.Events {
			out = append(out, fmt.Sprintf("  %s %s", ev.Title, ev.Detail))
		}
		out = append(out, "")
	}

	out = append(out, "Scenario")
	if m.scenario == nil {
		out = append(out, "(all scenarios played — well done)")
		return strings.Join(out, "\n")
	}
	out = append(out, wrap(m.scenario.Prompt, 64))
	out = append(out, "")
	for i, c := range m.scenario.Choices {
		out = append(out, fmt.Sprintf("  %d. %s", i+1, wrap(c.Text, 60)))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	var b strings.Builder
	line := 0
	for i, w := range words {
		if i > 0 {
			if line+1+len(w) > width {
				b.WriteString("\n")
				line = 0
			} else {
				b.WriteString(" ")
				line++
			}
		}
		b.WriteString(w)
		line += len(w)
	}
	return b.String()
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
