package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/galaxysim/internal/viz"
)

var (
	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(sidebarWidth)
	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#b19cd9"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Restart the collision    ║
║  T        - Cycle themes             ║
║  G        - Toggle GIF recording     ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
`

func (m *Model) View() string {
	if m.width == 0 {
		return "\n  waiting for terminal size..."
	}

	var b strings.Builder
	b.WriteString(m.header() + "\n")

	main := m.sidebar()
	if m.canvas != nil && m.sim.Running() {
		main = lipgloss.JoinHorizontal(lipgloss.Top, m.canvas.Render(), m.sidebar())
	}
	b.WriteString(main + "\n")

	footer := viz.KeyHint.Render("space pause  r restart  t theme  g record  ? help  q quit")
	if m.status != "" {
		footer += "  " + viz.Subtle.Render(m.status)
	}
	b.WriteString(footer)

	if m.showHelp {
		return helpText + "\n" + b.String()
	}
	return b.String()
}

func (m *Model) header() string {
	title := viz.GradientText("g a l a x y s i m", m.theme.Primary, m.theme.Secondary)

	var status string
	switch {
	case m.err != nil:
		status = errStyle.Render("no surface")
	case m.recorder != nil:
		status = viz.StatusRecording.Render(fmt.Sprintf("● REC %d", m.recorder.Frames()))
	case m.paused:
		status = viz.StatusPaused.Render("PAUSED")
	case m.sim.Running():
		status = viz.StatusRunning.Render("RUNNING")
	default:
		status = viz.StatusPaused.Render("STOPPED")
	}
	return " " + title + "  " + status
}

func (m *Model) sidebar() string {
	var s strings.Builder
	stats := m.sim.Stats()
	w, h := m.viewport.Size()

	row := func(label, value string) {
		s.WriteString(viz.MetricLabel.Render(label) + viz.MetricValue.Render(value) + "\n")
	}

	row("Ticks", fmt.Sprintf("%d", stats.Ticks))
	row("Particles", fmt.Sprintf("%d", len(m.sim.Particles())))
	row("Viewport", fmt.Sprintf("%dx%d", w, h))
	row("Skipped", fmt.Sprintf("%d", stats.Skipped))
	if stats.LastTick > 0 {
		row("Rate", fmt.Sprintf("%.1f fps", float64(stats.Ticks)/stats.LastTick.Seconds()))
	}
	row("Theme", m.theme.Name)
	s.WriteString(viz.Separator(sidebarWidth-2) + "\n")

	values := m.tracker.Values()
	row("Kinetic", fmt.Sprintf("%.1f", values["kinetic_energy"]))
	row("Drift", fmt.Sprintf("%+.2f%%", values["energy_drift"]*100))
	row("Spread", fmt.Sprintf("%.1f px", values["mean_anchor_distance"]))
	row("Max speed", fmt.Sprintf("%.2f", values["max_speed"]))

	if hist := m.tracker.History("kinetic_energy"); hist != nil && hist.Len() > 1 {
		chart := asciigraph.Plot(hist.Values(),
			asciigraph.Height(5),
			asciigraph.Width(sidebarWidth-12),
			asciigraph.Caption("kinetic energy"))
		s.WriteString("\n" + graphStyle.Render(chart) + "\n")
	}

	if hist := m.tracker.History("crossing"); hist != nil && hist.Len() > 0 {
		s.WriteString("\n" + viz.MetricLabel.Render("Crossing") +
			viz.SparklineChart(hist.Values(), sidebarWidth-16) + "\n")
	}

	return sidebarStyle.Render(s.String())
}
