package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/apirek/plotutils/internal/series"
)

// rowMsg signals that the reader appended at least one row.
type rowMsg struct{}

// eofMsg signals that input is exhausted; the viewer stays open.
type eofMsg struct{}

// Window presets cycled with +/- (seconds, 0 = everything).
var windowPresets = []float64{10, 30, 60, 300, 900, 3600, 0}

// Options configures the viewer.
type Options struct {
	TimeLayout string
	Window     float64  // initial display window in seconds, 0 = all
	Labels     []string // per-series labels, may be shorter than the data
	AbsTime    bool     // label the x-axis with wall-clock times instead of ages
}

// Model is the root bubbletea model for plot.
type Model struct {
	width  int
	height int

	buf      *series.Buffer
	rowCh    <-chan struct{}
	snapshot series.Snapshot

	window float64
	opts   Options

	paused   bool
	eof      bool
	showHelp bool
}

// New creates the viewer over a buffer that the Reader fills.
func New(buf *series.Buffer, rowCh <-chan struct{}, opts Options) Model {
	return Model{
		buf:    buf,
		rowCh:  rowCh,
		window: opts.Window,
		opts:   opts,
	}
}

// waitForRow returns a tea.Cmd that waits for the next reader signal.
func waitForRow(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return eofMsg{}
		}
		return rowMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return waitForRow(m.rowCh)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case rowMsg:
		if !m.paused {
			m.snapshot = m.buf.Snapshot(m.window)
		}
		return m, waitForRow(m.rowCh)

	case eofMsg:
		m.eof = true
		if !m.paused {
			m.snapshot = m.buf.Snapshot(m.window)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay: any key closes it.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.showHelp = true
	case key.Matches(msg, keys.Pause):
		m.paused = !m.paused
		if !m.paused {
			m.snapshot = m.buf.Snapshot(m.window)
		}
	case key.Matches(msg, keys.WindowUp):
		m.changeWindow(1)
	case key.Matches(msg, keys.WindowDown):
		m.changeWindow(-1)
	}
	return m, nil
}

// changeWindow steps through windowPresets; the unbounded window sits at
// the wide end.
func (m *Model) changeWindow(delta int) {
	idx := len(windowPresets) - 1
	for i, w := range windowPresets {
		if m.window > 0 && (w >= m.window || w == 0) {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(windowPresets) {
		idx = len(windowPresets) - 1
	}
	m.window = windowPresets[idx]
	if !m.paused {
		m.snapshot = m.buf.Snapshot(m.window)
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}

	content := m.renderCharts(contentHeight)
	contentLines := strings.Count(content, "\n") + 1
	if contentLines < contentHeight {
		content += strings.Repeat("\n", contentHeight-contentLines)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m Model) renderHeader() string {
	parts := []string{
		styleHeader.Render("plot"),
		styleFooter.Render("rows ") + styleHeaderValue.Render(fmt.Sprintf("%d", len(m.snapshot.Times))),
		styleFooter.Render("window ") + styleHeaderValue.Render(m.windowLabel()),
	}
	if latest := m.snapshot.Latest(); latest > 0 {
		ts := time.Unix(0, int64(latest*1e9)).Format(m.opts.TimeLayout)
		parts = append(parts, styleFooter.Render("latest ")+styleHeaderValue.Render(ts))
	}
	if m.paused {
		parts = append(parts, stylePaused.Render(" PAUSED "))
	}
	if m.eof {
		parts = append(parts, styleFooter.Render("end of input"))
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) windowLabel() string {
	if m.window <= 0 {
		return "all"
	}
	return formatRelTime(m.window)
}

func (m Model) renderCharts(contentHeight int) string {
	n := len(m.snapshot.Series)
	if n == 0 {
		return styleFooter.Render("  waiting for data...")
	}

	// One label line per series plus one shared x-axis line.
	chartHeight := (contentHeight - 1 - n) / n
	if chartHeight < 1 {
		chartHeight = 1
	}

	blocks := make([]string, 0, n+1)
	for i, vals := range m.snapshot.Series {
		label := fmt.Sprintf("series %d", i)
		if i < len(m.opts.Labels) {
			label = m.opts.Labels[i]
		}

		head := "  " + seriesStyle(i).Render("●") + " " + styleSeriesLabel.Render(label)
		if len(vals) > 0 {
			head += styleFooter.Render("  latest ") + styleHeaderValue.Render(formatValue(vals[len(vals)-1]))
		}
		if ymin, ymax, ok := chartRange(vals); ok {
			head += styleAxis.Render(fmt.Sprintf("  [%s … %s]", formatValue(ymin), formatValue(ymax)))
		}

		chart := renderChart(m.snapshot.Times, vals, m.width, chartHeight, seriesStyle(i))
		blocks = append(blocks, head, chart)
	}
	blocks = append(blocks, m.renderTimeAxis())
	return strings.Join(blocks, "\n")
}

// renderTimeAxis labels the shared x-axis. Relative mode (the default)
// shows ages against the newest sample, oldest left, "now" right; absolute
// mode shows wall-clock times.
func (m Model) renderTimeAxis() string {
	if len(m.snapshot.Times) < 2 {
		return ""
	}
	var left, right string
	if m.opts.AbsTime {
		left = clockLabel(m.snapshot.Times[0])
		right = clockLabel(m.snapshot.Latest())
	} else {
		left = "-" + formatRelTime(m.snapshot.Latest()-m.snapshot.Times[0])
		right = "now"
	}
	pad := m.width - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	return styleAxis.Render(left + strings.Repeat(" ", pad) + right)
}

func clockLabel(unixSeconds float64) string {
	return time.Unix(0, int64(unixSeconds*1e9)).Format("15:04:05")
}

func (m Model) renderFooter() string {
	parts := []string{
		styleFooterKey.Render("?") + styleFooter.Render(" help"),
		styleFooterKey.Render("space") + styleFooter.Render(" pause"),
		styleFooterKey.Render("+/-") + styleFooter.Render(" window"),
		styleFooterKey.Render("q") + styleFooter.Render(" quit"),
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderHelp() string {
	help := styleHelpBox.Render(strings.Join([]string{
		styleHeader.Render("plot — realtime time-series viewer"),
		"",
		styleFooterKey.Render("space") + "  pause and resume the display",
		styleFooterKey.Render("+ / -") + "  widen or narrow the time window",
		styleFooterKey.Render("?") + "      toggle this help",
		styleFooterKey.Render("q") + "      quit",
		"",
		styleFooter.Render("Input keeps buffering while paused."),
	}, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, help)
}
