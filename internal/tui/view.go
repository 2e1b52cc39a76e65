package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fgcomment/internal/model"
	"fgcomment/internal/scan"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	normalStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	commentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true) // Sky Blue/Cyan
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))           // Orange
	footerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	borderColor = lipgloss.Color("63")
	activeColor = lipgloss.Color("205")
)

const (
	defaultWidth  = 100
	defaultHeight = 30
)

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Scanning configuration... please wait.\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n\n  Press 'r' to retry or 'q' to quit.\n", m.Err)
	}

	// Subtracting 6 for horizontal margin (borders x2 + buffer)
	// Subtracting 6 for vertical margin (title, mode line, footer, borders)
	width := m.WindowSize.Width
	height := m.WindowSize.Height
	if width <= 0 || height <= 0 {
		// No size reported yet
		width, height = defaultWidth, defaultHeight
	}

	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}
	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	boxHeight := height - 6
	if boxHeight < 6 {
		boxHeight = 6
	}
	interiorHeight := boxHeight - 2

	header := titleStyle.Render("fgcomment "+model.Version) + "  " + dimStyle.Render(m.Path)
	modeLine := m.renderModeLine()

	leftBorder, rightBorder := activeColor, borderColor
	if m.ShowScript {
		leftBorder, rightBorder = borderColor, activeColor
	}

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(leftBorder).
		Render(m.renderMatchList(leftWidth, interiorHeight))

	var rightContent string
	if m.ShowScript {
		rightContent = m.renderScript()
	} else {
		rightContent = m.renderDetails(rightWidth)
	}
	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(rightBorder).
		Render(clip(rightContent, rightWidth, interiorHeight))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, header, modeLine, body, m.renderFooter())
}

func (m AppModel) renderModeLine() string {
	if m.InputMode {
		return "Wildcard: " + m.InputBuffer.View()
	}
	mode := "all comments"
	switch m.Mode.Kind() {
	case model.ModeKindWizard:
		mode = "wizard comments only"
	case model.ModeKindWildcard:
		if strings.TrimSpace(m.Mode.Pattern()) == "" {
			mode = "wildcard (empty, matches all)"
		} else {
			mode = fmt.Sprintf("wildcard %q", m.Mode.Pattern())
		}
	}
	line := fmt.Sprintf("Filter: %s  |  %s  (%d scanned)", mode, m.Result.Summary, m.Result.Total)
	if m.Status != "" {
		line += "  " + statusStyle.Render(m.Status)
	}
	return line
}

func (m AppModel) renderMatchList(width, height int) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Comments"))
	b.WriteString("\n\n")

	records := m.Result.Records
	if len(records) == 0 {
		b.WriteString(dimStyle.Render("No comments match the current filter."))
		return b.String()
	}

	// Windowing: keep the selection roughly centred
	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	start, end := 0, len(records)
	if len(records) > visible {
		if m.SelectedIdx >= visible/2 {
			start = m.SelectedIdx - visible/2
		}
		if start+visible > len(records) {
			start = len(records) - visible
		}
		end = start + visible
	}

	for i := start; i < end; i++ {
		r := records[i]
		icon := model.IconComment
		if r.HasVdomFrame() {
			icon = model.IconVdom
		}
		line := fmt.Sprintf("%5d %s %s", r.LineNumber, icon, r.CommentText)
		line = truncate(line, width-2)

		if i == m.SelectedIdx {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(normalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m AppModel) renderDetails(width int) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Details"))
	b.WriteString("\n")

	r, ok := m.selected()
	if !ok {
		b.WriteString("\n" + dimStyle.Render("(nothing selected)"))
		return b.String()
	}

	fmt.Fprintf(&b, "\nLine:     %d", r.LineNumber)
	crumb := r.Breadcrumb()
	if crumb == "" {
		crumb = "(top level)"
	}
	fmt.Fprintf(&b, "\nPath:     %s", crumb)
	b.WriteString("\nComment:  " + commentStyle.Render(fmt.Sprintf("set comment %q", r.CommentText)))

	b.WriteString("\n\n--- Source Line Context ---\n")
	ctx := model.GetLineContext(m.Result.Lines, r.LineNumber)
	for _, l := range strings.Split(ctx.Render(), "\n") {
		b.WriteString(truncate(l, width-2) + "\n")
	}

	b.WriteString("\n--- Removal Block ---\n")
	b.WriteString(dimStyle.Render(scan.RemovalBlock(r)))
	return b.String()
}

func (m AppModel) renderScript() string {
	title := panelTitleStyle.Render("Removal Script")
	if m.Result.Script == "" {
		return title + "\n\n" + dimStyle.Render("(nothing to remove)")
	}
	return title + "\n\n" + m.ScriptViewport.View()
}

func (m AppModel) renderFooter() string {
	if m.InputMode {
		return footerStyle.Render("Enter: apply  Esc: clear filter")
	}
	help := "↑/↓ move  m: mode  /: wildcard  g: script  c: copy  s: save  r: reload  q: quit"
	if m.ShowScript {
		help = "↑/↓ scroll  g/Esc: back  c: copy  s: save  q: quit"
	}
	return footerStyle.Render(help)
}

// clip wraps s to width and drops whatever does not fit in height.
func clip(s string, width, height int) string {
	return lipgloss.NewStyle().Width(width).MaxHeight(height).Render(s)
}

func truncate(s string, width int) string {
	if width < 4 {
		width = 4
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) > width-3 {
		runes = runes[:width-3]
	}
	return string(runes) + "..."
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, LoadSourceCmd(m.Path), WatchCmd(m.watcher))
}
