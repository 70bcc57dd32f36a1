package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tinysteps/internal/model"
	"github.com/verte-zerg/tinysteps/internal/relevance"
	"github.com/verte-zerg/tinysteps/internal/report"
)

const (
	appTitle    = "TinySteps"
	appTagline  = "Milestones and essentials, month by month"
	trackIndent = 1
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#3A7BC8"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	heroStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A7BC8")).Bold(true)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	ageStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	dragStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true).Underline(true)
	trackStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A7BC8"))
	milestoneHead    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A7BC8")).Bold(true)
	essentialHead    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	bracketStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	categoryStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	badgeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	newBadgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	itemStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true).Reverse(true)
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#7A7A7A")).Italic(true)
	activeCatStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true).Underline(true)
	inactiveCatStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	modalStyle       = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#C89A3A")).
				Padding(1, 2)
)

// content is a rendered scroll body plus the records a cursor can select.
type content struct {
	lines     []string
	items     []model.Record
	itemLines []int
}

func (c *content) add(lines ...string) {
	c.lines = append(c.lines, lines...)
}

func (c *content) addItem(r model.Record, line string, extra []string) {
	c.items = append(c.items, r)
	c.itemLines = append(c.itemLines, len(c.lines))
	c.lines = append(c.lines, line)
	c.lines = append(c.lines, extra...)
}

func (m *Model) renderTabs() string {
	tabs := []struct {
		label string
		mode  model.ViewMode
	}{
		{"1 Pulse", model.ModePulse},
		{"2 Library", model.ModeLibrary},
	}
	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if tab.mode == m.state.Mode() {
			parts = append(parts, activeNavStyle.Render(tab.label))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// headerLines renders the hero and the age or category selector. The compact
// form drops the hero and the scale line.
func (m *Model) headerLines(compact bool) []string {
	var lines []string
	if m.opts.Hero && !compact {
		lines = append(lines, heroStyle.Render(appTitle), headerStyle.Render(truncateLine(appTagline, m.width)))
	}
	if m.state.Mode() == model.ModeLibrary {
		lines = append(lines, m.renderCategoryTabs())
		if !compact {
			lines = append(lines, "")
		}
		return lines
	}

	slider := report.RenderSlider(m.trackWidth(), m.state.Age(), m.points, m.state.Dragging())
	label := ageStyle.Render(slider[0])
	if m.state.Dragging() {
		label = dragStyle.Render(slider[0])
	}
	indent := strings.Repeat(" ", trackIndent)
	lines = append(lines, label, indent+trackStyle.Render(slider[1]))
	if !compact {
		lines = append(lines, indent+headerStyle.Render(slider[2]), "")
	}
	return lines
}

// sliderIndex is the position of the track line within headerLines.
func (m *Model) sliderIndex(compact bool) int {
	idx := 1
	if m.opts.Hero && !compact {
		idx += 2
	}
	return idx
}

func (m *Model) renderCategoryTabs() string {
	categories := m.state.Categories()
	if len(categories) == 0 {
		return mutedStyle.Render("No categories")
	}
	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		if c == m.state.Category() {
			parts = append(parts, activeCatStyle.Render(c))
		} else {
			parts = append(parts, inactiveCatStyle.Render(c))
		}
	}
	return strings.Join(parts, "  ")
}

func (m *Model) renderSections() content {
	if m.state.Mode() == model.ModeLibrary {
		return m.renderLibrary()
	}
	return m.renderPulse()
}

func (m *Model) renderPulse() content {
	view := relevance.Pulse(m.records, m.groups, m.state.Age())
	var c content

	c.add(milestoneHead.Render(strings.ToUpper(report.SpotlightTitle)))
	if len(view.Relevance.Spotlight) == 0 {
		c.add("  " + mutedStyle.Render(report.NoSpotlightText))
	}
	for _, e := range view.Relevance.Spotlight {
		badge := badgeStyle.Render(relevance.OffsetLabel(e.Offset))
		if e.Offset == 0 {
			badge = newBadgeStyle.Render(relevance.OffsetLabel(e.Offset))
		}
		m.addRecord(&c, e.Record, badge+" "+categoryStyle.Render(e.Record.Category), 2, true)
	}

	if essentials := view.Relevance.ActiveEssentials; len(essentials) > 0 {
		c.add("", essentialHead.Render(strings.ToUpper(report.ToolkitTitle)))
		for _, r := range essentials {
			m.addRecord(&c, r, badgeStyle.Render(report.WindowLabel(r))+" "+categoryStyle.Render(r.Category), 2, false)
		}
	}

	if len(view.History) > 0 {
		c.add("", milestoneHead.Render(strings.ToUpper(report.HistoryTitle)))
		for _, bracket := range view.History {
			c.add("  " + bracketStyle.Render(bracket.Group.Label))
			for _, cat := range bracket.Categories {
				c.add("    " + categoryStyle.Render(cat.Category))
				for _, r := range cat.Records {
					m.addRecord(&c, r, badgeStyle.Render(relevance.StartLabel(r.StartAgeMonths)), 6, false)
				}
			}
		}
	}
	return c
}

func (m *Model) renderLibrary() content {
	view := relevance.Library(m.records, m.state.Category())
	var c content

	c.add(milestoneHead.Render(strings.ToUpper(report.TimelineTitle)))
	if len(view.Milestones) == 0 {
		c.add("  " + mutedStyle.Render(report.ResourceFocusedText))
	}
	for _, r := range view.Milestones {
		m.addRecord(&c, r, badgeStyle.Render(relevance.StartLabel(r.StartAgeMonths)), 2, true)
	}

	c.add("", essentialHead.Render(strings.ToUpper(report.EssentialsTitle)))
	if len(view.Essentials) == 0 {
		c.add("  " + mutedStyle.Render(report.NoToolkitText))
	}
	for _, r := range view.Essentials {
		m.addRecord(&c, r, badgeStyle.Render(report.WindowLabel(r)), 2, true)
	}
	return c
}

// addRecord appends one selectable card: a title line and, when withSummary
// is set, the wrapped short description beneath it.
func (m *Model) addRecord(c *content, r model.Record, badge string, indent int, withSummary bool) {
	pad := strings.Repeat(" ", indent)
	title := truncateLine(report.ItemTitle(r), maxInt(10, m.width-indent-lipgloss.Width(badge)-3))
	marker := "  "
	style := itemStyle
	if len(c.items) == m.cursor {
		marker = "> "
		style = selectedStyle
	}
	line := pad[:maxInt(0, indent-2)] + marker + badge + " " + style.Render(title)

	var extra []string
	if withSummary && r.ShortDescription != "" {
		for _, wrapped := range wrapWords(r.ShortDescription, maxInt(10, m.width-indent-2)) {
			extra = append(extra, pad+"  "+mutedStyle.Render(wrapped))
		}
	}
	c.addItem(r, line, extra)
}

func (m *Model) renderHelp() string {
	help := "Mode: tab/1/2  Age: left/right  Jump: [ ]  Set age: g  Select: up/down  Open: enter  Quit: q"
	if m.state.Mode() == model.ModeLibrary {
		help = "Mode: tab/1/2  Category: h/l  Select: up/down  Open: enter  Quit: q"
	}
	return headerStyle.Render(truncateLine(help, m.width))
}

func (m *Model) renderFooter() string {
	return m.renderHelp()
}

func (m *Model) renderAgeModal() string {
	body := []string{
		ageStyle.Render("Jump to age"),
		m.ageInput.View(),
		headerStyle.Render("Whole months from 0 to 72."),
		headerStyle.Render("Enter to apply / Esc to cancel"),
	}
	if m.ageInputError != "" {
		body = append(body, errorStyle.Render(m.ageInputError))
	}
	box := modalStyle.Width(modalWidth(m.width)).Render(strings.Join(body, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) renderDetailView() string {
	help := headerStyle.Render(truncateLine("Back: esc  Scroll: up/down/pgup/pgdn  Quit: q", m.width))
	return m.detail.View() + "\n" + help
}
