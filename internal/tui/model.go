package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/tinysteps/internal/catalog"
	"github.com/verte-zerg/tinysteps/internal/logging"
	"github.com/verte-zerg/tinysteps/internal/model"
	"github.com/verte-zerg/tinysteps/internal/relevance"
	"github.com/verte-zerg/tinysteps/internal/report"
	"github.com/verte-zerg/tinysteps/internal/session"
)

// Options configures the browsing screen.
type Options struct {
	// Hero shows the title banner above the selector.
	Hero bool
	// StickyHeader pins the selector above the scrolling body.
	StickyHeader bool
	// Color enables styled markdown in the detail overlay.
	Color  bool
	Logger *zap.Logger
}

// Model implements the Bubble Tea browsing UI.
type Model struct {
	records []model.Record
	groups  []model.AgeGroup
	points  []int
	state   *session.State
	opts    Options
	logger  *zap.Logger

	body      viewport.Model
	detail    viewport.Model
	header    []string
	compact   bool
	bodyShift int

	items     []model.Record
	itemLines []int
	cursor    int

	ageInputMode  bool
	ageInput      textinput.Model
	ageInputError string

	width  int
	height int
}

// NewModel constructs the browsing UI over a catalogue and its session.
func NewModel(cat *catalog.Catalogue, state *session.State, opts Options) *Model {
	records := cat.Records()
	m := &Model{
		records: records,
		groups:  cat.AgeGroups(),
		points:  relevance.ChangePoints(records, model.MaxAgeMonths),
		state:   state,
		opts:    opts,
		logger:  logging.OrNop(opts.Logger),
		body:    viewport.New(0, 0),
		detail:  viewport.New(0, 0),
	}
	m.initAgeInput()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refresh()
		m.renderDetail()
		return m, nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.ageInputMode {
			return m.updateAgeInput(msg)
		}
		if _, open := m.state.Detail(); open {
			return m.updateDetail(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.ageInputMode {
		return fitLines(m.renderAgeModal(), m.width, m.height)
	}
	if _, open := m.state.Detail(); open {
		return fitLines(m.renderDetailView(), m.width, m.height)
	}
	topHeight, bodyHeight, footerHeight := m.layoutHeights()
	top := m.renderTabs()
	if m.opts.StickyHeader {
		top += "\n" + strings.Join(m.header, "\n")
	}
	parts := []string{
		fitLines(top, m.width, topHeight),
		fitLines(m.body.View(), m.width, bodyHeight),
		fitLines(m.renderFooter(), m.width, footerHeight),
	}
	return strings.Join(parts, "\n")
}

func (m *Model) initAgeInput() {
	input := textinput.New()
	input.Prompt = "Age in months: "
	input.Placeholder = "0-72"
	input.CharLimit = 3
	input.Cursor.SetMode(cursor.CursorBlink)
	m.ageInput = input
}

func (m *Model) tabsHeight() int {
	return maxInt(1, lipgloss.Height(activeNavStyle.Render("X")))
}

func (m *Model) layoutHeights() (topHeight, bodyHeight, footerHeight int) {
	topHeight = m.tabsHeight()
	if m.opts.StickyHeader {
		topHeight += len(m.header)
	}
	footerHeight = 1
	bodyHeight = maxInt(1, m.height-topHeight-footerHeight)
	return topHeight, bodyHeight, footerHeight
}

func (m *Model) trackWidth() int {
	return maxInt(10, m.width-2*trackIndent)
}

// refresh recomputes every derived view from the session state.
func (m *Model) refresh() {
	m.compact = m.opts.StickyHeader && m.body.YOffset > 0
	m.header = m.headerLines(m.compact)

	sections := m.renderSections()
	if len(sections.items) > 0 && m.cursor >= len(sections.items) {
		m.cursor = len(sections.items) - 1
		sections = m.renderSections()
	}

	lines := sections.lines
	m.bodyShift = 0
	if !m.opts.StickyHeader {
		m.bodyShift = len(m.header)
		lines = append(append([]string(nil), m.header...), lines...)
	}
	m.items = sections.items
	m.itemLines = make([]int, len(sections.itemLines))
	for i, line := range sections.itemLines {
		m.itemLines[i] = line + m.bodyShift
	}

	_, bodyHeight, _ := m.layoutHeights()
	m.body.Width = maxInt(0, m.width)
	m.body.Height = bodyHeight
	m.body.SetContent(strings.Join(lines, "\n"))
}

func (m *Model) ensureCursorVisible() {
	if m.cursor < 0 || m.cursor >= len(m.itemLines) {
		return
	}
	line := m.itemLines[m.cursor]
	if m.cursor == 0 {
		line = 0
	}
	switch {
	case line < m.body.YOffset:
		m.body.SetYOffset(line)
	case line >= m.body.YOffset+m.body.Height:
		m.body.SetYOffset(line - m.body.Height + 1)
	}
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pulse := m.state.Mode() == model.ModePulse
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.state.ToggleViewMode()
		m.resetScroll()
	case "1":
		m.state.SetViewMode(model.ModePulse)
		m.resetScroll()
	case "2":
		m.state.SetViewMode(model.ModeLibrary)
		m.resetScroll()
	case "left", "h":
		m.step(-1)
	case "right", "l":
		m.step(1)
	case "[":
		if pulse {
			m.state.PrevChangePoint()
		}
	case "]":
		if pulse {
			m.state.NextChangePoint()
		}
	case "g":
		if pulse {
			return m.startAgeInput()
		}
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "enter":
		m.openSelected()
		return m, nil
	case "home":
		m.body.GotoTop()
	case "end":
		m.body.GotoBottom()
	default:
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		m.refresh()
		return m, cmd
	}
	m.refresh()
	m.ensureCursorVisible()
	return m, nil
}

func (m *Model) step(delta int) {
	if m.state.Mode() == model.ModeLibrary {
		m.state.CycleCategory(delta)
		m.resetScroll()
		return
	}
	m.state.StepAge(delta)
}

func (m *Model) resetScroll() {
	m.cursor = 0
	m.body.GotoTop()
	m.logger.Debug("view changed", zap.String("mode", string(m.state.Mode())), zap.String("category", m.state.Category()))
}

func (m *Model) moveCursor(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor = minInt(len(m.items)-1, maxInt(0, m.cursor+delta))
}

func (m *Model) openSelected() {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return
	}
	m.state.OpenDetail(m.items[m.cursor])
	m.renderDetail()
	m.detail.GotoTop()
}

func (m *Model) renderDetail() {
	rec, open := m.state.Detail()
	if !open {
		return
	}
	width := maxInt(20, m.width)
	m.detail.Width = width
	m.detail.Height = maxInt(1, m.height-1)
	out, err := report.RenderMarkdown(report.DetailMarkdown(rec), width-2, m.opts.Color)
	if err != nil {
		m.logger.Warn("detail render failed", zap.String("id", rec.ID), zap.Error(err))
		out = report.DetailMarkdown(rec)
	}
	m.detail.SetContent(strings.TrimRight(out, "\n"))
}

func (m *Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.state.CloseDetail()
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m *Model) startAgeInput() (tea.Model, tea.Cmd) {
	m.ageInputMode = true
	m.ageInputError = ""
	m.ageInput.SetValue("")
	m.ageInput.Width = maxInt(10, modalInnerWidth(m.width)-lipgloss.Width(m.ageInput.Prompt))
	return m, m.ageInput.Focus()
}

func (m *Model) updateAgeInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.ageInputMode = false
		m.ageInputError = ""
		m.ageInput.Blur()
		return m, nil
	case tea.KeyEnter:
		age, err := parseAge(m.ageInput.Value())
		if err != nil {
			m.ageInputError = err.Error()
			m.logger.Debug("rejected age input", zap.String("input", m.ageInput.Value()))
			return m, nil
		}
		m.ageInputMode = false
		m.ageInputError = ""
		m.ageInput.Blur()
		m.state.SetAge(age)
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.ageInput, cmd = m.ageInput.Update(msg)
	return m, cmd
}

func parseAge(input string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || age < 0 || age > model.MaxAgeMonths {
		return 0, fmt.Errorf("invalid age (use 0-%d months)", model.MaxAgeMonths)
	}
	return age, nil
}

func (m *Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ageInputMode {
		return m, nil
	}
	if _, open := m.state.Detail(); open {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	if m.state.Mode() == model.ModePulse {
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft && msg.Y == m.trackRow() {
				m.state.BeginDrag()
				m.scrubTo(msg.X)
				m.refresh()
				return m, nil
			}
		case tea.MouseActionMotion:
			if m.state.Dragging() {
				m.scrubTo(msg.X)
				m.refresh()
				return m, nil
			}
		case tea.MouseActionRelease:
			if m.state.Dragging() {
				m.scrubTo(msg.X)
				m.state.EndDrag()
				m.refresh()
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	m.refresh()
	return m, cmd
}

// trackRow returns the screen row of the slider track, or -1 when it is
// scrolled out of view.
func (m *Model) trackRow() int {
	if m.state.Mode() != model.ModePulse {
		return -1
	}
	tabs := m.tabsHeight()
	idx := m.sliderIndex(m.compact)
	if m.opts.StickyHeader {
		return tabs + idx
	}
	row := idx - m.body.YOffset
	if row < 0 || row >= m.body.Height {
		return -1
	}
	return tabs + row
}

func (m *Model) scrubTo(x int) {
	m.state.SetAge(report.AgeForColumn(x-trackIndent, m.trackWidth()))
}
