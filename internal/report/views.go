package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verte-zerg/tinysteps/internal/catalog"
	"github.com/verte-zerg/tinysteps/internal/model"
	"github.com/verte-zerg/tinysteps/internal/relevance"
)

// Section titles and empty-state texts shared with the terminal UI.
const (
	SpotlightTitle  = "Milestone Spotlight"
	ToolkitTitle    = "Essentials Toolkit"
	HistoryTitle    = "Active History"
	TimelineTitle   = "Developmental Timeline"
	EssentialsTitle = "Helpful Essentials"

	NoSpotlightText     = "No specific developmental markers for this exact window."
	ResourceFocusedText = "Resource-Focused Category"
	NoToolkitText       = "No toolkit items added yet."
)

// WindowLabel describes an essential's relevance window, e.g. "0-12mo" or "6mo+".
func WindowLabel(r model.Record) string {
	if r.EndAgeMonths == nil {
		return strconv.Itoa(r.StartAgeMonths) + "mo+"
	}
	return fmt.Sprintf("%d-%dmo", r.StartAgeMonths, *r.EndAgeMonths)
}

// ItemTitle prefixes a record title with its icon, when it has one.
func ItemTitle(r model.Record) string {
	if r.Icon == "" {
		return r.Title
	}
	return r.Icon + " " + r.Title
}

// RenderPulse writes the pulse view for one age.
func RenderPulse(w io.Writer, view relevance.PulseView, points []int, opts Options) error {
	width := opts.width()
	lines := RenderSlider(width, view.Age, points, false)
	lines[0] = colorize(lines[0], colorBold, opts.Color)
	lines = append(lines, "")

	lines = append(lines, heading(SpotlightTitle, colorBlue, opts))
	if len(view.Relevance.Spotlight) == 0 {
		lines = append(lines, "  "+colorize(NoSpotlightText, colorMuted, opts.Color))
	} else {
		rows := make([][]string, 0, len(view.Relevance.Spotlight))
		for _, e := range view.Relevance.Spotlight {
			rows = append(rows, []string{
				relevance.OffsetLabel(e.Offset),
				e.Record.Category,
				ItemTitle(e.Record),
				e.Record.ShortDescription,
			})
		}
		lines = append(lines, fitWidth(indentLines(formatTable(nil, rows, nil), "  "), width)...)
	}

	if essentials := view.Relevance.ActiveEssentials; len(essentials) > 0 {
		lines = append(lines, "", heading(ToolkitTitle, colorAmber, opts))
		rows := make([][]string, 0, len(essentials))
		for _, r := range essentials {
			rows = append(rows, []string{r.Category, ItemTitle(r), WindowLabel(r)})
		}
		lines = append(lines, fitWidth(indentLines(formatTable(nil, rows, map[int]bool{2: true}), "  "), width)...)
	}

	if len(view.History) > 0 {
		lines = append(lines, "", heading(HistoryTitle, colorBlue, opts))
		for _, bracket := range view.History {
			lines = append(lines, "  "+colorize(bracket.Group.Label, colorBold, opts.Color))
			for _, cat := range bracket.Categories {
				lines = append(lines, "    "+cat.Category)
				rows := make([][]string, 0, len(cat.Records))
				for _, r := range cat.Records {
					rows = append(rows, []string{relevance.StartLabel(r.StartAgeMonths), ItemTitle(r)})
				}
				lines = append(lines, fitWidth(indentLines(formatTable(nil, rows, map[int]bool{0: true}), "      "), width)...)
			}
		}
	}
	return writeLines(w, lines)
}

// RenderLibrary writes one category's timeline and essentials.
func RenderLibrary(w io.Writer, view relevance.LibraryView, opts Options) error {
	width := opts.width()
	lines := []string{colorize("Category: "+view.Category, colorBold, opts.Color), ""}

	lines = append(lines, heading(TimelineTitle, colorBlue, opts))
	if len(view.Milestones) == 0 {
		lines = append(lines, "  "+colorize(ResourceFocusedText, colorMuted, opts.Color))
	} else {
		rows := make([][]string, 0, len(view.Milestones))
		for _, r := range view.Milestones {
			rows = append(rows, []string{relevance.StartLabel(r.StartAgeMonths), ItemTitle(r), r.ShortDescription})
		}
		lines = append(lines, fitWidth(indentLines(formatTable(nil, rows, map[int]bool{0: true}), "  "), width)...)
	}

	lines = append(lines, "", heading(EssentialsTitle, colorAmber, opts))
	if len(view.Essentials) == 0 {
		lines = append(lines, "  "+colorize(NoToolkitText, colorMuted, opts.Color))
	} else {
		rows := make([][]string, 0, len(view.Essentials))
		for _, r := range view.Essentials {
			rows = append(rows, []string{WindowLabel(r), ItemTitle(r), r.ShortDescription})
		}
		lines = append(lines, fitWidth(indentLines(formatTable(nil, rows, map[int]bool{0: true}), "  "), width)...)
	}
	return writeLines(w, lines)
}

// RenderCategories writes each category with its record counts.
func RenderCategories(w io.Writer, c *catalog.Catalogue) error {
	categories := c.Categories()
	if len(categories) == 0 {
		return writeLines(w, []string{"No categories found."})
	}
	rows := make([][]string, 0, len(categories))
	for _, name := range categories {
		milestones, essentials := c.CountByCategory(name)
		rows = append(rows, []string{name, strconv.Itoa(milestones), strconv.Itoa(essentials)})
	}
	lines := formatTable([]string{"Category", "Milestones", "Essentials"}, rows, map[int]bool{1: true, 2: true})
	return writeLines(w, lines)
}

// RenderSummary writes a one-line description of a validated catalogue.
func RenderSummary(w io.Writer, c *catalog.Catalogue) error {
	milestones, essentials := 0, 0
	for _, r := range c.Records() {
		if r.IsEssential() {
			essentials++
		} else {
			milestones++
		}
	}
	line := fmt.Sprintf("%s: %d records (%d milestones, %d essentials), %d categories, %d age groups",
		c.Source(), c.Len(), milestones, essentials, len(c.Categories()), len(c.AgeGroups()))
	return writeLines(w, []string{line})
}

func heading(title, code string, opts Options) string {
	return colorize(strings.ToUpper(title), code+colorBold, opts.Color)
}

func fitWidth(lines []string, width int) []string {
	for i, line := range lines {
		lines[i] = truncate(line, width)
	}
	return lines
}

func writeLines(w io.Writer, lines []string) error {
	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
