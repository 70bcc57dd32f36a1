package report

import (
	"strings"

	"github.com/verte-zerg/tinysteps/internal/model"
	"github.com/verte-zerg/tinysteps/internal/relevance"
)

const (
	trackRune        = '─'
	tickRune         = '┴'
	thumbRune        = '●'
	thumbDraggedRune = '◆'
	minTrackWidth    = 2
)

// ColumnForAge maps an age onto a track of width cells.
func ColumnForAge(age, width int) int {
	if width < minTrackWidth {
		return 0
	}
	age = clampAge(age)
	return (age*(width-1) + model.MaxAgeMonths/2) / model.MaxAgeMonths
}

// AgeForColumn maps a track column back to the nearest age.
func AgeForColumn(col, width int) int {
	if width < minTrackWidth {
		return 0
	}
	if col < 0 {
		col = 0
	}
	if col > width-1 {
		col = width - 1
	}
	return clampAge((col*model.MaxAgeMonths + (width-1)/2) / (width - 1))
}

// SliderTrack draws the age track: one tick per change point and the thumb
// at age. The thumb changes shape while dragging.
func SliderTrack(width, age int, points []int, dragging bool) string {
	if width < minTrackWidth {
		width = minTrackWidth
	}
	cells := make([]rune, width)
	for i := range cells {
		cells[i] = trackRune
	}
	for _, p := range points {
		if p < 0 || p > model.MaxAgeMonths {
			continue
		}
		cells[ColumnForAge(p, width)] = tickRune
	}
	thumb := thumbRune
	if dragging {
		thumb = thumbDraggedRune
	}
	cells[ColumnForAge(age, width)] = thumb
	return string(cells)
}

// SliderScale labels both ends of a track of width cells.
func SliderScale(width int) string {
	left := relevance.FormatAge(0)
	right := relevance.FormatAge(model.MaxAgeMonths)
	gap := width - displayWidth(left) - displayWidth(right)
	if gap < 1 {
		return truncate(left+" "+right, width)
	}
	return left + strings.Repeat(" ", gap) + right
}

// RenderSlider returns the header block: selected age, track and scale.
func RenderSlider(width, age int, points []int, dragging bool) []string {
	label := relevance.FormatAge(age)
	if dragging {
		label += " (dragging)"
	}
	return []string{
		"Age: " + label,
		SliderTrack(width, age, points, dragging),
		SliderScale(width),
	}
}

func clampAge(age int) int {
	if age < 0 {
		return 0
	}
	if age > model.MaxAgeMonths {
		return model.MaxAgeMonths
	}
	return age
}
