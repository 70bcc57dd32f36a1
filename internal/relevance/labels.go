package relevance

import (
	"fmt"
	"strconv"
)

// FormatAge renders an age in months the way the slider header shows it.
func FormatAge(months int) string {
	if months == 0 {
		return "Newborn"
	}
	if months < 12 {
		return fmt.Sprintf("%d Months", months)
	}
	years := months / 12
	rest := months % 12
	label := fmt.Sprintf("%d Year", years)
	if years > 1 {
		label += "s"
	}
	if rest > 0 {
		label += fmt.Sprintf(" %dm", rest)
	}
	return label
}

// OffsetLabel describes a spotlight offset relative to the selected age.
func OffsetLabel(offset int) string {
	switch {
	case offset == 0:
		return "NEW THIS MONTH"
	case offset < 0:
		return fmt.Sprintf("%dm ago", -offset)
	default:
		return fmt.Sprintf("Coming in %dm", offset)
	}
}

// StartLabel is the short start-age badge of a milestone card.
func StartLabel(months int) string {
	if months == 0 {
		return "Birth"
	}
	return strconv.Itoa(months) + "mo"
}
