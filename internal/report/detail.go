package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/verte-zerg/tinysteps/internal/model"
)

const (
	essentialFallback = "This curated item is chosen for its specific developmental benefits. " +
		"It's designed to support your child's natural growth trajectory during this window."
	milestoneFallback = "Detailed guidance for this specific milestone is currently being curated by our specialists. " +
		"Check back soon for deeper insights into your child's development."
	defaultLinkDescription = "Authoritative Guide & Recommendations"
	defaultLinkAuthor      = "Contributor"

	// Disclaimer closes every detail page.
	Disclaimer = "Medical Disclaimer: This information is for educational purposes only and does not " +
		"constitute professional medical advice. Always consult with your pediatrician regarding " +
		"your child's specific developmental needs."
)

// LongDescription returns the record's full text, or the fallback for its kind.
func LongDescription(r model.Record) string {
	if text := strings.TrimSpace(r.LongDescription); text != "" {
		return text
	}
	if r.IsEssential() {
		return essentialFallback
	}
	return milestoneFallback
}

// DetailMarkdown builds the detail page of a record as markdown.
func DetailMarkdown(r model.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", ItemTitle(r))

	kind := "Milestone"
	about := "Understanding this Stage"
	if r.IsEssential() {
		kind = "Essential"
		about = "About this Essential"
	}
	meta := fmt.Sprintf("**%s** · %dm %s", r.Category, r.StartAgeMonths, kind)
	if r.IsEssential() {
		meta += " · " + WindowLabel(r)
	}
	b.WriteString(meta + "\n\n")
	if r.ShortDescription != "" {
		fmt.Fprintf(&b, "_%s_\n\n", r.ShortDescription)
	}

	fmt.Fprintf(&b, "## %s\n\n%s\n\n", about, LongDescription(r))

	if len(r.Links) > 0 {
		b.WriteString("## Resources & Guides\n\n")
		for _, link := range r.Links {
			desc := link.Description
			if desc == "" {
				desc = defaultLinkDescription
			}
			fmt.Fprintf(&b, "- %s [%s](%s)  \n  %s", linkIcon(link.Type), link.Label, link.URL, desc)
			// The author row shows only for links that credit someone.
			if link.Author != "" || link.AuthorIcon != "" {
				author := link.Author
				if author == "" {
					author = defaultLinkAuthor
				}
				fmt.Fprintf(&b, " · %s", author)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n> " + Disclaimer + "\n")
	return b.String()
}

func linkIcon(t model.LinkType) string {
	switch t {
	case model.LinkInstagram:
		return "📷"
	case model.LinkExpert:
		return "👤"
	case model.LinkVideo:
		return "▶"
	default:
		return "ℹ"
	}
}

// RenderMarkdown renders markdown for a terminal of the given width. Without
// colour the plain notty style is used.
func RenderMarkdown(markdown string, width int, color bool) (string, error) {
	if width <= 0 {
		width = terminalWidthBackup
	}
	style := glamour.WithStandardStyle("notty")
	if color {
		style = glamour.WithAutoStyle()
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// RenderDetail writes the rendered detail page of r.
func RenderDetail(w io.Writer, r model.Record, opts Options) error {
	out, err := RenderMarkdown(DetailMarkdown(r), opts.width(), opts.Color)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
