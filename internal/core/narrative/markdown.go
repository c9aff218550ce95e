package narrative

import (
	"fmt"
	"strings"

	"github.com/SscSPs/business_management_app/internal/core/domain"
)

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

// RenderMarkdown renders r as a markdown document.
func RenderMarkdown(r domain.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	for _, m := range r.Metadata {
		fmt.Fprintf(&b, "- **%s:** %s\n", m.Label, m.Value)
	}

	for _, s := range r.Sections {
		b.WriteString("\n")
		switch s := s.(type) {
		case domain.HeaderSection:
			fmt.Fprintf(&b, "## %s\n", s.Title)
		case domain.ParagraphSection:
			fmt.Fprintf(&b, "### %s\n\n%s\n", s.Title, s.Content)
		case domain.TableSection:
			fmt.Fprintf(&b, "### %s\n\n", s.Title)
			writeRow(&b, s.Headers)
			sep := make([]string, len(s.Headers))
			for i := range sep {
				sep[i] = "---"
			}
			writeRow(&b, sep)
			for _, row := range s.Rows {
				writeRow(&b, row)
			}
			writeNotes(&b, s.Notes)
		case domain.ListSection:
			fmt.Fprintf(&b, "### %s\n\n", s.Title)
			for _, item := range s.Items {
				if !strings.HasPrefix(item, "- ") {
					b.WriteString("- ")
				}
				b.WriteString(item)
				b.WriteString("\n")
			}
			writeNotes(&b, s.Notes)
		default:
			fmt.Fprintf(&b, "### %s\n", s.SectionTitle())
		}
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(cellEscaper.Replace(c))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

func writeNotes(b *strings.Builder, notes string) {
	if notes != "" {
		fmt.Fprintf(b, "\n_%s_\n", notes)
	}
}
