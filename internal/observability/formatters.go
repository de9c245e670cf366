// Package observability provides formatted terminal output for the jobboard CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobboard/internal/feedback"
	"github.com/jonathan/jobboard/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow caps the bullet lists in a job detail
	maxItemsToShow = 8
)

// Printer handles formatted output for CLI commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, wrapped := range wrap(line, boxWidth-4) {
			fmt.Fprintf(p.out, "│ %s │\n", pad(wrapped))
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobs outputs a one-entry-per-job summary of a filtered listing.
func (p *Printer) PrintJobs(jobs []types.Job, filtersActive bool) {
	if len(jobs) == 0 {
		content := "No jobs found."
		if filtersActive {
			content += "\nClear the filters to see every listing."
		}
		p.printBox("JOBS (0)", content)
		return
	}

	var sb strings.Builder
	for i, job := range jobs {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", job.ID, job.Title))
		sb.WriteString(fmt.Sprintf("    %s · %s\n", job.Company, job.Location))
		sb.WriteString(fmt.Sprintf("    %s · %s", job.Type, job.Salary))
		if i < len(jobs)-1 {
			sb.WriteString("\n\n")
		}
	}

	title := fmt.Sprintf("JOBS (%d)", len(jobs))
	if filtersActive {
		title += " filtered"
	}
	p.printBox(title, sb.String())
}

// PrintJob outputs the full detail of one listing.
func (p *Printer) PrintJob(job *types.Job) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	sb.WriteString(fmt.Sprintf("Type:     %s\n", job.Type))
	sb.WriteString(fmt.Sprintf("Salary:   %s\n", job.Salary))
	sb.WriteString("\n")
	sb.WriteString(job.Description)
	sb.WriteString("\n")

	writeList(&sb, "Responsibilities", job.Responsibilities)
	writeList(&sb, "Qualifications", job.Qualifications)

	p.printBox(strings.ToUpper(job.Title), strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("\n" + heading + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintFeedback outputs oracle feedback rendered for the terminal.
func (p *Printer) PrintFeedback(text string) {
	p.printBox("RESUME FEEDBACK", strings.TrimSuffix(feedback.RenderText(feedback.Parse(text)), "\n"))
}

// PrintAck outputs the gateway's acknowledgment of a submission.
func (p *Printer) PrintAck(what string, ack *types.SubmissionAck) {
	if ack == nil {
		return
	}
	content := fmt.Sprintf("✅ %s received", what)
	if ack.Message != "" {
		content += "\n" + ack.Message
	}
	p.printBox("SUBMITTED", content)
}

// pad right-pads s with spaces to the inner box width, counting runes.
func pad(s string) string {
	n := len([]rune(s))
	if n >= boxWidth-4 {
		return s
	}
	return s + strings.Repeat(" ", boxWidth-4-n)
}

// wrap breaks line on spaces so no piece exceeds width runes.
// Words longer than width are cut.
func wrap(line string, width int) []string {
	if len([]rune(line)) <= width {
		return []string{line}
	}

	indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
	var out []string
	current := ""
	for _, word := range strings.Fields(line) {
		for len([]rune(word)) > width-len(indent) {
			r := []rune(word)
			if current != "" {
				out = append(out, current)
				current = ""
			}
			out = append(out, indent+string(r[:width-len(indent)]))
			word = string(r[width-len(indent):])
		}
		switch {
		case current == "":
			current = indent + word
		case len([]rune(current))+1+len([]rune(word)) <= width:
			current += " " + word
		default:
			out = append(out, current)
			current = indent + word
		}
	}
	if current != "" {
		out = append(out, current)
	}
	return out
}
