// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-intel/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
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
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintContact outputs a human-readable summary of the detected contact channels.
func (p *Printer) PrintContact(contact types.ContactInfo) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Emails:    %s\n", joinOrNone(contact.Emails)))
	sb.WriteString(fmt.Sprintf("Phones:    %s\n", joinOrNone(contact.Phones)))
	sb.WriteString(fmt.Sprintf("LinkedIn:  %s\n", joinOrNone(contact.LinkedInHandles)))
	sb.WriteString(fmt.Sprintf("Locations: %s", joinOrNone(contact.Locations)))

	p.printBox("CONTACT", sb.String())
}

// PrintSections outputs the detected section names and their content lengths.
func (p *Printer) PrintSections(sections map[string]string) {
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%-24s %4d chars", name, len(sections[name])))
	}
	if len(names) == 0 {
		sb.WriteString("(none detected)")
	}

	p.printBox(fmt.Sprintf("SECTIONS (%d)", len(names)), sb.String())
}

// PrintExperience outputs the aggregate experience summary.
func (p *Printer) PrintExperience(exp types.AggregateExperience) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total:  %d months (%dy %dm)\n",
		exp.TotalMonths, exp.EstimatedYears, exp.EstimatedMonths))
	if exp.EarliestYear != nil && exp.LatestYear != nil {
		sb.WriteString(fmt.Sprintf("Span:   %d - %d\n", *exp.EarliestYear, *exp.LatestYear))
	}
	sb.WriteString(fmt.Sprintf("Ranges: %d detected", len(exp.DateRanges)))

	p.printBox("EXPERIENCE", sb.String())
}

// PrintWorkEntries outputs a summary of the assembled employment entries.
func (p *Printer) PrintWorkEntries(entries []types.WorkExperienceEntry) {
	var sb strings.Builder

	for i, entry := range entries {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more", len(entries)-maxItemsToShow))
			break
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(entry.Title)
		if entry.Company != "" {
			sb.WriteString(" @ " + entry.Company)
		}
		if entry.Duration != "" {
			sb.WriteString("\n  " + entry.Duration)
		}
		if entry.Location != "" {
			sb.WriteString("\n  " + entry.Location)
		}
		sb.WriteString(fmt.Sprintf("\n  %d bullet(s)", len(entry.Description)))
	}
	if len(entries) == 0 {
		sb.WriteString("(none detected)")
	}

	p.printBox(fmt.Sprintf("WORK ENTRIES (%d)", len(entries)), sb.String())
}

// PrintResult outputs the full extraction summary.
func (p *Printer) PrintResult(result types.ExtractionResult) {
	p.PrintContact(result.Contact)
	p.PrintSections(result.Sections)
	p.PrintExperience(result.Experience)
	p.PrintWorkEntries(result.WorkEntries)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
