// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/coverletter-agent/internal/compose"
	"github.com/jonathan/coverletter-agent/internal/history"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// previewLength caps how much of an input is echoed back
	previewLength = 48
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

// PrintRequest outputs a summary of the resolved inputs about to be sent.
func (p *Printer) PrintRequest(req *compose.Request) {
	if req == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(formatInput("Resume", req.Resume))
	sb.WriteString(formatInput("Cover letter", req.ReferenceCoverLetter))
	sb.WriteString(formatInput("Job description", req.JobDescription))
	sb.WriteString(formatInput("Remarks", req.Remarks))

	p.printBox("RESOLVED INPUTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRunSummary outputs the bookkeeping record of a completed run.
func (p *Printer) PrintRunSummary(record history.Record) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:      %s\n", record.RunID))
	sb.WriteString(fmt.Sprintf("Model:    %s\n", record.Model))
	sb.WriteString(fmt.Sprintf("Output:   %s\n", record.OutputPath))
	sb.WriteString(fmt.Sprintf("Prompt:   %d chars\n", record.PromptChars))
	sb.WriteString(fmt.Sprintf("Response: %d chars", record.ResponseChars))

	p.printBox("RUN SUMMARY", sb.String())
}

// formatInput renders one labelled input with a first-line preview.
func formatInput(label, value string) string {
	if strings.TrimSpace(value) == "" {
		return fmt.Sprintf("%-16s (empty)\n", label+":")
	}
	preview := strings.SplitN(strings.TrimSpace(value), "\n", 2)[0]
	if len(preview) > previewLength {
		preview = preview[:previewLength-3] + "..."
	}
	return fmt.Sprintf("%-16s %d chars\n  %s\n", label+":", len(value), preview)
}
