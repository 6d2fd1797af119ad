// Package observability provides formatted output utilities for CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the analyze and batch commands
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of the extracted resume.
func (p *Printer) PrintResume(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", resume.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", resume.Email))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", resume.Phone))
	sb.WriteString("\n")

	if len(resume.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(resume.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", resume.Skills[i]))
		}
		if len(resume.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := resume.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", exp.Title))
			if exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" at %s", exp.Company))
			}
			sb.WriteString("\n")
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	for _, edu := range resume.Education {
		sb.WriteString(fmt.Sprintf("Education: %s, %s\n", edu.Degree, edu.Institution))
	}

	p.printBox("EXTRACTED RESUME", strings.TrimRight(sb.String(), "\n"))
}

// PrintAnalysis outputs a human-readable summary of a scored analysis.
func (p *Printer) PrintAnalysis(analysis *types.EnhancedAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall Score:    %d/100\n", analysis.OverallScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Experience Match: %d\n", analysis.ExperienceMatch))
	sb.WriteString(fmt.Sprintf("Education Fit:    %d\n", analysis.EducationFit))
	sb.WriteString(fmt.Sprintf("Cultural Fit:     %d\n", analysis.CulturalFit))
	sb.WriteString("\n")

	if len(analysis.TechnicalSkills) > 0 {
		sb.WriteString("Technical Skills:\n")
		count := min(len(analysis.TechnicalSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := analysis.TechnicalSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", skill.Skill, skill.Proficiency))
		}
		if len(analysis.TechnicalSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.TechnicalSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Salary:       %s\n", analysis.SalaryExpectation))
	sb.WriteString(fmt.Sprintf("Availability: %s\n", analysis.AvailabilityDate))

	if len(analysis.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		for _, s := range analysis.Strengths {
			sb.WriteString(fmt.Sprintf("  + %s\n", s))
		}
	}
	if len(analysis.Weaknesses) > 0 {
		sb.WriteString("\nWeaknesses:\n")
		for _, w := range analysis.Weaknesses {
			sb.WriteString(fmt.Sprintf("  - %s\n", w))
		}
	}
	if len(analysis.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, r := range analysis.Recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", r))
		}
	}

	p.printBox("CANDIDATE ANALYSIS", strings.TrimRight(sb.String(), "\n"))
}

// PrintBatchReport outputs a ranked summary table for a batch run.
func (p *Printer) PrintBatchReport(report *types.BatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Processed: %d   Succeeded: %d   Failed: %d\n", report.TotalProcessed, report.Successful, report.Failed))
	sb.WriteString("\n")

	for i, result := range report.Results {
		if result.Success {
			name := result.FileName
			if result.Resume != nil && result.Resume.Name != "" {
				name = result.Resume.Name
			}
			sb.WriteString(fmt.Sprintf("%2d. %s: %d/100 (%s)\n", i+1, name, result.Analysis.OverallScore, result.FileName))
		} else {
			sb.WriteString(fmt.Sprintf("%2d. %s: failed, %s\n", i+1, result.FileName, result.Error))
		}
	}

	p.printBox("BATCH REPORT", strings.TrimRight(sb.String(), "\n"))
}
