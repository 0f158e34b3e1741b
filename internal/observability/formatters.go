// Package observability provides logging and formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/text/width"

	"github.com/jonathan/resume-analyzer/internal/orchestrator"
	"github.com/jonathan/resume-analyzer/internal/types"
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

// displayWidth returns the number of terminal columns s occupies.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}

// fitLine truncates s to at most cols columns and pads it to exactly cols.
func fitLine(s string, cols int) string {
	if displayWidth(s) > cols {
		var sb strings.Builder
		used := 0
		for _, r := range s {
			rw := displayWidth(string(r))
			if used+rw > cols-3 {
				break
			}
			sb.WriteRune(r)
			used += rw
		}
		s = sb.String() + "..."
	}
	return s + strings.Repeat(" ", cols-displayWidth(s))
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", fitLine(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", fitLine(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList writes up to maxItemsToShow bullet items with an overflow note.
func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintProfile outputs a human-readable summary of the professional profile.
func (p *Printer) PrintProfile(profile *types.ProfessionalProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Roles:      %s\n", strings.Join(profile.TitleRoles, " → ")))
	if profile.Affiliation != "" {
		sb.WriteString(fmt.Sprintf("At:         %s\n", profile.Affiliation))
	}
	sb.WriteString(fmt.Sprintf("AI tag:     %s\n", profile.AITag))
	sb.WriteString(fmt.Sprintf("Experience: %d years, %s\n", profile.YearsOfExperience, profile.Industry))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", profile.LatestEducation))
	if profile.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:      %s\n", profile.Email))
	}
	if profile.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:      %s\n", profile.Phone))
	}
	if profile.GitHub != "" {
		sb.WriteString(fmt.Sprintf("GitHub:     %s\n", profile.GitHub))
	}
	sb.WriteString("\n")
	sb.WriteString(profile.Description)

	p.printBox("PROFESSIONAL PROFILE", sb.String())
}

// PrintAssessments outputs the skill, experience and education assessments.
func (p *Printer) PrintAssessments(result *types.ResumeAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	writeList(&sb, "Technical skills", result.SkillAssessment.TechnicalSkills)
	writeList(&sb, "Soft skills", result.SkillAssessment.SoftSkills)
	writeList(&sb, "Industries", result.ExperienceAssessment.Industries)
	sb.WriteString(fmt.Sprintf("Career progression: %s\n", result.ExperienceAssessment.CareerProgression))
	writeList(&sb, "Key achievements", result.ExperienceAssessment.KeyAchievements)
	writeList(&sb, "Institutions", result.EducationAssessment.Institutions)
	if result.EducationAssessment.HighestDegree != "" {
		sb.WriteString(fmt.Sprintf("Highest degree: %s\n", result.EducationAssessment.HighestDegree))
	}

	p.printBox("ASSESSMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHighlights outputs the overall highlights and target-job matches.
func (p *Printer) PrintHighlights(overall *types.OverallAssessment) {
	if overall == nil || len(overall.Highlights) == 0 {
		return
	}

	var sb strings.Builder
	for _, h := range overall.Highlights {
		sb.WriteString(fmt.Sprintf("★ %s\n", h))
	}
	if overall.TargetJob != "" {
		sb.WriteString(fmt.Sprintf("\nTarget job: %s\n", overall.TargetJob))
		if len(overall.MatchedSkills) > 0 {
			sb.WriteString(fmt.Sprintf("Matched:    %s\n", strings.Join(overall.MatchedSkills, ", ")))
		}
	}

	p.printBox("HIGHLIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs every section of an analysis result.
func (p *Printer) PrintResult(result *types.ResumeAnalysisResult) {
	if result == nil {
		return
	}
	p.PrintProfile(&result.ProfessionalProfile)
	p.PrintAssessments(result)
	p.PrintHighlights(&result.OverallAssessment)
}

// PrintSteps outputs the final status of each pipeline step.
func (p *Printer) PrintSteps(steps []orchestrator.Step) {
	if len(steps) == 0 {
		return
	}

	var sb strings.Builder
	for i, step := range steps {
		mark := "·"
		switch step.Status {
		case orchestrator.StatusCompleted:
			mark = "✓"
		case orchestrator.StatusError:
			mark = "✗"
		case orchestrator.StatusProcessing:
			mark = "…"
		}
		sb.WriteString(fmt.Sprintf("%s %d. %s", mark, i+1, step.Title))
		if step.Error != "" {
			sb.WriteString(fmt.Sprintf(": %s", step.Error))
		}
		sb.WriteString("\n")
	}

	p.printBox("PIPELINE STEPS", strings.TrimSuffix(sb.String(), "\n"))
}

// Dump writes a deep, type-annotated dump of v for debugging.
func (p *Printer) Dump(v any) {
	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	cfg.Fdump(p.out, v)
}
