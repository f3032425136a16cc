package cli

import (
	"fmt"
	"time"
)

// Printer is the subset of Output the report needs; the usecase layer's
// CLIOutput port satisfies it.
type Printer interface {
	PrintStep(msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
}

type BuildStep struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Success   bool
	Error     string
}

type BuildIssue struct {
	Page    string
	Message string
	Details []string
}

// BuildReport accumulates step timings, warnings, and errors over a build
// and renders a summary at the end.
type BuildReport struct {
	out         Printer
	steps       []BuildStep
	warnings    []BuildIssue
	errors      []BuildIssue
	startTime   time.Time
	pageCount   int
	outputDir   string
	hasFailures bool
}

func NewBuildReport(out Printer, outputDir string) *BuildReport {
	return &BuildReport{
		out:       out,
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *BuildReport) SetPageCount(count int) {
	r.pageCount = count
}

func (r *BuildReport) StartStep(name string) *BuildStep {
	r.steps = append(r.steps, BuildStep{
		Name:      name,
		StartTime: time.Now(),
	})
	return &r.steps[len(r.steps)-1]
}

func (r *BuildReport) EndStep(step *BuildStep, success bool, errMsg string) {
	step.EndTime = time.Now()
	step.Success = success
	step.Error = errMsg
	if !success {
		r.hasFailures = true
	}
}

func (r *BuildReport) AddWarning(page string, message string, details []string) {
	r.warnings = append(r.warnings, BuildIssue{Page: page, Message: message, Details: details})
}

func (r *BuildReport) AddError(page string, message string, details []string) {
	r.errors = append(r.errors, BuildIssue{Page: page, Message: message, Details: details})
	r.hasFailures = true
}

func (r *BuildReport) HasFailures() bool {
	return r.hasFailures
}

func (r *BuildReport) Render() {
	duration := time.Since(r.startTime)

	r.out.PrintStep("%d pages", r.pageCount)

	for _, step := range r.steps {
		if step.Success {
			r.out.PrintSuccess("%s (%s)", step.Name, formatDuration(step.EndTime.Sub(step.StartTime)))
		} else {
			r.out.PrintError("%s", step.Name)
		}
	}

	r.renderIssues()

	if len(r.errors) > 0 {
		r.out.PrintError("Build failed after %s", formatDuration(duration))
	} else {
		r.out.PrintSuccess("Build complete in %s", formatDuration(duration))
	}

	if r.outputDir != "" {
		r.out.PrintStep("Output: %s", r.outputDir)
	}
}

func (r *BuildReport) renderIssues() {
	for _, issue := range r.errors {
		r.out.PrintError("%s: %s", issue.Page, issue.Message)
		for _, detail := range dedupe(issue.Details) {
			r.out.PrintFile(detail)
		}
	}
	for _, issue := range r.warnings {
		r.out.PrintWarning("%s: %s", issue.Page, issue.Message)
		for _, detail := range dedupe(issue.Details) {
			r.out.PrintFile(detail)
		}
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

func dedupe(items []string) []string {
	if len(items) <= 1 {
		return items
	}

	counts := make(map[string]int)
	order := make([]string, 0, len(items))
	for _, item := range items {
		if counts[item] == 0 {
			order = append(order, item)
		}
		counts[item]++
	}

	result := make([]string, 0, len(order))
	for _, item := range order {
		if counts[item] > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", item, counts[item]))
		} else {
			result = append(result, item)
		}
	}
	return result
}
