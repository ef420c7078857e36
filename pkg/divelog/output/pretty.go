package output

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// timeRounding keeps load durations readable in the header.
const timeRounding = time.Millisecond

// PrettyFormatter formats output with colors and styling using lipgloss.
// It produces a visually appealing output suitable for terminal display.
type PrettyFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *Result) error {
	w.WriteString(f.formatHeader(r))
	w.WriteString("\n")

	w.WriteString(f.formatDives(r))

	if len(r.Trips) > 0 {
		w.WriteString("\n")
		w.WriteString(f.formatTrips(r))
	}

	w.WriteString(f.formatFooter(r))

	if len(r.Errors) > 0 {
		w.WriteString("\n")
		w.WriteString(f.formatErrors(r.Errors))
	}

	return nil
}

// formatHeader builds the header box with load metadata.
func (f *PrettyFormatter) formatHeader(r *Result) string {
	var lines []string

	sourceLabel := LabelStyle.Render("Source:")
	sourceValue := ValueStyle.Render(r.Source)
	lines = append(lines, fmt.Sprintf("%s %s", sourceLabel, sourceValue))

	loadedLabel := LabelStyle.Render("Loaded:")
	loadedValue := ValueStyle.Render(fmt.Sprintf("%d dives, %d trips in %s",
		len(r.Dives), len(r.Trips), r.Info.Duration.Round(timeRounding)))
	parts := []string{fmt.Sprintf("%s %s", loadedLabel, loadedValue)}

	if r.Info.FromCache {
		parts = append(parts, SuccessStyle.Render("from cache"))
	} else {
		readLabel := LabelStyle.Render("Read:")
		readValue := MutedStyle.Render(fmt.Sprintf("%d files, %s",
			r.Info.FilesRead, humanize.IBytes(uint64(r.Info.BytesRead))))
		parts = append(parts, fmt.Sprintf("%s %s", readLabel, readValue))
	}
	lines = append(lines, strings.Join(parts, "  "))

	return HeaderBox.Render(strings.Join(lines, "\n"))
}

// formatDives builds the dive table.
func (f *PrettyFormatter) formatDives(r *Result) string {
	if len(r.Dives) == 0 {
		return MutedStyle.Render("  No dives found\n")
	}

	var sb strings.Builder
	sb.WriteString(TableHeaderStyle.Render(fmt.Sprintf("  %-19s  %6s  %s", "WHEN", "NUMBER", "TRIP")))
	sb.WriteString("\n")

	for _, dive := range r.Dives {
		sb.WriteString(fmt.Sprintf("  %-19s  %6s  %s\n",
			dive.When.Format(timestamp),
			numberOrDash(dive.Number),
			tripOrDash(dive.Trip)))
	}
	return sb.String()
}

// formatTrips builds the trip summary table.
func (f *PrettyFormatter) formatTrips(r *Result) string {
	var sb strings.Builder
	sb.WriteString(TableHeaderStyle.Render(fmt.Sprintf("  %-10s  %s", "TRIP", "DIVES")))
	sb.WriteString("\n")

	for _, trip := range r.Trips {
		sb.WriteString(fmt.Sprintf("  %-10s  %d\n", trip.When.Format(dateOnly), trip.Dives))
	}
	return sb.String()
}

// formatFooter builds the footer box with walk statistics.
func (f *PrettyFormatter) formatFooter(r *Result) string {
	dirsLabel := LabelStyle.Render("Directories walked:")
	dirsValue := ValueStyle.Render(fmt.Sprintf("%d", r.Info.DirsWalked))
	return FooterBox.Render(fmt.Sprintf("%s %s", dirsLabel, dirsValue))
}

// formatErrors builds the per-entry error list.
func (f *PrettyFormatter) formatErrors(errs []string) string {
	var sb strings.Builder
	sb.WriteString(DangerStyle.Render(fmt.Sprintf("%d entries could not be processed:", len(errs))))
	sb.WriteString("\n")
	for _, e := range errs {
		sb.WriteString(MutedStyle.Render("  " + e))
		sb.WriteString("\n")
	}
	return sb.String()
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)
