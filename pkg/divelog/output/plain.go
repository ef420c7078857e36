package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// timestamp renders dive timestamps in all text formatters.
const timestamp = "2006-01-02 15:04:05"

// PlainFormatter formats output as a simple aligned table.
// It produces plain text output suitable for scripting and piping.
// No colors or styling are applied.
type PlainFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	if _, err := tw.Write([]byte("WHEN\tNUMBER\tTRIP\n")); err != nil {
		return err
	}
	for _, dive := range r.Dives {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n",
			dive.When.Format(timestamp), numberOrDash(dive.Number), tripOrDash(dive.Trip)); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// numberOrDash renders a sequence number, "-" when unset.
func numberOrDash(n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", n)
}

// tripOrDash renders a trip date, "-" for tripless dives.
func tripOrDash(trip string) string {
	if trip == "" {
		return "-"
	}
	return trip
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)
