package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// TSVFormatter formats output as tab-separated values.
// It produces a simple table with a header row followed by data rows.
type TSVFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *TSVFormatter) Format(w *bytes.Buffer, r *Result) error {
	w.WriteString("WHEN\tNUMBER\tTRIP\n")
	for _, dive := range r.Dives {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			dive.When.Format(timestamp), numberOrDash(dive.Number), tripOrDash(dive.Trip))
	}
	return nil
}

func init() {
	Register("tsv", func() Formatter {
		return &TSVFormatter{}
	})
}

// Ensure TSVFormatter implements Formatter.
var _ Formatter = (*TSVFormatter)(nil)

// CSVFormatter formats output as comma-separated values with proper quoting.
// It uses encoding/csv for RFC 4180 compliant output.
type CSVFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *CSVFormatter) Format(w *bytes.Buffer, r *Result) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"WHEN", "NUMBER", "TRIP"}); err != nil {
		return err
	}
	for _, dive := range r.Dives {
		record := []string{dive.When.Format(timestamp), numberOrDash(dive.Number), tripOrDash(dive.Trip)}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func init() {
	Register("csv", func() Formatter {
		return &CSVFormatter{}
	})
}

// Ensure CSVFormatter implements Formatter.
var _ Formatter = (*CSVFormatter)(nil)
