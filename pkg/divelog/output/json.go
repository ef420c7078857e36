package output

import (
	"bytes"
	"encoding/json"
	"time"
)

// jsonOutput represents the full JSON output structure.
type jsonOutput struct {
	Source string     `json:"source"`
	Dives  []jsonDive `json:"dives"`
	Trips  []jsonTrip `json:"trips"`
	Info   jsonInfo   `json:"info"`
	Errors []string   `json:"errors,omitempty"`
}

// jsonDive represents a dive in JSON output.
type jsonDive struct {
	When   time.Time `json:"when"`
	Number int       `json:"number,omitempty"`
	Trip   string    `json:"trip,omitempty"`
}

// jsonTrip represents a trip in JSON output.
type jsonTrip struct {
	When  time.Time `json:"when"`
	Dives int       `json:"dives"`
}

// jsonInfo represents load statistics in JSON output.
type jsonInfo struct {
	DirsWalked int64  `json:"dirs_walked"`
	FilesRead  int64  `json:"files_read"`
	BytesRead  int64  `json:"bytes_read"`
	Duration   string `json:"duration"`
	FromCache  bool   `json:"from_cache"`
}

// JSONFormatter formats output as indented JSON.
// It produces machine-readable output suitable for further processing.
type JSONFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Result) error {
	out := jsonOutput{
		Source: r.Source,
		Dives:  make([]jsonDive, 0, len(r.Dives)),
		Trips:  make([]jsonTrip, 0, len(r.Trips)),
		Info: jsonInfo{
			DirsWalked: r.Info.DirsWalked,
			FilesRead:  r.Info.FilesRead,
			BytesRead:  r.Info.BytesRead,
			Duration:   r.Info.Duration.String(),
			FromCache:  r.Info.FromCache,
		},
		Errors: r.Errors,
	}

	for _, d := range r.Dives {
		out.Dives = append(out.Dives, jsonDive{When: d.When, Number: d.Number, Trip: d.Trip})
	}
	for _, t := range r.Trips {
		out.Trips = append(out.Trips, jsonTrip{When: t.When, Dives: t.Dives})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
