package output

import (
	"bytes"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlOutput represents the full YAML output structure.
type yamlOutput struct {
	Source string     `yaml:"source"`
	Dives  []yamlDive `yaml:"dives"`
	Trips  []yamlTrip `yaml:"trips"`
	Info   yamlInfo   `yaml:"info"`
	Errors []string   `yaml:"errors,omitempty"`
}

// yamlDive represents a dive in YAML output.
type yamlDive struct {
	When   time.Time `yaml:"when"`
	Number int       `yaml:"number,omitempty"`
	Trip   string    `yaml:"trip,omitempty"`
}

// yamlTrip represents a trip in YAML output.
type yamlTrip struct {
	When  time.Time `yaml:"when"`
	Dives int       `yaml:"dives"`
}

// yamlInfo represents load statistics in YAML output.
type yamlInfo struct {
	DirsWalked int64  `yaml:"dirs_walked"`
	FilesRead  int64  `yaml:"files_read"`
	BytesRead  int64  `yaml:"bytes_read"`
	Duration   string `yaml:"duration"`
	FromCache  bool   `yaml:"from_cache"`
}

// YAMLFormatter formats output as YAML.
type YAMLFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *YAMLFormatter) Format(w *bytes.Buffer, r *Result) error {
	out := yamlOutput{
		Source: r.Source,
		Dives:  make([]yamlDive, 0, len(r.Dives)),
		Trips:  make([]yamlTrip, 0, len(r.Trips)),
		Info: yamlInfo{
			DirsWalked: r.Info.DirsWalked,
			FilesRead:  r.Info.FilesRead,
			BytesRead:  r.Info.BytesRead,
			Duration:   r.Info.Duration.String(),
			FromCache:  r.Info.FromCache,
		},
		Errors: r.Errors,
	}

	for _, d := range r.Dives {
		out.Dives = append(out.Dives, yamlDive{When: d.When, Number: d.Number, Trip: d.Trip})
	}
	for _, t := range r.Trips {
		out.Trips = append(out.Trips, yamlTrip{When: t.When, Dives: t.Dives})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}

func init() {
	Register("yaml", func() Formatter {
		return &YAMLFormatter{}
	})
}

// Ensure YAMLFormatter implements Formatter.
var _ Formatter = (*YAMLFormatter)(nil)
