// Package output provides formatters for displaying a loaded dive log in
// various output formats (pretty, plain, tsv, csv, json, yaml).
//
// The package uses a registry pattern to allow registration of multiple
// formatter implementations that can be selected at runtime.
//
// Basic usage:
//
//	formatter, err := output.Get("pretty")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := formatter.Format(&buf, output.BuildResult(source, loaded)); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(buf.String())
package output

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lukeandrew/subsurface/pkg/divelog/types"
)

// DiveRow is one dive prepared for output formatting.
type DiveRow struct {
	// When is the dive's timestamp.
	When time.Time `json:"when" yaml:"when"`

	// Number is the dive's sequence number, zero when unset.
	Number int `json:"number,omitempty" yaml:"number,omitempty"`

	// Trip is the owning trip's date, empty for tripless dives.
	Trip string `json:"trip,omitempty" yaml:"trip,omitempty"`
}

// TripRow is one trip prepared for output formatting.
type TripRow struct {
	// When is the trip's date.
	When time.Time `json:"when" yaml:"when"`

	// Dives is the number of dives recorded under the trip.
	Dives int `json:"dives" yaml:"dives"`
}

// LoadInfo summarizes the load operation for output.
type LoadInfo struct {
	DirsWalked int64         `json:"dirs_walked" yaml:"dirs_walked"`
	FilesRead  int64         `json:"files_read" yaml:"files_read"`
	BytesRead  int64         `json:"bytes_read" yaml:"bytes_read"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
	FromCache  bool          `json:"from_cache" yaml:"from_cache"`
}

// Result contains the complete output data for formatting.
type Result struct {
	// Source is the location string the dive log was loaded from.
	Source string `json:"source" yaml:"source"`

	// Dives are the loaded dives, sorted by timestamp ascending.
	Dives []DiveRow `json:"dives" yaml:"dives"`

	// Trips are the loaded trips, sorted by date ascending.
	Trips []TripRow `json:"trips" yaml:"trips"`

	// Info summarizes the load operation.
	Info LoadInfo `json:"info" yaml:"info"`

	// Errors are per-entry load errors, rendered as one-line strings.
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// dateOnly renders a trip date for the dive table.
const dateOnly = "2006-01-02"

// BuildResult prepares a load result for formatting. Dives and trips are
// sorted by timestamp; the loader itself preserves traversal order.
func BuildResult(source string, lr *types.LoadResult) *Result {
	r := &Result{
		Source: source,
		Dives:  make([]DiveRow, 0, len(lr.Log.Dives)),
		Trips:  make([]TripRow, 0, len(lr.Log.Trips)),
		Info: LoadInfo{
			DirsWalked: lr.Stats.DirsWalked,
			FilesRead:  lr.Stats.FilesRead,
			BytesRead:  lr.Stats.BytesRead,
			Duration:   lr.Stats.Elapsed,
			FromCache:  lr.Stats.FromCache,
		},
	}

	for _, d := range lr.Log.Dives {
		row := DiveRow{When: d.When, Number: d.Number}
		if d.Trip != nil {
			row.Trip = d.Trip.When.Format(dateOnly)
		}
		r.Dives = append(r.Dives, row)
	}
	sort.Slice(r.Dives, func(i, j int) bool { return r.Dives[i].When.Before(r.Dives[j].When) })

	for _, t := range lr.Log.Trips {
		r.Trips = append(r.Trips, TripRow{When: t.When, Dives: len(t.Dives)})
	}
	sort.Slice(r.Trips, func(i, j int) bool { return r.Trips[i].When.Before(r.Trips[j].When) })

	for _, e := range lr.Errors {
		r.Errors = append(r.Errors, e.String())
	}

	return r
}

// Formatter is the interface that all output formatters must implement.
type Formatter interface {
	// Format writes the formatted output to the buffer.
	// It returns an error if formatting fails.
	Format(w *bytes.Buffer, r *Result) error
}

// FormatterFactory is a function that creates a new Formatter instance.
type FormatterFactory func() Formatter

// Registry manages formatter registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FormatterFactory),
	}
}

// Register adds a formatter factory to the registry.
// It will replace any existing formatter with the same name.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a new formatter instance by name.
// It returns an error if the formatter is not found.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s", name)
	}
	return factory(), nil
}

// Available returns a sorted list of all registered formatter names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(name string, factory FormatterFactory) {
	DefaultRegistry.Register(name, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(name string) (Formatter, error) {
	return DefaultRegistry.Get(name)
}

// Available returns all formatter names from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}
