// Package types provides core data types for the subsurface git dive log
// loader. It includes the dive and trip records reconstructed from a dive
// log repository, the collection they are recorded into, and the statistics
// and error types produced by a load.
package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Dive is a single recorded diving event.
// Dives are identified by their timestamp; the sequence number and trip
// association are optional and filled in while the repository is walked.
type Dive struct {
	// ID is a stable identifier assigned at creation.
	ID uuid.UUID `json:"id" yaml:"id"`

	// When is the dive's timestamp (UTC, second precision).
	When time.Time `json:"when" yaml:"when"`

	// Number is the dive's sequence number. Zero means unset.
	Number int `json:"number,omitempty" yaml:"number,omitempty"`

	// Trip is the trip this dive belongs to, or nil.
	// Excluded from serialized output to avoid cycles; see TripID.
	Trip *Trip `json:"-" yaml:"-"`

	// TripID is the ID of the owning trip, or the zero UUID.
	TripID uuid.UUID `json:"trip_id,omitempty" yaml:"trip_id,omitempty"`
}

// Trip is a logical grouping of dives sharing a trip-level timestamp.
type Trip struct {
	// ID is a stable identifier assigned at creation.
	ID uuid.UUID `json:"id" yaml:"id"`

	// When is the trip's timestamp (UTC, time of day zeroed).
	When time.Time `json:"when" yaml:"when"`

	// Dives are the dives recorded under this trip.
	Dives []*Dive `json:"-" yaml:"-"`
}

// NewDive creates a dive at the given timestamp with a fresh ID.
func NewDive(when time.Time) *Dive {
	return &Dive{ID: uuid.New(), When: when}
}

// NewTrip creates a trip dated to the given day with a fresh ID.
// The time of day is zeroed; trip descriptor files may refine it later.
func NewTrip(year, month, day int) *Trip {
	return &Trip{
		ID:   uuid.New(),
		When: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC),
	}
}

// Link associates a dive with a trip. The dive holds a non-owning reference
// to the trip, and the trip records the dive in its collection.
func Link(dive *Dive, trip *Trip) {
	dive.Trip = trip
	dive.TripID = trip.ID
	trip.Dives = append(trip.Dives, dive)
}

// DiveLog is the collection dives and trips are recorded into as they are
// discovered. Records are appended monotonically during a load; nothing is
// removed or updated.
type DiveLog struct {
	Dives []*Dive `json:"dives" yaml:"dives"`
	Trips []*Trip `json:"trips" yaml:"trips"`
}

// NewDiveLog returns an empty dive log.
func NewDiveLog() *DiveLog {
	return &DiveLog{
		Dives: make([]*Dive, 0),
		Trips: make([]*Trip, 0),
	}
}

// RecordDive appends a dive to the log.
func (l *DiveLog) RecordDive(d *Dive) {
	l.Dives = append(l.Dives, d)
}

// RecordTrip appends a trip to the log.
func (l *DiveLog) RecordTrip(t *Trip) {
	l.Trips = append(l.Trips, t)
}

// LoadStats contains statistics about a load operation.
type LoadStats struct {
	// DirsWalked is the number of tree directories visited.
	DirsWalked int64 `json:"dirs_walked" yaml:"dirs_walked"`

	// FilesRead is the number of file payloads read from the object store.
	FilesRead int64 `json:"files_read" yaml:"files_read"`

	// BytesRead is the total payload bytes read.
	BytesRead int64 `json:"bytes_read" yaml:"bytes_read"`

	// DivesCreated is the number of dive records created.
	DivesCreated int64 `json:"dives_created" yaml:"dives_created"`

	// TripsCreated is the number of trip records created.
	TripsCreated int64 `json:"trips_created" yaml:"trips_created"`

	// Elapsed is the total time taken to complete the load.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`

	// FromCache indicates the result was served from the load cache
	// without walking the tree.
	FromCache bool `json:"from_cache,omitempty" yaml:"from_cache,omitempty"`
}

// LoadError represents a recoverable per-entry error encountered during a
// load. It pairs the entry's location in the tree with the error message.
// Per-entry errors never abort the walk.
type LoadError struct {
	// Path is the tree path of the entry's parent directory.
	Path string `json:"path" yaml:"path"`

	// Name is the entry's name.
	Name string `json:"name" yaml:"name"`

	// Error is the error message describing what went wrong.
	Error string `json:"error" yaml:"error"`
}

// String returns a one-line rendering suitable for the report sink.
func (e LoadError) String() string {
	return fmt.Sprintf("%s%s: %s", e.Path, e.Name, e.Error)
}

// LoadResult contains the outcome of a load operation: the reconstructed
// dive log, statistics, and any per-entry errors encountered.
type LoadResult struct {
	Log    *DiveLog    `json:"log" yaml:"log"`
	Stats  LoadStats   `json:"stats" yaml:"stats"`
	Errors []LoadError `json:"errors,omitempty" yaml:"errors,omitempty"`
}
