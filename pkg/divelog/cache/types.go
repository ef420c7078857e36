// Package cache provides a load cache for the subsurface git loader.
// Results of walking a branch tree are keyed by repository path and commit
// hash, so reloading an unchanged branch head skips the walk entirely.
package cache

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/google/uuid"
	"github.com/lukeandrew/subsurface/pkg/divelog/types"
)

// CacheVersion is incremented when the cache format changes.
const CacheVersion = 1

// KeySeparator separates the repository path from the commit hash in keys.
const KeySeparator = '\x00'

// cachedDive is the flat, cycle-free form a dive is stored in.
type cachedDive struct {
	ID     uuid.UUID
	When   time.Time
	Number int
	TripID uuid.UUID
}

// cachedTrip is the flat form a trip is stored in.
type cachedTrip struct {
	ID   uuid.UUID
	When time.Time
}

// Snapshot is the serialized form of a loaded dive log.
type Snapshot struct {
	Version int
	Dives   []cachedDive
	Trips   []cachedTrip
}

// MakeSnapshot flattens a dive log for storage. Trip links are recorded by
// ID so the dive/trip pointer cycle never reaches the encoder.
func MakeSnapshot(log *types.DiveLog) *Snapshot {
	snap := &Snapshot{Version: CacheVersion}
	for _, d := range log.Dives {
		snap.Dives = append(snap.Dives, cachedDive{
			ID:     d.ID,
			When:   d.When,
			Number: d.Number,
			TripID: d.TripID,
		})
	}
	for _, t := range log.Trips {
		snap.Trips = append(snap.Trips, cachedTrip{ID: t.ID, When: t.When})
	}
	return snap
}

// DiveLog rebuilds the dive log from the snapshot, re-establishing trip
// links from the recorded IDs.
func (s *Snapshot) DiveLog() *types.DiveLog {
	log := types.NewDiveLog()

	trips := make(map[uuid.UUID]*types.Trip, len(s.Trips))
	for _, ct := range s.Trips {
		trip := &types.Trip{ID: ct.ID, When: ct.When}
		trips[ct.ID] = trip
		log.RecordTrip(trip)
	}
	for _, cd := range s.Dives {
		dive := &types.Dive{ID: cd.ID, When: cd.When, Number: cd.Number}
		if trip, ok := trips[cd.TripID]; ok {
			types.Link(dive, trip)
		}
		log.RecordDive(dive)
	}
	return log
}

// Encode serializes the snapshot to bytes using gob.
func (s *Snapshot) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode deserializes bytes into the snapshot using gob.
func (s *Snapshot) Decode(data []byte) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(s)
}

// MakeKey creates a cache key from repository path and commit hash.
// Format: <repo>\x00<commit>
func MakeKey(repo, commit string) []byte {
	key := make([]byte, 0, len(repo)+1+len(commit))
	key = append(key, repo...)
	key = append(key, KeySeparator)
	key = append(key, commit...)
	return key
}
