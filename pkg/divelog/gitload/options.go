package gitload

import (
	"github.com/lukeandrew/subsurface/pkg/divelog/cache"
	"github.com/lukeandrew/subsurface/pkg/divelog/types"
)

// DiveHook decodes a dive file payload into the dive record. The suffix is
// whatever followed the "Dive" prefix in the file name. Decoding semantics
// live with the caller; a hook error is reported and the walk continues.
type DiveHook func(dive *types.Dive, suffix string, payload []byte) error

// DivecomputerHook decodes a divecomputer file payload. The suffix is
// whatever followed the "Divecomputer" prefix in the file name.
type DivecomputerHook func(dive *types.Dive, suffix string, payload []byte) error

// TripHook decodes a trip descriptor payload into the trip record.
type TripHook func(trip *types.Trip, payload []byte) error

// Options configures the loader behavior.
type Options struct {
	// Branch overrides the branch to load when the location string
	// carries none. Empty means the repository's HEAD.
	Branch string

	// Log is the collection dives and trips are recorded into.
	// If nil, a fresh collection is created per load.
	Log *types.DiveLog

	// Report receives recoverable per-entry errors as they occur.
	// If nil, errors go to the component logger. Errors are collected in
	// the load result either way.
	Report func(types.LoadError)

	// OnDive is invoked with each dive file payload. May be nil.
	OnDive DiveHook

	// OnDivecomputer is invoked with each divecomputer file payload.
	// May be nil.
	OnDivecomputer DivecomputerHook

	// OnTrip is invoked with each trip descriptor payload. May be nil.
	OnTrip TripHook

	// Cache is an optional load cache. When the branch head is unchanged
	// the cached dive log is returned without walking the tree; note the
	// payload hooks do not run on a cache hit.
	Cache *cache.Cache
}
