package gitload

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lukeandrew/subsurface/pkg/divelog/types"
)

// Record file names. The divecomputer prefix must be tested before the
// dive prefix, which it contains.
const (
	divecomputerPrefix = "Divecomputer"
	divePrefix         = "Dive"
	tripDescriptor     = "00-Trip"
)

// dispatchFile attributes a file entry to the active dive or trip. Files
// that match no known pattern given the current state are reported as
// unrecognized; nothing here stops the walk.
func (l *Loader) dispatchFile(entry Entry, parents []string, st walkState) {
	name := entry.Name()

	switch {
	case st.dive != nil && strings.HasPrefix(name, divecomputerPrefix):
		l.parseDivecomputerFile(entry, parents, st.dive, name[len(divecomputerPrefix):])

	case st.dive != nil && strings.HasPrefix(name, divePrefix):
		l.parseDiveFile(entry, parents, st.dive, name[len(divePrefix):])

	case st.trip != nil && name == tripDescriptor:
		l.parseTripFile(entry, parents, st.trip)

	default:
		l.report(parents, name, fmt.Errorf("unknown file (active dive %t, active trip %t)",
			st.dive != nil, st.trip != nil))
	}
}

// parseDivecomputerFile loads a divecomputer payload and hands it to the
// decode hook. A failed read is reported and the entry is dropped.
func (l *Loader) parseDivecomputerFile(entry Entry, parents []string, dive *types.Dive, suffix string) {
	payload, err := entry.Content()
	if err != nil {
		l.report(parents, entry.Name(), fmt.Errorf("unable to read divecomputer file: %w", err))
		return
	}
	l.countRead(payload)

	if l.opts.OnDivecomputer != nil {
		if err := l.opts.OnDivecomputer(dive, suffix, payload); err != nil {
			l.report(parents, entry.Name(), err)
		}
	}
}

// parseDiveFile loads a dive payload, picks the dive's sequence number out
// of the file name suffix when one is present, and hands the payload to
// the decode hook.
func (l *Loader) parseDiveFile(entry Entry, parents []string, dive *types.Dive, suffix string) {
	payload, err := entry.Content()
	if err != nil {
		l.report(parents, entry.Name(), fmt.Errorf("unable to read dive file: %w", err))
		return
	}
	l.countRead(payload)

	if suffix != "" {
		number, err := strconv.Atoi(suffix)
		if err != nil {
			l.log.Debug("dive file suffix is not a number", "name", entry.Name())
		} else {
			dive.Number = number
		}
	}

	if l.opts.OnDive != nil {
		if err := l.opts.OnDive(dive, suffix, payload); err != nil {
			l.report(parents, entry.Name(), err)
		}
	}
}

// parseTripFile loads a trip descriptor payload for the active trip.
func (l *Loader) parseTripFile(entry Entry, parents []string, trip *types.Trip) {
	payload, err := entry.Content()
	if err != nil {
		l.report(parents, entry.Name(), fmt.Errorf("unable to read trip file: %w", err))
		return
	}
	l.countRead(payload)

	if l.opts.OnTrip != nil {
		if err := l.opts.OnTrip(trip, payload); err != nil {
			l.report(parents, entry.Name(), err)
		}
	}
}

func (l *Loader) countRead(payload []byte) {
	l.stats.FilesRead++
	l.stats.BytesRead += int64(len(payload))
}
