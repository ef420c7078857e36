package gitload

import (
	"errors"
	"strings"
	"time"

	"github.com/lukeandrew/subsurface/pkg/divelog/cache"
	"github.com/lukeandrew/subsurface/pkg/divelog/logging"
	"github.com/lukeandrew/subsurface/pkg/divelog/types"
)

// Loader reconstructs a dive log from a repository tree. A Loader is good
// for one load at a time; the walk is strictly sequential and pre-order,
// so state written for a directory is always visible before its children
// are visited.
type Loader struct {
	opts Options
	log  *logging.Logger

	divelog *types.DiveLog
	stats   types.LoadStats
	errors  []types.LoadError
}

// walkState carries the active trip and dive through the recursive walk.
// It is passed by value: state set while visiting a directory is seen by
// that directory's later siblings and by its descendants, and is dropped
// when the walk returns to the parent level.
type walkState struct {
	trip *types.Trip
	dive *types.Dive
}

// New creates a Loader with the given options.
func New(opts Options) *Loader {
	return &Loader{
		opts: opts,
		log:  logging.Get("gitload"),
	}
}

// Load opens the repository named by the location string, resolves the
// branch to its root tree, and walks it. Only a failure to open the
// repository, look up the branch, or peel it to a tree returns an error;
// per-entry failures are reported and collected in the result.
func (l *Loader) Load(location string) (*types.LoadResult, error) {
	started := time.Now()

	loc, err := ParseLocation(location)
	if err != nil {
		return nil, err
	}
	if loc.Branch == "" {
		loc.Branch = l.opts.Branch
	}

	tree, commit, err := resolveTree(loc)
	if err != nil {
		return nil, err
	}

	l.log.Info("loading dive log", "repo", loc.Path, "branch", loc.Branch, "commit", commit.String())

	if l.opts.Cache != nil {
		cached, err := l.opts.Cache.Get(loc.Path, commit.String())
		if err == nil {
			l.log.Info("load served from cache", "commit", commit.String())
			return &types.LoadResult{
				Log: cached,
				Stats: types.LoadStats{
					DivesCreated: int64(len(cached.Dives)),
					TripsCreated: int64(len(cached.Trips)),
					Elapsed:      time.Since(started),
					FromCache:    true,
				},
			}, nil
		}
		if !errors.Is(err, cache.ErrNotFound) {
			l.log.Warn("cache lookup failed", "error", err)
		}
	}

	result := l.LoadTree(gitTree{tree: tree})
	result.Stats.Elapsed = time.Since(started)

	if l.opts.Cache != nil {
		if err := l.opts.Cache.Put(loc.Path, commit.String(), result.Log); err != nil {
			l.log.Warn("cache update failed", "error", err)
		}
	}

	l.log.Info("load finished",
		"dives", result.Stats.DivesCreated,
		"trips", result.Stats.TripsCreated,
		"dirs", result.Stats.DirsWalked,
		"errors", len(result.Errors))

	return result, nil
}

// LoadTree walks an already resolved tree and returns the reconstructed
// dive log. It is the walk stage of Load, separated so trees from any
// backing store can be loaded directly.
func (l *Loader) LoadTree(tree Tree) *types.LoadResult {
	l.divelog = l.opts.Log
	if l.divelog == nil {
		l.divelog = types.NewDiveLog()
	}
	l.stats = types.LoadStats{}
	l.errors = nil

	l.walkTree(tree, nil, walkState{})

	return &types.LoadResult{
		Log:    l.divelog,
		Stats:  l.stats,
		Errors: l.errors,
	}
}

// walkTree visits one tree level in pre-order. parents holds the ancestor
// directory names from the root down to this level.
func (l *Loader) walkTree(tree Tree, parents []string, st walkState) {
	monthLevel := atMonthLevel(parents)

	for _, entry := range tree.Entries() {
		// Returning to a bare "yyyy/mm" level means any trip seen
		// earlier belongs to another month. Clear it before the entry
		// is classified so a dive directly under a month is never
		// attributed to a stale trip.
		if monthLevel {
			st.trip = nil
		}

		if entry.IsDir() {
			l.walkDirectory(entry, parents, &st)
			continue
		}
		l.dispatchFile(entry, parents, st)
	}
}

// walkDirectory classifies a directory entry, updates the walk state, and
// recurses. Skipped directories are not descended into.
func (l *Loader) walkDirectory(entry Entry, parents []string, st *walkState) {
	name := entry.Name()

	switch c := classifyDirectory(parents, name); c.kind {
	case outcomeSkip:
		l.log.Debug("skipping non-dive directory", "path", joinPath(parents), "name", name)
		return

	case outcomeDescend:
		// Bare year or month; its value reaches descendants through
		// the parents slice.

	case outcomeTrip:
		trip := types.NewTrip(c.year, c.month, c.day)
		l.divelog.RecordTrip(trip)
		l.stats.TripsCreated++
		st.trip = trip
		l.log.Debug("entered trip", "when", trip.When, "name", name)

	case outcomeDive:
		when := time.Date(c.year, time.Month(c.month), c.day, c.hour, c.minute, c.second, 0, time.UTC)
		dive := types.NewDive(when)
		if st.trip != nil {
			types.Link(dive, st.trip)
		}
		l.divelog.RecordDive(dive)
		l.stats.DivesCreated++
		st.dive = dive
		l.log.Debug("entered dive", "when", when, "name", name)
	}

	sub, err := entry.Tree()
	if err != nil {
		l.report(parents, name, err)
		return
	}
	l.stats.DirsWalked++
	l.walkTree(sub, append(parents, name), *st)
}

// report records a recoverable per-entry error and forwards it to the
// report sink. The walk is never aborted for these.
func (l *Loader) report(parents []string, name string, err error) {
	loadErr := types.LoadError{
		Path:  joinPath(parents),
		Name:  name,
		Error: err.Error(),
	}
	l.errors = append(l.errors, loadErr)

	if l.opts.Report != nil {
		l.opts.Report(loadErr)
		return
	}
	l.log.Warn("load error", "path", loadErr.Path, "name", loadErr.Name, "error", loadErr.Error)
}

// atMonthLevel reports whether parents names a bare "yyyy/mm" level: the
// only levels where trips and tripless dives are siblings.
func atMonthLevel(parents []string) bool {
	if len(parents) != 2 || len(parents[0]) != 4 || len(parents[1]) != 2 {
		return false
	}
	_, yearOK := allDigits(parents[0])
	_, monthOK := allDigits(parents[1])
	return yearOK && monthOK
}

// joinPath renders ancestor segments the way tree walk roots are spelled:
// slash separated with a trailing slash, empty at the root.
func joinPath(parents []string) string {
	if len(parents) == 0 {
		return ""
	}
	return strings.Join(parents, "/") + "/"
}
