package gitload_test

import (
	"errors"
	"testing"
	"time"

	"github.com/lukeandrew/subsurface/pkg/divelog/gitload"
	"github.com/lukeandrew/subsurface/pkg/divelog/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memTree is an in-memory Tree for driving the loader in tests.
type memTree struct {
	entries []*memEntry
}

func (t *memTree) Entries() []gitload.Entry {
	entries := make([]gitload.Entry, 0, len(t.entries))
	for _, e := range t.entries {
		entries = append(entries, e)
	}
	return entries
}

// memEntry is a directory or file in a memTree.
type memEntry struct {
	name    string
	sub     *memTree // non-nil marks a directory
	content []byte
	readErr error
}

func (e *memEntry) Name() string { return e.name }

func (e *memEntry) IsDir() bool { return e.sub != nil }

func (e *memEntry) Tree() (gitload.Tree, error) { return e.sub, nil }

func (e *memEntry) Content() ([]byte, error) {
	if e.readErr != nil {
		return nil, e.readErr
	}
	return e.content, nil
}

func dir(name string, children ...*memEntry) *memEntry {
	return &memEntry{name: name, sub: &memTree{entries: children}}
}

func file(name, content string) *memEntry {
	return &memEntry{name: name, content: []byte(content)}
}

func brokenFile(name string) *memEntry {
	return &memEntry{name: name, readErr: errors.New("object not found")}
}

func tree(children ...*memEntry) *memTree {
	return &memTree{entries: children}
}

func when(y, mo, d, h, mi, s int) time.Time {
	return time.Date(y, time.Month(mo), d, h, mi, s, 0, time.UTC)
}

func TestLoadTree(t *testing.T) {
	t.Run("dive without trip", func(t *testing.T) {
		root := tree(
			dir("2019",
				dir("05",
					dir("12-deep-09:30:00",
						file("Dive", "dive payload"),
						file("Divecomputer1", "dc payload"),
					),
				),
			),
		)

		result := gitload.New(gitload.Options{}).LoadTree(root)

		require.Len(t, result.Log.Dives, 1)
		assert.Empty(t, result.Log.Trips)
		assert.Empty(t, result.Errors)

		d := result.Log.Dives[0]
		assert.Equal(t, when(2019, 5, 12, 9, 30, 0), d.When)
		assert.Nil(t, d.Trip)
		assert.Zero(t, d.Number)

		assert.Equal(t, int64(1), result.Stats.DivesCreated)
		assert.Equal(t, int64(2), result.Stats.FilesRead)
	})

	t.Run("trip with dive and descriptor", func(t *testing.T) {
		root := tree(
			dir("2019",
				dir("05",
					dir("03-reef",
						dir("14-07:00:00~a3f",
							file("Dive3", "dive payload"),
						),
						file("00-Trip", "trip payload"),
					),
				),
			),
		)

		result := gitload.New(gitload.Options{}).LoadTree(root)

		require.Len(t, result.Log.Trips, 1)
		require.Len(t, result.Log.Dives, 1)
		assert.Empty(t, result.Errors)

		trip := result.Log.Trips[0]
		assert.Equal(t, when(2019, 5, 3, 0, 0, 0), trip.When)
		require.Len(t, trip.Dives, 1)

		d := result.Log.Dives[0]
		assert.Equal(t, when(2019, 5, 14, 7, 0, 0), d.When)
		assert.Same(t, trip, d.Trip)
		assert.Equal(t, trip.ID, d.TripID)
		assert.Equal(t, 3, d.Number)
	})

	t.Run("dive beside trip is not attributed to it", func(t *testing.T) {
		root := tree(
			dir("2019",
				dir("05",
					dir("03-reef",
						file("00-Trip", "trip payload"),
						dir("04-08:00:00",
							file("Dive", "in trip"),
						),
					),
					dir("12-deep-09:30:00",
						file("Dive", "no trip"),
					),
				),
			),
		)

		result := gitload.New(gitload.Options{}).LoadTree(root)

		require.Len(t, result.Log.Trips, 1)
		require.Len(t, result.Log.Dives, 2)
		assert.Empty(t, result.Errors)

		trip := result.Log.Trips[0]
		require.Len(t, trip.Dives, 1)
		assert.Equal(t, when(2019, 5, 4, 8, 0, 0), trip.Dives[0].When)

		for _, d := range result.Log.Dives {
			if d.When.Day() == 12 {
				assert.Nil(t, d.Trip, "dive directly under the month must not inherit the trip")
			}
		}
	})

	t.Run("trip does not leak into the next month", func(t *testing.T) {
		root := tree(
			dir("2019",
				dir("05",
					dir("03-reef",
						file("00-Trip", "trip payload"),
					),
				),
				dir("06",
					dir("12-deep-09:30:00",
						file("Dive", "next month"),
					),
				),
			),
		)

		result := gitload.New(gitload.Options{}).LoadTree(root)

		require.Len(t, result.Log.Dives, 1)
		assert.Nil(t, result.Log.Dives[0].Trip)
		assert.Empty(t, result.Errors)
	})

	t.Run("skipped directory is not recursed into", func(t *testing.T) {
		root := tree(
			dir("2019",
				dir("05",
					dir("pictures",
						file("IMG_1234.jpg", "not dive data"),
					),
				),
			),
		)

		result := gitload.New(gitload.Options{}).LoadTree(root)

		assert.Empty(t, result.Log.Dives)
		assert.Empty(t, result.Errors, "contents of skipped directories must never be dispatched")
	})

	t.Run("traversal order attributes files to the entered dive", func(t *testing.T) {
		root := tree(
			dir("2019",
				dir("05",
					dir("12-deep-09:30:00",
						file("Dive1", "first"),
					),
					dir("13-wall-10:00:00",
						file("Dive2", "second"),
					),
				),
			),
		)

		result := gitload.New(gitload.Options{}).LoadTree(root)

		require.Len(t, result.Log.Dives, 2)
		assert.Equal(t, 1, result.Log.Dives[0].Number)
		assert.Equal(t, 2, result.Log.Dives[1].Number)
	})
}

func TestLoadTreeFileDispatch(t *testing.T) {
	diveTree := func(files ...*memEntry) *memTree {
		return tree(dir("2019", dir("05", dir("12-deep-09:30:00", files...))))
	}

	t.Run("bare dive file leaves number unset", func(t *testing.T) {
		result := gitload.New(gitload.Options{}).LoadTree(diveTree(file("Dive", "payload")))

		require.Len(t, result.Log.Dives, 1)
		assert.Zero(t, result.Log.Dives[0].Number)
		assert.Empty(t, result.Errors)
	})

	t.Run("numeric suffix sets dive number", func(t *testing.T) {
		result := gitload.New(gitload.Options{}).LoadTree(diveTree(file("Dive42", "payload")))

		require.Len(t, result.Log.Dives, 1)
		assert.Equal(t, 42, result.Log.Dives[0].Number)
	})

	t.Run("non numeric suffix leaves number unset", func(t *testing.T) {
		result := gitload.New(gitload.Options{}).LoadTree(diveTree(file("Dive3b", "payload")))

		require.Len(t, result.Log.Dives, 1)
		assert.Zero(t, result.Log.Dives[0].Number)
		assert.Empty(t, result.Errors)
	})

	t.Run("divecomputer file requires active dive", func(t *testing.T) {
		root := tree(dir("2019", dir("05", file("Divecomputer1", "payload"))))

		result := gitload.New(gitload.Options{}).LoadTree(root)

		require.Len(t, result.Errors, 1)
		assert.Equal(t, "2019/05/", result.Errors[0].Path)
		assert.Equal(t, "Divecomputer1", result.Errors[0].Name)
	})

	t.Run("trip descriptor name is exact", func(t *testing.T) {
		root := tree(
			dir("2019",
				dir("05",
					dir("03-reef",
						file("00-Trip", "ok"),
						file("01-Trip", "wrong day prefix"),
						file("00-trip", "wrong case"),
					),
				),
			),
		)

		result := gitload.New(gitload.Options{}).LoadTree(root)

		require.Len(t, result.Log.Trips, 1)
		require.Len(t, result.Errors, 2)
		names := []string{result.Errors[0].Name, result.Errors[1].Name}
		assert.ElementsMatch(t, []string{"01-Trip", "00-trip"}, names)
	})

	t.Run("unreadable payload is reported and the walk continues", func(t *testing.T) {
		result := gitload.New(gitload.Options{}).LoadTree(diveTree(
			brokenFile("Dive1"),
			file("Divecomputer1", "still processed"),
		))

		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0].Error, "unable to read dive file")
		assert.Equal(t, int64(1), result.Stats.FilesRead)
	})

	t.Run("report sink receives per-entry errors", func(t *testing.T) {
		var reported []types.LoadError
		opts := gitload.Options{
			Report: func(e types.LoadError) { reported = append(reported, e) },
		}

		result := gitload.New(opts).LoadTree(diveTree(brokenFile("Dive")))

		require.Len(t, reported, 1)
		assert.Equal(t, result.Errors, reported)
	})
}

func TestLoadTreeHooks(t *testing.T) {
	t.Run("hooks receive payloads and suffixes", func(t *testing.T) {
		type call struct {
			kind    string
			suffix  string
			payload string
		}
		var calls []call

		opts := gitload.Options{
			OnDive: func(d *types.Dive, suffix string, payload []byte) error {
				calls = append(calls, call{"dive", suffix, string(payload)})
				return nil
			},
			OnDivecomputer: func(d *types.Dive, suffix string, payload []byte) error {
				calls = append(calls, call{"divecomputer", suffix, string(payload)})
				return nil
			},
			OnTrip: func(tr *types.Trip, payload []byte) error {
				calls = append(calls, call{"trip", "", string(payload)})
				return nil
			},
		}

		root := tree(
			dir("2019",
				dir("05",
					dir("03-reef",
						dir("14-07:00:00",
							file("Dive3", "dive data"),
							file("Divecomputer2", "dc data"),
						),
						file("00-Trip", "trip data"),
					),
				),
			),
		)

		result := gitload.New(opts).LoadTree(root)

		assert.Empty(t, result.Errors)
		assert.ElementsMatch(t, []call{
			{"dive", "3", "dive data"},
			{"divecomputer", "2", "dc data"},
			{"trip", "", "trip data"},
		}, calls)
	})

	t.Run("hook errors are recoverable", func(t *testing.T) {
		opts := gitload.Options{
			OnDive: func(d *types.Dive, suffix string, payload []byte) error {
				return errors.New("bad payload")
			},
		}

		root := tree(
			dir("2019",
				dir("05",
					dir("12-deep-09:30:00", file("Dive", "x")),
					dir("13-wall-10:00:00", file("Dive", "y")),
				),
			),
		)

		result := gitload.New(opts).LoadTree(root)

		assert.Len(t, result.Log.Dives, 2, "a failing hook must not stop the walk")
		assert.Len(t, result.Errors, 2)
	})
}

func TestLoadTreeExistingCollection(t *testing.T) {
	log := types.NewDiveLog()
	opts := gitload.Options{Log: log}

	root := tree(dir("2019", dir("05", dir("12-deep-09:30:00", file("Dive", "x")))))
	result := gitload.New(opts).LoadTree(root)

	assert.Same(t, log, result.Log)
	assert.Len(t, log.Dives, 1)
}

func TestLoadFatalErrors(t *testing.T) {
	t.Run("bad location", func(t *testing.T) {
		_, err := gitload.New(gitload.Options{}).Load("not a git location")
		assert.ErrorIs(t, err, gitload.ErrNotGitLocation)
	})

	t.Run("missing repository", func(t *testing.T) {
		_, err := gitload.New(gitload.Options{}).Load("git " + t.TempDir())
		assert.ErrorIs(t, err, gitload.ErrRepoOpen)
	})
}
