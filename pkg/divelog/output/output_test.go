package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/lukeandrew/subsurface/pkg/divelog/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLoadResult() *types.LoadResult {
	log := types.NewDiveLog()

	trip := types.NewTrip(2019, 5, 3)
	log.RecordTrip(trip)

	later := types.NewDive(time.Date(2019, 5, 14, 7, 0, 0, 0, time.UTC))
	later.Number = 42
	types.Link(later, trip)
	log.RecordDive(later)

	earlier := types.NewDive(time.Date(2019, 5, 12, 9, 30, 0, 0, time.UTC))
	log.RecordDive(earlier)

	return &types.LoadResult{
		Log: log,
		Stats: types.LoadStats{
			DirsWalked:   5,
			FilesRead:    3,
			BytesRead:    1024,
			DivesCreated: 2,
			TripsCreated: 1,
			Elapsed:      12 * time.Millisecond,
		},
		Errors: []types.LoadError{
			{Path: "2019/05/", Name: "notes.txt", Error: "unknown file"},
		},
	}
}

func TestBuildResult(t *testing.T) {
	r := BuildResult("git /dives", sampleLoadResult())

	assert.Equal(t, "git /dives", r.Source)

	require.Len(t, r.Dives, 2)
	assert.True(t, r.Dives[0].When.Before(r.Dives[1].When), "dives must be sorted ascending")
	assert.Equal(t, "", r.Dives[0].Trip)
	assert.Equal(t, "2019-05-03", r.Dives[1].Trip)
	assert.Equal(t, 42, r.Dives[1].Number)

	require.Len(t, r.Trips, 1)
	assert.Equal(t, 1, r.Trips[0].Dives)

	assert.Equal(t, int64(5), r.Info.DirsWalked)
	assert.Equal(t, int64(1024), r.Info.BytesRead)
	assert.False(t, r.Info.FromCache)

	require.Len(t, r.Errors, 1)
	assert.Equal(t, "2019/05/notes.txt: unknown file", r.Errors[0])
}

func TestBuildResultEmpty(t *testing.T) {
	r := BuildResult("git /dives", &types.LoadResult{Log: types.NewDiveLog()})

	assert.Empty(t, r.Dives)
	assert.Empty(t, r.Trips)
	assert.Empty(t, r.Errors)
}

func TestRegistry(t *testing.T) {
	t.Run("default formatters registered", func(t *testing.T) {
		for _, name := range []string{"pretty", "plain", "tsv", "csv", "json", "yaml"} {
			f, err := Get(name)
			require.NoError(t, err, "formatter %q", name)
			assert.NotNil(t, f)
		}
	})

	t.Run("unknown formatter", func(t *testing.T) {
		_, err := Get("xml")
		assert.Error(t, err)
	})

	t.Run("available is sorted", func(t *testing.T) {
		names := Available()
		assert.IsNonDecreasing(t, names)
		assert.Contains(t, names, "pretty")
	})
}

func TestPlainFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &PlainFormatter{}
	require.NoError(t, f.Format(&buf, BuildResult("git /dives", sampleLoadResult())))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "WHEN")
	assert.Contains(t, lines[1], "2019-05-12 09:30:00")
	assert.Contains(t, lines[1], "-", "unset number renders as a dash")
	assert.Contains(t, lines[2], "42")
	assert.Contains(t, lines[2], "2019-05-03")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}
	require.NoError(t, f.Format(&buf, BuildResult("git /dives", sampleLoadResult())))

	var out struct {
		Source string `json:"source"`
		Dives  []struct {
			When   time.Time `json:"when"`
			Number int       `json:"number"`
			Trip   string    `json:"trip"`
		} `json:"dives"`
		Info struct {
			Duration string `json:"duration"`
		} `json:"info"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "git /dives", out.Source)
	require.Len(t, out.Dives, 2)
	assert.Equal(t, 42, out.Dives[1].Number)
	assert.Equal(t, "2019-05-03", out.Dives[1].Trip)
	assert.Equal(t, "12ms", out.Info.Duration)
	require.Len(t, out.Errors, 1)
}

func TestTSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := Get("tsv")
	require.NoError(t, err)
	require.NoError(t, f.Format(&buf, BuildResult("git /dives", sampleLoadResult())))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, 3, strings.Count(lines[1], "\t")+1, "rows are tab separated")
}

func TestPrettyFormatterSections(t *testing.T) {
	var buf bytes.Buffer
	f, err := Get("pretty")
	require.NoError(t, err)
	require.NoError(t, f.Format(&buf, BuildResult("git /dives", sampleLoadResult())))

	out := buf.String()
	assert.Contains(t, out, "git /dives")
	assert.Contains(t, out, "2019-05-12")
	assert.Contains(t, out, "1.0 KiB")
	assert.Contains(t, out, "notes.txt")
}
