package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type testCLI struct {
	Stats StatsCmd `cmd:""`
	Page  PageCmd  `cmd:""`
	Hijri HijriCmd `cmd:""`
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var root testCLI
	parser, err := kong.New(&root, kong.Exit(func(int) { t.Fatalf("unexpected exit for %v", args) }))
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	err = kctx.Run(&Context{Out: &out, Now: func() time.Time { return fixedNow }})
	return out.String(), err
}

func writeExport(t *testing.T, v any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.json")
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	return path
}

func sampleLog() domain.ActivityLog {
	onTime := domain.PrayerStatus{Fard: domain.FardOnTime}
	return domain.ActivityLog{
		"2024-03-14": {Prayers: map[domain.PrayerID]domain.PrayerStatus{
			domain.PrayerFajr: onTime, domain.PrayerDhuhr: onTime, domain.PrayerAsr: onTime,
		}},
		"2024-03-15": {QuranPages: 5},
	}
}

func TestStatsCmd(t *testing.T) {
	t.Run("Success: export document", func(t *testing.T) {
		path := writeExport(t, map[string]any{"user_id": "u1", "log": sampleLog()})

		out, err := run(t, "stats", path, "--json")
		require.NoError(t, err)

		var stats domain.AggregateStats
		require.NoError(t, json.Unmarshal([]byte(out), &stats))
		assert.Equal(t, 3*domain.PointsPerOnTimePrayer+5*domain.PointsPerQuranPage, stats.Points)
		assert.Equal(t, 2, stats.Streak)
		assert.Equal(t, 5, stats.QuranPages)
	})

	t.Run("Success: bare log and text output", func(t *testing.T) {
		path := writeExport(t, sampleLog())

		out, err := run(t, "stats", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Days logged:      2")
		assert.Contains(t, out, "Quran pages:      5")
	})

	t.Run("Success: reference time", func(t *testing.T) {
		path := writeExport(t, sampleLog())

		out, err := run(t, "stats", path, "--json", "--now", "2024-05-01T00:00:00Z")
		require.NoError(t, err)

		var stats domain.AggregateStats
		require.NoError(t, json.Unmarshal([]byte(out), &stats))
		assert.Zero(t, stats.Streak)
		assert.Zero(t, stats.WeeklyPrayers)
	})

	t.Run("Fail: malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

		_, err := run(t, "stats", path)
		assert.Error(t, err)
	})

	t.Run("Fail: malformed --now", func(t *testing.T) {
		path := writeExport(t, sampleLog())

		_, err := run(t, "stats", path, "--now", "tomorrow")
		assert.ErrorContains(t, err, "invalid --now")
	})
}

func TestPageCmd(t *testing.T) {
	out, err := run(t, "page", "2", "286")
	require.NoError(t, err)
	assert.Equal(t, "2:286 is on page 50 of 604\n", out)

	_, err = run(t, "page", "1", "8")
	assert.ErrorIs(t, err, domain.ErrInvalidQuranPosition)
}

func TestHijriCmd(t *testing.T) {
	t.Run("Success: local calendar", func(t *testing.T) {
		out, err := run(t, "hijri", "--date", "2024-06-01", "--adjust", "1")
		require.NoError(t, err)

		day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		want := domain.DeriveHijriDate(nil, 1, day)
		assert.Equal(t, "2024-06-01 -> "+want.String()+"\n", out)
	})

	t.Run("Success: defaults to today", func(t *testing.T) {
		out, err := run(t, "hijri")
		require.NoError(t, err)
		assert.Contains(t, out, "2024-03-15 -> ")
	})

	t.Run("Fail: adjustment out of range", func(t *testing.T) {
		_, err := run(t, "hijri", "--adjust", "3")
		assert.ErrorIs(t, err, domain.ErrInvalidHijriAdjustment)
	})

	t.Run("Fail: malformed date", func(t *testing.T) {
		_, err := run(t, "hijri", "--date", "01/06/2024")
		assert.ErrorIs(t, err, domain.ErrInvalidDateKey)
	})
}
