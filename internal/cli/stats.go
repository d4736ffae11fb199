package cli

import (
	"fmt"
	"time"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

type StatsCmd struct {
	File string `arg:"" help:"Activity export (JSON)." type:"existingfile"`
	Now  string `help:"Reference time, RFC 3339. Defaults to now."`
	JSON bool   `help:"Print the raw aggregate as JSON."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	log, err := readLog(c.File)
	if err != nil {
		return err
	}

	now := ctx.Now()
	if c.Now != "" {
		now, err = time.Parse(time.RFC3339, c.Now)
		if err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
	}

	// Challenge progress is not part of the export, so challenge points are absent.
	stats := domain.ComputeStats(domain.StatsInput{Log: log, Now: now})

	if c.JSON {
		return writeJSON(ctx.Out, stats)
	}

	fmt.Fprintf(ctx.Out, "Days logged:      %d\n", len(log))
	fmt.Fprintf(ctx.Out, "Points:           %d\n", stats.Points)
	fmt.Fprintf(ctx.Out, "Streak:           %d (longest %d)\n", stats.Streak, stats.LongestStreak)
	fmt.Fprintf(ctx.Out, "On-time prayers:  %d this week, %d this month\n", stats.WeeklyPrayers, stats.MonthlyPrayers)
	fmt.Fprintf(ctx.Out, "Azkar sets:       %d\n", stats.CompletedAzkar)
	fmt.Fprintf(ctx.Out, "Quran pages:      %d (khatma %.1f%%)\n", stats.QuranPages, stats.Khatma.Percentage)
	return nil
}
