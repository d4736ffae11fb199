package domain

import (
	"sort"
	"time"
)

const (
	PointsPerOnTimePrayer = 10
	PointsPerAzkarSet     = 15
	PointsPerQuranPage    = 2

	// StreakMinPrayers is the number of on-time prayers a day needs to extend a streak.
	StreakMinPrayers = 3
	weeklyWindowDays = 7
)

type KhatmaProgress struct {
	PagesRead  int     `json:"pages_read"`
	Percentage float64 `json:"percentage"`
}

type AggregateStats struct {
	Points         int            `json:"points"`
	Streak         int            `json:"streak"`
	LongestStreak  int            `json:"longest_streak"`
	WeeklyPrayers  int            `json:"weekly_prayers"`
	MonthlyPrayers int            `json:"monthly_prayers"`
	QuranPages     int            `json:"quran_pages"`
	CompletedAzkar int            `json:"completed_azkar"`
	Khatma         KhatmaProgress `json:"khatma"`
}

type StatsInput struct {
	Log         ActivityLog
	Progress    []ChallengeProgress
	Challenges  ChallengeCatalog
	Azkar       AzkarCatalog
	KhatmaPages int
	Now         time.Time
}

type datedActivity struct {
	date     time.Time
	activity DailyActivity
}

// ComputeStats folds the activity log into aggregate statistics. It never
// fails and never mutates its input: unparseable date keys are skipped and
// absent fields count as zero.
func ComputeStats(in StatsInput) AggregateStats {
	azkar := in.Azkar
	if azkar.IsZero() {
		azkar = DefaultAzkarCatalog
	}
	khatmaPages := in.KhatmaPages
	if khatmaPages <= 0 {
		khatmaPages = QuranTotalPages
	}
	loc := in.Now.Location()

	days := make([]datedActivity, 0, len(in.Log))
	for key, activity := range in.Log {
		date, err := ParseDateKey(key, loc)
		if err != nil {
			continue
		}
		days = append(days, datedActivity{date: date, activity: activity})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].date.Before(days[j].date)
	})

	var stats AggregateStats
	nowYear, nowMonth, _ := in.Now.Date()

	for _, d := range days {
		onTime := d.activity.OnTimePrayers()
		stats.Points += onTime * PointsPerOnTimePrayer

		if daysBetween(d.date, in.Now) < weeklyWindowDays {
			stats.WeeklyPrayers += onTime
		}
		if y, m, _ := d.date.Date(); y == nowYear && m == nowMonth {
			stats.MonthlyPrayers += onTime
		}

		completed := azkar.CompletedSets(d.activity)
		stats.CompletedAzkar += completed
		stats.Points += completed * PointsPerAzkarSet

		pages := max(d.activity.QuranPages, 0)
		stats.QuranPages += pages
		stats.Points += pages * PointsPerQuranPage
	}

	for _, p := range in.Progress {
		if p.Status != ChallengeCompleted {
			continue
		}
		if def, ok := in.Challenges.Lookup(p.ChallengeID); ok {
			stats.Points += def.Points
		}
	}

	stats.Streak = currentStreak(days, in.Now)
	stats.LongestStreak = longestStreak(days)
	stats.Khatma = CalculateKhatma(stats.QuranPages, khatmaPages)

	return stats
}

// currentStreak walks days (sorted ascending) from the most recent one
// backwards. The most recent day counts as soon as it is no older than
// yesterday; every earlier day must qualify and directly precede the last
// counted day.
func currentStreak(days []datedActivity, now time.Time) int {
	if len(days) == 0 {
		return 0
	}

	latest := days[len(days)-1]
	if daysBetween(latest.date, now) > 1 {
		return 0
	}

	streak := 1
	last := latest.date
	for i := len(days) - 2; i >= 0; i-- {
		d := days[i]
		if daysBetween(d.date, last) != 1 {
			break
		}
		if d.activity.OnTimePrayers() < StreakMinPrayers {
			break
		}
		streak++
		last = d.date
	}
	return streak
}

func longestStreak(days []datedActivity) int {
	longest, run := 0, 0
	var prev time.Time
	for _, d := range days {
		if d.activity.OnTimePrayers() < StreakMinPrayers {
			run = 0
			continue
		}
		if run > 0 && daysBetween(prev, d.date) == 1 {
			run++
		} else {
			run = 1
		}
		prev = d.date
		longest = max(longest, run)
	}
	return longest
}

// CalculateKhatma reports progress within the current reading cycle.
func CalculateKhatma(totalPages, khatmaPages int) KhatmaProgress {
	if khatmaPages <= 0 || totalPages <= 0 {
		return KhatmaProgress{}
	}
	read := totalPages % khatmaPages
	return KhatmaProgress{
		PagesRead:  read,
		Percentage: float64(read) / float64(khatmaPages) * 100,
	}
}

// StatsSnapshot is the last aggregate persisted for a user by the stats worker.
type StatsSnapshot struct {
	UserID        string    `json:"user_id" db:"user_id"`
	Points        int       `json:"points" db:"points"`
	Streak        int       `json:"streak" db:"streak"`
	LongestStreak int       `json:"longest_streak" db:"longest_streak"`
	QuranPages    int       `json:"quran_pages" db:"quran_pages"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

func (s *StatsSnapshot) Matches(stats AggregateStats) bool {
	return s.Points == stats.Points &&
		s.Streak == stats.Streak &&
		s.LongestStreak == stats.LongestStreak &&
		s.QuranPages == stats.QuranPages
}
