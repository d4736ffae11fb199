package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidHijriAdjustment = errors.New("hijri adjustment must be between -2 and 2")
	ErrInvalidHijriDate       = errors.New("invalid hijri date")
)

const (
	MinHijriAdjustment = -2
	MaxHijriAdjustment = 2

	// hijriEpoch is the Julian Day Number of 1 Muharram 1 AH (civil epoch).
	hijriEpoch = 1948440
	// unixEpochJDN is the Julian Day Number of 1970-01-01.
	unixEpochJDN = 2440588
)

var HijriMonthNames = [12]string{
	"Muharram", "Safar", "Rabi al-Awwal", "Rabi al-Thani",
	"Jumada al-Ula", "Jumada al-Akhirah", "Rajab", "Shaban",
	"Ramadan", "Shawwal", "Dhu al-Qadah", "Dhu al-Hijjah",
}

type HijriDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (h HijriDate) Validate() error {
	if h.Month < 1 || h.Month > 12 || h.Day < 1 || h.Day > 30 {
		return ErrInvalidHijriDate
	}
	return nil
}

func (h HijriDate) MonthName() string {
	if h.Month < 1 || h.Month > 12 {
		return ""
	}
	return HijriMonthNames[h.Month-1]
}

func (h HijriDate) String() string {
	return fmt.Sprintf("%d %s %d AH", h.Day, h.MonthName(), h.Year)
}

// IsHijriLeapYear applies the 30-year tabular cycle: 11 leap years in which
// Dhu al-Hijjah has 30 days.
func IsHijriLeapYear(year int) bool {
	return floorMod(11*year+14, 30) < 11
}

func HijriDaysInMonth(year, month int) int {
	if month == 12 && IsHijriLeapYear(year) {
		return 30
	}
	if month%2 == 1 {
		return 30
	}
	return 29
}

// ToDayNumber converts h to a Julian Day Number. Days past the end of the
// month roll into the following months.
func (h HijriDate) ToDayNumber() int {
	return h.Day +
		floorDiv(59*(h.Month-1)+1, 2) +
		(h.Year-1)*354 +
		floorDiv(3+11*h.Year, 30) +
		hijriEpoch - 1
}

func HijriFromDayNumber(jdn int) HijriDate {
	year := floorDiv(30*(jdn-hijriEpoch)+10646, 10631)
	for jdn < (HijriDate{Year: year, Month: 1, Day: 1}).ToDayNumber() {
		year--
	}
	for jdn >= (HijriDate{Year: year + 1, Month: 1, Day: 1}).ToDayNumber() {
		year++
	}

	month := 1
	for month < 12 && jdn >= (HijriDate{Year: year, Month: month + 1, Day: 1}).ToDayNumber() {
		month++
	}

	day := jdn - (HijriDate{Year: year, Month: month, Day: 1}).ToDayNumber() + 1
	return HijriDate{Year: year, Month: month, Day: day}
}

// HijriFromGregorian converts the wall-clock date of t with the tabular calendar.
func HijriFromGregorian(t time.Time) HijriDate {
	return HijriFromDayNumber(civilDay(t) + unixEpochJDN)
}

func (h HijriDate) Gregorian() time.Time {
	days := h.ToDayNumber() - unixEpochJDN
	return time.Unix(int64(days)*86400, 0).UTC()
}

func ClampHijriAdjustment(adj int) int {
	return min(max(adj, MinHijriAdjustment), MaxHijriAdjustment)
}

// DeriveHijriDate returns the authoritative date as is when there is no
// adjustment. Otherwise it anchors on the authoritative date, or on the
// tabular conversion of today, and shifts by adjustment days with tabular
// month lengths. Callers that can ask the provider about the shifted
// Gregorian day should do so and pass a zero adjustment.
func DeriveHijriDate(authoritative *HijriDate, adjustment int, today time.Time) HijriDate {
	valid := authoritative != nil && authoritative.Validate() == nil
	if valid && adjustment == 0 {
		return *authoritative
	}

	var anchor int
	if valid {
		anchor = authoritative.ToDayNumber()
	} else {
		anchor = civilDay(today) + unixEpochJDN
	}
	return HijriFromDayNumber(anchor + adjustment)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
