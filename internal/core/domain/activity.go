package domain

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPrayer        = errors.New("invalid prayer (must be fajr, dhuhr, asr, maghrib or isha)")
	ErrInvalidFardStatus    = errors.New("invalid fard status")
	ErrInvalidVoluntary     = errors.New("unknown voluntary prayer")
	ErrInvalidVoluntaryVal  = errors.New("invalid voluntary prayer value")
	ErrInvalidGoal          = errors.New("goal id cannot be empty")
	ErrGoalTooLong          = errors.New("goal id is too long (max 100 chars)")
	ErrInvalidZikrCount     = errors.New("zikr count must be positive")
	ErrActivityUserRequired = errors.New("user id is required")
)

const MaxGoalIDLen = 100

type PrayerID string

const (
	PrayerFajr    PrayerID = "fajr"
	PrayerDhuhr   PrayerID = "dhuhr"
	PrayerAsr     PrayerID = "asr"
	PrayerMaghrib PrayerID = "maghrib"
	PrayerIsha    PrayerID = "isha"
)

var DailyPrayers = []PrayerID{PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha}

func (p PrayerID) Valid() bool {
	for _, id := range DailyPrayers {
		if id == p {
			return true
		}
	}
	return false
}

type FardStatus string

const (
	FardEarly     FardStatus = "early"
	FardOnTime    FardStatus = "on_time"
	FardLate      FardStatus = "late"
	FardMissed    FardStatus = "missed"
	FardNotPrayed FardStatus = "not_prayed"
)

func (s FardStatus) Valid() bool {
	switch s {
	case FardEarly, FardOnTime, FardLate, FardMissed, FardNotPrayed:
		return true
	}
	return false
}

// CountsOnTime reports whether the status earns on-time credit.
func (s FardStatus) CountsOnTime() bool {
	return s == FardEarly || s == FardOnTime
}

type PrayerStatus struct {
	Fard         FardStatus `json:"fard"`
	SunnahBefore bool       `json:"sunnah_before"`
	SunnahAfter  bool       `json:"sunnah_after"`
}

// DailyActivity is everything logged for one calendar date. A missing
// record and a zero-value record mean the same thing.
type DailyActivity struct {
	Prayers    map[PrayerID]PrayerStatus     `json:"prayers,omitempty"`
	Azkar      map[AzkarSetID]map[string]int `json:"azkar,omitempty"`
	QuranPages int                           `json:"quran_pages"`
	Voluntary  map[string]int                `json:"voluntary,omitempty"`
	Goals      map[string]bool               `json:"goals,omitempty"`
}

// ActivityLog maps date keys to the activity logged on that date.
type ActivityLog map[string]DailyActivity

func (d DailyActivity) OnTimePrayers() int {
	count := 0
	for _, id := range DailyPrayers {
		if d.Prayers[id].Fard.CountsOnTime() {
			count++
		}
	}
	return count
}

func (d DailyActivity) ZikrCount(set AzkarSetID, itemID string) int {
	return d.Azkar[set][itemID]
}

// Clone returns a deep copy so callers can mutate it without touching a snapshot.
func (d DailyActivity) Clone() DailyActivity {
	out := DailyActivity{QuranPages: d.QuranPages}
	if d.Prayers != nil {
		out.Prayers = make(map[PrayerID]PrayerStatus, len(d.Prayers))
		for k, v := range d.Prayers {
			out.Prayers[k] = v
		}
	}
	if d.Azkar != nil {
		out.Azkar = make(map[AzkarSetID]map[string]int, len(d.Azkar))
		for set, items := range d.Azkar {
			cp := make(map[string]int, len(items))
			for k, v := range items {
				cp[k] = v
			}
			out.Azkar[set] = cp
		}
	}
	if d.Voluntary != nil {
		out.Voluntary = make(map[string]int, len(d.Voluntary))
		for k, v := range d.Voluntary {
			out.Voluntary[k] = v
		}
	}
	if d.Goals != nil {
		out.Goals = make(map[string]bool, len(d.Goals))
		for k, v := range d.Goals {
			out.Goals[k] = v
		}
	}
	return out
}

func (d *DailyActivity) SetPrayer(id PrayerID, status PrayerStatus) error {
	if !id.Valid() {
		return ErrInvalidPrayer
	}
	if !status.Fard.Valid() {
		return ErrInvalidFardStatus
	}
	if d.Prayers == nil {
		d.Prayers = make(map[PrayerID]PrayerStatus)
	}
	d.Prayers[id] = status
	return nil
}

// AddZikr accumulates count repetitions of a catalog item and returns the new total.
func (d *DailyActivity) AddZikr(catalog AzkarCatalog, set AzkarSetID, itemID string, count int) (int, error) {
	if count <= 0 {
		return 0, ErrInvalidZikrCount
	}
	if _, ok := catalog.Item(set, itemID); !ok {
		return 0, ErrUnknownZikr
	}
	if d.Azkar == nil {
		d.Azkar = make(map[AzkarSetID]map[string]int)
	}
	if d.Azkar[set] == nil {
		d.Azkar[set] = make(map[string]int)
	}
	d.Azkar[set][itemID] += count
	return d.Azkar[set][itemID], nil
}

func (d *DailyActivity) SetVoluntary(id string, value int) error {
	vp, ok := LookupVoluntaryPrayer(id)
	if !ok {
		return ErrInvalidVoluntary
	}
	if err := vp.ValidateValue(value); err != nil {
		return err
	}
	if d.Voluntary == nil {
		d.Voluntary = make(map[string]int)
	}
	d.Voluntary[id] = value
	return nil
}

func (d *DailyActivity) SetGoal(id string, done bool) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidGoal
	}
	if len(id) > MaxGoalIDLen {
		return ErrGoalTooLong
	}
	if d.Goals == nil {
		d.Goals = make(map[string]bool)
	}
	d.Goals[id] = done
	return nil
}

func (d *DailyActivity) AddQuranPages(pages int) {
	if pages > 0 {
		d.QuranPages += pages
	}
}
