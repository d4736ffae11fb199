package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

func TestDailyActivity_SetPrayer(t *testing.T) {
	var day domain.DailyActivity

	require.NoError(t, day.SetPrayer(domain.PrayerFajr, domain.PrayerStatus{Fard: domain.FardEarly, SunnahBefore: true}))
	require.NoError(t, day.SetPrayer(domain.PrayerIsha, domain.PrayerStatus{Fard: domain.FardLate}))
	assert.Equal(t, 1, day.OnTimePrayers())

	assert.ErrorIs(t, day.SetPrayer("tarawih", domain.PrayerStatus{Fard: domain.FardOnTime}), domain.ErrInvalidPrayer)
	assert.ErrorIs(t, day.SetPrayer(domain.PrayerAsr, domain.PrayerStatus{Fard: "sometime"}), domain.ErrInvalidFardStatus)
}

func TestDailyActivity_AddZikr(t *testing.T) {
	var day domain.DailyActivity
	catalog := domain.DefaultAzkarCatalog

	total, err := day.AddZikr(catalog, domain.AzkarMorning, "subhanallah_wa_bihamdihi", 33)
	require.NoError(t, err)
	assert.Equal(t, 33, total)

	total, err = day.AddZikr(catalog, domain.AzkarMorning, "subhanallah_wa_bihamdihi", 67)
	require.NoError(t, err)
	assert.Equal(t, 100, total)

	_, err = day.AddZikr(catalog, domain.AzkarMorning, "not_in_catalog", 1)
	assert.ErrorIs(t, err, domain.ErrUnknownZikr)

	_, err = day.AddZikr(catalog, domain.AzkarWaking, "ayat_al_kursi", 1)
	assert.ErrorIs(t, err, domain.ErrUnknownZikr, "items belong to a specific set")

	_, err = day.AddZikr(catalog, domain.AzkarMorning, "asbahna", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidZikrCount)
}

func TestDailyActivity_SetVoluntary(t *testing.T) {
	var day domain.DailyActivity

	require.NoError(t, day.SetVoluntary("duha", 3))
	require.NoError(t, day.SetVoluntary("qiyam", 11))
	assert.Equal(t, 3, day.Voluntary["duha"])

	assert.ErrorIs(t, day.SetVoluntary("duha", 4), domain.ErrInvalidVoluntaryVal)
	assert.ErrorIs(t, day.SetVoluntary("qiyam", -1), domain.ErrInvalidVoluntaryVal)
	assert.ErrorIs(t, day.SetVoluntary("eid", 1), domain.ErrInvalidVoluntary)
}

func TestDailyActivity_SetGoal(t *testing.T) {
	var day domain.DailyActivity

	require.NoError(t, day.SetGoal("  call_parents ", true))
	assert.True(t, day.Goals["call_parents"])

	assert.ErrorIs(t, day.SetGoal("   ", true), domain.ErrInvalidGoal)
	assert.ErrorIs(t, day.SetGoal(strings.Repeat("g", domain.MaxGoalIDLen+1), true), domain.ErrGoalTooLong)
}

func TestDailyActivity_Clone(t *testing.T) {
	var day domain.DailyActivity
	_ = day.SetPrayer(domain.PrayerFajr, domain.PrayerStatus{Fard: domain.FardOnTime})
	_, _ = day.AddZikr(domain.DefaultAzkarCatalog, domain.AzkarSleep, "tasbih", 10)
	_ = day.SetGoal("walk", true)
	_ = day.SetVoluntary("witr", 1)
	day.AddQuranPages(4)
	day.AddQuranPages(-2)

	cp := day.Clone()
	assert.Equal(t, day, cp)

	_, _ = cp.AddZikr(domain.DefaultAzkarCatalog, domain.AzkarSleep, "tasbih", 10)
	_ = cp.SetPrayer(domain.PrayerFajr, domain.PrayerStatus{Fard: domain.FardMissed})
	cp.Goals["walk"] = false

	assert.Equal(t, 10, day.ZikrCount(domain.AzkarSleep, "tasbih"))
	assert.Equal(t, domain.FardOnTime, day.Prayers[domain.PrayerFajr].Fard)
	assert.True(t, day.Goals["walk"])
	assert.Equal(t, 4, day.QuranPages)
}

func TestDateKey(t *testing.T) {
	_, err := domain.ParseDateKey("2026-02-30", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidDateKey)

	d, err := domain.ParseDateKey("2026-02-28", nil)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", domain.DateKey(d))

	assert.NoError(t, domain.ValidateDateKey("2024-02-29"))
	assert.Error(t, domain.ValidateDateKey("2024-2-9"))
}
