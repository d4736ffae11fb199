package domain

import "errors"

var ErrUnknownZikr = errors.New("unknown zikr item")

type AzkarSetID string

const (
	AzkarMorning AzkarSetID = "morning"
	AzkarEvening AzkarSetID = "evening"
	AzkarSleep   AzkarSetID = "sleep"
	AzkarWaking  AzkarSetID = "waking"
	AzkarGeneral AzkarSetID = "general"
)

// TrackedAzkarSets are the sets that count toward daily completion.
// The general set is open-ended and never completes.
var TrackedAzkarSets = []AzkarSetID{AzkarMorning, AzkarEvening, AzkarSleep, AzkarWaking}

func (s AzkarSetID) Tracked() bool {
	for _, id := range TrackedAzkarSets {
		if id == s {
			return true
		}
	}
	return false
}

type ZikrItem struct {
	ID       string     `json:"id"`
	Set      AzkarSetID `json:"set"`
	Text     string     `json:"text"`
	Required int        `json:"required"`
}

type AzkarCatalog struct {
	items map[AzkarSetID][]ZikrItem
}

func NewAzkarCatalog(items []ZikrItem) AzkarCatalog {
	c := AzkarCatalog{items: make(map[AzkarSetID][]ZikrItem)}
	for _, it := range items {
		c.items[it.Set] = append(c.items[it.Set], it)
	}
	return c
}

func (c AzkarCatalog) Items(set AzkarSetID) []ZikrItem {
	return c.items[set]
}

func (c AzkarCatalog) Item(set AzkarSetID, id string) (ZikrItem, bool) {
	for _, it := range c.items[set] {
		if it.ID == id {
			return it, true
		}
	}
	return ZikrItem{}, false
}

func (c AzkarCatalog) IsZero() bool {
	return len(c.items) == 0
}

// SetCompleted reports whether every item of set reached its required count on day.
// Untracked sets and sets with no catalog items are never completed.
func (c AzkarCatalog) SetCompleted(day DailyActivity, set AzkarSetID) bool {
	items := c.items[set]
	if !set.Tracked() || len(items) == 0 {
		return false
	}
	for _, it := range items {
		if day.ZikrCount(set, it.ID) < it.Required {
			return false
		}
	}
	return true
}

func (c AzkarCatalog) CompletedSets(day DailyActivity) int {
	n := 0
	for _, set := range TrackedAzkarSets {
		if c.SetCompleted(day, set) {
			n++
		}
	}
	return n
}

var DefaultAzkarCatalog = NewAzkarCatalog([]ZikrItem{
	{ID: "ayat_al_kursi", Set: AzkarMorning, Text: "Ayat al-Kursi", Required: 1},
	{ID: "three_quls", Set: AzkarMorning, Text: "Al-Ikhlas, Al-Falaq, An-Nas", Required: 3},
	{ID: "asbahna", Set: AzkarMorning, Text: "Asbahna wa asbaha al-mulku lillah", Required: 1},
	{ID: "sayyid_al_istighfar", Set: AzkarMorning, Text: "Sayyid al-Istighfar", Required: 1},
	{ID: "subhanallah_wa_bihamdihi", Set: AzkarMorning, Text: "SubhanAllahi wa bihamdihi", Required: 100},

	{ID: "ayat_al_kursi", Set: AzkarEvening, Text: "Ayat al-Kursi", Required: 1},
	{ID: "three_quls", Set: AzkarEvening, Text: "Al-Ikhlas, Al-Falaq, An-Nas", Required: 3},
	{ID: "amsayna", Set: AzkarEvening, Text: "Amsayna wa amsa al-mulku lillah", Required: 1},
	{ID: "sayyid_al_istighfar", Set: AzkarEvening, Text: "Sayyid al-Istighfar", Required: 1},
	{ID: "audhu_bi_kalimat", Set: AzkarEvening, Text: "A'udhu bi kalimatillahi at-tammat", Required: 3},

	{ID: "bismika_amutu", Set: AzkarSleep, Text: "Bismika Allahumma amutu wa ahya", Required: 1},
	{ID: "ayat_al_kursi", Set: AzkarSleep, Text: "Ayat al-Kursi", Required: 1},
	{ID: "tasbih", Set: AzkarSleep, Text: "SubhanAllah", Required: 33},
	{ID: "tahmid", Set: AzkarSleep, Text: "Alhamdulillah", Required: 33},
	{ID: "takbir", Set: AzkarSleep, Text: "Allahu akbar", Required: 34},

	{ID: "alhamdulillah_alladhi_ahyana", Set: AzkarWaking, Text: "Alhamdulillahi alladhi ahyana", Required: 1},
	{ID: "la_ilaha_illallah", Set: AzkarWaking, Text: "La ilaha illallahu wahdahu la sharika lah", Required: 1},

	{ID: "istighfar", Set: AzkarGeneral, Text: "Astaghfirullah", Required: 100},
	{ID: "salawat", Set: AzkarGeneral, Text: "Allahumma salli ala Muhammad", Required: 10},
})
