package domain

type VoluntaryKind string

const (
	// VoluntaryOption values are an index into Options.
	VoluntaryOption VoluntaryKind = "option"
	// VoluntaryCount values are a free repetition count.
	VoluntaryCount VoluntaryKind = "count"
)

type VoluntaryPrayer struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Kind    VoluntaryKind `json:"kind"`
	Options []string      `json:"options,omitempty"`
}

func (v VoluntaryPrayer) ValidateValue(value int) error {
	if value < 0 {
		return ErrInvalidVoluntaryVal
	}
	if v.Kind == VoluntaryOption && value >= len(v.Options) {
		return ErrInvalidVoluntaryVal
	}
	return nil
}

var VoluntaryPrayers = []VoluntaryPrayer{
	{ID: "duha", Title: "Duha", Kind: VoluntaryOption, Options: []string{"none", "2 rakat", "4 rakat", "8 rakat"}},
	{ID: "witr", Title: "Witr", Kind: VoluntaryOption, Options: []string{"none", "1 rakah", "3 rakat", "5 rakat"}},
	{ID: "qiyam", Title: "Qiyam al-Layl", Kind: VoluntaryCount},
	{ID: "tahajjud", Title: "Tahajjud", Kind: VoluntaryCount},
	{ID: "fasting", Title: "Voluntary fast", Kind: VoluntaryOption, Options: []string{"no", "yes"}},
}

func LookupVoluntaryPrayer(id string) (VoluntaryPrayer, bool) {
	for _, v := range VoluntaryPrayers {
		if v.ID == id {
			return v, true
		}
	}
	return VoluntaryPrayer{}, false
}
