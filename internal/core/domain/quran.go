package domain

import "errors"

var ErrInvalidQuranPosition = errors.New("invalid quran position")

const QuranTotalPages = 604

type QuranPosition struct {
	Chapter int `json:"chapter" db:"quran_chapter"`
	Verse   int `json:"verse" db:"quran_verse"`
}

type SurahInfo struct {
	Number    int
	Verses    int
	StartPage int
}

// QuranTable is ordered by chapter number, starting at 1.
type QuranTable []SurahInfo

func (t QuranTable) Lookup(chapter int) (SurahInfo, bool) {
	if chapter < 1 || chapter > len(t) {
		return SurahInfo{}, false
	}
	return t[chapter-1], true
}

func (p QuranPosition) Validate(table QuranTable) error {
	s, ok := table.Lookup(p.Chapter)
	if !ok || p.Verse < 1 || p.Verse > s.Verses {
		return ErrInvalidQuranPosition
	}
	return nil
}

// ApproximatePage estimates the mushaf page of pos by interpolating linearly
// between the first page of its chapter and the first page of the next one.
// The result is an approximation: it floors, never rounds. Unknown chapters
// map to page 1, verses outside the chapter are clamped and the result never
// exceeds totalPages.
func ApproximatePage(pos QuranPosition, table QuranTable, totalPages int) int {
	s, ok := table.Lookup(pos.Chapter)
	if !ok {
		return 1
	}

	end := totalPages + 1
	if next, ok := table.Lookup(pos.Chapter + 1); ok {
		end = next.StartPage
	}
	span := end - s.StartPage
	if span <= 0 || s.Verses <= 0 {
		return s.StartPage
	}

	verse := min(max(pos.Verse, 0), s.Verses)
	page := s.StartPage + verse*span/s.Verses
	if totalPages > 0 && page > totalPages {
		page = max(totalPages, s.StartPage)
	}
	return page
}

// PageDelta returns the pages read when moving from old to next. Moving
// backwards reads nothing.
func PageDelta(old, next QuranPosition, table QuranTable, totalPages int) int {
	return max(0, ApproximatePage(next, table, totalPages)-ApproximatePage(old, table, totalPages))
}

// DefaultQuranTable describes the 604-page Madinah mushaf.
var DefaultQuranTable = QuranTable{
	{1, 7, 1}, {2, 286, 2}, {3, 200, 50}, {4, 176, 77},
	{5, 120, 106}, {6, 165, 128}, {7, 206, 151}, {8, 75, 177},
	{9, 129, 187}, {10, 109, 208}, {11, 123, 221}, {12, 111, 235},
	{13, 43, 249}, {14, 52, 255}, {15, 99, 262}, {16, 128, 267},
	{17, 111, 282}, {18, 110, 293}, {19, 98, 305}, {20, 135, 312},
	{21, 112, 322}, {22, 78, 332}, {23, 118, 342}, {24, 64, 350},
	{25, 77, 359}, {26, 227, 367}, {27, 93, 377}, {28, 88, 385},
	{29, 69, 396}, {30, 60, 404}, {31, 34, 411}, {32, 30, 415},
	{33, 73, 418}, {34, 54, 428}, {35, 45, 434}, {36, 83, 440},
	{37, 182, 446}, {38, 88, 453}, {39, 75, 458}, {40, 85, 467},
	{41, 54, 477}, {42, 53, 483}, {43, 89, 489}, {44, 59, 496},
	{45, 37, 499}, {46, 35, 502}, {47, 38, 507}, {48, 29, 511},
	{49, 18, 515}, {50, 45, 518}, {51, 60, 520}, {52, 49, 523},
	{53, 62, 526}, {54, 55, 528}, {55, 78, 531}, {56, 96, 534},
	{57, 29, 537}, {58, 22, 542}, {59, 24, 545}, {60, 13, 549},
	{61, 14, 551}, {62, 11, 553}, {63, 11, 554}, {64, 18, 556},
	{65, 12, 558}, {66, 12, 560}, {67, 30, 562}, {68, 52, 564},
	{69, 52, 566}, {70, 44, 568}, {71, 28, 570}, {72, 28, 572},
	{73, 20, 574}, {74, 56, 575}, {75, 40, 577}, {76, 31, 578},
	{77, 50, 580}, {78, 40, 582}, {79, 46, 583}, {80, 42, 585},
	{81, 29, 586}, {82, 19, 587}, {83, 36, 587}, {84, 25, 589},
	{85, 22, 590}, {86, 17, 591}, {87, 19, 591}, {88, 26, 592},
	{89, 30, 593}, {90, 20, 594}, {91, 15, 595}, {92, 21, 595},
	{93, 11, 596}, {94, 8, 596}, {95, 8, 597}, {96, 19, 597},
	{97, 5, 598}, {98, 8, 598}, {99, 8, 599}, {100, 11, 599},
	{101, 11, 600}, {102, 8, 600}, {103, 3, 601}, {104, 9, 601},
	{105, 5, 601}, {106, 4, 602}, {107, 7, 602}, {108, 3, 602},
	{109, 6, 603}, {110, 3, 603}, {111, 5, 603}, {112, 4, 604},
	{113, 5, 604}, {114, 6, 604},
}
