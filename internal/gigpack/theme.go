package gigpack

import "strings"

// Theme is a presentation theme used to pick fallback artwork.
type Theme string

const (
	ThemeWeddingParty   Theme = "weddingParty"
	ThemeCoffeehouse    Theme = "coffeehouse"
	ThemeBarGig         Theme = "barGig"
	ThemeJazzClub       Theme = "jazzClub"
	ThemeClubStage      Theme = "clubStage"
	ThemeCorporateEvent Theme = "corporateEvent"
	ThemeFestivalStage  Theme = "festivalStage"
	ThemeRehearsalRoom  Theme = "rehearsalRoom"
	ThemeGenericMusic   Theme = "genericMusic"
)

// ClassifyInput is the gig metadata the classifier looks at.
type ClassifyInput struct {
	GigType   string
	VenueName string
	Title     string
	BandName  string
}

// themeKeywords is an ordered theme -> keywords table.  Order matters:
// the first theme with a matching keyword wins.
type themeKeywords []struct {
	theme    Theme
	keywords []string
}

var gigTypeThemes = map[string]Theme{
	"wedding":   ThemeWeddingParty,
	"party":     ThemeWeddingParty,
	"private":   ThemeWeddingParty,
	"corporate": ThemeCorporateEvent,
	"festival":  ThemeFestivalStage,
	"club":      ThemeClubStage,
	"bar":       ThemeBarGig,
	"jazz":      ThemeJazzClub,
	"cafe":      ThemeCoffeehouse,
	"rehearsal": ThemeRehearsalRoom,
	"other":     ThemeGenericMusic,
}

var venueKeywordsEN = themeKeywords{
	{ThemeWeddingParty, []string{"wedding", "banquet", "ballroom", "manor", "estate", "chapel", "event hall", "garden"}},
	{ThemeJazzClub, []string{"jazz", "blue note", "lounge", "speakeasy", "supper club"}},
	{ThemeCoffeehouse, []string{"cafe", "café", "coffee", "espresso", "bakery", "tea house", "bistro"}},
	{ThemeBarGig, []string{"pub", "bar", "tavern", "saloon", "brewery", "taproom", "inn"}},
	{ThemeClubStage, []string{"club", "venue", "hall", "theater", "theatre", "arena", "stage"}},
	{ThemeCorporateEvent, []string{"hotel", "conference", "convention", "office", "headquarters", "center", "centre"}},
	{ThemeFestivalStage, []string{"festival", "park", "amphitheater", "amphitheatre", "fairground", "square"}},
	{ThemeRehearsalRoom, []string{"studio", "rehearsal", "practice", "garage"}},
}

var venueKeywordsHE = themeKeywords{
	{ThemeWeddingParty, []string{"אולם אירועים", "גן אירועים", "חתונה", "אחוזה"}},
	{ThemeJazzClub, []string{"ג'אז", "גאז"}},
	{ThemeCoffeehouse, []string{"קפה", "בית קפה"}},
	{ThemeBarGig, []string{"בר", "פאב"}},
	{ThemeClubStage, []string{"מועדון", "במה", "היכל", "תיאטרון"}},
	{ThemeCorporateEvent, []string{"מלון", "כנס", "משרד"}},
	{ThemeFestivalStage, []string{"פסטיבל", "פארק", "אמפי"}},
	{ThemeRehearsalRoom, []string{"אולפן", "חדר חזרות", "סטודיו"}},
}

var contentKeywordsEN = themeKeywords{
	{ThemeWeddingParty, []string{"wedding", "bride", "groom", "reception", "engagement", "anniversary", "bar mitzvah", "bat mitzvah"}},
	{ThemeCorporateEvent, []string{"corporate", "company", "gala", "conference", "launch", "awards", "fundraiser"}},
	{ThemeFestivalStage, []string{"festival", "fest", "open air", "outdoor"}},
	{ThemeJazzClub, []string{"jazz", "swing", "bebop", "standards", "big band"}},
	{ThemeCoffeehouse, []string{"acoustic", "unplugged", "open mic", "singer-songwriter"}},
	{ThemeBarGig, []string{"cover band", "pub night", "happy hour"}},
	{ThemeClubStage, []string{"tour", "album release", "showcase", "headline", "concert"}},
	{ThemeRehearsalRoom, []string{"rehearsal", "practice", "jam session", "run-through"}},
}

var contentKeywordsHE = themeKeywords{
	{ThemeWeddingParty, []string{"חתונה", "חינה", "בר מצווה", "בת מצווה", "אירוסין"}},
	{ThemeCorporateEvent, []string{"חברה", "כנס", "השקה", "ערב חברה"}},
	{ThemeFestivalStage, []string{"פסטיבל"}},
	{ThemeJazzClub, []string{"ג'אז", "סווינג"}},
	{ThemeCoffeehouse, []string{"אקוסטי"}},
	{ThemeBarGig, []string{"להקת קאברים"}},
	{ThemeClubStage, []string{"הופעה", "השקת אלבום", "מופע"}},
	{ThemeRehearsalRoom, []string{"חזרה", "חזרות"}},
}

// Classify maps gig metadata to a presentation theme.  The explicit gig
// type wins; then the venue name is matched against venue words; then
// title and band name against event words.  Each keyword pass runs the
// English table before the Hebrew one.  It never fails.
func Classify(in ClassifyInput) Theme {
	if t, ok := gigTypeThemes[strings.ToLower(strings.TrimSpace(in.GigType))]; ok {
		return t
	}
	if t, ok := matchKeywords(in.VenueName, venueKeywordsEN, venueKeywordsHE); ok {
		return t
	}
	content := strings.TrimSpace(in.Title + " " + in.BandName)
	if t, ok := matchKeywords(content, contentKeywordsEN, contentKeywordsHE); ok {
		return t
	}
	return ThemeGenericMusic
}

func matchKeywords(text string, tables ...themeKeywords) (Theme, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return "", false
	}
	for _, table := range tables {
		for _, row := range table {
			for _, kw := range row.keywords {
				if strings.Contains(text, strings.ToLower(kw)) {
					return row.theme, true
				}
			}
		}
	}
	return "", false
}

// ClassifyGig is Classify over a GigPack.
func ClassifyGig(p *GigPack) Theme {
	return Classify(ClassifyInput{
		GigType:   present(p.GigType),
		VenueName: present(p.VenueName),
		Title:     p.Title,
		BandName:  present(p.BandName),
	})
}
