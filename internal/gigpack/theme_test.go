package gigpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   ClassifyInput
		want Theme
	}{
		{"gig type wins over venue", ClassifyInput{GigType: "Corporate", VenueName: "Blue Note Jazz Bar"}, ThemeCorporateEvent},
		{"unknown gig type falls through", ClassifyInput{GigType: "karaoke", VenueName: "The Old Tavern"}, ThemeBarGig},
		{"jazz checked before bar", ClassifyInput{VenueName: "The Jazz Bar"}, ThemeJazzClub},
		{"hebrew venue", ClassifyInput{VenueName: "בית קפה ברחוב"}, ThemeCoffeehouse},
		{"english venue before hebrew", ClassifyInput{VenueName: "Garden מועדון"}, ThemeWeddingParty},
		{"content from title", ClassifyInput{Title: "Acme Corporate Gala"}, ThemeCorporateEvent},
		{"content from band name", ClassifyInput{Title: "Friday", BandName: "Big Band Sound"}, ThemeJazzClub},
		{"hebrew content", ClassifyInput{Title: "חתונה של דנה"}, ThemeWeddingParty},
		{"nothing matches", ClassifyInput{Title: "Friday"}, ThemeGenericMusic},
		{"empty", ClassifyInput{}, ThemeGenericMusic},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.in))
		})
	}
}

func TestClassifyGig_UsesPackFields(t *testing.T) {
	p := &GigPack{Title: "Launch night", VenueName: sp("  Riverside Park ")}
	assert.Equal(t, ThemeFestivalStage, ClassifyGig(p))
}
