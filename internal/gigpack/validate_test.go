package gigpack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), ErrInvalidPack)
	assert.ErrorIs(t, Validate(&GigPack{}), ErrInvalidPack)
	assert.ErrorIs(t, Validate(&GigPack{Title: "x", Date: sp("12/05/2026")}), ErrInvalidPack)
	assert.ErrorIs(t, Validate(&GigPack{Title: "x", Materials: []MaterialEntry{{Label: "Chart", URL: "https://x", Kind: "video"}}}), ErrInvalidPack)
	assert.ErrorIs(t, Validate(&GigPack{Title: "x", Lineup: []LineupMember{{Role: strings.Repeat("r", 101)}}}), ErrInvalidPack)
	assert.ErrorIs(t, Validate(&GigPack{Title: "x", Branding: Branding{AccentColor: sp("red")}}), ErrInvalidPack)

	assert.NoError(t, Validate(&GigPack{
		Title:     "Spring Gala",
		Date:      sp("2026-05-12"),
		Branding:  Branding{AccentColor: sp("#ff8800")},
		Materials: []MaterialEntry{{Label: "Chart", URL: "https://x", Kind: "charts"}},
	}))
}

// Rows stored with empty text columns load fine, so they must save back.
func TestValidate_AcceptsEmptyChildText(t *testing.T) {
	assert.NoError(t, Validate(&GigPack{
		Title:             "Spring Gala",
		Schedule:          []ScheduleEntry{{Label: ""}},
		Lineup:            []LineupMember{{Role: ""}},
		Materials:         []MaterialEntry{{Label: "", URL: "", Kind: "other"}},
		PackingChecklist:  []PackingEntry{{Label: ""}},
		SetlistStructured: []SetlistSectionEntry{{Songs: []SetlistSongEntry{{Title: ""}}}},
	}))
}
