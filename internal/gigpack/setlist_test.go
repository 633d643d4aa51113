package gigpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sp(s string) *string { return &s }

func TestSynthesizeSetlistText(t *testing.T) {
	sections := []SetlistSectionEntry{
		{Name: "Set 1", Songs: []SetlistSongEntry{
			{Title: "Autumn Leaves", Artist: sp("Kosma"), Key: sp("Gm"), Tempo: sp("120")},
			{Title: "Blue Bossa", Key: sp("Cm")},
		}},
		{Name: "Empty"},
		{Name: "Encore", Songs: []SetlistSongEntry{
			{Title: "Take Five", Artist: sp(""), Tempo: sp(" 172")},
		}},
	}
	want := "Autumn Leaves - Kosma | Gm 120 BPM\nBlue Bossa | Cm\nTake Five  172 BPM"
	assert.Equal(t, want, SynthesizeSetlistText(sections))
}

func TestSynthesizeSetlistText_NoSongs(t *testing.T) {
	assert.Equal(t, "", SynthesizeSetlistText(nil))
	assert.False(t, hasSongs([]SetlistSectionEntry{{Name: "Set 1"}}))
}
