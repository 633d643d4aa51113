package gigpack

import "strings"

// SynthesizeSetlistText flattens a structured setlist into the legacy
// one-song-per-line text.  Sections are walked in order, then songs.
// Each line reads "Title[ - Artist][ | Key][ Tempo BPM]".
func SynthesizeSetlistText(sections []SetlistSectionEntry) string {
	var lines []string
	for _, sec := range sections {
		for _, song := range sec.Songs {
			lines = append(lines, songLine(song))
		}
	}
	return strings.Join(lines, "\n")
}

func songLine(s SetlistSongEntry) string {
	var b strings.Builder
	b.WriteString(s.Title)
	if v := present(s.Artist); v != "" {
		b.WriteString(" - ")
		b.WriteString(v)
	}
	if v := present(s.Key); v != "" {
		b.WriteString(" | ")
		b.WriteString(v)
	}
	if v := present(s.Tempo); v != "" {
		b.WriteString(" ")
		b.WriteString(v)
		b.WriteString(" BPM")
	}
	return b.String()
}

// hasSongs reports whether any section carries at least one song.
func hasSongs(sections []SetlistSectionEntry) bool {
	for _, sec := range sections {
		if len(sec.Songs) > 0 {
			return true
		}
	}
	return false
}

// present returns the value as stored, or "" for nil.
func present(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
