package model

// SetlistSection groups songs of a gig ("Set 1", "Encore").  Deleting
// a section cascades to its songs.
type SetlistSection struct {
    ID        string        // setlist_sections.id
    GigID     string        // setlist_sections.gig_id
    Name      string        // setlist_sections.name
    SortOrder *int          // setlist_sections.sort_order
    Songs     []SetlistSong // setlist_items rows of this section
}

// SetlistSong is one song inside a section.
type SetlistSong struct {
    ID           string  // setlist_items.id
    SectionID    string  // setlist_items.section_id
    Title        string  // setlist_items.title
    Artist       *string // setlist_items.artist
    Key          *string // setlist_items.song_key
    Tempo        *string // setlist_items.tempo (free text, usually BPM)
    Notes        *string // setlist_items.notes
    ReferenceURL *string // setlist_items.reference_url
    SortOrder    *int    // setlist_items.sort_order
}
