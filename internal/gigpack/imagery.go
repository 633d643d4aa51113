package gigpack

// fallbackImages lists the bundled artwork per theme.
var fallbackImages = map[Theme][]string{
	ThemeWeddingParty:   {"/images/fallback/wedding-1.jpg", "/images/fallback/wedding-2.jpg", "/images/fallback/wedding-3.jpg"},
	ThemeCoffeehouse:    {"/images/fallback/coffeehouse-1.jpg", "/images/fallback/coffeehouse-2.jpg"},
	ThemeBarGig:         {"/images/fallback/bar-1.jpg", "/images/fallback/bar-2.jpg"},
	ThemeJazzClub:       {"/images/fallback/jazz-1.jpg", "/images/fallback/jazz-2.jpg", "/images/fallback/jazz-3.jpg"},
	ThemeClubStage:      {"/images/fallback/club-1.jpg", "/images/fallback/club-2.jpg"},
	ThemeCorporateEvent: {"/images/fallback/corporate-1.jpg"},
	ThemeFestivalStage:  {"/images/fallback/festival-1.jpg", "/images/fallback/festival-2.jpg"},
	ThemeRehearsalRoom:  {"/images/fallback/rehearsal-1.jpg"},
	ThemeGenericMusic:   {"/images/fallback/generic-1.jpg", "/images/fallback/generic-2.jpg", "/images/fallback/generic-3.jpg", "/images/fallback/generic-4.jpg"},
}

// FallbackImage picks the artwork for a theme.  With several images the
// choice depends only on the gig id, so a gig always shows the same
// picture.
func FallbackImage(theme Theme, gigID string) string {
	images, ok := fallbackImages[theme]
	if !ok || len(images) == 0 {
		images = fallbackImages[ThemeGenericMusic]
	}
	if len(images) == 1 {
		return images[0]
	}
	return images[stringHash(gigID)%uint32(len(images))]
}

// stringHash is the classic h = h<<5 - h + c rolling hash over the
// runes of s.  Unsigned arithmetic keeps the result non-negative.
func stringHash(s string) uint32 {
	var h uint32
	for _, r := range s {
		h = (h << 5) - h + uint32(r)
	}
	return h
}
