package gigpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringHash(t *testing.T) {
	assert.Equal(t, uint32(0), stringHash(""))
	assert.Equal(t, uint32(97), stringHash("a"))
	assert.Equal(t, uint32(96354), stringHash("abc"))
}

func TestFallbackImage(t *testing.T) {
	assert.Equal(t, "/images/fallback/jazz-3.jpg", FallbackImage(ThemeJazzClub, "b"))
	assert.Equal(t, "/images/fallback/jazz-1.jpg", FallbackImage(ThemeJazzClub, "abc"))
	assert.Equal(t, "/images/fallback/corporate-1.jpg", FallbackImage(ThemeCorporateEvent, "anything"))

	// Stable for a given gig.
	id := "5f1c7e0a-9b6d-4a53-8f0e-2c4b7d1e9a30"
	assert.Equal(t, FallbackImage(ThemeWeddingParty, id), FallbackImage(ThemeWeddingParty, id))
	assert.Contains(t, fallbackImages[ThemeWeddingParty], FallbackImage(ThemeWeddingParty, id))

	assert.Contains(t, fallbackImages[ThemeGenericMusic], FallbackImage(Theme("unknown"), id))
}
