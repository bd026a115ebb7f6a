package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalCategoryExactAndNormalized(t *testing.T) {
	assert.Equal(t, "Australia Post", CanonicalCategory("Australia Post"))
	assert.Equal(t, "Australia Post", CanonicalCategory("australia post"))
	assert.Equal(t, "Direct Freight", CanonicalCategory("direct-freight!"))
	assert.Equal(t, "Couriers Please", CanonicalCategory("COURIERS PLEASE"))
}

func TestCanonicalCategoryTokenOrderInsensitive(t *testing.T) {
	assert.Equal(t, "Direct Freight", CanonicalCategory("Freight Direct"))
	assert.Equal(t, "Australia Post", CanonicalCategory("Post Australia"))
	assert.Equal(t, "Allied Express", CanonicalCategory("express allied"))
}

func TestCanonicalCategorySynonyms(t *testing.T) {
	assert.Equal(t, "Australia Post", CanonicalCategory("AusPost"))
	assert.Equal(t, "Direct Freight", CanonicalCategory("DF"))
	assert.Equal(t, "Direct Freight", CanonicalCategory("dfe"))
	assert.Equal(t, "Couriers Please", CanonicalCategory("CPL"))
	assert.Equal(t, "Jet", CanonicalCategory("Jet Couriers"))
	assert.Equal(t, "StarTrack", CanonicalCategory("StarTrack Express"))
}

func TestCanonicalCategoryUnknownPassesThrough(t *testing.T) {
	assert.Equal(t, "Fastway", CanonicalCategory("  Fastway "))
	assert.Equal(t, "", CanonicalCategory(""))
}

func TestCanonicalCategoryIdempotent(t *testing.T) {
	inputs := []string{
		"AusPost", "Australia Post", "Freight Direct", "df",
		"Jet", "Fastway", "unknown courier", "  spaced out  ",
	}
	for _, in := range inputs {
		once := CanonicalCategory(in)
		assert.Equal(t, once, CanonicalCategory(once), "canon not idempotent for %q", in)
	}
}
