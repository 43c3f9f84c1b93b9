package lineage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBands_GroupsByGeneration(t *testing.T) {
	people := chain(7)
	fam := ResolveFamily(4, people)

	bands := fam.Bands(DefaultBandRange)
	require.Len(t, bands, 7)
	for i, b := range bands {
		assert.Equal(t, i-3, b.Generation)
		require.Len(t, b.Members, 1, "band %d", b.Generation)
		assert.Equal(t, 4+b.Generation, b.Members[0].ID)
	}
	assert.Equal(t, 0, fam.Hidden(DefaultBandRange))
}

func TestBands_EmptyBandsPresent(t *testing.T) {
	fam := ResolveFamily(1, chain(1))
	bands := fam.Bands(2)
	require.Len(t, bands, 5)
	for _, b := range bands {
		if b.Generation == 0 {
			assert.Len(t, b.Members, 1)
			continue
		}
		assert.NotNil(t, b.Members)
		assert.Empty(t, b.Members)
	}
}

func TestBands_OutOfRangeHidden(t *testing.T) {
	people := chain(13)
	r := NewResolver(NewSnapshot(people), Options{MaxDepth: 6})
	fam := r.Family(7)

	// generations -5..5 computed, only -3..3 grouped
	assert.Len(t, fam.Members, 11)
	assert.Equal(t, 4, fam.Hidden(3))

	total := 0
	for _, b := range fam.Bands(3) {
		total += len(b.Members)
	}
	assert.Equal(t, 7, total)
}

func TestBands_NegativeRangeIsRootOnly(t *testing.T) {
	fam := ResolveFamily(2, chain(3))
	bands := fam.Bands(-1)
	require.Len(t, bands, 1)
	assert.Equal(t, 0, bands[0].Generation)

	shown := len(bands[0].Members)
	assert.Equal(t, 1, shown)
	assert.Equal(t, fam.Hidden(0), fam.Hidden(-1))
	assert.Equal(t, len(fam.Members), shown+fam.Hidden(-1))
}

func TestBandLabel(t *testing.T) {
	tests := []struct {
		gen  int
		want string
	}{
		{0, "Self"},
		{-1, "Parents"},
		{-2, "Grandparents"},
		{-3, "Great-grandparents"},
		{-4, "2x-great-grandparents"},
		{1, "Children"},
		{2, "Grandchildren"},
		{3, "Great-grandchildren"},
		{5, "3x-great-grandchildren"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BandLabel(tt.gen), "generation %d", tt.gen)
	}
}
