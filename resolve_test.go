package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePages(t *testing.T) {
	snap, err := NewSnapshot(contractSheet())
	require.NoError(t, err)

	pages, err := ResolvePages(snap)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "A2:D5", pages[0].Ref())
	assert.Equal(t, "A6:D10", pages[1].Ref())
	assert.Equal(t, 1, pages[0].ID)
	assert.Equal(t, 2, pages[1].ID)
}

func TestResolvePagesNoBreaks(t *testing.T) {
	src := contractSheet()
	src.breaks = nil
	snap, err := NewSnapshot(src)
	require.NoError(t, err)

	pages, err := ResolvePages(snap)
	assert.ErrorIs(t, err, ErrNoBreaks)
	assert.Empty(t, pages)
}

// The row spans must be contiguous, non-overlapping, cover every data
// row, and end at the sheet's last row, for any break set.
func TestResolvePagesContiguous(t *testing.T) {
	for _, breaks := range [][]int{
		{5},
		{3, 7},
		{2, 3, 4},
		{9},
		{7, 3}, // unsorted in the sheet
	} {
		src := contractSheet()
		src.breaks = breaks
		snap, err := NewSnapshot(src)
		require.NoError(t, err)
		pages, err := ResolvePages(snap)
		require.NoError(t, err)
		require.Len(t, pages, len(breaks)+1)

		assert.Equal(t, 2, pages[0].StartRow, "breaks %v", breaks)
		for i, pg := range pages {
			assert.Equal(t, i+1, pg.ID)
			if i > 0 {
				assert.Equal(t, pages[i-1].EndRow+1, pg.StartRow, "breaks %v", breaks)
			}
		}
		assert.Equal(t, snap.LastRow, pages[len(pages)-1].EndRow, "breaks %v", breaks)
	}
}
