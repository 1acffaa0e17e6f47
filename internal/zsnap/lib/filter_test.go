package lib

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvandijk/zsnap/internal/zsnap/types"
)

var epoch = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// makeSnaps builds n snapshots one hour apart, creation ascending.
// Even-indexed snapshots are automatic.
func makeSnaps(n int) []types.Snapshot {
	snaps := make([]types.Snapshot, n)
	for i := range snaps {
		name := fmt.Sprintf("manual-%d", i)
		auto := i%2 == 0
		if auto {
			name = fmt.Sprintf("%s_hourly-%d", types.AutoSnapPrefix, i)
		}
		snaps[i] = types.Snapshot{
			Name:     name,
			Creation: epoch.Add(time.Duration(i) * time.Hour),
			Auto:     auto,
		}
	}
	return snaps
}

func names(snaps []types.Snapshot) []string {
	out := make([]string, len(snaps))
	for i, s := range snaps {
		out[i] = s.Name
	}
	return out
}

func intp(n int) *int { return &n }

func TestApplyTypeFilters(t *testing.T) {
	snaps := makeSnaps(6)

	t.Run("should keep only automatic snapshots with auto-only", func(t *testing.T) {
		got := Apply(snaps, types.Selection{AutoOnly: true})
		require.Len(t, got, 3)
		for _, s := range got {
			assert.True(t, s.Auto)
		}
	})

	t.Run("should keep only manual snapshots with manual-only", func(t *testing.T) {
		got := Apply(snaps, types.Selection{ManualOnly: true})
		require.Len(t, got, 3)
		for _, s := range got {
			assert.False(t, s.Auto)
		}
	})

	t.Run("should yield an empty set when both type filters are combined", func(t *testing.T) {
		got := Apply(snaps, types.Selection{AutoOnly: true, ManualOnly: true})
		assert.Empty(t, got)
	})
}

func TestApplyTimeFilters(t *testing.T) {
	snaps := makeSnaps(5)

	t.Run("before is strict", func(t *testing.T) {
		// Bound equal to snapshot 2's creation: 2 itself is excluded.
		got := Apply(snaps, types.Selection{Before: snaps[2].Creation})
		assert.Equal(t, names(snaps[:2]), names(got))
	})

	t.Run("after is strict", func(t *testing.T) {
		got := Apply(snaps, types.Selection{After: snaps[2].Creation})
		assert.Equal(t, names(snaps[3:]), names(got))
	})

	t.Run("before and after combine to a window", func(t *testing.T) {
		got := Apply(snaps, types.Selection{After: snaps[0].Creation, Before: snaps[4].Creation})
		assert.Equal(t, names(snaps[1:4]), names(got))
	})
}

func TestApplyCountFilters(t *testing.T) {
	t.Run("oldest keeps the first N", func(t *testing.T) {
		snaps := makeSnaps(5)
		got := Apply(snaps, types.Selection{Oldest: intp(3)})
		assert.Equal(t, names(snaps[:3]), names(got))
	})

	t.Run("oldest zero empties the selection", func(t *testing.T) {
		got := Apply(makeSnaps(5), types.Selection{Oldest: intp(0)})
		assert.Empty(t, got)
	})

	t.Run("oldest negative drops the most recent", func(t *testing.T) {
		snaps := makeSnaps(5)
		got := Apply(snaps, types.Selection{Oldest: intp(-2)})
		assert.Equal(t, names(snaps[:3]), names(got))
	})

	t.Run("oldest larger than the list keeps everything", func(t *testing.T) {
		snaps := makeSnaps(3)
		got := Apply(snaps, types.Selection{Oldest: intp(10)})
		assert.Equal(t, names(snaps), names(got))
	})

	t.Run("oldest more negative than the list empties it", func(t *testing.T) {
		got := Apply(makeSnaps(3), types.Selection{Oldest: intp(-5)})
		assert.Empty(t, got)
	})

	t.Run("newest keeps the last N", func(t *testing.T) {
		snaps := makeSnaps(5)
		got := Apply(snaps, types.Selection{Newest: intp(2)})
		assert.Equal(t, names(snaps[3:]), names(got))
	})

	t.Run("newest zero empties the selection", func(t *testing.T) {
		got := Apply(makeSnaps(5), types.Selection{Newest: intp(0)})
		assert.Empty(t, got)
	})

	t.Run("newest negative drops the oldest", func(t *testing.T) {
		snaps := makeSnaps(5)
		got := Apply(snaps, types.Selection{Newest: intp(-2)})
		assert.Equal(t, names(snaps[2:]), names(got))
	})

	t.Run("oldest then newest compose sequentially", func(t *testing.T) {
		// Oldest(3) narrows to the 3 earliest, Newest(2) then keeps the
		// last 2 of those: original positions 1 and 2.
		snaps := makeSnaps(10)
		got := Apply(snaps, types.Selection{Oldest: intp(3), Newest: intp(2)})
		assert.Equal(t, names(snaps[1:3]), names(got))
	})
}

func TestApplyKeepInverts(t *testing.T) {
	t.Run("keep returns the complement in original order", func(t *testing.T) {
		snaps := makeSnaps(6)
		sel := types.Selection{Newest: intp(2), Keep: true}
		got := Apply(snaps, sel)
		assert.Equal(t, names(snaps[:4]), names(got))
	})

	t.Run("keep of an empty selection returns the full list", func(t *testing.T) {
		snaps := makeSnaps(4)
		sel := types.Selection{AutoOnly: true, ManualOnly: true, Keep: true}
		got := Apply(snaps, sel)
		assert.Equal(t, names(snaps), names(got))
	})

	t.Run("keep of everything returns nothing", func(t *testing.T) {
		got := Apply(makeSnaps(4), types.Selection{Keep: true})
		assert.Empty(t, got)
	})

	t.Run("keep composed with type and count filters", func(t *testing.T) {
		// Keep the 2 newest automatic snapshots, select the rest.
		snaps := makeSnaps(8) // autos at 0,2,4,6
		sel := types.Selection{AutoOnly: true, Newest: intp(2), Keep: true}
		got := Apply(snaps, sel)
		want := []string{snaps[0].Name, snaps[1].Name, snaps[2].Name, snaps[3].Name, snaps[5].Name, snaps[7].Name}
		assert.Equal(t, want, names(got))
	})
}

func TestApplyPreservesOrder(t *testing.T) {
	snaps := makeSnaps(12)
	selections := []types.Selection{
		{},
		{AutoOnly: true},
		{ManualOnly: true, Oldest: intp(4)},
		{After: snaps[2].Creation, Newest: intp(-1)},
		{Oldest: intp(7), Newest: intp(3), Keep: true},
	}
	for _, sel := range selections {
		got := Apply(snaps, sel)
		require.True(t, len(got) <= len(snaps))
		for i := 1; i < len(got); i++ {
			assert.True(t, got[i-1].Creation.Before(got[i].Creation),
				"output must remain sorted ascending")
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	snaps := makeSnaps(6)
	original := names(snaps)
	_ = Apply(snaps, types.Selection{ManualOnly: true, Oldest: intp(2), Keep: true})
	assert.Equal(t, original, names(snaps))
}
