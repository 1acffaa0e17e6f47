package lib

import "github.com/tvandijk/zsnap/internal/zsnap/types"

// Apply runs the selection filters over snaps, which must be sorted by
// creation time ascending. Filters apply in a fixed order, each refining
// the previous result: auto-only, manual-only, before, after, oldest,
// newest. The order matters — oldest narrows the list before newest sees
// it. With Keep set the result is inverted against the original list:
// the filtered snapshots are preserved and everything else is returned,
// in original order. The output is always an order-preserving subsequence.
func Apply(snaps []types.Snapshot, sel types.Selection) []types.Snapshot {
	selected := snaps

	if sel.AutoOnly {
		selected = filterBy(selected, func(s types.Snapshot) bool { return s.Auto })
	}
	if sel.ManualOnly {
		// Combined with AutoOnly this empties the selection. User error,
		// accepted as-is.
		selected = filterBy(selected, func(s types.Snapshot) bool { return !s.Auto })
	}
	if !sel.Before.IsZero() {
		before := sel.Before
		selected = filterBy(selected, func(s types.Snapshot) bool { return s.Creation.Before(before) })
	}
	if !sel.After.IsZero() {
		after := sel.After
		selected = filterBy(selected, func(s types.Snapshot) bool { return s.Creation.After(after) })
	}
	if sel.Oldest != nil {
		selected = prefix(selected, *sel.Oldest)
	}
	if sel.Newest != nil {
		selected = suffix(selected, *sel.Newest)
	}
	if sel.Keep {
		selected = complement(snaps, selected)
	}
	return selected
}

func filterBy(snaps []types.Snapshot, keep func(types.Snapshot) bool) []types.Snapshot {
	out := make([]types.Snapshot, 0, len(snaps))
	for _, s := range snaps {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// prefix keeps the first n snapshots. A negative n drops the last |n|
// instead, keeping all but the most recent |n|. Both cases are one slice
// with a clamped bound.
func prefix(snaps []types.Snapshot, n int) []types.Snapshot {
	if n < 0 {
		n = len(snaps) + n
	}
	if n < 0 {
		n = 0
	}
	if n > len(snaps) {
		n = len(snaps)
	}
	return snaps[:n]
}

// suffix is prefix from the tail: a non-negative n keeps the last n, a
// negative n drops the first |n|.
func suffix(snaps []types.Snapshot, n int) []types.Snapshot {
	if n < 0 {
		n = len(snaps) + n
	}
	if n < 0 {
		n = 0
	}
	if n > len(snaps) {
		n = len(snaps)
	}
	return snaps[len(snaps)-n:]
}

// complement returns the snapshots of all that are not in selected,
// preserving the order of all. Names are unique within a dataset, so
// membership is by name.
func complement(all, selected []types.Snapshot) []types.Snapshot {
	drop := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		drop[s.Name] = struct{}{}
	}
	kept := make([]types.Snapshot, 0, len(all)-len(selected))
	for _, s := range all {
		if _, ok := drop[s.Name]; !ok {
			kept = append(kept, s)
		}
	}
	return kept
}
