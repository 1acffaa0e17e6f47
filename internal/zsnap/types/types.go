package types

import "time"

// AutoSnapPrefix is the name prefix used by zfs-auto-snapshot. Snapshots
// carrying it are classified as automatic.
const AutoSnapPrefix = "zfs-auto-snap"

// Snapshot is one snapshot of a dataset as reported by the zfs tool.
type Snapshot struct {
	Name     string
	Creation time.Time
	Auto     bool
}

// Selection is the parsed set of active filters for one invocation.
// A zero Before/After time means the bound is not set; a nil Oldest/Newest
// means the count filter is not set (0 is a valid, distinct value that
// empties the selection).
type Selection struct {
	AutoOnly   bool
	ManualOnly bool
	Before     time.Time
	After      time.Time
	Oldest     *int
	Newest     *int

	// Keep inverts the selection for the destroy command: the filtered set
	// is preserved and everything else is acted on.
	Keep bool
}
