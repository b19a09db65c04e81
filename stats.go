package linearmap

// Stats is a point-in-time occupancy snapshot.
//
// Cursor is the highest slot index ever claimed since construction or the
// last Clear; every scan walks exactly [0, Cursor). Tombstones counts the
// vacated slots below the cursor, so Size + Tombstones == Cursor. A large
// tombstone count relative to Size means scans are paying for dead slots
// and a Compact would help.
type Stats struct {
	Size       int
	Tombstones int
	Cursor     int
	Capacity   int
}
