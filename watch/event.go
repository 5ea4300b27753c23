// Package watch provides change notification functionality for storage operations.
// It enables real-time monitoring of key changes through event streams.
package watch

// Event represents a change notification from the watch stream.
type Event struct {
	// Prefix indicates the key or prefix the watcher was registered on.
	Prefix []byte
	// Key is the key that was changed.
	Key []byte
	// Revision is the storage revision that produced the change.
	Revision int64
}
