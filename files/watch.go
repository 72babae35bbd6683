package files

import "github.com/fsnotify/fsnotify"

// Watcher watches a set of paths for changes.
type Watcher = fsnotify.Watcher

// Event represents a single file system notification.
type Event = fsnotify.Event

// Op describes the operations an Event reports.
type Op = fsnotify.Op

// Operations an Event may report.
const (
	Create = fsnotify.Create
	Write  = fsnotify.Write
	Remove = fsnotify.Remove
	Rename = fsnotify.Rename
	Chmod  = fsnotify.Chmod
)

// NewWatcher creates a Watcher. Close it when done.
var NewWatcher = fsnotify.NewWatcher
