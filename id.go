package journal

import (
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// newID returns a unique, time-ordered integer id. Ids are millisecond
// timestamps that bump forward when two records are created within the same
// millisecond, so rapid successive creation never collides.
func newID() int64 {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
