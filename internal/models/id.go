package models

import (
	"strconv"
	"sync/atomic"
	"time"
)

var lastIDMillis int64

// NewID returns a fresh opaque id for a task, column, category or label.
// Ids are decimal millisecond timestamps, matching the persisted documents
// written by earlier versions of the app. The CAS loop guarantees strictly
// increasing values even when two ids are requested in the same millisecond.
func NewID() string {
	for {
		now := time.Now().UnixMilli()
		last := atomic.LoadInt64(&lastIDMillis)
		if now <= last {
			now = last + 1
		}
		if atomic.CompareAndSwapInt64(&lastIDMillis, last, now) {
			return strconv.FormatInt(now, 10)
		}
	}
}
