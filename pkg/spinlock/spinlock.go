// Package spinlock provides a busy-wait exclusive lock.
package spinlock

import (
	"runtime"
	"sync/atomic"
)

// Mutex is a test-and-test-and-set spinlock.
//
// Unlike sync.Mutex it never parks the calling goroutine: a contended
// Lock yields to the scheduler and retries until the lock is free. It is
// only appropriate for short, bounded critical sections.
//
// The zero value is an unlocked Mutex. A Mutex must not be copied after
// first use.
type Mutex struct {
	state uint32
}

// Lock acquires the lock, spinning until it is available.
func (m *Mutex) Lock() {
	for {
		// Test before test-and-set to keep the contended path on a
		// read-only cache line.
		for atomic.LoadUint32(&m.state) != 0 {
			runtime.Gosched()
		}
		if atomic.CompareAndSwapUint32(&m.state, 0, 1) {
			return
		}
		runtime.Gosched()
	}
}

// TryLock acquires the lock without spinning.
// It returns true if the lock was acquired.
func (m *Mutex) TryLock() bool {
	return atomic.CompareAndSwapUint32(&m.state, 0, 1)
}

// Unlock releases the lock.
// It must only be called by the current holder.
func (m *Mutex) Unlock() {
	atomic.StoreUint32(&m.state, 0)
}
