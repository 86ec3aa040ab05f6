// Package spinlock provides a busy-wait exclusive lock for short
// critical sections.
//
// The lock is a single-word test-and-test-and-set (TTAS) mutex. Waiters
// spin on a plain atomic load and only attempt the compare-and-swap when
// the lock looks free, which keeps contended waiting off the coherence
// bus. Between attempts the waiter yields its P so a single-processor
// scheduler can still make progress, but it is never suspended by the
// runtime the way a blocked sync.Mutex waiter is.
//
// Use this lock only when the critical section is a handful of memory
// operations. For anything longer, sync.Mutex wins.
package spinlock
