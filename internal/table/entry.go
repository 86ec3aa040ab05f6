package table

import "sync"

// entry is one node in a bucket chain. Each entry owns its successor;
// chains are singly linked and cycle-free.
type entry struct {
	key   int64
	value int64
	next  *entry
}

// find returns the entry for key in the chain starting at head, or nil.
func find(head *entry, key int64) *entry {
	for e := head; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// chainLen returns the number of entries in the chain starting at head.
func chainLen(head *entry) int {
	n := 0
	for e := head; e != nil; e = e.next {
		n++
	}
	return n
}

// lockedEntry is a chain node that additionally owns the lock guarding
// its own value field. Only the twolevel discipline pays for it.
type lockedEntry struct {
	key   int64
	value int64
	next  *lockedEntry

	// mu guards value. Always acquired while holding the bucket lock
	// (read or write), never the other way around.
	mu sync.Mutex
}

func findLocked(head *lockedEntry, key int64) *lockedEntry {
	for e := head; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

func lockedChainLen(head *lockedEntry) int {
	n := 0
	for e := head; e != nil; e = e.next {
		n++
	}
	return n
}
