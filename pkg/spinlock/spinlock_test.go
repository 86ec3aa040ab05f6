package spinlock

import (
	"sync"
	"testing"
)

func TestLockUnlock(t *testing.T) {
	var m Mutex
	m.Lock()
	m.Unlock()
	m.Lock()
	m.Unlock()
}

func TestTryLock(t *testing.T) {
	var m Mutex

	if !m.TryLock() {
		t.Fatal("TryLock() on unlocked mutex returned false")
	}
	if m.TryLock() {
		t.Fatal("TryLock() on locked mutex returned true")
	}
	m.Unlock()
	if !m.TryLock() {
		t.Fatal("TryLock() after Unlock() returned false")
	}
	m.Unlock()
}

func TestMutualExclusion(t *testing.T) {
	const (
		goroutines = 8
		increments = 10000
	)

	var (
		m       Mutex
		counter int
		wg      sync.WaitGroup
	)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < increments; i++ {
				m.Lock()
				counter++
				m.Unlock()
			}
		}()
	}
	wg.Wait()

	if want := goroutines * increments; counter != want {
		t.Errorf("counter = %d, want %d", counter, want)
	}
}

func BenchmarkUncontended(b *testing.B) {
	var m Mutex
	for i := 0; i < b.N; i++ {
		m.Lock()
		m.Unlock()
	}
}

func BenchmarkContended(b *testing.B) {
	var (
		m       Mutex
		counter int
	)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			m.Lock()
			counter++
			m.Unlock()
		}
	})
	_ = counter
}
