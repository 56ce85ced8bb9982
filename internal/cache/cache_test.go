package cache

import (
	"sync"
	"sync/atomic"
	"testing"
)

// identity places key k in shard k%ShardCount.
func identity(k uint64) uint64 { return k }

func TestNew(t *testing.T) {
	c := New[uint64, int](0, identity)
	if c.capacity != DefaultCapacity {
		t.Errorf("capacity = %d, want %d", c.capacity, DefaultCapacity)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestGetOrCreate(t *testing.T) {
	c := New[uint64, string](4, identity)
	calls := 0
	create := func() string {
		calls++
		return "grid"
	}

	if got := c.GetOrCreate(1, create); got != "grid" {
		t.Errorf("GetOrCreate() = %q, want grid", got)
	}
	if got := c.GetOrCreate(1, create); got != "grid" {
		t.Errorf("GetOrCreate() = %q, want grid", got)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	v, ok := c.Get(1)
	if !ok || v != "grid" {
		t.Errorf("Get(1) = %q, %v, want grid, true", v, ok)
	}
	if _, ok := c.Get(2); ok {
		t.Error("Get(2) found a missing key")
	}

	st := c.Stats()
	if st.Hits != 2 || st.Misses != 2 || st.Len != 1 {
		t.Errorf("Stats() = %+v, want 2 hits, 2 misses, 1 entry", st)
	}
	if st.HitRate() != 0.5 {
		t.Errorf("HitRate() = %v, want 0.5", st.HitRate())
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[uint64, int](2, identity)
	// All keys are multiples of ShardCount, so they share shard 0.
	k := func(i uint64) uint64 { return i * ShardCount }

	c.GetOrCreate(k(1), func() int { return 1 })
	c.GetOrCreate(k(2), func() int { return 2 })
	c.Get(k(1)) // k(2) becomes the oldest
	c.GetOrCreate(k(3), func() int { return 3 })

	if _, ok := c.Get(k(2)); ok {
		t.Error("k(2) survived eviction")
	}
	for _, i := range []uint64{1, 3} {
		if _, ok := c.Get(k(i)); !ok {
			t.Errorf("k(%d) was evicted", i)
		}
	}
	if st := c.Stats(); st.Evictions != 1 || st.Len != 2 {
		t.Errorf("Stats() = %+v, want 1 eviction, 2 entries", st)
	}
}

func TestClear(t *testing.T) {
	c := New[uint64, int](4, identity)
	for i := uint64(0); i < 10; i++ {
		c.GetOrCreate(i, func() int { return int(i) })
	}
	if c.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", c.Len())
	}
	if _, ok := c.Get(3); ok {
		t.Error("Get(3) found a key after Clear()")
	}
}

func TestConcurrentGetOrCreate(t *testing.T) {
	c := New[uint64, int](8, identity)
	var calls atomic.Int32

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				c.GetOrCreate(uint64(i%4), func() int {
					calls.Add(1)
					return i % 4
				})
			}
		}()
	}
	wg.Wait()

	if got := calls.Load(); got != 4 {
		t.Errorf("create called %d times, want 4", got)
	}
}

func TestLRUList(t *testing.T) {
	l := newLRUList[int]()
	a := l.PushFront(1)
	l.PushFront(2)
	l.PushFront(3)
	l.MoveToFront(a)

	var order []int
	for n := l.head; n != nil; n = n.next {
		order = append(order, n.key)
	}
	want := []int{1, 3, 2}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}

	if k, ok := l.RemoveOldest(); !ok || k != 2 {
		t.Errorf("RemoveOldest() = %d, %v, want 2, true", k, ok)
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
	l.Clear()
	if _, ok := l.RemoveOldest(); ok {
		t.Error("RemoveOldest() on empty list returned ok")
	}
}
