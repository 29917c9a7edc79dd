package feed

import (
	"sync"
	"testing"
)

func TestPushEvictsOldest(t *testing.T) {
	f := New[int](WithCapacity(3))
	for i := 1; i <= 5; i++ {
		f.Push(i)
	}
	got := f.Snapshot()
	want := []int{5, 4, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestAppendEvictsOldest(t *testing.T) {
	f := New[string](WithCapacity(2))
	f.Append("a")
	f.Append("b")
	f.Append("c")
	got := f.Snapshot()
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("expected [b c], got %v", got)
	}
}

func TestReplaceTruncatesToCapacity(t *testing.T) {
	f := New[int](WithCapacity(3))
	f.Replace([]int{1, 2, 3, 4, 5})
	if f.Len() != 3 {
		t.Fatalf("expected 3 items after replace, got %d", f.Len())
	}
	if got := f.Snapshot(); got[0] != 1 || got[2] != 3 {
		t.Errorf("expected front of input retained, got %v", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	f := New[int](WithCapacity(3))
	f.Append(1)
	snap := f.Snapshot()
	snap[0] = 99
	if f.Snapshot()[0] != 1 {
		t.Error("mutating a snapshot leaked into the feed")
	}
}

func TestRemove(t *testing.T) {
	f := New[int](WithCapacity(10))
	for i := 0; i < 6; i++ {
		f.Append(i)
	}
	removed := f.Remove(func(v int) bool { return v%2 == 0 })
	if removed != 3 {
		t.Errorf("expected 3 removed, got %d", removed)
	}
	if f.Len() != 3 {
		t.Errorf("expected 3 remaining, got %d", f.Len())
	}
}

func TestMutate(t *testing.T) {
	f := New[int](WithCapacity(5))
	f.Append(1)
	f.Append(2)
	f.Mutate(func(v *int) { *v *= 10 })
	got := f.Snapshot()
	if got[0] != 10 || got[1] != 20 {
		t.Errorf("expected [10 20], got %v", got)
	}
}

func TestClear(t *testing.T) {
	f := New[int]()
	f.Append(1)
	f.Clear()
	if f.Len() != 0 {
		t.Errorf("expected empty feed after clear, got %d", f.Len())
	}
}

func TestConcurrentPushStaysBounded(t *testing.T) {
	f := New[int](WithCapacity(8))
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				f.Push(base + i)
			}
		}(g * 1000)
	}
	wg.Wait()
	if f.Len() != 8 {
		t.Errorf("expected feed at capacity 8, got %d", f.Len())
	}
}
