package cache

import (
	"fmt"
	"testing"
)

func TestMemo_SetThenGet(t *testing.T) {
	t.Parallel()

	memo := NewMemo(10)

	memo.Set("k", "v")
	if value, ok := memo.Get("k"); !ok || value != "v" {
		t.Fatalf("expected hit with v, got %q/%v", value, ok)
	}

	// A second read still hits; reads are side-effect free
	if value, ok := memo.Get("k"); !ok || value != "v" {
		t.Fatalf("second read should still hit, got %q/%v", value, ok)
	}

	if _, ok := memo.Get("missing"); ok {
		t.Fatalf("unexpected hit for missing key")
	}
}

func TestMemo_EvictsOldestInsertedFirst(t *testing.T) {
	t.Parallel()

	const max = 5
	memo := NewMemo(max)

	for i := 0; i < max+1; i++ {
		memo.Set(fmt.Sprintf("key-%d", i), fmt.Sprintf("value-%d", i))
	}

	if memo.Size() != max {
		t.Fatalf("expected size %d after overflow, got %d", max, memo.Size())
	}

	// The very first inserted key is gone, everything later survives
	if _, ok := memo.Get("key-0"); ok {
		t.Fatalf("key-0 should have been evicted")
	}
	for i := 1; i <= max; i++ {
		if _, ok := memo.Get(fmt.Sprintf("key-%d", i)); !ok {
			t.Fatalf("key-%d should still be present", i)
		}
	}
}

func TestMemo_ReadsDoNotAffectEvictionOrder(t *testing.T) {
	t.Parallel()

	memo := NewMemo(2)
	memo.Set("a", "1")
	memo.Set("b", "2")

	// Touch the oldest entry; a FIFO cache must still evict it first
	memo.Get("a")
	memo.Set("c", "3")

	if _, ok := memo.Get("a"); ok {
		t.Fatalf("a should have been evicted despite the read")
	}
	if _, ok := memo.Get("b"); !ok {
		t.Fatalf("b should survive")
	}
	if _, ok := memo.Get("c"); !ok {
		t.Fatalf("c should be present")
	}
}

func TestMemo_OverwriteKeepsInsertionAge(t *testing.T) {
	t.Parallel()

	memo := NewMemo(2)
	memo.Set("a", "1")
	memo.Set("b", "2")

	// Overwriting a does not refresh its age
	memo.Set("a", "updated")
	if value, ok := memo.Get("a"); !ok || value != "updated" {
		t.Fatalf("overwrite should update the value, got %q/%v", value, ok)
	}
	if memo.Size() != 2 {
		t.Fatalf("overwrite must not grow the cache, size=%d", memo.Size())
	}

	// a is still the oldest entry, so the next insert evicts it
	memo.Set("c", "3")
	if _, ok := memo.Get("a"); ok {
		t.Fatalf("a should have been evicted as the oldest entry")
	}
	if _, ok := memo.Get("b"); !ok {
		t.Fatalf("b should survive")
	}
}

func TestMemo_Clear(t *testing.T) {
	t.Parallel()

	memo := NewMemo(3)
	memo.Set("a", "1")
	memo.Set("b", "2")

	memo.Clear()
	if memo.Size() != 0 {
		t.Fatalf("expected empty cache after clear, size=%d", memo.Size())
	}
	if _, ok := memo.Get("a"); ok {
		t.Fatalf("cleared key should miss")
	}

	// The cache stays usable after a clear
	memo.Set("d", "4")
	if value, ok := memo.Get("d"); !ok || value != "4" {
		t.Fatalf("expected hit after clear, got %q/%v", value, ok)
	}
}
