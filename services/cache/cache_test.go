package cache

import (
	"testing"
	"time"
)

func TestCache_DefaultTTLExpiry(t *testing.T) {
	t.Parallel()

	c := NewCache(30 * time.Millisecond)
	c.Set("k", []byte("v"))

	if value, ok := c.Get("k"); !ok || string(value) != "v" {
		t.Fatalf("expected fresh hit, got %q/%v", value, ok)
	}

	time.Sleep(50 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("entry should have expired")
	}
}

func TestCache_PerEntryTTLOverridesDefault(t *testing.T) {
	t.Parallel()

	c := NewCache(time.Hour)
	c.SetWithTTL("short", []byte("v"), 30*time.Millisecond)
	c.Set("long", []byte("v"))

	time.Sleep(50 * time.Millisecond)
	if _, ok := c.Get("short"); ok {
		t.Fatalf("short entry should have expired before the default TTL")
	}
	if _, ok := c.Get("long"); !ok {
		t.Fatalf("long entry should still be live")
	}
}

func TestCache_ClearPrefix(t *testing.T) {
	t.Parallel()

	c := NewCache(time.Hour)
	c.Set("rate:alice", []byte("1"))
	c.Set("rate:bob", []byte("2"))
	c.Set("other", []byte("3"))

	c.ClearPrefix("rate:")

	if _, ok := c.Get("rate:alice"); ok {
		t.Fatalf("prefixed key should be gone")
	}
	if _, ok := c.Get("other"); !ok {
		t.Fatalf("unrelated key should survive")
	}
}

func TestCache_GetAllWithPrefixSkipsExpired(t *testing.T) {
	t.Parallel()

	c := NewCache(time.Hour)
	c.Set("rate:alice", []byte("1"))
	c.SetWithTTL("rate:bob", []byte("2"), 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	items := c.GetAllWithPrefix("rate:")

	if len(items) != 1 {
		t.Fatalf("expected 1 live item, got %d", len(items))
	}
	if string(items["rate:alice"]) != "1" {
		t.Fatalf("unexpected contents: %v", items)
	}
}

func TestTTLStore_SatisfiesStoreContract(t *testing.T) {
	t.Parallel()

	store := NewTTLStore(NewCache(time.Hour), 30*time.Millisecond)

	store.Set("k", "v")
	if value, ok := store.Get("k"); !ok || value != "v" {
		t.Fatalf("expected hit, got %q/%v", value, ok)
	}

	time.Sleep(50 * time.Millisecond)
	if _, ok := store.Get("k"); ok {
		t.Fatalf("TTL store entry should expire by time, not by count")
	}
}
