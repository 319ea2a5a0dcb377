package cache

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := New()
	c.Set("k", 42, time.Minute)

	got, ok := c.Get("k")
	if !ok {
		t.Fatal("expected key to be present")
	}
	if got.(int) != 42 {
		t.Errorf("got %v, want 42", got)
	}
}

func TestCache_Miss(t *testing.T) {
	c := New()
	if _, ok := c.Get("absent"); ok {
		t.Error("expected miss for absent key")
	}
}

func TestCache_Expiry(t *testing.T) {
	c := New()
	c.Set("k", "v", 10*time.Millisecond)

	if _, ok := c.Get("k"); !ok {
		t.Fatal("entry should be fresh immediately after set")
	}

	time.Sleep(25 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Error("entry should have expired")
	}
}

func TestCache_NoExpiryForNonPositiveTTL(t *testing.T) {
	c := New()
	c.Set("k", "v", 0)

	time.Sleep(5 * time.Millisecond)

	if _, ok := c.Get("k"); !ok {
		t.Error("zero TTL entries must not expire")
	}
}

func TestCache_SetOverwrites(t *testing.T) {
	c := New()
	c.Set("k", 1, time.Minute)
	c.Set("k", 2, time.Minute)

	got, _ := c.Get("k")
	if got.(int) != 2 {
		t.Errorf("got %v, want the refreshed value", got)
	}
}

func TestCache_Delete(t *testing.T) {
	c := New()
	c.Set("k", 1, time.Minute)

	if !c.Delete("k") {
		t.Error("Delete should report the key was present")
	}
	if _, ok := c.Get("k"); ok {
		t.Error("key should be gone after delete")
	}
	if c.Delete("k") {
		t.Error("repeat delete should report absence")
	}
}

func TestCache_Clear(t *testing.T) {
	c := New()
	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)
	c.Clear()

	if _, ok := c.Get("a"); ok {
		t.Error("clear should drop every entry")
	}
}
