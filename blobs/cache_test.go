package blobs

import "testing"

type disposer struct {
	disposed bool
}

func (d *disposer) Dispose() { d.disposed = true }

func TestCacheEviction(t *testing.T) {
	c := newLRUCache(2)
	c.add("a", 1)
	c.add("b", 2)
	c.add("c", 3)
	if c.len() != 2 {
		t.Fatalf("len = %d, want 2", c.len())
	}
	if _, ok := c.get("a"); ok {
		t.Error("oldest entry should have been evicted")
	}
	for _, key := range []string{"b", "c"} {
		if _, ok := c.get(key); !ok {
			t.Errorf("%q missing", key)
		}
	}
}

func TestCacheGetRefreshes(t *testing.T) {
	c := newLRUCache(2)
	c.add("a", 1)
	c.add("b", 2)
	c.get("a") // a is now most recent
	c.add("c", 3)
	if _, ok := c.get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.get("a"); !ok {
		t.Error("a should have survived")
	}
}

func TestCacheAddExisting(t *testing.T) {
	c := newLRUCache(2)
	c.add("a", 1)
	c.add("a", 2)
	if c.len() != 1 {
		t.Fatalf("len = %d, want 1", c.len())
	}
	v, _ := c.get("a")
	if v != 2 {
		t.Errorf("value = %v, want 2", v)
	}
}

func TestCacheDisposesEvicted(t *testing.T) {
	c := newLRUCache(1)
	d := &disposer{}
	c.add("a", d)
	c.add("b", 2)
	if !d.disposed {
		t.Error("evicted value was not disposed")
	}
}
