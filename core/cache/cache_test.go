package cache

import (
	"testing"
	"time"
)

func TestNewCache(t *testing.T) {
	c := NewCache()
	if c == nil {
		t.Fatal("NewCache returned nil")
	}
}

func TestGetInstance(t *testing.T) {
	inst := GetInstance()
	if inst == nil {
		t.Fatal("GetInstance returned nil")
	}
	if GetInstance() != inst {
		t.Error("GetInstance should return same instance")
	}
}

func TestSet_Get(t *testing.T) {
	c := NewCache()
	key := "test-set-get"
	c.Set(key, "val", 0, nil)
	got, ok := c.Get(key)
	if !ok {
		t.Fatal("Get: want true")
	}
	if got != "val" {
		t.Errorf("Get = %v, want val", got)
	}
}

func TestGet_Missing(t *testing.T) {
	c := NewCache()
	_, ok := c.Get("nonexistent-key-xyz")
	if ok {
		t.Error("Get missing key: want false")
	}
}

func TestGet_Expired(t *testing.T) {
	c := NewCache()
	c.m.Store("ttl-key", cacheItem{Value: "v", ExpiresAt: time.Now().Add(-time.Second).UnixNano()})
	if _, ok := c.Get("ttl-key"); ok {
		t.Error("Get expired key: want false")
	}
}

func TestGetOrDefault(t *testing.T) {
	c := NewCache()
	key := "test-default"
	def := "default"
	if got := c.GetOrDefault(key, def); got != def {
		t.Errorf("GetOrDefault missing = %v, want %v", got, def)
	}
	c.Set(key, "stored", 0, nil)
	if got := c.GetOrDefault(key, def); got != "stored" {
		t.Errorf("GetOrDefault found = %v, want stored", got)
	}
}

func TestDelete(t *testing.T) {
	c := NewCache()
	key := "test-delete"
	c.Set(key, "x", 0, nil)
	c.Delete(key)
	if _, ok := c.Get(key); ok {
		t.Error("Delete: key should be gone")
	}
}

func TestDeleteMany(t *testing.T) {
	c := NewCache()
	c.Set("dm1", 1, 0, nil)
	c.Set("dm2", 2, 0, nil)
	c.DeleteMany("dm1", "dm2")
	if _, ok := c.Get("dm1"); ok {
		t.Error("DeleteMany: dm1 should be gone")
	}
	if _, ok := c.Get("dm2"); ok {
		t.Error("DeleteMany: dm2 should be gone")
	}
}

func TestSetN_GetN_DeleteN(t *testing.T) {
	c := NewCache()
	c.SetN([]interface{}{"a", "b"}, "composite-val", 0, nil)
	got, ok := c.GetN("a", "b")
	if !ok || got != "composite-val" {
		t.Errorf("GetN = %v, %v; want composite-val, true", got, ok)
	}
	c.DeleteN("a", "b")
	if _, ok := c.GetN("a", "b"); ok {
		t.Error("DeleteN: key should be gone")
	}
}

func TestGetMany(t *testing.T) {
	c := NewCache()
	c.Set("gm1", "v1", 0, nil)
	c.Set("gm2", "v2", 0, nil)
	results := c.GetMany("gm1", "gm2", "gm-missing")
	if len(results) != 3 {
		t.Fatalf("GetMany len = %d, want 3", len(results))
	}
	if results[0] != "v1" {
		t.Errorf("GetMany gm1 = %v, want v1", results[0])
	}
	if results[1] != "v2" {
		t.Errorf("GetMany gm2 = %v, want v2", results[1])
	}
	if results[2] != nil {
		t.Error("GetMany gm-missing: want nil")
	}
}

func TestTagKey_GetKeysByTag_DeleteByTag(t *testing.T) {
	c := NewCache()
	key1, key2 := "tag-k1", "tag-k2"
	c.Set(key1, "v1", 0, []string{"t1"})
	c.Set(key2, "v2", 0, []string{"t1"})

	keys := c.GetKeysByTag("t1")
	if len(keys) != 2 {
		t.Errorf("GetKeysByTag = %d keys, want 2", len(keys))
	}

	c.DeleteByTag("t1")
	if _, ok := c.Get(key1); ok {
		t.Error("DeleteByTag: key1 should be gone")
	}
	if _, ok := c.Get(key2); ok {
		t.Error("DeleteByTag: key2 should be gone")
	}
}

func TestDelete_RemovesFromTagIndex(t *testing.T) {
	c := NewCache()
	key := "del-tag-key"
	c.Set(key, "v", 0, []string{"t2"})
	c.Delete(key)
	keys := c.GetKeysByTag("t2")
	if len(keys) != 0 {
		t.Errorf("GetKeysByTag after Delete = %d keys, want 0", len(keys))
	}
}
