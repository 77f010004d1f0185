package cache

import (
	"testing"
	"time"
)

func TestKey_DependsOnPathAndModTime(t *testing.T) {
	now := time.Now()

	a := Key("/claims/a.pdf", now)
	b := Key("/claims/b.pdf", now)
	if a == b {
		t.Error("Expected different paths to produce different keys")
	}

	stale := Key("/claims/a.pdf", now.Add(time.Second))
	if a == stale {
		t.Error("Expected a changed mtime to produce a different key")
	}
}

func TestMemory_SetGetClear(t *testing.T) {
	m := NewMemory(time.Minute, time.Minute)

	if _, found := m.Get("missing"); found {
		t.Error("Expected miss for unknown key")
	}

	m.Set("k", []byte("extracted text"), time.Minute)
	value, found := m.Get("k")
	if !found || string(value) != "extracted text" {
		t.Errorf("Expected cached value, got %q (found=%v)", value, found)
	}

	m.Clear()
	if _, found := m.Get("k"); found {
		t.Error("Expected empty cache after Clear")
	}
}
