package edgemap

import "testing"

func TestPutGet(t *testing.T) {
	m := New(8)
	m.Put(1, 2, 100)
	got, ok := m.Get(1, 2)
	if !ok || got != 100 {
		t.Fatalf("expected (100,true), got (%d,%v)", got, ok)
	}

	// reverse direction is a distinct key
	if _, ok := m.Get(2, 1); ok {
		t.Error("expected reverse directed edge to be absent")
	}
}

func TestPutDuplicatePanics(t *testing.T) {
	m := New(8)
	m.Put(1, 2, 100)
	defer func() {
		if recover() == nil {
			t.Error("expected Put over an existing edge to panic")
		}
	}()
	m.Put(1, 2, 200)
}

func TestDelete(t *testing.T) {
	m := New(8)
	m.Put(1, 2, 100)
	m.Delete(1, 2)
	if _, ok := m.Get(1, 2); ok {
		t.Error("expected edge to be gone after Delete")
	}
	if m.Len() != 0 {
		t.Errorf("expected Len 0 after delete, got %d", m.Len())
	}
}

func TestDeleteThenReinsert(t *testing.T) {
	m := New(8)
	m.Put(1, 2, 100)
	m.Delete(1, 2)
	m.Put(1, 2, 200)
	got, ok := m.Get(1, 2)
	if !ok || got != 200 {
		t.Fatalf("expected (200,true) after reinsert, got (%d,%v)", got, ok)
	}
}

func TestGrow(t *testing.T) {
	m := New(4)
	n := 500
	for i := int32(0); i < int32(n); i++ {
		m.Put(i, i+1, i*10)
	}
	if m.Len() != n {
		t.Fatalf("expected Len %d, got %d", n, m.Len())
	}
	for i := int32(0); i < int32(n); i++ {
		got, ok := m.Get(i, i+1)
		if !ok || got != i*10 {
			t.Fatalf("entry %d corrupted after grow: got (%d,%v)", i, got, ok)
		}
	}
}
