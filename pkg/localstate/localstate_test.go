package localstate

import (
	"bytes"
	"testing"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file:localstate?mode=memory&cache=shared&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPutGetDelete(t *testing.T) {
	s := openTest(t)

	if _, ok, err := s.Get(KeySnapshot); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}
	if err := s.Put(KeySnapshot, []byte(`{"title":"a"}`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(KeySnapshot, []byte(`{"title":"b"}`)); err != nil {
		t.Fatal(err)
	}
	v, ok, err := s.Get(KeySnapshot)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if !bytes.Contains(v, []byte(`"b"`)) {
		t.Fatalf("stale value: %s", v)
	}
	if err := s.Delete(KeySnapshot); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get(KeySnapshot); ok {
		t.Fatal("value survived delete")
	}
	// deleting again is fine
	if err := s.Delete(KeySnapshot); err != nil {
		t.Fatal(err)
	}
}

func TestTakeOnce_Consumes(t *testing.T) {
	s := openTest(t)
	if err := s.Put(KeyHandoff, []byte(`{"draft_id":"d1"}`)); err != nil {
		t.Fatal(err)
	}
	v, ok, err := s.TakeOnce(KeyHandoff)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if !bytes.Contains(v, []byte("d1")) {
		t.Fatalf("value=%s", v)
	}
	// read implies delete: second take sees nothing
	if _, ok, _ := s.TakeOnce(KeyHandoff); ok {
		t.Fatal("handoff consumed twice")
	}
}

func TestTakeOnce_Absent(t *testing.T) {
	s := openTest(t)
	if _, ok, err := s.TakeOnce(KeyHandoff); err != nil || ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
}
