package store

import (
	"path/filepath"
	"testing"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_LastURL(t *testing.T) {
	s := openTest(t)

	if _, ok, err := s.LastURL(); err != nil || ok {
		t.Fatalf("LastURL() on empty store = ok %v, err %v", ok, err)
	}

	if err := s.SetLastURL("https://example.com/a"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetLastURL("https://example.com/b"); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.LastURL()
	if err != nil || !ok {
		t.Fatalf("LastURL() ok %v, err %v", ok, err)
	}
	if got != "https://example.com/b" {
		t.Errorf("LastURL() = %q", got)
	}
}

func TestStore_Clear(t *testing.T) {
	s := openTest(t)
	if err := s.SetLastURL("https://example.com"); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, ok, _ := s.LastURL(); ok {
		t.Error("LastURL() still set after Clear")
	}
}

func TestStore_Persists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetLastURL("https://example.com/kept"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	got, ok, err := s.LastURL()
	if err != nil || !ok || got != "https://example.com/kept" {
		t.Errorf("LastURL() = %q, %v, %v", got, ok, err)
	}
}
