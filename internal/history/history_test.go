package history_test

import (
	"path/filepath"
	"testing"

	"github.com/dfbb/hamcode/internal/history"
)

func TestRecordRecent(t *testing.T) {
	h, err := history.New(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer h.Close()

	if err := h.Record("encode", "hi", "", 0, true); err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if err := h.Record("decode", "", "hi", 1, true); err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if err := h.Record("decode", "", "", 0, false); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	entries, err := h.Recent(2)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Recent(2) returned %d entries, want 2", len(entries))
	}
	if entries[0].Op != "decode" || entries[0].OK {
		t.Errorf("entries[0] = %+v, want newest decode with ok=false", entries[0])
	}
	if entries[1].Op != "decode" || entries[1].Corrected != 1 {
		t.Errorf("entries[1] = %+v, want decode with corrected=1", entries[1])
	}
}

func TestRecentEmpty(t *testing.T) {
	h, err := history.New(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer h.Close()

	entries, err := h.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Recent() on empty db returned %d entries", len(entries))
	}
}
