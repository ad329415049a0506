package replay

import (
	"os"
	"path/filepath"
	"testing"
)

// #region fixture-tests

// TestFixture_HoleSession loads the hole_session fixture, replays it, and
// checks every expected slot result. This is the regression baseline for the
// feed-loop splice semantics; if hole reopening or history routing changes,
// this catches drift.
func TestFixture_HoleSession(t *testing.T) {
	fixturePath := filepath.Join("testdata", "hole_session.json")
	f, err := LoadFixture(fixturePath)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	steps, slots, err := Replay(f.Seed, f.Steps, f.Config.ToFeedConfig(), f.Special.ToSpecial())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}

	if len(steps) != len(f.Steps) {
		t.Fatalf("replayed %d steps, want %d", len(steps), len(f.Steps))
	}
	if mismatch := Verify(slots, f.ExpectedResults); mismatch != "" {
		t.Fatalf("fixture diverged: %s", mismatch)
	}
}

// TestLoadFixture_NotFound verifies error on missing file.
func TestLoadFixture_NotFound(t *testing.T) {
	_, err := LoadFixture("testdata/nonexistent.json")
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

// TestLoadFixture_Malformed verifies error on invalid JSON.
func TestLoadFixture_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not valid json}"), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	_, err := LoadFixture(path)
	if err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

// #endregion fixture-tests
