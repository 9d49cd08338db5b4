package mover

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(filepath.Base(path)), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestMoveFilesCreatesDestination(t *testing.T) {
	dir := t.TempDir()
	image := filepath.Join(dir, "IMG_001.arw")
	xmp := filepath.Join(dir, "IMG_001.xmp")
	touch(t, image)
	touch(t, xmp)

	dest := filepath.Join(dir, "5_star")
	result := MoveFiles("IMG_001", []string{image, xmp}, dest)

	if result.Moved() != 2 || result.Failed() != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	for _, name := range []string{"IMG_001.arw", "IMG_001.xmp"} {
		if _, err := os.Stat(filepath.Join(dest, name)); err != nil {
			t.Fatalf("%s missing at destination: %v", name, err)
		}
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Fatalf("%s still at source, stat err=%v", name, err)
		}
	}
}

func TestMoveFilesCollisionIsPerFile(t *testing.T) {
	dir := t.TempDir()
	image := filepath.Join(dir, "IMG_001.arw")
	xmp := filepath.Join(dir, "IMG_001.xmp")
	touch(t, image)
	touch(t, xmp)

	dest := filepath.Join(dir, "5_star")
	// Pre-existing sidecar at the destination forces a partial failure.
	touch(t, filepath.Join(dest, "IMG_001.xmp"))
	original, err := os.ReadFile(filepath.Join(dest, "IMG_001.xmp"))
	if err != nil {
		t.Fatal(err)
	}

	result := MoveFiles("IMG_001", []string{image, xmp}, dest)

	if result.Moved() != 1 {
		t.Fatalf("primary should have moved: %+v", result)
	}
	if result.Failed() != 1 {
		t.Fatalf("sidecar should have failed: %+v", result)
	}

	var failure Outcome
	for _, outcome := range result.Outcomes {
		if outcome.Status == StatusFailed {
			failure = outcome
		}
	}
	if failure.Path != xmp {
		t.Fatalf("failure should name the sidecar, got %+v", failure)
	}
	if failure.Reason != ReasonDestinationExists {
		t.Fatalf("reason: got %q, want %q", failure.Reason, ReasonDestinationExists)
	}

	// Never overwritten.
	after, err := os.ReadFile(filepath.Join(dest, "IMG_001.xmp"))
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != string(original) {
		t.Fatal("existing destination file was overwritten")
	}
	// The primary stays moved, no rollback.
	if _, err := os.Stat(filepath.Join(dest, "IMG_001.arw")); err != nil {
		t.Fatalf("moved primary should remain at destination: %v", err)
	}
	// The failed sidecar stays at the source.
	if _, err := os.Stat(xmp); err != nil {
		t.Fatalf("failed sidecar should remain at source: %v", err)
	}
}

func TestMoveFilesSourceVanished(t *testing.T) {
	dir := t.TempDir()
	result := MoveFiles("IMG_404", []string{filepath.Join(dir, "IMG_404.arw")}, filepath.Join(dir, "1_star"))

	if result.Failed() != 1 {
		t.Fatalf("expected one failure: %+v", result)
	}
	if got := result.Outcomes[0].Reason; got != ReasonSourceVanished {
		t.Fatalf("reason: got %q, want %q", got, ReasonSourceVanished)
	}
}

func TestMoveFilesMergesIntoExistingFolder(t *testing.T) {
	dir := t.TempDir()
	image := filepath.Join(dir, "IMG_001.arw")
	touch(t, image)

	dest := filepath.Join(dir, "5_star")
	touch(t, filepath.Join(dest, "OTHER.arw"))

	result := MoveFiles("IMG_001", []string{image}, dest)
	if result.Moved() != 1 {
		t.Fatalf("move into pre-existing folder should merge: %+v", result)
	}
	if _, err := os.Stat(filepath.Join(dest, "OTHER.arw")); err != nil {
		t.Fatalf("unrelated file disturbed: %v", err)
	}
}
