// internal/profiling/profiling_test.go
package profiling

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStartEmptyIsNoop(t *testing.T) {
	stop, err := Start("")
	if err != nil {
		t.Fatalf("Start(\"\"): %v", err)
	}
	stop()
}

func TestStartWritesProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.prof")
	stop, err := Start(path)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	stop()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("profile not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("profile file is empty")
	}
}

func TestStartBadPath(t *testing.T) {
	if _, err := Start(filepath.Join(t.TempDir(), "missing", "cpu.prof")); err == nil {
		t.Fatal("expected error for uncreatable file")
	}
}
