// internal/workdir/workdir_test.go
package workdir

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEnterAndRestore(t *testing.T) {
	start, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()

	restore, err := Enter(dir)
	if err != nil {
		t.Fatalf("Enter: %v", err)
	}
	got, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want, _ := filepath.EvalSymlinks(dir)
	if resolved, _ := filepath.EvalSymlinks(got); resolved != want {
		t.Errorf("after Enter: wd = %q, want %q", resolved, want)
	}

	if err := restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}
	got, err = os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if got != start {
		t.Errorf("after restore: wd = %q, want %q", got, start)
	}
}

func TestEnterEmptyIsNoop(t *testing.T) {
	start, _ := os.Getwd()
	restore, err := Enter("")
	if err != nil {
		t.Fatalf("Enter(\"\"): %v", err)
	}
	if err := restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got, _ := os.Getwd(); got != start {
		t.Errorf("wd changed by empty Enter: %q", got)
	}
}

func TestEnterMissingDir(t *testing.T) {
	if _, err := Enter(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestInDir(t *testing.T) {
	start, _ := os.Getwd()
	dir := t.TempDir()

	var inside string
	err := InDir(dir, func() error {
		inside, _ = os.Getwd()
		return nil
	})
	if err != nil {
		t.Fatalf("InDir: %v", err)
	}
	want, _ := filepath.EvalSymlinks(dir)
	if resolved, _ := filepath.EvalSymlinks(inside); resolved != want {
		t.Errorf("fn ran in %q, want %q", resolved, want)
	}
	if got, _ := os.Getwd(); got != start {
		t.Errorf("after InDir: wd = %q, want %q", got, start)
	}
}

func TestInDirPropagatesError(t *testing.T) {
	start, _ := os.Getwd()
	boom := errors.New("boom")
	if err := InDir(t.TempDir(), func() error { return boom }); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
	if got, _ := os.Getwd(); got != start {
		t.Errorf("wd not restored after failing fn: %q", got)
	}
}
