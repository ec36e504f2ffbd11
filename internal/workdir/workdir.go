// internal/workdir/workdir.go

// Package workdir changes the process working directory for the duration
// of a command and restores it afterwards. Lab scripts are usually run
// from anywhere but read and write files relative to the report folder.
package workdir

import "os"

// Enter switches to dir and returns a restore function that switches
// back to the directory the process was in. An empty dir is a no-op.
func Enter(dir string) (restore func() error, err error) {
	if dir == "" {
		return func() error { return nil }, nil
	}
	old, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if err := os.Chdir(dir); err != nil {
		return nil, err
	}
	return func() error { return os.Chdir(old) }, nil
}

// InDir runs fn inside dir and restores the previous working directory
// afterwards, even when fn fails.
func InDir(dir string, fn func() error) error {
	restore, err := Enter(dir)
	if err != nil {
		return err
	}
	ferr := fn()
	if rerr := restore(); ferr == nil {
		ferr = rerr
	}
	return ferr
}
