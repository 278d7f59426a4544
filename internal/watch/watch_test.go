package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunFiresOnChangeOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.my")
	require.NoError(t, os.WriteFile(path, []byte("print 1\n"), 0o644))

	fired := make(chan struct{}, 1)
	errs := make(chan error, 1)
	done := make(chan error, 1)

	go func() {
		done <- Run(path, func() error {
			select {
			case fired <- struct{}{}:
			default:
			}
			return nil
		}, func(err error) {
			errs <- err
		})
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("print 2\n"), 0o644))

	select {
	case <-fired:
	case err := <-errs:
		t.Fatalf("unexpected watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("onChange was never called after a write")
	}
}
