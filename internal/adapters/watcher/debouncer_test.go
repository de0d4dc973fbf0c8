package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/waypoint/internal/adapters/watcher"
)

type batches struct {
	mu  sync.Mutex
	got [][]string
}

func (b *batches) record(paths []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.got = append(b.got, paths)
}

func (b *batches) snapshot() [][]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([][]string(nil), b.got...)
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Add("/work/waypoint.yaml")
		d.Add("/work/waypoint.yaml")
		d.Add("/work/.waypoint.yaml.swp")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		got := b.snapshot()
		require.Len(t, got, 1)
		assert.Equal(t, []string{"/work/.waypoint.yaml.swp", "/work/waypoint.yaml"}, got[0])
	})
}

func TestDebouncer_WindowRestartsOnAdd(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Add("/work/waypoint.yaml")
		time.Sleep(60 * time.Millisecond)
		d.Add("/work/waypoint.yaml")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, b.snapshot())

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		assert.Len(t, b.snapshot(), 1)
	})
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(50*time.Millisecond, b.record)

		d.Add("/work/a")
		time.Sleep(80 * time.Millisecond)
		synctest.Wait()

		d.Add("/work/b")
		time.Sleep(80 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"/work/a"}, {"/work/b"}}, b.snapshot())
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Add("/work/b")
		d.Add("/work/a")
		d.Flush()

		require.Equal(t, [][]string{{"/work/a", "/work/b"}}, b.snapshot())

		// The cancelled window must not fire again.
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Len(t, b.snapshot(), 1)
	})
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	var b batches
	d := watcher.NewDebouncer(100*time.Millisecond, b.record)

	d.Flush()

	assert.Empty(t, b.snapshot())
}

func TestDebouncer_FlushAfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(50*time.Millisecond, b.record)

		d.Add("/work/a")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		d.Flush()

		assert.Len(t, b.snapshot(), 1)
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(50*time.Millisecond, b.record)

		d.Add("/work/a")
		d.Stop()
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		d.Flush()

		assert.Empty(t, b.snapshot())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add("/work/a")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Add("/work/b")
		d.Flush()
	})
}
