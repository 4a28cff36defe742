package watcher

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem/aferofs"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
)

func TestComponentFromPath(t *testing.T) {
	t.Parallel()
	layout := project.NewLayout("")

	cases := []struct {
		path     string
		expected string
	}{
		{path: "src/molecules/button/button.jade", expected: "molecules/button"},
		{path: "src/molecules/button/button.js", expected: "molecules/button"},
		{path: "src/atoms/icon/icon.scss", expected: "atoms/icon"},
		{path: "src/atoms/icon/ace.json", expected: "atoms/icon"},
		{path: "src/atoms/icon/_demo_icon.jade"},
		{path: "src/atoms/icon/other.jade"},
		{path: "src/atoms/icon"},
		{path: "src/global-js/main.js"},
		{path: "src/atom/icon/icon.jade"},
		{path: "export/button.zip"},
	}

	for _, c := range cases {
		key, ok := ComponentFromPath(layout, c.path)
		if c.expected == "" {
			assert.False(t, ok, c.path)
		} else {
			assert.True(t, ok, c.path)
			assert.Equal(t, c.expected, key.String(), c.path)
		}
	}
}

func TestDebouncer(t *testing.T) {
	t.Parallel()

	clk := clockwork.NewFakeClock()
	var lock sync.Mutex
	var flushed [][]string
	d := newDebouncer(clk, time.Second, func(keys []string) {
		lock.Lock()
		defer lock.Unlock()
		flushed = append(flushed, keys)
	})
	flushCount := func() int {
		lock.Lock()
		defer lock.Unlock()
		return len(flushed)
	}

	d.Add("molecules/button")
	clk.Advance(500 * time.Millisecond)
	d.Add("atoms/icon")
	clk.Advance(500 * time.Millisecond)
	d.Add("molecules/button")

	// The window is restarted by each key
	clk.Advance(999 * time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, flushCount())

	clk.Advance(time.Millisecond)
	assert.Eventually(t, func() bool {
		return flushCount() == 1
	}, 5*time.Second, 10*time.Millisecond)

	lock.Lock()
	assert.Equal(t, []string{"atoms/icon", "molecules/button"}, flushed[0])
	lock.Unlock()

	// No flush after stop
	d.Add("atoms/other")
	d.Stop()
	clk.Advance(time.Hour)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, flushCount())
}

func TestDebouncer_StopWaitsForFlush(t *testing.T) {
	t.Parallel()

	clk := clockwork.NewFakeClock()
	started := make(chan struct{})
	release := make(chan struct{})
	d := newDebouncer(clk, time.Second, func(keys []string) {
		close(started)
		<-release
	})

	d.Add("atoms/icon")
	clk.Advance(time.Second)
	<-started

	stopped := make(chan struct{})
	go func() {
		d.Stop()
		close(stopped)
	}()

	// The running flush blocks the Stop
	select {
	case <-stopped:
		assert.Fail(t, "Stop returned before the flush ended")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		assert.Fail(t, "Stop did not return")
	}
}

func TestDebouncer_SerializedFlushes(t *testing.T) {
	t.Parallel()

	clk := clockwork.NewFakeClock()
	var lock sync.Mutex
	running, maxRunning, flushedKeys := 0, 0, 0
	d := newDebouncer(clk, time.Millisecond, func(keys []string) {
		lock.Lock()
		running++
		flushedKeys += len(keys)
		maxRunning = max(maxRunning, running)
		lock.Unlock()

		time.Sleep(10 * time.Millisecond)

		lock.Lock()
		running--
		lock.Unlock()
	})

	for _, key := range []string{"atoms/a", "atoms/b", "atoms/c"} {
		d.Add(key)
		clk.Advance(time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		lock.Lock()
		defer lock.Unlock()
		return flushedKeys == 3
	}, 5*time.Second, 10*time.Millisecond)
	d.Stop()

	lock.Lock()
	defer lock.Unlock()
	assert.Equal(t, 1, maxRunning)
}

func TestWatcher_Run(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fs, err := aferofs.NewLocalFs(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, fs.WriteFile(ctx, filesystem.NewRawFile("src/molecules/button/button.jade", "button\n")))

	changed := make(chan []model.ComponentKey, 10)
	w := New(fs, log.NewNopLogger(), project.NewLayout(""), 20*time.Millisecond, func(_ context.Context, keys []model.ComponentKey) {
		changed <- keys
	})

	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()

	// Modify the markup until the change is reported, the watcher may not be ready yet
	var keys []model.ComponentKey
	assert.Eventually(t, func() bool {
		select {
		case keys = <-changed:
			return true
		default:
			_ = fs.WriteFile(ctx, filesystem.NewRawFile("src/molecules/button/button.jade", "button\n  include ../atoms/icon/icon.jade\n"))
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)
	require.Len(t, keys, 1)
	assert.Equal(t, "molecules/button", keys[0].String())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_MemoryFs(t *testing.T) {
	t.Parallel()
	w := New(aferofs.NewMemoryFs(), log.NewNopLogger(), project.NewLayout(""), 0, func(context.Context, []model.ComponentKey) {})
	err := w.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, `watch is supported only on the local filesystem, found "memory"`, err.Error())
}
