package app_test

import (
	"context"
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/waypoint/internal/app"
	"go.trai.ch/waypoint/internal/core/domain"
	"go.trai.ch/waypoint/internal/core/ports"
	"go.uber.org/mock/gomock"
)

const routefile = "/work/waypoint.yaml"

func eventSeq(ch <-chan ports.WatchEvent) iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for ev := range ch {
			if !yield(ev) {
				return
			}
		}
	}
}

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestApp_Watch_RerunsOnChange(t *testing.T) {
	h := newHarness(t)
	h.app.WithDebounce(time.Millisecond)

	src := domain.Source{}
	network := domain.NewNetwork(routefile, fixture, nil)
	events := make(chan ports.WatchEvent)
	t.Cleanup(func() { close(events) })

	h.loader.EXPECT().Resolve(src).Return(routefile, nil)
	h.loader.EXPECT().Load(src).Return(network, nil).Times(2)
	h.watcher.EXPECT().Start(gomock.Any(), routefile).Return(nil)
	h.watcher.EXPECT().Events().Return(eventSeq(events))
	h.watcher.EXPECT().Stop().Return(nil)
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	rendered := make(chan struct{}, 2)
	h.renderer.EXPECT().RenderResults(network, gomock.Any()).Times(2).DoAndReturn(
		func(*domain.Network, []domain.Result) error {
			rendered <- struct{}{}
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- h.app.Watch(ctx, app.WatchOptions{ReportOptions: app.ReportOptions{Source: src}})
	}()

	waitFor(t, rendered, "initial report")
	events <- ports.WatchEvent{Path: routefile, Operation: ports.OpWrite}
	waitFor(t, rendered, "re-run")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestApp_Watch_LogsFailedRerun(t *testing.T) {
	h := newHarness(t)
	h.app.WithDebounce(time.Millisecond)

	src := domain.Source{Path: "waypoint.yaml"}
	events := make(chan ports.WatchEvent)

	h.loader.EXPECT().Resolve(src).Return(routefile, nil)
	h.loader.EXPECT().Load(src).Return(nil, domain.ErrConfigParseFailed)
	h.watcher.EXPECT().Start(gomock.Any(), routefile).Return(nil)
	h.watcher.EXPECT().Events().Return(eventSeq(events))
	h.watcher.EXPECT().Stop().Return(nil)
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	logged := make(chan struct{}, 1)
	h.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
		logged <- struct{}{}
	})

	done := make(chan error, 1)
	go func() {
		done <- h.app.Watch(context.Background(), app.WatchOptions{ReportOptions: app.ReportOptions{Source: src}})
	}()

	waitFor(t, logged, "logged error")

	// The watcher ending its events stops the watch.
	close(events)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after events ended")
	}
}

func TestApp_Watch_RequiresRoutefile(t *testing.T) {
	h := newHarness(t)
	src := domain.Source{Inline: fixture}

	h.loader.EXPECT().Resolve(src).Return("", domain.ErrWatchRequiresFile)

	err := h.app.Watch(context.Background(), app.WatchOptions{ReportOptions: app.ReportOptions{Source: src}})
	require.ErrorIs(t, err, domain.ErrWatchRequiresFile)
}

func TestApp_Watch_StartFailure(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Resolve(domain.Source{}).Return(routefile, nil)
	h.watcher.EXPECT().Start(gomock.Any(), routefile).Return(domain.ErrWatchFailed)

	err := h.app.Watch(context.Background(), app.WatchOptions{})
	require.ErrorIs(t, err, domain.ErrWatchFailed)
}
