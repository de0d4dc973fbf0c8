package app

import (
	"context"

	"go.trai.ch/waypoint/internal/adapters/watcher" //nolint:depguard // debouncing belongs to watch runs
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	ReportOptions
}

// Watch runs Report once and again whenever the routefile changes, until ctx
// is cancelled. Failed re-runs are logged and watching continues.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	path, err := a.loader.Resolve(opts.Source)
	if err != nil {
		return err
	}

	if err := a.watcher.Start(ctx, path); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.rerun(ctx, opts.ReportOptions)

	changed := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(a.debounce, func([]string) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		for ev := range a.watcher.Events() {
			debouncer.Add(ev.Path)
		}
	}()

	a.logger.Info("watching " + path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-stopped:
			return nil
		case <-changed:
			a.logger.Info(path + " changed")
			a.rerun(ctx, opts.ReportOptions)
		}
	}
}

func (a *App) rerun(ctx context.Context, opts ReportOptions) {
	if err := a.Report(ctx, opts); err != nil && ctx.Err() == nil {
		a.logger.Error(err)
	}
}
