package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/waypoint/cmd/waypoint/commands"
	"go.trai.ch/waypoint/internal/app"
	"go.trai.ch/waypoint/internal/build"
	"go.trai.ch/waypoint/internal/core/domain"
)

type mockApp struct {
	reportFunc  func(ctx context.Context, opts app.ReportOptions) error
	queryFunc   func(ctx context.Context, opts app.QueryOptions) error
	inspectFunc func(ctx context.Context, opts app.InspectOptions) error
	watchFunc   func(ctx context.Context, opts app.WatchOptions) error
	jsonLogs    *bool
}

func (m *mockApp) Report(ctx context.Context, opts app.ReportOptions) error {
	if m.reportFunc != nil {
		return m.reportFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Query(ctx context.Context, opts app.QueryOptions) error {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Inspect(ctx context.Context, opts app.InspectOptions) error {
	if m.inspectFunc != nil {
		return m.inspectFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.WatchOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) SetLogJSON(enabled bool) {
	m.jsonLogs = &enabled
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Report(t *testing.T) {
	t.Run("root command reports", func(t *testing.T) {
		var got app.ReportOptions
		mock := &mockApp{reportFunc: func(_ context.Context, opts app.ReportOptions) error {
			got = opts
			return nil
		}}

		_, err := execute(t, mock, "--routes", "AB5, BC4", "-o", "json")
		require.NoError(t, err)
		assert.Equal(t, domain.Source{Inline: "AB5, BC4"}, got.Source)
		assert.Equal(t, "json", got.OutputMode)
		assert.Empty(t, got.Queries)
	})

	t.Run("report subcommand wires flags", func(t *testing.T) {
		var got app.ReportOptions
		mock := &mockApp{reportFunc: func(_ context.Context, opts app.ReportOptions) error {
			got = opts
			return nil
		}}

		_, err := execute(t, mock, "report", "-f", "routes.yaml")
		require.NoError(t, err)
		assert.Equal(t, domain.Source{Path: "routes.yaml"}, got.Source)
		assert.Equal(t, "auto", got.OutputMode)
	})

	t.Run("returns error on report failure", func(t *testing.T) {
		mock := &mockApp{reportFunc: func(context.Context, app.ReportOptions) error {
			return errors.New("simulated error")
		}}

		_, err := execute(t, mock, "report")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "report", "extra")
		require.Error(t, err)
	})
}

func TestCommands_Queries(t *testing.T) {
	a, c := domain.NewNode("A"), domain.NewNode("C")

	tests := []struct {
		name string
		args []string
		want domain.Query
	}{
		{name: "distance", args: []string{"distance", "A-E-B-C-D"}, want: domain.DistanceQuery(domain.MustParseRoute("A-E-B-C-D"))},
		{name: "trips max stops", args: []string{"trips", "C", "C", "--max-stops", "3"}, want: domain.MaxStopsQuery(c, c, 3)},
		{name: "trips exact stops", args: []string{"trips", "A", "C", "--exact-stops", "4"}, want: domain.ExactStopsQuery(a, c, 4)},
		{name: "routes", args: []string{"routes", "C", "C", "--max-distance", "30"}, want: domain.MaxDistanceQuery(c, c, 30)},
		{name: "shortest", args: []string{"shortest", "A", "C"}, want: domain.ShortestQuery(a, c)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got app.QueryOptions
			mock := &mockApp{queryFunc: func(_ context.Context, opts app.QueryOptions) error {
				got = opts
				return nil
			}}

			args := append([]string{"-r", "AB5"}, tt.args...)
			_, err := execute(t, mock, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Query)
			assert.Equal(t, domain.Source{Inline: "AB5"}, got.Source)
		})
	}
}

func TestCommands_QueryValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "distance without route", args: []string{"distance"}},
		{name: "distance with empty stop", args: []string{"distance", "A--C"}},
		{name: "trips without bound", args: []string{"trips", "A", "C"}},
		{name: "trips with both bounds", args: []string{"trips", "A", "C", "--max-stops", "3", "--exact-stops", "4"}},
		{name: "routes without bound", args: []string{"routes", "C", "C"}},
		{name: "shortest with one node", args: []string{"shortest", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockApp{queryFunc: func(context.Context, app.QueryOptions) error {
				panic("should not be called")
			}}

			_, err := execute(t, mock, tt.args...)
			require.Error(t, err)
		})
	}
}

func TestCommands_DistanceInvalidRoute(t *testing.T) {
	_, err := execute(t, &mockApp{}, "distance", "A--C")
	assert.ErrorIs(t, err, domain.ErrInvalidRoute)
}

func TestCommands_Graph(t *testing.T) {
	var got app.InspectOptions
	mock := &mockApp{inspectFunc: func(_ context.Context, opts app.InspectOptions) error {
		got = opts
		return nil
	}}

	_, err := execute(t, mock, "graph", "-f", "-", "--output", "plain")
	require.NoError(t, err)
	assert.True(t, got.Source.IsStdin())
	assert.Equal(t, "plain", got.OutputMode)
}

func TestCommands_Watch(t *testing.T) {
	var got app.WatchOptions
	mock := &mockApp{watchFunc: func(_ context.Context, opts app.WatchOptions) error {
		got = opts
		return nil
	}}

	_, err := execute(t, mock, "watch", "-f", "waypoint.yaml")
	require.NoError(t, err)
	assert.Equal(t, domain.Source{Path: "waypoint.yaml"}, got.Source)
}

func TestCommands_JSONLogs(t *testing.T) {
	mock := &mockApp{}

	_, err := execute(t, mock, "report", "--json-logs")
	require.NoError(t, err)
	require.NotNil(t, mock.jsonLogs)
	assert.True(t, *mock.jsonLogs)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "waypoint version "+build.Version)
	assert.Contains(t, out, "commit: "+build.Commit)
}

func TestCommands_VersionFlag(t *testing.T) {
	out, err := execute(t, &mockApp{}, "--version")
	require.NoError(t, err)

	assert.Contains(t, out, "waypoint version "+build.Version)
}
