package domain

import "go.trai.ch/zerr"

var (
	// ErrNoSuchRoute is returned when the requested route does not exist in the graph:
	// a missing direct edge in an explicit route, or an unreachable target.
	ErrNoSuchRoute = zerr.New("no such route")

	// ErrInvalidRoute is returned when a hyphen-delimited route cannot be decoded into nodes.
	ErrInvalidRoute = zerr.New("invalid route")

	// ErrInvalidQuery is returned when a query is missing its endpoints, route or bound.
	ErrInvalidQuery = zerr.New("invalid query")

	// ErrUnknownQueryKind is returned when a routefile names a query kind that does not exist.
	ErrUnknownQueryKind = zerr.New("unknown query kind, expected one of distance, trips, routes or shortest")

	// ErrConfigNotFound is returned when no route data source is given and no routefile is found.
	ErrConfigNotFound = zerr.New("could not find waypoint.yaml, pass --file or --routes")

	// ErrConfigReadFailed is returned when the route data cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read route data")

	// ErrConfigParseFailed is returned when a routefile cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse routefile")

	// ErrQueryEvaluationFailed is returned when evaluating a query plan is aborted.
	ErrQueryEvaluationFailed = zerr.New("query evaluation failed")

	// ErrRenderFailed is returned when results cannot be written to the output.
	ErrRenderFailed = zerr.New("failed to render results")

	// ErrWatchFailed is returned when the routefile watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch routefile")

	// ErrWatchRequiresFile is returned when watch mode is requested without a routefile on disk.
	ErrWatchRequiresFile = zerr.New("watch mode requires a routefile path")
)

// NoSuchRoute returns an ErrNoSuchRoute error carrying the endpoints that failed.
// The sentinel is wrapped rather than annotated so that errors.Is keeps matching it.
func NoSuchRoute(from, to Node) error {
	err := zerr.With(zerr.Wrap(ErrNoSuchRoute, ""), "from", from.String())
	return zerr.With(err, "to", to.String())
}
