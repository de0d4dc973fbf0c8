package domain

const (
	// DefaultRoutefile is the routefile looked up in the working directory
	// when no route data source is given.
	DefaultRoutefile = "waypoint.yaml"

	// StdinPath is the routefile path that reads route data from standard input.
	StdinPath = "-"

	// StdinOrigin is the Network origin for route data read from standard input.
	StdinOrigin = "stdin"

	// InlineOrigin is the Network origin for route data passed on the command line.
	InlineOrigin = "inline"

	// TraceEnvVar selects a span exporter. The only supported value is "stdout".
	TraceEnvVar = "WAYPOINT_TRACE"
)

// Source names where the route data of a Network is read from.
// Inline takes precedence over Path. When both are empty the DefaultRoutefile
// in the working directory is used.
type Source struct {
	Path   string
	Inline string
}

// IsZero reports whether neither a path nor inline data was given.
func (s Source) IsZero() bool {
	return s.Path == "" && s.Inline == ""
}

// IsStdin reports whether route data is read from standard input.
func (s Source) IsStdin() bool {
	return s.Inline == "" && s.Path == StdinPath
}
