// Package config loads route data and query plans from routefiles, plain text,
// standard input or inline text.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/waypoint/internal/core/domain"
	"go.trai.ch/waypoint/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.NetworkLoader = (*Loader)(nil)

// SupportedVersion is the routefile schema version this loader understands.
const SupportedVersion = "1"

// Query kinds as spelled in a routefile.
const (
	kindDistance = "distance"
	kindTrips    = "trips"
	kindShortest = "shortest"
	kindRoutes   = "routes"
)

// Loader implements ports.NetworkLoader.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
	Stdin  io.Reader
	// WorkDir is where routefile discovery starts. Empty means the process working directory.
	WorkDir string
}

// NewLoader creates a new Loader reading from the OS filesystem and standard input.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger: logger,
		FS:     NewOSFS(),
		Stdin:  os.Stdin,
	}
}

// Load reads the route data named by src.
func (l *Loader) Load(src domain.Source) (*domain.Network, error) {
	switch {
	case src.Inline != "":
		return domain.NewNetwork(domain.InlineOrigin, src.Inline, nil), nil
	case src.IsStdin():
		return l.loadStdin()
	case src.Path != "":
		return l.loadPath(src.Path, src.Path)
	default:
		path, err := l.discover()
		if err != nil {
			return nil, err
		}
		return l.loadPath(path, l.origin(path))
	}
}

// Resolve returns the absolute path of the routefile src refers to.
func (l *Loader) Resolve(src domain.Source) (string, error) {
	switch {
	case src.Inline != "":
		return "", zerr.With(zerr.Wrap(domain.ErrWatchRequiresFile, ""), "source", domain.InlineOrigin)
	case src.IsStdin():
		return "", zerr.With(zerr.Wrap(domain.ErrWatchRequiresFile, ""), "source", domain.StdinOrigin)
	case src.Path != "":
		path := src.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(l.workDir(), path)
		}
		if _, err := l.FS.Stat(path); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", src.Path)
		}
		return filepath.Clean(path), nil
	default:
		return l.discover()
	}
}

func (l *Loader) loadStdin() (*domain.Network, error) {
	if l.Stdin == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, "standard input is not available"), "path", domain.StdinPath)
	}
	data, err := io.ReadAll(l.Stdin)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", domain.StdinPath)
	}
	return domain.NewNetwork(domain.StdinOrigin, string(data), nil), nil
}

func (l *Loader) loadPath(path, origin string) (*domain.Network, error) {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", origin)
	}

	if !isRoutefile(path) {
		return domain.NewNetwork(origin, string(data), nil), nil
	}

	rf, err := parseRoutefile(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", origin)
	}

	if rf.Version != "" && rf.Version != SupportedVersion && l.Logger != nil {
		l.Logger.Warn(fmt.Sprintf("%s: routefile version %q is not supported, reading it as version %s",
			origin, rf.Version, SupportedVersion))
	}

	plan, err := buildPlan(rf.Queries)
	if err != nil {
		return nil, zerr.With(err, "path", origin)
	}

	return domain.NewNetwork(origin, rf.Routes.Text(), plan), nil
}

// discover looks for the DefaultRoutefile in the working directory and its parents.
func (l *Loader) discover() (string, error) {
	start := l.workDir()
	dir := start
	for {
		candidate := filepath.Join(dir, domain.DefaultRoutefile)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, ""), "dir", start)
}

func (l *Loader) workDir() string {
	if l.WorkDir != "" {
		return l.WorkDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// origin returns path relative to the working directory when possible.
func (l *Loader) origin(path string) string {
	rel, err := filepath.Rel(l.workDir(), path)
	if err != nil {
		return path
	}
	return rel
}

func isRoutefile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func parseRoutefile(data []byte) (*Routefile, error) {
	var rf Routefile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil && err != io.EOF {
		return nil, err
	}
	return &rf, nil
}

// buildPlan converts routefile queries into domain queries, in file order.
// An empty list yields a nil plan so the network falls back to the default plan.
func buildPlan(dtos []QueryDTO) ([]domain.Query, error) {
	if len(dtos) == 0 {
		return nil, nil
	}

	plan := make([]domain.Query, 0, len(dtos))
	for i, dto := range dtos {
		q, err := toQuery(dto)
		if err == nil {
			err = q.Validate()
		}
		if err != nil {
			err = zerr.With(err, "index", i)
			return nil, zerr.With(err, "line", dto.Line)
		}
		plan = append(plan, q)
	}
	return plan, nil
}

func toQuery(dto QueryDTO) (domain.Query, error) {
	switch dto.Kind {
	case kindDistance:
		var text string
		if err := dto.Decode(&text); err != nil {
			return domain.Query{}, invalidQuery(dto.Kind, err)
		}
		route, err := domain.ParseRoute(text)
		if err != nil {
			return domain.Query{}, invalidQuery(dto.Kind, err)
		}
		return domain.DistanceQuery(route), nil

	case kindTrips:
		var body TripsDTO
		if err := dto.Decode(&body); err != nil {
			return domain.Query{}, invalidQuery(dto.Kind, err)
		}
		from, to := domain.NewNode(body.From), domain.NewNode(body.To)
		switch {
		case body.MaxStops != nil && body.ExactStops != nil:
			return domain.Query{}, zerr.With(
				zerr.Wrap(domain.ErrInvalidQuery, "trips takes either max-stops or exact-stops"), "kind", dto.Kind)
		case body.MaxStops != nil:
			return domain.MaxStopsQuery(from, to, *body.MaxStops), nil
		case body.ExactStops != nil:
			return domain.ExactStopsQuery(from, to, *body.ExactStops), nil
		default:
			return domain.Query{}, zerr.With(
				zerr.Wrap(domain.ErrInvalidQuery, "trips needs max-stops or exact-stops"), "kind", dto.Kind)
		}

	case kindShortest:
		var body EndpointsDTO
		if err := dto.Decode(&body); err != nil {
			return domain.Query{}, invalidQuery(dto.Kind, err)
		}
		return domain.ShortestQuery(domain.NewNode(body.From), domain.NewNode(body.To)), nil

	case kindRoutes:
		var body RoutesDTO
		if err := dto.Decode(&body); err != nil {
			return domain.Query{}, invalidQuery(dto.Kind, err)
		}
		if body.MaxDistance == nil {
			return domain.Query{}, zerr.With(
				zerr.Wrap(domain.ErrInvalidQuery, "routes needs max-distance"), "kind", dto.Kind)
		}
		return domain.MaxDistanceQuery(domain.NewNode(body.From), domain.NewNode(body.To), *body.MaxDistance), nil

	default:
		return domain.Query{}, zerr.With(zerr.Wrap(domain.ErrUnknownQueryKind, ""), "kind", dto.Kind)
	}
}

func invalidQuery(kind string, cause error) error {
	return zerr.With(zerr.Wrap(domain.ErrInvalidQuery, cause.Error()), "kind", kind)
}
