package config

import (
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Routefile represents the structure of the waypoint.yaml configuration file.
type Routefile struct {
	Version string     `yaml:"version"`
	Routes  RouteList  `yaml:"routes"`
	Queries []QueryDTO `yaml:"queries"`
}

// RouteList holds route tokens. In YAML it is either a single string such as
// "AB5, BC4" or a sequence of strings.
type RouteList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *RouteList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*r = RouteList{node.Value}
		return nil
	case yaml.SequenceNode:
		var tokens []string
		if err := node.Decode(&tokens); err != nil {
			return err
		}
		*r = tokens
		return nil
	default:
		return zerr.With(zerr.New("routes must be a string or a list of strings"), "line", node.Line)
	}
}

// Text joins the tokens into route text.
func (r RouteList) Text() string {
	return strings.Join(r, ", ")
}

// QueryDTO is a single entry of the queries list: a mapping with exactly one
// key naming the query kind.
type QueryDTO struct {
	Kind string
	Line int
	body *yaml.Node
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (q *QueryDTO) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return zerr.With(zerr.New("a query must be a mapping with exactly one kind"), "line", node.Line)
	}
	q.Kind = node.Content[0].Value
	q.Line = node.Line
	q.body = node.Content[1]
	return nil
}

// Decode decodes the body of the query into v.
func (q QueryDTO) Decode(v any) error {
	if q.body == nil {
		return nil
	}
	return q.body.Decode(v)
}

// EndpointsDTO names the start and end of a query.
type EndpointsDTO struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// TripsDTO is the body of a trips query. Exactly one bound must be set.
type TripsDTO struct {
	From       string `yaml:"from"`
	To         string `yaml:"to"`
	MaxStops   *int   `yaml:"max-stops"`
	ExactStops *int   `yaml:"exact-stops"`
}

// RoutesDTO is the body of a routes query.
type RoutesDTO struct {
	From        string `yaml:"from"`
	To          string `yaml:"to"`
	MaxDistance *int   `yaml:"max-distance"`
}
