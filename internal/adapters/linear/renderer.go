// Package linear provides a synchronous, line-oriented renderer for query results.
package linear

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"go.trai.ch/waypoint/internal/core/domain"
	"go.trai.ch/waypoint/internal/core/ports"
	"go.trai.ch/waypoint/internal/ui/output"
	"go.trai.ch/waypoint/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// NoRoute is written in place of a value when a route does not exist.
const NoRoute = "NO SUCH ROUTE"

// Format selects how the Renderer writes.
type Format int

const (
	// FormatPlain writes bare "Output #N: value" lines.
	FormatPlain Format = iota
	// FormatStyled adds colors and the query label to every line.
	FormatStyled
	// FormatJSON writes one indented JSON document per call.
	FormatJSON
)

// Renderer implements ports.Renderer for terminals, CI logs and scripts.
type Renderer struct {
	mu     sync.Mutex
	w      io.Writer
	out    *termenv.Output
	lg     *lipgloss.Renderer
	format Format
}

// NewRenderer creates a Renderer writing to w. A nil writer defaults to os.Stdout.
func NewRenderer(w io.Writer, format Format) *Renderer {
	if w == nil {
		w = os.Stdout
	}

	profile := termenv.Ascii
	if format == FormatStyled {
		profile = output.ColorProfile()
	}

	lg := lipgloss.NewRenderer(w)
	lg.SetColorProfile(profile)

	return &Renderer{
		w:      w,
		out:    output.NewWithProfile(w, profile),
		lg:     lg,
		format: format,
	}
}

// RenderResults writes one line per result, numbered from 1 in plan order.
func (r *Renderer) RenderResults(network *domain.Network, results []domain.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.format == FormatJSON {
		return r.writeJSON(newResultsDocument(network, results))
	}

	var b strings.Builder
	for i, res := range results {
		fmt.Fprintf(&b, "Output #%d: %s", i+1, r.answer(res))
		if r.format == FormatStyled {
			b.WriteString("  " + r.out.String(res.Query.String()).Faint().String())
		}
		b.WriteByte('\n')
	}
	return r.write(b.String())
}

// RenderGraph writes the origin, nodes, edge count, fingerprint and edges of the network.
func (r *Renderer) RenderGraph(network *domain.Network) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.format == FormatJSON {
		return r.writeJSON(newGraphDocument(network))
	}

	g := network.Graph
	labels := make([]string, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		labels = append(labels, n.String())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", r.key("origin:"), network.Origin)
	fmt.Fprintf(&b, "%s %s\n", r.key("nodes:"), strings.Join(labels, " "))
	fmt.Fprintf(&b, "%s %d\n", r.key("edges:"), g.EdgeCount())
	fmt.Fprintf(&b, "%s %016x\n", r.key("fingerprint:"), g.Fingerprint())
	if len(network.Rejected) > 0 {
		fmt.Fprintf(&b, "%s %s\n", r.key("rejected:"), strings.Join(network.Rejected, ", "))
	}

	if r.format == FormatStyled {
		if !g.IsEmpty() {
			b.WriteString(r.edgeTable(g) + "\n")
		}
	} else if !g.IsEmpty() {
		b.WriteString(g.String() + "\n")
	}

	return r.write(b.String())
}

// answer formats the value of a result.
func (r *Renderer) answer(res domain.Result) string {
	var (
		text  string
		color lipgloss.Color
	)
	switch {
	case res.Err == nil:
		text, color = strconv.Itoa(res.Value), style.Green
	case res.NoRoute():
		text, color = NoRoute, style.Yellow
	default:
		text, color = "ERROR "+res.Err.Error(), style.Red
	}

	if r.format != FormatStyled {
		return text
	}
	return r.out.String(text).Foreground(r.out.Color(string(color))).Bold().String()
}

func (r *Renderer) key(k string) string {
	if r.format != FormatStyled {
		return k
	}
	return r.out.String(k).Foreground(r.out.Color(string(style.Iris))).String()
}

func (r *Renderer) edgeTable(g *domain.Graph) string {
	header := r.lg.NewStyle().Foreground(style.Iris).Bold(true).Padding(0, 1)
	cell := r.lg.NewStyle().Padding(0, 1)
	number := cell.Align(lipgloss.Right)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.lg.NewStyle().Foreground(style.Slate)).
		Headers("FROM", "TO", "DISTANCE").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 2:
				return number
			default:
				return cell
			}
		})

	for _, e := range g.Edges() {
		t.Row(e.From.String(), e.To.String(), strconv.Itoa(e.Distance))
	}
	return t.String()
}

func (r *Renderer) writeJSON(doc any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return errors.Join(domain.ErrRenderFailed, err)
	}
	return nil
}

func (r *Renderer) write(s string) error {
	if _, err := io.WriteString(r.w, s); err != nil {
		return errors.Join(domain.ErrRenderFailed, err)
	}
	return nil
}
