// Package report writes analysis results for people: plain lines in the
// classic wording, or lipgloss tables for a terminal.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dd0wney/cluso-routegraph/pkg/algorithms"
	"github.com/dd0wney/cluso-routegraph/pkg/analysis"
)

// ErrUnknownFormat is returned for an output format other than plain or table
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how results are printed
type Format string

const (
	FormatPlain Format = "plain"
	FormatTable Format = "table"
)

// ParseFormat parses "plain" or "table"
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPlain, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Printer writes results to w in one format
type Printer struct {
	w      io.Writer
	format Format
	styles styles
}

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	number lipgloss.Style
	border lipgloss.Style
}

// NewPrinter creates a printer. Colors are chosen for w, so a file or pipe
// gets plain ASCII.
func NewPrinter(w io.Writer, format Format) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		format: format,
		styles: styles{
			title: r.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FF00FF")),
			header: r.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#00FFFF")).
				Padding(0, 1),
			cell: r.NewStyle().
				Padding(0, 1),
			number: r.NewStyle().
				Padding(0, 1).
				Align(lipgloss.Right),
			border: r.NewStyle().
				Foreground(lipgloss.Color("#00FFFF")),
		},
	}
}

// Summary prints node, edge and component counts
func (p *Printer) Summary(s analysis.Summary) error {
	if p.format == FormatTable {
		return p.table("Network summary", []string{"Metric", "Value"}, [][]string{
			{"Airports", strconv.Itoa(s.Airports)},
			{"Nodes", strconv.Itoa(s.Nodes)},
			{"Undirected edges", strconv.Itoa(s.Edges)},
			{"Connected components", strconv.Itoa(s.Components)},
			{"Largest component nodes", strconv.Itoa(s.LargestNodes)},
			{"Largest component edges", strconv.Itoa(s.LargestEdges)},
		}, 1)
	}

	return p.lines(
		fmt.Sprintf("Total nodes: %d", s.Nodes),
		fmt.Sprintf("Total undirected edges: %d", s.Edges),
		fmt.Sprintf("Number of connected components: %d", s.Components),
		fmt.Sprintf("Largest component contains %d nodes and %d edges", s.LargestNodes, s.LargestEdges),
	)
}

// Degrees prints the degree ranking. n is the requested ranking size.
func (p *Printer) Degrees(n int, ranking []analysis.DegreeRank) error {
	title := fmt.Sprintf("Top %d airports with highest degree:", n)

	if p.format == FormatTable {
		rows := make([][]string, 0, len(ranking))
		for i, r := range ranking {
			rows = append(rows, []string{strconv.Itoa(i + 1), r.Name, strconv.Itoa(r.Degree)})
		}
		return p.table(title, []string{"#", "Airport", "Connections"}, rows, 0, 2)
	}

	lines := make([]string, 0, len(ranking)+1)
	lines = append(lines, title)
	for _, r := range ranking {
		lines = append(lines, fmt.Sprintf("%s: %d connections", r.Name, r.Degree))
	}
	return p.lines(lines...)
}

// Distribution prints the degree distribution with log10 columns for a
// log-log reading
func (p *Printer) Distribution(buckets []algorithms.DegreeBucket) error {
	title := "Degree distribution of the largest component:"
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{
			strconv.Itoa(b.Degree),
			strconv.Itoa(b.Count),
			formatScore(b.Fraction),
			formatLog(float64(b.Degree)),
			formatLog(b.Fraction),
		})
	}

	if p.format == FormatTable {
		return p.table(title, []string{"Degree", "Count", "Fraction", "log10(Degree)", "log10(Fraction)"}, rows, 0, 1, 2, 3, 4)
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, title, "degree count fraction log10_degree log10_fraction")
	for _, row := range rows {
		lines = append(lines, strings.Join(row, " "))
	}
	return p.lines(lines...)
}

// Diameter prints the diameter and the longest shortest path
func (p *Printer) Diameter(d analysis.DiameterResult) error {
	if p.format == FormatTable {
		rows := make([][]string, 0, len(d.Names))
		for i, name := range d.Names {
			rows = append(rows, []string{strconv.Itoa(i + 1), name})
		}
		title := fmt.Sprintf("Diameter of the largest component: %d", d.Diameter)
		return p.table(title, []string{"Stop", "Airport"}, rows, 0)
	}

	return p.lines(
		fmt.Sprintf("Diameter of the largest component: %d", d.Diameter),
		"Longest shortest path between two cities:",
		strings.Join(d.Names, " -> "),
	)
}

// Route prints the number of flights and the route between two airports
func (p *Printer) Route(r analysis.RouteResult) error {
	if p.format == FormatTable {
		rows := make([][]string, 0, len(r.Names))
		for i, name := range r.Names {
			rows = append(rows, []string{strconv.Itoa(i + 1), name})
		}
		title := fmt.Sprintf("%s to %s: %d flights", r.From, r.To, r.Hops)
		return p.table(title, []string{"Stop", "Airport"}, rows, 0)
	}

	return p.lines(
		fmt.Sprintf("Smallest number of flights required: %d", r.Hops),
		"Route:",
		strings.Join(r.Names, " <-> "),
	)
}

// Betweenness prints the betweenness ranking with five decimals
func (p *Printer) Betweenness(n int, ranking []analysis.CentralityRank) error {
	title := fmt.Sprintf("Top %d most central airports by betweenness:", n)

	if p.format == FormatTable {
		rows := make([][]string, 0, len(ranking))
		for i, r := range ranking {
			rows = append(rows, []string{strconv.Itoa(i + 1), r.Name, formatScore(r.Score)})
		}
		return p.table(title, []string{"#", "Airport", "Betweenness"}, rows, 0, 2)
	}

	lines := make([]string, 0, len(ranking)+1)
	lines = append(lines, title)
	for _, r := range ranking {
		lines = append(lines, fmt.Sprintf("%s: %s", r.Name, formatScore(r.Score)))
	}
	return p.lines(lines...)
}

func (p *Printer) lines(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

// table renders a titled table. Columns listed in numeric are right-aligned.
func (p *Printer) table(title string, headers []string, rows [][]string, numeric ...int) error {
	right := make(map[int]bool, len(numeric))
	for _, col := range numeric {
		right[col] = true
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.styles.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return p.styles.header
			case right[col]:
				return p.styles.number
			default:
				return p.styles.cell
			}
		})

	return p.lines(p.styles.title.Render(title), t.String())
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 5, 64)
}

// formatLog returns log10(v) with five decimals, or "-" when v is not positive
func formatLog(v float64) string {
	if v <= 0 {
		return "-"
	}
	return formatScore(math.Log10(v))
}
