package chart

import (
	"fmt"

	"github.com/san-kum/worldsim/internal/world"
)

// Series selects one snapshot field for a figure, with its plotting
// symbol and y-axis bounds.
type Series struct {
	Field  string
	Name   string
	Symbol byte
	Low    float64
	High   float64
}

// Figure is one of the published World Dynamics charts: a scenario, the
// fields plotted, and the book's caption.
type Figure struct {
	Name     string
	Scenario string
	Series   []Series
	Caption  string
}

// Figures reproduces the chapter 4 charts in book order. 4-1 through
// 4-4 are the original run; 4-5 through 4-7 reduce natural-resource
// usage after 1970.
var Figures = []Figure{
	{
		Name:     "4-1",
		Scenario: "orig",
		Series: []Series{
			{"p", "P", 'P', 0, 8e9},
			{"polr", "POLR", '2', 0, 40},
			{"ci", "CI", 'C', 0, 20e9},
			{"ql", "QL", 'Q', 0, 2},
			{"nr", "NR", 'N', 0, 1000e9},
		},
		Caption: `    World Dynamics, Figure 4-1, ORIG-A
    "Basic behavior of the world model, showing the mode in which
     industrialization and population are suppressed by falling
     natural resources."
    [P=Population, 2=Pollution, C=Capital Investment, Q=Quality of Life,
     N=Natural Resources]`,
	},
	{
		Name:     "4-2",
		Scenario: "orig",
		Series: []Series{
			{"fr", "FR", 'F', 0, 2},
			{"msl", "MSL", 'M', 0, 2},
			{"qlc", "QLC", '4', 0, 2},
			{"qlp", "QLP", '5', 0, 2},
			{"ciaf", "CIAF", 'A', .2, .6},
		},
		Caption: `    World Dynamics, Figure 4-2, ORIG-B
    "Original model as in Figure 4-1. Material standard of living reaches
     a maximum and then declines as natural resources are depleted."
    [F=Food ratio, M=Material standard of living, 4=Quality of Life from
     crowding, 5=Quality of life from pollution, A=Capital-investment-in-
     agriculture fraction]`,
	},
	{
		Name:     "4-3",
		Scenario: "orig",
		Series: []Series{
			{"nr", "NR", 'N', 0, 1e12},
			{"nrur", "NRUR", 'U', 0, 8e9},
		},
		Caption: `    World Dynamics, Figure 4-3, ORIG-C
    "Original model as in Figure 4-1. Natural-resource-usage rate reaches
     a peak about year 2010 and declines as natural resources, population,
     and capital investment decline."
    [N=Natural resources, U=Natural-resource-usage rate]`,
	},
	{
		Name:     "4-4",
		Scenario: "orig",
		Series: []Series{
			{"ci", "CI", 'C', 0, 20e9},
			{"cig", "CIG", 'G', 0, 400e6},
			{"cid", "CID", 'D', 0, 400e6},
		},
		Caption: `    World Dynamics, Figure 4-4, ORIG-D
    "Original model as in Figure 4-1. The rate of capital-investment generation
     declines after 2010 but does not fall below the rate of capital-investment
     discard until 2040, at which time the level of capital investment begins
     to decline."
    [C=Capital investment, G=Capital-investment generation, D=Capital-investment
     discard]`,
	},
	{
		Name:     "4-5",
		Scenario: "nr-conserved",
		Series: []Series{
			{"p", "P", 'P', 0, 8e9},
			{"polr", "POLR", '2', 0, 40},
			{"ci", "CI", 'C', 0, 20e9},
			{"ql", "QL", 'Q', 0, 2},
			{"nr", "NR", 'N', 0, 1000e9},
		},
		Caption: `    World Dynamics, Figure 4-5, Original NRUN1=1.0, present NRUN1=0.25
    "Reduced usage rate of natural resources leads to a pollution crisis."
    [P=Population, 2=Pollution, C=Capital Investment, Q=Quality of Life,
     N=Natural Resources]`,
	},
	{
		Name:     "4-6",
		Scenario: "nr-conserved",
		Series: []Series{
			{"fr", "FR", 'F', 0, 2},
			{"msl", "MSL", 'M', 0, 2},
			{"qlc", "QLC", '4', 0, 2},
			{"qlp", "QLP", '5', 0, 2},
			{"ciaf", "CIAF", 'A', .2, .6},
		},
		Caption: `    World Dynamics, Figure 4-6, Original NRUN1=1.0, present NRUN1=0.25
    "System ratios during the pollution mode of growth suppression."
    [F=Food ratio, M=Material standard of living, 4=Quality of Life from
     crowding, 5=Quality of life from pollution, A=Capital-investment-in-
     agriculture fraction]`,
	},
	{
		Name:     "4-7",
		Scenario: "nr-conserved",
		Series: []Series{
			{"polr", "POLR", '2', 0, 40},
			{"polat", "POLAT", 'T', 0, 16},
			{"polg", "POLG", 'G', 0, 20e9},
			{"pola", "POLA", 'A', 0, 20e9},
		},
		Caption: `    World Dynamics, Figure 4-7, Original NRUN1=1.0, present NRUN1=0.25
    "Dynamics of the pollution sector. A positive-feedback growth
     in pollution occurs when the pollution-absorption time increases
     faster than the pollution."
    [2=Pollution, T=Pollution-absorption time, G=Pollution generation,
     A=Pollution absorption]`,
	},
}

// GetFigure returns the figure with the given name.
func GetFigure(name string) (Figure, bool) {
	for _, f := range Figures {
		if f.Name == name {
			return f, true
		}
	}
	return Figure{}, false
}

// ListFigures returns figure names in book order.
func ListFigures() []string {
	names := make([]string, 0, len(Figures))
	for _, f := range Figures {
		names = append(names, f.Name)
	}
	return names
}

// Render runs the figure's scenario to completion and returns the
// finished chart with its caption.
func Render(f Figure) (string, error) {
	cfg, ok := world.GetScenario(f.Scenario)
	if !ok {
		return "", fmt.Errorf("chart: figure %s names unknown scenario %q", f.Name, f.Scenario)
	}

	p := NewPlotter(cfg)
	for _, s := range f.Series {
		if err := p.Plot(s.Field, s.Name, s.Symbol, s.Low, s.High); err != nil {
			return "", err
		}
	}

	body, err := p.Run()
	if err != nil {
		return "", err
	}

	return "\n\n" + body + "\n\n" + f.Caption + "\n", nil
}
