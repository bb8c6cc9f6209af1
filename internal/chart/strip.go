// Package chart renders trajectories as DYNAMO-style strip charts, the
// format the World Dynamics figures were printed in: one row per
// sampled instant, one plotting symbol per variable, dots and dashes
// marking the grid.
package chart

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/san-kum/worldsim/internal/world"
)

const (
	// Width is the strip width in columns; values map onto 0..Width.
	Width = 60

	labelWidth   = 8
	dashInterval = 10 // sampled rows between dashed grid rows
	dotInterval  = 15 // columns between background dots
	plotPeriod   = 20 // engine ticks between sampled rows (4 years at DT=0.2)
)

type series struct {
	field     string
	symbol    byte
	low, high float64
}

// Plotter drives an engine to completion and renders selected snapshot
// fields. It owns no simulation state beyond the engine it samples.
type Plotter struct {
	eng    *world.Engine
	series []series
	legend string
}

// NewPlotter returns a plotter over a fresh engine for cfg.
func NewPlotter(cfg world.Config) *Plotter {
	return &Plotter{eng: world.New(cfg)}
}

// Plot registers a snapshot field to draw. low and high are the y-axis
// bounds the field is scaled between; symbol marks its rows.
func (p *Plotter) Plot(field, name string, symbol byte, low, high float64) error {
	var probe world.Snapshot
	if _, ok := probe.Field(field); !ok {
		return fmt.Errorf("chart: unknown field %q", field)
	}

	p.series = append(p.series, series{field, symbol, low, high})

	if p.legend != "" {
		p.legend += ","
	}
	p.legend += fmt.Sprintf("%s=%c", name, symbol)
	return nil
}

// Column maps a value onto a strip of the given width by linear scaling
// between lo and hi, rounding to the nearest column. Values outside the
// bounds map outside [0, width].
func Column(v, lo, hi float64, width int) int {
	return int(math.Round((v - lo) / (hi - lo) * float64(width)))
}

// Run ticks the engine until completion, sampling every 20th tick, and
// returns the rendered chart: legend, per-series y-scale, then one
// strip row per sample. When two fields land on the same column the
// later symbols are appended to the row as annotations keyed by the
// symbol already occupying the column.
func (p *Plotter) Run() (string, error) {
	var rows []string
	rowCounter := 0

	for tick := 0; !p.eng.Completed(); tick++ {
		snap, err := p.eng.Tick()
		if err != nil {
			return "", err
		}
		if tick%plotPeriod != 0 {
			continue
		}

		line := blankLine(Width + 1)
		label := strings.Repeat(" ", labelWidth)

		for i := 0; i <= Width; i += dotInterval {
			line[i] = '.'
		}
		if rowCounter%dashInterval == 0 {
			for i := 0; i <= Width; i += 2 {
				line[i] = '-'
				if i < Width {
					line[i+1] = ' '
				}
			}
			label = fmt.Sprintf("%7.0f.", snap.Time)
		}
		rowCounter++

		overlaps := map[byte][]byte{}
		for _, s := range p.series {
			v, _ := snap.Field(s.field)
			col := Column(v, s.low, s.high, Width)
			if col < 0 || col > Width {
				continue
			}
			switch line[col] {
			case ' ', '-', '.':
				line[col] = s.symbol
			default:
				overlaps[line[col]] = append(overlaps[line[col]], s.symbol)
			}
		}

		row := label + string(line)
		if len(overlaps) > 0 {
			keys := make([]byte, 0, len(overlaps))
			for k := range overlaps {
				keys = append(keys, k)
			}
			sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

			row += " "
			for i, k := range keys {
				if i > 0 {
					row += ","
				}
				row += string(k) + string(overlaps[k])
			}
		}
		rows = append(rows, row)
	}

	var scales []string
	for _, s := range p.series {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", labelWidth-2))
		b.WriteByte(s.symbol)
		b.WriteByte(' ')

		steps := Width / dotInterval
		step := (s.high - s.low) / float64(steps)
		label := s.low
		for i := 0; i < steps; i++ {
			fmt.Fprintf(&b, "%-*s", dotInterval, FormatMagnitude(label))
			label += step
		}
		b.WriteString(FormatMagnitude(s.high))
		scales = append(scales, b.String())
	}

	return p.legend + "\n\n" +
		strings.Join(scales, "\n") + "\n" +
		strings.Join(rows, "\n"), nil
}

func blankLine(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return b
}
