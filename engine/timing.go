//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package engine

import (
	"fmt"
	"os"
	"time"

	"github.com/markkurossi/tabulate"
)

// Timing records how long each phase of a session's Run took, for the
// diagnostic report printed by the CLI driver.
type Timing struct {
	start   time.Time
	samples []*sample
}

type sample struct {
	label string
	start time.Time
	end   time.Time
}

// NewTiming starts a new timing report.
func NewTiming() *Timing {
	return &Timing{start: time.Now()}
}

// Sample starts a new labelled sample; call Finish on it once the
// phase completes.
func (t *Timing) Sample(label string) *sample {
	start := t.start
	if len(t.samples) > 0 {
		start = t.samples[len(t.samples)-1].end
	}
	s := &sample{label: label, start: start}
	t.samples = append(t.samples, s)
	return s
}

// Finish records the sample's end time.
func (s *sample) Finish() {
	s.end = time.Now()
}

// Print renders the phase-timing report to standard output.
func (t *Timing) Print() {
	if len(t.samples) == 0 {
		return
	}
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Phase").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)

	total := t.samples[len(t.samples)-1].end.Sub(t.start)
	for _, s := range t.samples {
		d := s.end.Sub(s.start)
		row := tab.Row()
		row.Column(s.label)
		row.Column(d.String())
		row.Column(fmt.Sprintf("%.2f%%", float64(d)/float64(total)*100))
	}

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)

	tab.Print(os.Stdout)
}
