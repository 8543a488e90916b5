package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/m-mizutani/bulkget/pkg/domain/model"
)

// progressPrinter writes one marker per completed download task: a green
// dot for success, a red bang for any failure. Completion order, not input
// order.
type progressPrinter struct {
	w  io.Writer
	ok *color.Color
	ng *color.Color
}

func newProgressPrinter(w io.Writer) *progressPrinter {
	return &progressPrinter{
		w:  w,
		ok: color.New(color.FgGreen),
		ng: color.New(color.FgRed),
	}
}

func (p *progressPrinter) Mark(outcome model.Outcome) {
	if outcome.OK() {
		p.ok.Fprint(p.w, ".")
		return
	}
	p.ng.Fprint(p.w, "!")
}

func (p *progressPrinter) Finish() {
	fmt.Fprintln(p.w)
}
