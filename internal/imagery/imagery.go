// Package imagery samples university campuses and downloads Street View
// images for every sampled point with coverage.
package imagery

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/sells-group/campus-imagery-cli/internal/model"
	"github.com/sells-group/campus-imagery-cli/pkg/geocode"
	"github.com/sells-group/campus-imagery-cli/pkg/streetview"
)

// Puller runs the point and image pipelines for one run configuration.
type Puller struct {
	geocoder geocode.Client
	sv       streetview.Client
	cfg      model.RunConfig
	progress io.Writer

	outMu sync.Mutex
	out   io.Writer
}

// Option configures a Puller.
type Option func(*Puller)

// WithOutput sets where status lines are printed. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Puller) {
		p.out = w
	}
}

// WithProgressOutput sets where progress bars are drawn. Defaults to stderr.
func WithProgressOutput(w io.Writer) Option {
	return func(p *Puller) {
		p.progress = w
	}
}

// NewPuller creates a Puller for cfg.
func NewPuller(g geocode.Client, sv streetview.Client, cfg model.RunConfig, opts ...Option) *Puller {
	p := &Puller{
		geocoder: g,
		sv:       sv,
		cfg:      cfg,
		out:      os.Stdout,
		progress: os.Stderr,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *Puller) printf(format string, args ...any) {
	p.outMu.Lock()
	defer p.outMu.Unlock()
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func newProgressBar(w io.Writer, total int, desc string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(w)
		}),
	)
}
