package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/citysearch"
	"github.com/hupe1980/citysearch/distance"
	"github.com/hupe1980/citysearch/model"
)

// Prompts and report lines.
const (
	CityPrompt   = "Please enter the selected city name (or '0' to exit): "
	RadiusPrompt = "Please enter the desired radius: "
	MetricPrompt = "Please enter the desired norm (0 - L2, Euclidean distance, 1 - Linf, Chebyshev distance, 2 - L1, Manhattan distance): "

	ExitToken   = "0"
	ErrorPrefix = "ERROR: "
)

// State is a session state.
type State int

// Session states.
const (
	AwaitingCityInput State = iota
	AwaitingRadiusAndMetric
	Reporting
	Exited
)

func (s State) String() string {
	switch s {
	case AwaitingCityInput:
		return "AwaitingCityInput"
	case AwaitingRadiusAndMetric:
		return "AwaitingRadiusAndMetric"
	case Reporting:
		return "Reporting"
	case Exited:
		return "Exited"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Engine answers lookups and searches. *citysearch.Atlas implements it.
type Engine interface {
	Lookup(name string) (model.City, error)
	Search(ctx context.Context, name string, radius float64, metric distance.Metric) (*citysearch.Result, error)
}

// Session is one interactive loop. It is not safe for concurrent use.
type Session struct {
	engine Engine
	in     *tokenReader
	out    *errWriter
	errOut *errWriter

	state  State
	city   string
	radius float64
	metric distance.Metric
}

// New creates a Session reading from in, reporting to out and writing error
// lines to errOut.
func New(engine Engine, in io.Reader, out, errOut io.Writer) *Session {
	return &Session{
		engine: engine,
		in:     newTokenReader(in),
		out:    &errWriter{w: out},
		errOut: &errWriter{w: errOut},
		state:  AwaitingCityInput,
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Run loops until the exit token, end of input, ctx cancellation or a write
// failure. The first two return nil. Cancellation interrupts a pending read;
// a later Run resumes with the input that arrived in the meantime.
func (s *Session) Run(ctx context.Context) error {
	defer func() {
		if s.state == Exited {
			s.in.Close()
		}
	}()

	for s.state != Exited {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Step performs one state transition.
func (s *Session) Step(ctx context.Context) error {
	var err error
	switch s.state {
	case AwaitingCityInput:
		err = s.readCity(ctx)
	case AwaitingRadiusAndMetric:
		err = s.readQuery(ctx)
	case Reporting:
		err = s.report(ctx)
	case Exited:
		return nil
	}

	if errors.Is(err, io.EOF) {
		s.state = Exited
		err = nil
	}
	if err != nil {
		return err
	}
	if s.out.err != nil {
		return s.out.err
	}
	return s.errOut.err
}

func (s *Session) readCity(ctx context.Context) error {
	s.out.print(CityPrompt)

	name, err := s.in.Line(ctx)
	if err != nil {
		return err
	}
	if name == ExitToken {
		s.state = Exited
		return nil
	}

	if _, err := s.engine.Lookup(name); err != nil {
		if !errors.Is(err, citysearch.ErrCityNotFound) {
			return err
		}
		s.errOut.printf("%s%s is not found in the city list. Please try again.\n", ErrorPrefix, name)
		return nil
	}

	s.city = name
	s.state = AwaitingRadiusAndMetric
	return nil
}

func (s *Session) readQuery(ctx context.Context) error {
	s.out.print(RadiusPrompt)
	tok, err := s.in.Token(ctx)
	if err != nil {
		return err
	}
	radius, err := citysearch.ParseRadius(tok)
	if err != nil {
		return s.reject(ctx, err)
	}

	s.out.print(MetricPrompt)
	tok, err = s.in.Token(ctx)
	if err != nil {
		return err
	}
	metric, err := citysearch.ParseMetric(tok)
	if err != nil {
		return s.reject(ctx, err)
	}

	s.radius = radius
	s.metric = metric
	s.state = Reporting
	return nil
}

func (s *Session) report(ctx context.Context) error {
	res, err := s.engine.Search(ctx, s.city, s.radius, s.metric)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return s.reject(ctx, err)
	}

	s.out.print("Search results:\n")
	s.out.printf("%d city/cities found in the given radius.\n", len(res.Matches))
	s.out.printf("%d cities are to the north of the selected city.\n", len(res.North))
	s.out.printf("Matching cities within radius %.6g using the selected norm: %d\n", s.radius, int(s.metric))
	for _, name := range res.Matches {
		s.out.print(name, "\n")
	}

	if err := s.in.DiscardLine(ctx); err != nil {
		return err
	}
	s.out.print("\n")

	s.state = AwaitingCityInput
	return nil
}

// reject prints a query error, drops the rest of the input line and goes
// back to the city prompt.
func (s *Session) reject(ctx context.Context, err error) error {
	s.errOut.print(ErrorPrefix, err.Error(), "\n")
	s.state = AwaitingCityInput
	return s.in.DiscardLine(ctx)
}

// errWriter remembers the first write failure and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) print(a ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprint(ew.w, a...)
}

func (ew *errWriter) printf(format string, a ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}
