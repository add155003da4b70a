package drills

import (
	"fmt"
	"iter"
	"log/slog"
	"math/big"
	"strings"

	"github.com/aretw0/drills/internal/logging"
	"github.com/aretw0/drills/pkg/arrays"
	"github.com/aretw0/drills/pkg/digits"
	"github.com/aretw0/drills/pkg/fibonacci"
	"github.com/aretw0/drills/pkg/geometry"
	"github.com/aretw0/drills/pkg/observability"
	"github.com/aretw0/drills/pkg/sequence"
	"github.com/aretw0/drills/pkg/triangle"
)

// Exercise names used for log attributes and metric labels.
const (
	ExerciseDivisible = "divisible"
	ExerciseTriangle  = "triangle"
	ExerciseFibonacci = "fibonacci"
	ExerciseIntersect = "intersect"
	ExerciseDigits    = "digits"
	ExerciseRepDigit  = "repdigit"
	ExerciseSplit     = "split"
)

// Solver is the high-level entry point for the exercises.
// It adds logging and metrics around the pure functions in pkg/.
type Solver struct {
	logger   *slog.Logger
	recorder *observability.Recorder
}

// Option defines a functional option for configuring the Solver.
type Option func(*Solver)

// WithLogger sets a custom structured logger for the solver.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(r *observability.Recorder) Option {
	return func(s *Solver) {
		s.recorder = r
	}
}

// New creates a Solver. Without options it logs nothing and records nothing.
func New(opts ...Option) *Solver {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	return s
}

// Halves is the outcome of splitting a polygon.
type Halves struct {
	First  []geometry.Point `json:"first" yaml:"first"`
	Second []geometry.Point `json:"second" yaml:"second"`
}

// Text renders each half on its own line.
func (h Halves) Text() string {
	return "first:  " + formatPoints(h.First) + "\nsecond: " + formatPoints(h.Second)
}

func formatPoints(points []geometry.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("(%g, %g)", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

// Divisible returns the lazy sequence 3, 3+divisor, ... <= ceiling.
// Elements pulled from the sequence are counted by the recorder.
func (s *Solver) Divisible(ceiling, divisor int) (iter.Seq[int], error) {
	seq, err := sequence.Divisible(ceiling, divisor)
	s.observe(ExerciseDivisible, err, "ceiling", ceiling, "divisor", divisor)
	if err != nil {
		return nil, err
	}

	if s.recorder == nil {
		return seq, nil
	}
	return func(yield func(int) bool) {
		pulled := 0
		defer func() { s.recorder.AddElements(pulled) }()
		for v := range seq {
			pulled++
			if !yield(v) {
				return
			}
		}
	}, nil
}

// SumDivisible sums Divisible(ceiling, divisor).
func (s *Solver) SumDivisible(ceiling, divisor int) (int, error) {
	seq, err := s.Divisible(ceiling, divisor)
	if err != nil {
		return 0, err
	}
	total := sequence.Sum(seq)
	s.logger.Debug("sequence summed", "exercise", ExerciseDivisible, "sum", total)
	return total, nil
}

// Triangular builds [[1], [1 2], ..., [1 .. n]].
func (s *Solver) Triangular(n int) ([][]int, error) {
	rows, err := triangle.Build(n)
	s.observe(ExerciseTriangle, err, "n", n)
	return rows, err
}

// SumEvenFibonacci sums the first count even Fibonacci terms.
func (s *Solver) SumEvenFibonacci(count int) (*big.Int, error) {
	sum, err := fibonacci.SumEven(count)
	s.observe(ExerciseFibonacci, err, "count", count)
	return sum, err
}

// Intersect returns the deduplicated intersection of two ascending slices.
func (s *Solver) Intersect(a, b []int) []int {
	out := arrays.Intersect(a, b)
	s.observe(ExerciseIntersect, nil, "left", len(a), "right", len(b), "matches", len(out))
	return out
}

// HasNoOddDigit reports whether every decimal digit of v is even.
func (s *Solver) HasNoOddDigit(v uint64) bool {
	ok := digits.HasNoOddDigit(v)
	s.observe(ExerciseDigits, nil, "value", v, "result", ok)
	return ok
}

// RepDigitSum returns X + XX + XXX + XXXX for the digit x.
func (s *Solver) RepDigitSum(x int) (int, error) {
	sum, err := digits.RepDigitSum(x)
	s.observe(ExerciseRepDigit, err, "digit", x)
	return sum, err
}

// SplitPolygon cuts polygon in two along cut.
func (s *Solver) SplitPolygon(polygon []geometry.Point, cut geometry.Segment) (Halves, error) {
	first, second, err := geometry.Split(polygon, cut)
	s.observe(ExerciseSplit, err, "vertices", len(polygon))
	if err != nil {
		return Halves{}, err
	}
	return Halves{First: first, Second: second}, nil
}

func (s *Solver) observe(exercise string, err error, attrs ...any) {
	s.recorder.Observe(exercise, err)

	attrs = append([]any{"exercise", exercise}, attrs...)
	if err != nil {
		s.logger.Warn("exercise rejected input", append(attrs, "error", err)...)
		return
	}
	s.logger.Debug("exercise evaluated", attrs...)
}
