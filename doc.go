/*
Package drills is a small collection of numeric and geometric exercises with a
uniform, observable entry point.

The exercises themselves live in focused packages under pkg/ and are pure:

  - sequence: lazy sequence 3, 3+d, 3+2d, ... up to an inclusive ceiling.
  - triangle: n lists where the k-th list holds 1..k.
  - fibonacci: sums of even Fibonacci terms with arbitrary precision.
  - arrays: deduplicated intersection of two sorted slices.
  - digits: odd-digit detection and X+XX+XXX+XXXX.
  - geometry: splitting a polygon along a cut line.

Solver wraps them with structured logging and Prometheus counters, which is
what the drills CLI uses.

# Usage

	s := drills.New(drills.WithLogger(logger))

	total, err := s.SumDivisible(102029, 3)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(total) // 1735144485

	rows, err := s.Triangular(3)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(rows) // [[1] [1 2] [1 2 3]]

Invalid inputs (a non-positive divisor, a negative count) fail with an error
wrapping domain.ErrInvalidArgument.
*/
package drills
