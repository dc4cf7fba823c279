// Package partition splits an index range into contiguous spans, one per worker.
package partition

// Span is a contiguous range [Start, Start+Count) of element indices.
type Span struct {
	Start int
	Count int
}

// End returns the index one past the last element of the span.
func (s Span) End() int {
	return s.Start + s.Count
}

// Even divides total elements between workers.
// Every worker gets total/workers elements and the first total%workers workers get one extra,
// so span sizes differ by at most one. Spans are returned in ascending order, contiguous,
// and always exactly workers of them; some may be empty when total < workers.
// workers < 1 is treated as 1 and total < 0 as 0.
func Even(total, workers int) []Span {
	if workers < 1 {
		workers = 1
	}
	if total < 0 {
		total = 0
	}

	base := total / workers
	extras := total - base*workers

	spans := make([]Span, workers)
	start := 0
	for i := range spans {
		count := base
		if i < extras {
			count++
		}
		spans[i] = Span{Start: start, Count: count}
		start = spans[i].End()
	}
	return spans
}

// Starts returns the start index of every span.
func Starts(spans []Span) []int {
	res := make([]int, len(spans))
	for i, s := range spans {
		res[i] = s.Start
	}
	return res
}
