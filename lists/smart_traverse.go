package lists

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"smartlist/partition"
)

var ErrCallbackPanic = fmt.Errorf("traversal callback panicked")

// DefaultWorkers is the number of traversal workers used by lists created without
// WithWorkers: max(GOMAXPROCS, 1), read once on first use and kept for the process lifetime.
var DefaultWorkers = sync.OnceValue(func() int {
	return max(runtime.GOMAXPROCS(0), 1)
})

// sublist is the part of the chain one worker visits. head is borrowed from the list.
type sublist[T any] struct {
	head  *node[T]
	start int
	count int
}

func (sl *SmartList[T]) workerCount() int {
	if sl.workers > 0 {
		return sl.workers
	}
	return DefaultWorkers()
}

// ForEach calls fn once for every element, in parallel. See TraverseAll.
// A panic in fn is recovered and returned as an error wrapping ErrCallbackPanic.
func (sl *SmartList[T]) ForEach(fn func(v T)) error {
	return sl.TraverseAll(func(v T, _ int) error {
		fn(v)
		return nil
	})
}

// TraverseAll calls fn(v, index) exactly once for every element, index being the element's
// position in the list.
//
// The list is split into one contiguous sublist per worker and each worker runs in its
// own goroutine; TraverseAll returns once all of them have finished. Calls made by one worker
// are in ascending index order, calls from different workers interleave freely.
// The list must not be modified until TraverseAll returns.
//
// When fn returns an error or panics, the worker that ran it skips the rest of its sublist.
// Other workers are not interrupted. All failures are returned together after the join.
func (sl *SmartList[T]) TraverseAll(fn func(v T, index int) error) error {
	workers := sl.workerCount()
	sl.log.Printf("Call on all with %d workers (traversal %s)\n", workers, uuid.New())
	if sl.head == nil {
		sl.log.Printf("List is empty\n")
		return nil
	}

	parts := sl.split(workers)

	var (
		wg       sync.WaitGroup
		finished int
	)
	errs := make([]error, len(parts))
	for i, part := range parts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = sl.visit(i, part, fn)

			sl.log.Locked(func(printf func(string, ...any)) {
				finished++
				printf("Worker %d ending (%d/%d)\n", i, finished, len(parts))
			})
		}()
	}
	wg.Wait()

	sl.log.Printf("All workers ended\n")
	return errors.Join(errs...)
}

// split walks the chain once and cuts it into sublists following partition.Even.
func (sl *SmartList[T]) split(workers int) []sublist[T] {
	total := 0
	for current := sl.head; current != nil; current = current.next {
		total++
	}
	sl.log.Printf("List has %d elements\n", total)

	spans := partition.Even(total, workers)
	base := total / workers
	extras := total - base*workers
	sl.log.Printf("Creating %d workers to handle %d elements and %d workers to handle %d elements\n",
		workers-extras, base, extras, base+1)
	starts := partition.Starts(spans)
	offsets := make([]string, len(starts))
	for i, s := range starts {
		offsets[i] = strconv.Itoa(s)
	}
	sl.log.Printf("Workers will start at elements: %s\n", strings.Join(offsets, " "))

	parts := make([]sublist[T], len(spans))
	current := sl.head
	for i, span := range spans {
		parts[i] = sublist[T]{head: current, start: span.Start, count: span.Count}
		for range span.Count {
			current = current.next
		}
	}
	return parts
}

func (sl *SmartList[T]) visit(worker int, part sublist[T], fn func(T, int) error) (err error) {
	sl.log.Printf("Worker %d starting with %d local nodes\n", worker, part.count)

	index := part.start
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("worker %d, element %d: %w: %v", worker, index, ErrCallbackPanic, r)
		}
	}()

	current := part.head
	for j := range part.count {
		index = part.start + j
		sl.log.Printf("Worker %d running callback for local node %d (global %d) of value %v\n",
			worker, j, index, current.val)
		if err := fn(current.val, index); err != nil {
			return fmt.Errorf("worker %d, element %d: %w", worker, index, err)
		}
		current = current.next
	}
	return nil
}
