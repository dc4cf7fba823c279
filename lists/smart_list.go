package lists

import (
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"smartlist/diag"
)

type node[T any] struct {
	next *node[T]
	val  T
}

// EqualFunc reports whether a list element matches a searched value.
// The element is always passed first.
type EqualFunc[T any] func(candidate, value T) bool

// Equal is an EqualFunc for comparable element types.
func Equal[T comparable](a, b T) bool {
	return a == b
}

// SmartList is a singly linked list whose every node is referenced by exactly one
// predecessor (or by the list itself for the head).
//
// A SmartList must be created with NewSmartList; the zero value has no diagnostic log and
// is not usable.
//
// A SmartList has a single writer. TraverseAll reads the chain from several goroutines and
// requires that no Add, Remove or Clear runs until it returns.
type SmartList[T any] struct {
	head *node[T]
	// tail is a shortcut for Add; the node is still owned by its predecessor.
	tail    *node[T]
	size    int
	workers int
	log     *diag.Log
}

type config struct {
	logging bool
	out     io.Writer
	workers int
}

// Option configures a SmartList at construction.
type Option func(*config)

// WithLogging sets the initial state of the diagnostic log.
func WithLogging(enabled bool) Option {
	return func(c *config) {
		c.logging = enabled
	}
}

// WithLogOutput sets where diagnostic lines go while logging is enabled. Default os.Stdout.
func WithLogOutput(w io.Writer) Option {
	return func(c *config) {
		c.out = w
	}
}

// WithWorkers fixes the number of traversal workers for this list instead of DefaultWorkers.
func WithWorkers(count int) Option {
	return func(c *config) {
		if count < 1 {
			count = 1
		}
		c.workers = count
	}
}

// NewSmartList returns an empty list. Logging is off unless WithLogging(true) is given.
func NewSmartList[T any](options ...Option) *SmartList[T] {
	cfg := config{out: os.Stdout}
	for _, opt := range options {
		opt(&cfg)
	}
	return &SmartList[T]{
		workers: cfg.workers,
		log:     diag.New(cfg.out, cfg.logging),
	}
}

// SetLogging switches diagnostic output on or off.
func (sl *SmartList[T]) SetLogging(enabled bool) {
	sl.log.SetEnabled(enabled)
}

// Logging reports whether diagnostic output is enabled.
func (sl *SmartList[T]) Logging() bool {
	return sl.log.Enabled()
}

// Add appends value to the end of the list.
func (sl *SmartList[T]) Add(value T) {
	sl.log.Printf("Adding new element %v\n", value)
	sl.push(value)
}

// AddMany appends values in order as a single operation.
func (sl *SmartList[T]) AddMany(values ...T) {
	sl.log.Printf("Adding %d new elements\n", len(values))
	for _, v := range values {
		sl.push(v)
	}
}

func (sl *SmartList[T]) push(value T) {
	n := &node[T]{val: value}
	if sl.head == nil {
		sl.head = n
	} else {
		sl.tail.next = n
	}
	sl.tail = n
	sl.size++
}

// RemoveFirst removes the first element for which equals(element, value) holds.
// Reports whether an element was removed.
func (sl *SmartList[T]) RemoveFirst(value T, equals EqualFunc[T]) bool {
	if sl.head == nil {
		sl.log.Printf("List is empty. No elements removed\n")
		return false
	}

	if equals(sl.head.val, value) {
		sl.unlinkHead()
		sl.log.Printf("Removed 1 element\n")
		return true
	}

	for current := sl.head; current.next != nil; current = current.next {
		if equals(current.next.val, value) {
			sl.unlinkAfter(current)
			sl.log.Printf("Removed 1 element\n")
			return true
		}
	}

	sl.log.Printf("Searched the list. No elements removed\n")
	return false
}

// RemoveAll removes every element for which equals(element, value) holds and returns
// how many were removed.
func (sl *SmartList[T]) RemoveAll(value T, equals EqualFunc[T]) int {
	if sl.head == nil {
		sl.log.Printf("List is empty. No elements removed\n")
		return 0
	}

	removed := 0
	// a run of matches at the head
	for sl.head != nil && equals(sl.head.val, value) {
		sl.unlinkHead()
		removed++
	}

	if sl.head != nil {
		current := sl.head
		for current.next != nil {
			if equals(current.next.val, value) {
				sl.unlinkAfter(current)
				removed++
			} else {
				current = current.next
			}
		}
	}

	sl.log.Printf("Removed %d elements\n", removed)
	return removed
}

func (sl *SmartList[T]) unlinkHead() {
	old := sl.head
	sl.head = old.next
	if sl.head == nil {
		sl.tail = nil
	}
	old.next = nil
	sl.size--
}

func (sl *SmartList[T]) unlinkAfter(prev *node[T]) {
	target := prev.next
	prev.next = target.next
	if sl.tail == target {
		sl.tail = prev
	}
	target.next = nil
	sl.size--
}

// Clear drops every element. Logging and worker settings are kept.
func (sl *SmartList[T]) Clear() {
	sl.log.Printf("Clearing the list\n")
	sl.head = nil
	sl.tail = nil
	sl.size = 0
}

// Len returns the number of elements.
func (sl *SmartList[T]) Len() int {
	return sl.size
}

// IsEmpty reports whether the list has no elements.
func (sl *SmartList[T]) IsEmpty() bool {
	return sl.head == nil
}

// First returns the head element, or false when the list is empty.
func (sl *SmartList[T]) First() (val T, ok bool) {
	if sl.head == nil {
		return val, false
	}
	return sl.head.val, true
}

// Values yields the elements in traversal order.
func (sl *SmartList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := sl.head; current != nil; current = current.next {
			if !yield(current.val) {
				return
			}
		}
	}
}

// All yields index/element pairs in traversal order.
func (sl *SmartList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for current := sl.head; current != nil; current = current.next {
			if !yield(index, current.val) {
				return
			}
			index++
		}
	}
}

// ToSlice copies the elements into a new slice in traversal order.
func (sl *SmartList[T]) ToSlice() []T {
	res := make([]T, 0, sl.size)
	for current := sl.head; current != nil; current = current.next {
		res = append(res, current.val)
	}
	return res
}

// Print writes the list content to w, or to os.Stdout when w is nil.
// An empty list prints "List is empty" without a newline.
func (sl *SmartList[T]) Print(w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}
	_, err := io.WriteString(w, sl.String())
	return err
}

func (sl *SmartList[T]) String() string {
	if sl.head == nil {
		return "List is empty"
	}
	strBuilder := strings.Builder{}
	strBuilder.WriteString("List content: ")
	for current := sl.head; current != nil; current = current.next {
		fmt.Fprintf(&strBuilder, "%v", current.val)
		if current.next != nil {
			strBuilder.WriteString(", ")
		}
	}
	strBuilder.WriteString("\n")
	return strBuilder.String()
}
