package lists

import (
	"container/list"
	"fmt"
	"testing"
	"unsafe"
)

// BigStruct is a 128 byte element, used to see copy and cache effects.
type BigStruct struct {
	ID   int64
	Data [120]byte
}

func TestMemoryAnalysis(t *testing.T) {
	t.Log("=== Memory Footprint Analysis (64-bit Arch) ===")

	// next(8) + prev(8) + list(8) + Value(16, interface header) = 40 bytes
	var stdElem list.Element
	stdSize := unsafe.Sizeof(stdElem)
	t.Logf("[StdLib] list.Element size:    %d bytes (+ heap alloc for non-pointer values)", stdSize)

	// next(8) + val(8) = 16 bytes
	var intNode node[int]
	t.Logf("[Smart]  node[int] size:       %d bytes (inline value)", unsafe.Sizeof(intNode))

	var structNode node[BigStruct]
	t.Logf("[Smart]  node[BigStruct] size: %d bytes (inline value)", unsafe.Sizeof(structNode))
}

func BenchmarkSmartList(b *testing.B) {
	sizes := []int{100, 10_000, 1_000_000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Add/Size-%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				l := NewSmartList[int]()
				for i := range size {
					l.Add(i)
				}
			}
		})

		l := NewSmartList[int]()
		for i := range size {
			l.Add(i % 10)
		}

		b.Run(fmt.Sprintf("Iterate/Size-%d", size), func(b *testing.B) {
			for b.Loop() {
				sum := 0
				for v := range l.Values() {
					sum += v
				}
				_ = sum
			}
		})

		b.Run(fmt.Sprintf("TraverseAll/Size-%d", size), func(b *testing.B) {
			for b.Loop() {
				_ = l.TraverseAll(func(v, _ int) error {
					_ = v * v
					return nil
				})
			}
		})

		b.Run(fmt.Sprintf("TraverseAll_SingleWorker/Size-%d", size), func(b *testing.B) {
			single := &SmartList[int]{head: l.head, tail: l.tail, size: l.size, workers: 1, log: l.log}
			for b.Loop() {
				_ = single.TraverseAll(func(v, _ int) error {
					_ = v * v
					return nil
				})
			}
		})
	}
}

// heavyCalc simulates a CPU intensive callback.
func heavyCalc(x int) int {
	for i := 0; i < 1000; i++ {
		x = (x + i*i) % 10000
	}
	return x
}

func BenchmarkTraverseAll_Heavy(b *testing.B) {
	l := NewSmartList[int]()
	for i := range 10_000 {
		l.Add(i)
	}
	results := make([]int, l.Len())

	for b.Loop() {
		_ = l.TraverseAll(func(v, index int) error {
			results[index] = heavyCalc(v)
			return nil
		})
	}
}
