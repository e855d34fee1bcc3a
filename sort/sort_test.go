package sort

import (
	"math/rand"
	"reflect"
	stdsort "sort"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/helpfirst/chunksort/list"
)

func intLess(a, b int) bool { return a < b }

func makeRandomInts(size, limit int) []int {
	result := make([]int, size)
	for i := 0; i < size; i++ {
		result[i] = rand.Intn(limit)
	}
	return result
}

func makeRandomFloats(size int) []float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1000}
	result := make([]float64, size)
	for i := 0; i < size; i++ {
		result[i] = dist.Rand()
	}
	return result
}

// sortedCopy is the oracle: the standard library's sort over a copy.
func sortedCopy(values []int) []int {
	expected := make([]int, len(values))
	copy(expected, values)
	stdsort.Ints(expected)
	return expected
}

func TestParallelSort(t *testing.T) {
	t.Run("Ints", func(t *testing.T) {
		values := makeRandomInts(10000, 100*10000)
		got := Sort(list.Of(values...)).Values()
		if !reflect.DeepEqual(got, sortedCopy(values)) {
			t.Errorf("parallel sort incorrect")
		}
	})

	t.Run("Floats", func(t *testing.T) {
		values := makeRandomFloats(10000)
		expected := make([]float64, len(values))
		copy(expected, values)
		stdsort.Float64s(expected)
		got := Sort(list.Of(values...)).Values()
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("parallel sort incorrect")
		}
	})

	t.Run("Strings", func(t *testing.T) {
		values := []string{"pear", "apple", "plum", "apple", "fig"}
		expected := make([]string, len(values))
		copy(expected, values)
		stdsort.Strings(expected)
		got := Sort(list.Of(values...)).Values()
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("got %v, want %v", got, expected)
		}
	})

	// Sorting with many equal elements exercises the "not less than pivot"
	// side of the partition.
	t.Run("Duplicates", func(t *testing.T) {
		values := makeRandomInts(10000, 10)
		got := Sort(list.Of(values...)).Values()
		if !reflect.DeepEqual(got, sortedCopy(values)) {
			t.Errorf("parallel sort incorrect")
		}
	})
}

func TestEmpty(t *testing.T) {
	in := list.New[int]()
	out := ParallelSort(in, intLess)
	if out != in || out.Len() != 0 {
		t.Errorf("empty input not returned unchanged")
	}
}

func TestSingleElement(t *testing.T) {
	got := ParallelSort(list.Of(42), intLess).Values()
	if !reflect.DeepEqual(got, []int{42}) {
		t.Errorf("got %v", got)
	}
}

// First-element pivot selection makes descending input the worst case: every
// split moves the whole remainder into the low chunk, producing a chain of
// chunks proportional to the input size. The sort must still terminate with
// a correct result.
func TestDescendingInput(t *testing.T) {
	const size = 10000
	values := make([]int, size)
	for i := range values {
		values[i] = size - i
	}
	got := Sort(list.Of(values...)).Values()
	if !reflect.DeepEqual(got, sortedCopy(values)) {
		t.Errorf("descending input sorted incorrectly")
	}
}

func TestResortSorted(t *testing.T) {
	values := makeRandomInts(10000, 10000)
	once := Sort(list.Of(values...))
	expected := once.Values()
	twice := Sort(once).Values()
	if !reflect.DeepEqual(twice, expected) {
		t.Errorf("re-sorting a sorted list changed it")
	}
}

func TestSequentialSort(t *testing.T) {
	values := makeRandomInts(1000, 100)
	got := SequentialSort(list.Of(values...), intLess).Values()
	if !reflect.DeepEqual(got, sortedCopy(values)) {
		t.Errorf("sequential sort incorrect")
	}
}

func TestIsSorted(t *testing.T) {
	if !IsSorted(list.Of(1, 2, 2, 3), intLess) {
		t.Errorf("sorted list reported unsorted")
	}
	if IsSorted(list.Of(2, 1), intLess) {
		t.Errorf("unsorted list reported sorted")
	}
	if !IsSorted(list.New[int](), intLess) || !IsSorted(list.Of(1), intLess) {
		t.Errorf("trivial lists reported unsorted")
	}
}

// The spawn counter must never exceed the configured cap, no matter how many
// chunks are pushed by concurrently splitting goroutines.
func TestWorkerCapRespected(t *testing.T) {
	const limit = 2
	values := makeRandomInts(10000, 10000)
	e := &engine[int]{less: intLess, cap: limit}
	got := e.sort(list.Of(values...)).Values()
	e.shutdown()
	if n := e.workers.Load(); n > limit {
		t.Errorf("spawned %d workers, cap is %d", n, limit)
	}
	if !reflect.DeepEqual(got, sortedCopy(values)) {
		t.Errorf("capped sort incorrect")
	}
}

// With a cap of zero the calling goroutine drains every chunk itself.
func TestMaxWorkersZero(t *testing.T) {
	values := makeRandomInts(5000, 5000)
	got := Sort(list.Of(values...), WithMaxWorkers(0)).Values()
	if !reflect.DeepEqual(got, sortedCopy(values)) {
		t.Errorf("single-goroutine sort incorrect")
	}
}

func TestNegativeMaxWorkers(t *testing.T) {
	got := Sort(list.Of(3, 1, 2), WithMaxWorkers(-1)).Values()
	if !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v", got)
	}
}

// A panic raised by the ordering function inside a worker must be rethrown
// on the goroutine that called ParallelSort, after all workers have exited.
func TestLessPanicPropagates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("panic in less did not propagate")
		}
	}()
	values := makeRandomInts(1000, 1000)
	ParallelSort(list.Of(values...), func(a, b int) bool {
		if a == values[500] || b == values[500] {
			panic("bad comparison")
		}
		return a < b
	})
}

func BenchmarkSort(b *testing.B) {
	orgValues := makeRandomInts(10000, 100*10000)

	b.Run("SequentialSort", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			data := list.Of(orgValues...)
			b.StartTimer()
			SequentialSort(data, intLess)
		}
	})

	b.Run("ParallelSort", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			data := list.Of(orgValues...)
			b.StartTimer()
			ParallelSort(data, intLess)
		}
	})
}
