package algo

import "github.com/bnclabs/goseq/api"

// SortMode select the sorting algorithm.
type SortMode byte

const (
	// SortQuick last-element-pivot quicksort, O(n log n) average,
	// O(n*n) on adversarial input, not stable.
	SortQuick SortMode = iota + 1
	// SortMerge midpoint-split merge sort with temporary buffers,
	// O(n log n) worst case, stable.
	SortMerge
	// SortHeap heap sort over logical indices, O(n log n), in place,
	// not stable.
	SortHeap
	// SortInsert insertion sort, O(n*n), fast on short or nearly
	// sorted ranges.
	SortInsert
)

// Sort the range [begin, end) ascending under cmp, with the algorithm
// picked by mode. Elements move between positions by value, iterator
// positions themselves never move.
func Sort[T any](
	begin, end api.Iterator[T], cmp api.Comparefn[T], mode SortMode) error {

	if err := checkrange(begin, end); err != nil {
		return err
	} else if cmp == nil {
		return api.ErrorNilArgument
	}
	refs := gather(begin, end)
	if len(refs) < 2 {
		return nil
	}
	switch mode {
	case SortQuick:
		quicksort(refs, cmp, 0, len(refs)-1)
	case SortMerge:
		mergesort(refs, cmp)
	case SortHeap:
		heapsort(refs, cmp)
	case SortInsert:
		insertionsort(refs, cmp)
	default:
		return api.ErrorInvalidArgument
	}
	return nil
}

// Stablesort sort the range keeping equal elements in their original
// relative order. Alias for merge mode.
func Stablesort[T any](begin, end api.Iterator[T], cmp api.Comparefn[T]) error {
	return Sort(begin, end, cmp, SortMerge)
}

// Issorted report whether the range is ascending under cmp.
func Issorted[T any](
	begin, end api.Iterator[T], cmp api.Comparefn[T]) (bool, error) {

	if err := checkrange(begin, end); err != nil {
		return false, err
	} else if cmp == nil {
		return false, api.ErrorNilArgument
	}
	iter := begin.Clone()
	defer iter.Close()
	if iter.Equal(end) {
		return true, nil
	}
	prev, _ := iter.Get()
	for iter.Next(); iter.Equal(end) == false; iter.Next() {
		x, _ := iter.Get()
		if cmp(prev, x) > 0 {
			return false, nil
		}
		prev = x
	}
	return true, nil
}

//---- local functions

func quicksort[T any](refs []*T, cmp api.Comparefn[T], low, high int) {
	if low >= high {
		return
	}
	p := lomuto(refs, cmp, low, high)
	quicksort(refs, cmp, low, p-1)
	quicksort(refs, cmp, p+1, high)
}

// partition around the last element, elements strictly under the
// pivot to the left.
func lomuto[T any](refs []*T, cmp api.Comparefn[T], low, high int) int {
	pivot := *refs[high]
	i := low - 1
	for j := low; j < high; j++ {
		if cmp(refs[j], &pivot) < 0 {
			i++
			*refs[i], *refs[j] = *refs[j], *refs[i]
		}
	}
	i++
	*refs[i], *refs[high] = *refs[high], *refs[i]
	return i
}

// split at the midpoint, sort each half, merge through two value
// buffers. `<=` keeps the left half's copy first, making it stable.
func mergesort[T any](refs []*T, cmp api.Comparefn[T]) {
	n := len(refs)
	if n < 2 {
		return
	}
	mid := n / 2
	mergesort(refs[:mid], cmp)
	mergesort(refs[mid:], cmp)

	left, right := make([]T, mid), make([]T, n-mid)
	for i := 0; i < mid; i++ {
		left[i] = *refs[i]
	}
	for i := mid; i < n; i++ {
		right[i-mid] = *refs[i]
	}

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if cmp(&left[i], &right[j]) <= 0 {
			*refs[k] = left[i]
			i++
		} else {
			*refs[k] = right[j]
			j++
		}
		k++
	}
	for ; i < len(left); i, k = i+1, k+1 {
		*refs[k] = left[i]
	}
	for ; j < len(right); j, k = j+1, k+1 {
		*refs[k] = right[j]
	}
}

func heapsort[T any](refs []*T, cmp api.Comparefn[T]) {
	n := len(refs)
	for i := n/2 - 1; i >= 0; i-- {
		siftdown(refs, cmp, i, n)
	}
	for i := n - 1; i > 0; i-- {
		*refs[0], *refs[i] = *refs[i], *refs[0]
		siftdown(refs, cmp, 0, i)
	}
}

func siftdown[T any](refs []*T, cmp api.Comparefn[T], root, boundary int) {
	for {
		largest, left, right := root, 2*root+1, 2*root+2
		if left < boundary && cmp(refs[left], refs[largest]) > 0 {
			largest = left
		}
		if right < boundary && cmp(refs[right], refs[largest]) > 0 {
			largest = right
		}
		if largest == root {
			return
		}
		*refs[root], *refs[largest] = *refs[largest], *refs[root]
		root = largest
	}
}

func insertionsort[T any](refs []*T, cmp api.Comparefn[T]) {
	for i := 1; i < len(refs); i++ {
		key := *refs[i]
		j := i - 1
		for j >= 0 && cmp(refs[j], &key) > 0 {
			*refs[j+1] = *refs[j]
			j--
		}
		*refs[j+1] = key
	}
}
