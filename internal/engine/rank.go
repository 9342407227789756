package engine

import (
	"container/heap"
	"sort"

	"gonum.org/v1/gonum/mat"

	"wordaxis/internal/domain"
)

// NearestToVector ranks every vocabulary row by dot product with vec and returns the
// top k words, highest score first. Order among equal scores is unspecified.
func (e *Engine) NearestToVector(vec []float64, k int) ([]domain.Projection, error) {
	if err := e.checkDim(vec); err != nil {
		return nil, err
	}
	scores := e.similarities(vec)
	idxs := argTopK(scores, k)
	out := make([]domain.Projection, len(idxs))
	for i, j := range idxs {
		out[i] = domain.Projection{Word: e.vocab.Word(j), Score: scores[j]}
	}
	return out, nil
}

// Nearest returns the k words most similar to word by dot product, including word itself.
func (e *Engine) Nearest(word string, k int) ([]string, error) {
	row, err := e.row(word)
	if err != nil {
		return nil, err
	}
	ranked, err := e.NearestToVector(row, k)
	if err != nil {
		return nil, err
	}
	words := make([]string, len(ranked))
	for i, r := range ranked {
		words[i] = r.Word
	}
	return words, nil
}

// similarities returns matrix · vec, one score per vocabulary row.
func (e *Engine) similarities(vec []float64) []float64 {
	var scores mat.VecDense
	scores.MulVec(e.matrix, mat.NewVecDense(len(vec), vec))
	return scores.RawVector().Data
}

// argTopK returns the indexes of the k largest values in descending order.
// It keeps a size-k min-heap, so the cost is O(n log k).
func argTopK(vals []float64, k int) []int {
	if k > len(vals) {
		k = len(vals)
	}
	if k <= 0 {
		return []int{}
	}
	h := &minHeap{vals: vals, idxs: make([]int, 0, k)}
	for i := range vals {
		if h.Len() < k {
			heap.Push(h, i)
			continue
		}
		if vals[i] > vals[h.idxs[0]] {
			h.idxs[0] = i
			heap.Fix(h, 0)
		}
	}
	out := h.idxs
	sort.Slice(out, func(a, b int) bool { return vals[out[a]] > vals[out[b]] })
	return out
}

type minHeap struct {
	vals []float64
	idxs []int
}

func (h *minHeap) Len() int           { return len(h.idxs) }
func (h *minHeap) Less(a, b int) bool { return h.vals[h.idxs[a]] < h.vals[h.idxs[b]] }
func (h *minHeap) Swap(a, b int)      { h.idxs[a], h.idxs[b] = h.idxs[b], h.idxs[a] }
func (h *minHeap) Push(x any)         { h.idxs = append(h.idxs, x.(int)) }

func (h *minHeap) Pop() any {
	n := len(h.idxs)
	x := h.idxs[n-1]
	h.idxs = h.idxs[:n-1]
	return x
}
