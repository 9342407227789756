// Package engine answers lookup, direction, nearest-neighbour and projection
// queries over a fixed word-embedding matrix.
package engine

import (
	"errors"
	"fmt"
	"runtime"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"wordaxis/internal/domain"
	"wordaxis/internal/vocab"
)

// DefaultEpsilon is the smallest difference norm accepted for a direction.
const DefaultEpsilon = 1e-12

// ErrNoAxes is returned by the batch operations when called without axes.
var ErrNoAxes = errors.New("no axes given")

// Options tunes an Engine. The zero value is usable.
type Options struct {
	// Epsilon is the minimum L2 norm of an axis difference vector. Zero means DefaultEpsilon.
	Epsilon float64
	// Workers bounds concurrent direction resolution in batch operations. Zero means GOMAXPROCS.
	Workers int
	// BatchBypassCache makes AverageWordSimilarity and Projections recompute every direction
	// without reading or populating the direction cache.
	BatchBypassCache bool
}

// Engine holds an immutable embedding matrix, its vocabulary and a direction cache.
//
// Row i of the matrix is the embedding of vocabulary word i. The row count must equal
// the vocabulary length and words must be unique; neither is validated.
type Engine struct {
	matrix *mat.Dense
	vocab  *vocab.Vocabulary
	dim    int
	cache  *DirectionCache
	opts   Options
}

var _ domain.Engine = (*Engine)(nil)

// New creates an engine over matrix (len(words) x dim). The engine takes ownership of matrix.
func New(matrix *mat.Dense, words []string, opts Options) *Engine {
	if opts.Epsilon == 0 {
		opts.Epsilon = DefaultEpsilon
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	_, dim := matrix.Dims()
	return &Engine{
		matrix: matrix,
		vocab:  vocab.New(words),
		dim:    dim,
		cache:  NewDirectionCache(),
		opts:   opts,
	}
}

// Dim returns the embedding width.
func (e *Engine) Dim() int { return e.dim }

func (e *Engine) Vocabulary() *vocab.Vocabulary { return e.vocab }

// Cache exposes the direction cache, mainly for its statistics.
func (e *Engine) Cache() *DirectionCache { return e.cache }

// HasWord reports whether word is in the vocabulary.
func (e *Engine) HasWord(word string) bool { return e.vocab.Contains(word) }

// Embedding returns a copy of word's row.
func (e *Engine) Embedding(word string) ([]float64, error) {
	row, err := e.row(word)
	if err != nil {
		return nil, err
	}
	return append([]float64(nil), row...), nil
}

// row returns the matrix-backed row of word. Callers must not modify it.
func (e *Engine) row(word string) ([]float64, error) {
	i := e.vocab.Index(word)
	if i == vocab.NotFound {
		return nil, &domain.UnknownWordError{Word: word}
	}
	return e.matrix.RawRowView(i), nil
}

// Direction returns the unit vector from word1 to word2. It never touches the cache.
func (e *Engine) Direction(word1, word2 string) ([]float64, error) {
	from, err := e.row(word1)
	if err != nil {
		return nil, err
	}
	to, err := e.row(word2)
	if err != nil {
		return nil, err
	}
	diff := append([]float64(nil), to...)
	floats.Sub(diff, from)
	norm := floats.Norm(diff, 2)
	if !(norm >= e.opts.Epsilon) {
		return nil, &domain.DegenerateAxisError{Axis: domain.Axis{Left: word1, Right: word2}, Norm: norm}
	}
	floats.Scale(1/norm, diff)
	return diff, nil
}

// direction resolves axis through the cache, computing and storing it on a miss.
func (e *Engine) direction(axis domain.Axis) ([]float64, error) {
	if dir, ok := e.cache.Get(axis); ok {
		return dir, nil
	}
	dir, err := e.Direction(axis.Left, axis.Right)
	if err != nil {
		return nil, err
	}
	return e.cache.Put(axis, dir), nil
}

func (e *Engine) checkDim(vec []float64) error {
	if len(vec) != e.dim {
		return fmt.Errorf("query vector has dimension %d, want %d", len(vec), e.dim)
	}
	return nil
}
