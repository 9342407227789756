package engine

import (
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"wordaxis/internal/domain"
)

// Project returns dot(embedding(word), direction(left -> right)). The direction is
// cached per ordered pair and computed at most once per engine.
func (e *Engine) Project(word, left, right string) (float64, error) {
	row, err := e.row(word)
	if err != nil {
		return 0, err
	}
	dir, err := e.direction(domain.Axis{Left: left, Right: right})
	if err != nil {
		return 0, err
	}
	return floats.Dot(row, dir), nil
}

// ProjectNearest projects the k nearest neighbours of word onto the left -> right axis
// and returns them sorted by ascending score. The sort is stable, so equal scores keep
// their neighbour rank order.
func (e *Engine) ProjectNearest(word, left, right string, k int) ([]domain.Projection, error) {
	neighbours, err := e.Nearest(word, k)
	if err != nil {
		return nil, err
	}
	dir, err := e.direction(domain.Axis{Left: left, Right: right})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Projection, len(neighbours))
	for i, w := range neighbours {
		row, err := e.row(w)
		if err != nil {
			return nil, err
		}
		out[i] = domain.Projection{Word: w, Score: floats.Dot(row, dir)}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Score < out[b].Score })
	return out, nil
}

// Projections returns the (len(axes) x vocabulary) matrix whose entry (i, j) is the
// projection of vocabulary word j onto axes[i].
func (e *Engine) Projections(axes []domain.Axis) (*mat.Dense, error) {
	dirs, err := e.directionMatrix(axes)
	if err != nil {
		return nil, err
	}
	var scores mat.Dense
	scores.Mul(dirs, e.matrix.T())
	return &scores, nil
}

// AverageWordSimilarity returns, per axis, the mean projection over the whole vocabulary.
func (e *Engine) AverageWordSimilarity(axes []domain.Axis) ([]float64, error) {
	scores, err := e.Projections(axes)
	if err != nil {
		return nil, err
	}
	rows, cols := scores.Dims()
	means := make([]float64, rows)
	for i := range means {
		means[i] = floats.Sum(scores.RawRowView(i)) / float64(cols)
	}
	return means, nil
}

// directionMatrix stacks the unit directions of axes into a (len(axes) x dim) matrix.
func (e *Engine) directionMatrix(axes []domain.Axis) (*mat.Dense, error) {
	if len(axes) == 0 {
		return nil, ErrNoAxes
	}
	dirs := mat.NewDense(len(axes), e.dim, nil)

	var g errgroup.Group
	g.SetLimit(e.opts.Workers)
	for i, axis := range axes {
		g.Go(func() error {
			var dir []float64
			var err error
			if e.opts.BatchBypassCache {
				dir, err = e.Direction(axis.Left, axis.Right)
			} else {
				dir, err = e.direction(axis)
			}
			if err != nil {
				return err
			}
			dirs.SetRow(i, dir)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dirs, nil
}
