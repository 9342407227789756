package service

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"wordaxis/internal/domain"
)

// Explorer answers bias-analysis queries against a fixed set of axes.
// Projections are recentred on each axis's vocabulary-wide mean.
type Explorer struct {
	engine    domain.Engine
	axes      []domain.Axis
	baselines []float64
	neighbors int
}

func NewExplorer(engine domain.Engine, axes []domain.Axis, neighbors int) (*Explorer, error) {
	if neighbors <= 0 {
		neighbors = 20
	}
	baselines, err := engine.AverageWordSimilarity(axes)
	if err != nil {
		return nil, fmt.Errorf("axis baselines: %w", err)
	}
	return &Explorer{
		engine:    engine,
		axes:      append([]domain.Axis(nil), axes...),
		baselines: baselines,
		neighbors: neighbors,
	}, nil
}

func (x *Explorer) Axes() []domain.Axis { return append([]domain.Axis(nil), x.axes...) }

// Baseline returns the mean projection of the vocabulary onto axis i.
func (x *Explorer) Baseline(i int) (float64, error) {
	if err := x.checkAxis(i); err != nil {
		return 0, err
	}
	return x.baselines[i], nil
}

// Explore projects the k nearest neighbours of word onto axis i, minus the axis baseline,
// sorted ascending. k <= 0 uses the configured neighbour count.
func (x *Explorer) Explore(word string, i, k int) ([]domain.Projection, error) {
	if err := x.checkAxis(i); err != nil {
		return nil, err
	}
	if k <= 0 {
		k = x.neighbors
	}
	axis := x.axes[i]
	res, err := x.engine.ProjectNearest(word, axis.Left, axis.Right, k)
	if err != nil {
		return nil, err
	}
	for j := range res {
		res[j].Score -= x.baselines[i]
	}
	return res, nil
}

// Analogy returns the k words closest to b - a + c ("a is to b as c is to ?"),
// leaving out the three query words.
func (x *Explorer) Analogy(a, b, c string, k int) ([]domain.Projection, error) {
	if k <= 0 {
		k = x.neighbors
	}
	va, err := x.engine.Embedding(a)
	if err != nil {
		return nil, err
	}
	vb, err := x.engine.Embedding(b)
	if err != nil {
		return nil, err
	}
	vc, err := x.engine.Embedding(c)
	if err != nil {
		return nil, err
	}
	floats.Sub(vb, va)
	floats.Add(vb, vc)

	ranked, err := x.engine.NearestToVector(vb, k+3)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Projection, 0, k)
	for _, r := range ranked {
		if r.Word == a || r.Word == b || r.Word == c {
			continue
		}
		out = append(out, r)
		if len(out) == k {
			break
		}
	}
	return out, nil
}

func (x *Explorer) checkAxis(i int) error {
	if i < 0 || i >= len(x.axes) {
		return fmt.Errorf("axis %d out of range [0, %d)", i, len(x.axes))
	}
	return nil
}
