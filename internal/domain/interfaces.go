package domain

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Axis is an ordered word pair defining the direction Left -> Right.
// Axis{"a", "b"} and Axis{"b", "a"} are distinct.
type Axis struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

func (a Axis) String() string { return a.Left + " -> " + a.Right }

// Projection is a word paired with its scalar projection onto an axis.
type Projection struct {
	Word  string
	Score float64
}

var (
	// ErrUnknownWord matches every UnknownWordError via errors.Is.
	ErrUnknownWord = errors.New("unknown word")
	// ErrDegenerateAxis matches every DegenerateAxisError via errors.Is.
	ErrDegenerateAxis = errors.New("degenerate axis")
)

// UnknownWordError reports a word absent from the vocabulary.
type UnknownWordError struct {
	Word string
}

func (e *UnknownWordError) Error() string { return fmt.Sprintf("unknown word %q", e.Word) }

func (e *UnknownWordError) Is(target error) bool { return target == ErrUnknownWord }

// DegenerateAxisError reports an axis whose endpoints have (near) identical embeddings,
// so the direction cannot be normalised.
type DegenerateAxisError struct {
	Axis Axis
	Norm float64
}

func (e *DegenerateAxisError) Error() string {
	return fmt.Sprintf("degenerate axis %s: difference norm %g", e.Axis, e.Norm)
}

func (e *DegenerateAxisError) Is(target error) bool { return target == ErrDegenerateAxis }

// Engine is the query surface over a fixed embedding matrix and vocabulary.
type Engine interface {
	Embedding(word string) ([]float64, error)
	HasWord(word string) bool
	Direction(word1, word2 string) ([]float64, error)
	Nearest(word string, k int) ([]string, error)
	NearestToVector(vec []float64, k int) ([]Projection, error)
	Project(word, left, right string) (float64, error)
	ProjectNearest(word, left, right string, k int) ([]Projection, error)
	AverageWordSimilarity(axes []Axis) ([]float64, error)
	Projections(axes []Axis) (*mat.Dense, error)
}
