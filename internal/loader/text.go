// Package loader reads word embeddings stored in the word2vec / GloVe text format:
// one "word v1 v2 ... vd" line per word, optionally preceded by a "count dim" header.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Options controls how embeddings are read.
type Options struct {
	// Normalize L2-normalises every row so dot product equals cosine similarity.
	Normalize bool
	// Limit keeps only the first Limit words. Zero keeps all.
	Limit int
}

// Embeddings is a vocabulary with its row-aligned matrix.
type Embeddings struct {
	Words  []string
	Matrix *mat.Dense
}

// Load reads embeddings from the file at path.
func Load(path string, opts Options) (*Embeddings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	emb, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return emb, nil
}

// Read parses embeddings from r.
func Read(r io.Reader, opts Options) (*Embeddings, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		words []string
		data  []float64
		dim   int
		seen  = make(map[string]struct{})
		line  int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if line == 1 && isHeader(fields) {
			dim, _ = strconv.Atoi(fields[1])
			continue
		}
		if dim == 0 {
			dim = len(fields) - 1
			if dim <= 0 {
				return nil, fmt.Errorf("line %d: no vector components", line)
			}
		}
		if len(fields)-1 != dim {
			return nil, fmt.Errorf("line %d: %d components, want %d", line, len(fields)-1, dim)
		}
		word := fields[0]
		if _, dup := seen[word]; dup {
			return nil, fmt.Errorf("line %d: duplicate word %q", line, word)
		}
		seen[word] = struct{}{}

		row := make([]float64, dim)
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			row[i] = v
		}
		if opts.Normalize {
			normalize(row)
		}
		words = append(words, word)
		data = append(data, row...)
		if opts.Limit > 0 && len(words) == opts.Limit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, errors.New("no embeddings found")
	}
	return &Embeddings{Words: words, Matrix: mat.NewDense(len(words), dim, data)}, nil
}

func isHeader(fields []string) bool {
	if len(fields) != 2 {
		return false
	}
	_, err1 := strconv.Atoi(fields[0])
	_, err2 := strconv.Atoi(fields[1])
	return err1 == nil && err2 == nil
}

// normalize scales v to unit length in place. Zero vectors are left unchanged.
func normalize(v []float64) {
	if n := floats.Norm(v, 2); n > 0 {
		floats.Scale(1/n, v)
	}
}
