package loader

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		opts      Options
		wantWords []string
		wantDim   int
		wantErr   bool
	}{
		{
			name:      "glove format",
			input:     "king 5 5\nqueen 5 6\nman 1 1\nwoman 1 2\n",
			wantWords: []string{"king", "queen", "man", "woman"},
			wantDim:   2,
		},
		{
			name:      "word2vec header",
			input:     "2 3\na 1 0 0\nb 0 1 0\n",
			wantWords: []string{"a", "b"},
			wantDim:   3,
		},
		{
			name:      "blank lines skipped",
			input:     "\na 1 2\n\nb 3 4\n\n",
			wantWords: []string{"a", "b"},
			wantDim:   2,
		},
		{
			name:      "limit",
			input:     "a 1\nb 2\nc 3\n",
			opts:      Options{Limit: 2},
			wantWords: []string{"a", "b"},
			wantDim:   1,
		},
		{name: "ragged rows", input: "a 1 2\nb 1\n", wantErr: true},
		{name: "header mismatch", input: "1 3\na 1 2\n", wantErr: true},
		{name: "bad number", input: "a 1 x\n", wantErr: true},
		{name: "duplicate word", input: "a 1\na 2\n", wantErr: true},
		{name: "word only", input: "a\n", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emb, err := Read(strings.NewReader(tt.input), tt.opts)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if strings.Join(emb.Words, ",") != strings.Join(tt.wantWords, ",") {
				t.Errorf("words = %v, want %v", emb.Words, tt.wantWords)
			}
			rows, cols := emb.Matrix.Dims()
			if rows != len(tt.wantWords) || cols != tt.wantDim {
				t.Errorf("matrix = %dx%d, want %dx%d", rows, cols, len(tt.wantWords), tt.wantDim)
			}
		})
	}
}

func TestReadNormalize(t *testing.T) {
	emb, err := Read(strings.NewReader("a 3 4\nzero 0 0\n"), Options{Normalize: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := emb.Matrix.RawRowView(0); !floats.EqualApprox(got, []float64{0.6, 0.8}, 1e-12) {
		t.Errorf("row a = %v, want [0.6 0.8]", got)
	}
	if n := floats.Norm(emb.Matrix.RawRowView(1), 2); n != 0 {
		t.Errorf("zero row norm = %v, want 0", n)
	}
	if math.IsNaN(emb.Matrix.At(1, 0)) {
		t.Error("zero row became NaN")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.txt")
	if err := os.WriteFile(path, []byte("man 1 1\nwoman 1 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	emb, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if emb.Matrix.At(1, 1) != 2 {
		t.Errorf("woman[1] = %v, want 2", emb.Matrix.At(1, 1))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt"), Options{}); err == nil {
		t.Error("expected error for missing file")
	}
}
