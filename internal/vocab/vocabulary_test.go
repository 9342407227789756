package vocab

import "testing"

func TestVocabularyLookup(t *testing.T) {
	v := New([]string{"king", "queen", "man", "woman"})

	tests := []struct {
		word      string
		wantIndex int
		wantFound bool
	}{
		{"king", 0, true},
		{"queen", 1, true},
		{"woman", 3, true},
		{"prince", NotFound, false},
		{"", NotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := v.Index(tt.word); got != tt.wantIndex {
				t.Errorf("Index(%q) = %d, want %d", tt.word, got, tt.wantIndex)
			}
			if got := v.Contains(tt.word); got != tt.wantFound {
				t.Errorf("Contains(%q) = %v, want %v", tt.word, got, tt.wantFound)
			}
		})
	}

	if v.Len() != 4 {
		t.Errorf("Len() = %d, want 4", v.Len())
	}
	if v.Word(2) != "man" {
		t.Errorf("Word(2) = %q, want man", v.Word(2))
	}
}

func TestVocabularyIsImmutable(t *testing.T) {
	words := []string{"a", "b"}
	v := New(words)
	words[0] = "z"
	if v.Word(0) != "a" {
		t.Errorf("vocabulary changed with caller slice: got %q", v.Word(0))
	}

	out := v.Words()
	out[1] = "y"
	if v.Word(1) != "b" {
		t.Errorf("vocabulary changed through Words(): got %q", v.Word(1))
	}
}

func TestNotFoundIsNeverAValidIndex(t *testing.T) {
	if NotFound >= 0 {
		t.Fatalf("NotFound = %d collides with a valid row index", NotFound)
	}
}
