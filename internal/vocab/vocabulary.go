package vocab

// NotFound is returned by Index for words outside the vocabulary.
const NotFound = -1

// Vocabulary is an ordered, immutable word list with word -> row index lookup.
// Words are expected to be unique; with duplicates the last occurrence wins.
type Vocabulary struct {
	words []string
	index map[string]int
}

// New builds a vocabulary over a copy of words.
func New(words []string) *Vocabulary {
	v := &Vocabulary{
		words: append([]string(nil), words...),
		index: make(map[string]int, len(words)),
	}
	for i, w := range v.words {
		v.index[w] = i
	}
	return v
}

// Index returns the row of word or NotFound.
func (v *Vocabulary) Index(word string) int {
	if i, ok := v.index[word]; ok {
		return i
	}
	return NotFound
}

func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.index[word]
	return ok
}

// Word returns the word at row i. It panics if i is out of range.
func (v *Vocabulary) Word(i int) string { return v.words[i] }

func (v *Vocabulary) Len() int { return len(v.words) }

// Words returns a copy of the ordered word list.
func (v *Vocabulary) Words() []string { return append([]string(nil), v.words...) }
