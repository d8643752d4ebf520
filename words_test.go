package geowords

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestWordlistLoads(t *testing.T) {
	words, index, err := wordlist()
	if err != nil {
		t.Fatalf("wordlist() error: %v", err)
	}
	if len(words) != wordlistSize {
		t.Fatalf("wordlist has %d words, want %d", len(words), wordlistSize)
	}
	if len(index) != wordlistSize {
		t.Fatalf("word index has %d entries, want %d", len(index), wordlistSize)
	}
	for i, w := range words {
		if index[w] != i {
			t.Fatalf("index[%q] = %d, want %d", w, index[w], i)
		}
	}
}

func TestLoadWordlistRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"duplicate word", strings.Repeat("alpha\n", wordlistSize)},
		{"too few words", "alpha\nbravo\n"},
		{"uppercase word", "Alpha\n"},
		{"word containing separator", "two-part\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := loadWordlist([]byte(tt.data)); err == nil {
				t.Errorf("loadWordlist accepted %s", tt.name)
			}
		})
	}
}

func TestToWordsKnownValues(t *testing.T) {
	tests := []struct {
		index     uint64
		wordCount int
		want      []string
	}{
		{0, 3, []string{"ack", "ack", "ack"}},
		{0xC00000, 3, []string{"saturn", "ack", "ack"}},
		{0xFFFFFF, 3, []string{"zulu", "zulu", "zulu"}},
		{1, 4, []string{"ack", "ack", "ack", "alabama"}},
	}
	for _, tt := range tests {
		got, err := toWords(tt.index, tt.wordCount)
		if err != nil {
			t.Fatalf("toWords(%#x, %d) error: %v", tt.index, tt.wordCount, err)
		}
		if strings.Join(got, " ") != strings.Join(tt.want, " ") {
			t.Errorf("toWords(%#x, %d) = %v, want %v", tt.index, tt.wordCount, got, tt.want)
		}
	}
}

func TestToWordsRejectsOverflow(t *testing.T) {
	_, err := toWords(1<<24, 3)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("toWords(2^24, 3) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestToWordsRejectsUnsupportedCount(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 7} {
		if _, err := toWords(0, n); !errors.Is(err, ErrUnsupportedWordCount) {
			t.Errorf("toWords(0, %d) error = %v, want ErrUnsupportedWordCount", n, err)
		}
	}
}

func TestWordCodecBijective(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for _, wordCount := range []int{3, 4, 6} {
		limit := uint64(1) << uint(8*wordCount)
		for i := 0; i < 2000; i++ {
			index := rng.Uint64() % limit
			seq, err := toWords(index, wordCount)
			if err != nil {
				t.Fatalf("toWords(%d, %d) error: %v", index, wordCount, err)
			}
			if len(seq) != wordCount {
				t.Fatalf("toWords(%d, %d) returned %d words", index, wordCount, len(seq))
			}
			back, err := toIndex(seq)
			if err != nil {
				t.Fatalf("toIndex(%v) error: %v", seq, err)
			}
			if back != index {
				t.Fatalf("toIndex(toWords(%d, %d)) = %d", index, wordCount, back)
			}
		}
	}
}

func TestToIndexErrors(t *testing.T) {
	_, err := toIndex([]string{"ack", "ack", "zeppelin"})
	if !errors.Is(err, ErrUnknownWord) {
		t.Errorf("unknown word error = %v, want ErrUnknownWord", err)
	}
	if err != nil && !strings.Contains(err.Error(), "zeppelin") {
		t.Errorf("unknown word error %q does not name the word", err)
	}

	_, err = toIndex([]string{"ack", "ack", "ack", "ack", "ack"})
	if !errors.Is(err, ErrWrongWordCount) {
		t.Errorf("five-word error = %v, want ErrWrongWordCount", err)
	}

	// Lookup is exact: the codec does not normalize case.
	_, err = toIndex([]string{"Ack", "ack", "ack"})
	if !errors.Is(err, ErrUnknownWord) {
		t.Errorf("cased word error = %v, want ErrUnknownWord", err)
	}
}

func TestIsWord(t *testing.T) {
	for word, want := range map[string]bool{
		"ack":      true,
		"zulu":     true,
		"zeppelin": false,
		"Ack":      false,
		"":         false,
	} {
		if got := IsWord(word); got != want {
			t.Errorf("IsWord(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestSuggestWords(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  []string
	}{
		{"montan", 3, []string{"montana", "mountain"}},
		{"spekaer", 3, []string{"speaker"}},
		{"zuluu", 1, []string{"zulu"}},
		{"xyzzy", 3, nil},
		{"montan", 0, nil},
	}
	for _, tt := range tests {
		got := SuggestWords(tt.input, tt.max)
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("SuggestWords(%q, %d) = %v, want %v", tt.input, tt.max, got, tt.want)
		}
	}
}
