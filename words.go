package geowords

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
)

//go:embed wordlist.txt
var wordlistData []byte

// wordlistSize is the required vocabulary size W. With W = 2^wordBits each
// word carries exactly wordBits bits of the cell index, so W^n == 2^(8n) and
// the word codec is a total bijection for every supported word count.
const (
	wordlistSize = 256
	wordBits     = 8
)

// The wordlist is loaded once per process and read-only thereafter.
// All lookups are safe for concurrent use.
var (
	wordlistOnce  sync.Once
	wordlistErr   error
	wordlistWords []string
	wordlistIndex map[string]int
)

// wordlist returns the embedded vocabulary, loading and validating it on
// first use. Validation failures are configuration errors: they are fatal
// for every subsequent call, never retryable.
func wordlist() ([]string, map[string]int, error) {
	wordlistOnce.Do(func() {
		wordlistWords, wordlistIndex, wordlistErr = loadWordlist(wordlistData)
	})
	return wordlistWords, wordlistIndex, wordlistErr
}

// loadWordlist parses one word per line and checks the invariants the codec
// depends on: exact size, uniqueness, and enough words to represent every
// cell index at every supported word count.
func loadWordlist(data []byte) ([]string, map[string]int, error) {
	words := make([]string, 0, wordlistSize)
	index := make(map[string]int, wordlistSize)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		if w != strings.ToLower(w) || strings.ContainsAny(w, "-. \t") {
			return nil, nil, fmt.Errorf("wordlist: invalid word %q", w)
		}
		if _, dup := index[w]; dup {
			return nil, nil, fmt.Errorf("wordlist: duplicate word %q", w)
		}
		index[w] = len(words)
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("wordlist: %w", err)
	}
	if len(words) != wordlistSize {
		return nil, nil, fmt.Errorf("wordlist: got %d words, want %d", len(words), wordlistSize)
	}

	// A wordlist of W words can represent W^n indices with n words; every
	// supported word count must cover its full 2^bitPrecision index space.
	for _, n := range supportedWordCounts {
		bits, err := bitPrecision(n)
		if err != nil {
			return nil, nil, err
		}
		if float64(n)*math.Log2(float64(len(words))) < float64(bits) {
			return nil, nil, fmt.Errorf("%w: %d words cannot cover %d bits with %d-word sequences",
				ErrIndexOutOfRange, len(words), bits, n)
		}
	}
	return words, index, nil
}

// toWords writes index as exactly wordCount base-W digits, most significant
// first, each digit selecting a word by wordlist position.
func toWords(index uint64, wordCount int) ([]string, error) {
	words, _, err := wordlist()
	if err != nil {
		return nil, err
	}
	if _, err := bitPrecision(wordCount); err != nil {
		return nil, err
	}

	limit := uint64(1) << uint(wordBits*wordCount)
	if index >= limit {
		return nil, fmt.Errorf("%w: index %d needs more than %d words", ErrIndexOutOfRange, index, wordCount)
	}

	seq := make([]string, wordCount)
	for i := wordCount - 1; i >= 0; i-- {
		seq[i] = words[index%uint64(len(words))]
		index /= uint64(len(words))
	}
	return seq, nil
}

// toIndex recomposes the base-W value of a word sequence. Lookup is exact:
// case and whitespace normalization belong to the text layer, not here.
func toIndex(seq []string) (uint64, error) {
	words, index, err := wordlist()
	if err != nil {
		return 0, err
	}
	if _, err := bitPrecision(len(seq)); err != nil {
		return 0, fmt.Errorf("%w: got %d", ErrWrongWordCount, len(seq))
	}

	var n uint64
	for _, w := range seq {
		pos, ok := index[w]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownWord, w)
		}
		n = n*uint64(len(words)) + uint64(pos)
	}
	return n, nil
}

// IsWord reports whether w is in the wordlist (exact match).
func IsWord(w string) bool {
	_, index, err := wordlist()
	if err != nil {
		return false
	}
	_, ok := index[w]
	return ok
}

// maxSuggestDistance caps the edit distance considered by SuggestWords,
// bounding the cost of scanning the vocabulary for near matches.
const maxSuggestDistance = 2

// SuggestWords returns up to max wordlist entries within edit distance 2 of
// w, closest first, ties ordered alphabetically. Useful for "did you mean"
// hints after an ErrUnknownWord.
func SuggestWords(w string, max int) []string {
	words, _, err := wordlist()
	if err != nil || max <= 0 {
		return nil
	}
	w = strings.ToLower(strings.TrimSpace(w))

	type scored struct {
		word string
		dist int
	}
	var near []scored
	for _, cand := range words {
		if d := levenshtein.ComputeDistance(w, cand); d <= maxSuggestDistance {
			near = append(near, scored{word: cand, dist: d})
		}
	}
	sort.Slice(near, func(i, j int) bool {
		if near[i].dist != near[j].dist {
			return near[i].dist < near[j].dist
		}
		return near[i].word < near[j].word
	})

	if len(near) > max {
		near = near[:max]
	}
	out := make([]string, len(near))
	for i, s := range near {
		out[i] = s.word
	}
	return out
}
