// Package geowords converts geographic coordinates into short sequences of
// everyday words and back.
//
// A coordinate is quantized onto a fixed grid, the resulting cell index is
// transformed with a key-derived keystream, and the transformed index is
// written in base 256 with words as digits. Decoding with the same key
// returns the center of the covering cell:
//
//	words, err := geowords.ThreeWords("-33.8674, 151.2070", "")
//	// "red-three-speaker"
//	coord, err := geowords.DecodeWords("red-three-speaker", "")
//
// With a non-empty key the visible words are unrelated to the true location;
// with no key the codec is a plain, stable grid-to-words encoding.
//
// Security caveat: this is obfuscation, not encryption. The key transform is
// a deterministic XOR over at most 48 bits, and anyone holding a known
// coordinate/words pair can brute-force candidate keys against it. Do not
// use this package where real confidentiality is required.
//
// All operations are pure and safe for concurrent use; the key is never
// stored, logged, or echoed by this package.
package geowords

import (
	"fmt"
	"strings"
)

// supportedWordCounts is the closed set of sequence lengths the codec
// accepts. Decoding infers the word count from the sequence length, so the
// three sizes must stay pairwise distinct.
var supportedWordCounts = []int{3, 4, 6}

// WordSeparator joins words when a sequence is rendered as text. Decoding
// also accepts "." as a separator.
const WordSeparator = "-"

// bitPrecision returns the total grid precision in bits for a word count:
// 24, 32 or 48 bits for 3, 4 or 6 words. Each word carries 8 bits, so a
// word sequence is exactly the transformed cell index, byte per word.
func bitPrecision(wordCount int) (int, error) {
	switch wordCount {
	case 3, 4, 6:
		return wordCount * wordBits, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedWordCount, wordCount)
}

// Encode converts a coordinate to a word sequence of the requested length.
// The key may be empty, in which case the cell index is encoded untransformed.
// Equal inputs always produce equal output.
func Encode(c Coordinate, key string, wordCount int) ([]string, error) {
	bits, err := bitPrecision(wordCount)
	if err != nil {
		return nil, err
	}
	cell, err := toCell(c, bits)
	if err != nil {
		return nil, err
	}
	return toWords(transformCell(cell, key, bits), wordCount)
}

// Decode converts a word sequence back to a coordinate using the same key
// it was encoded with. The word count is inferred from len(seq). The result
// is the center of the covering grid cell, so it matches the encoded
// coordinate only up to quantization error.
//
// Decoding with a different key succeeds but yields an unrelated location;
// the codec cannot detect a wrong key.
func Decode(seq []string, key string) (Coordinate, error) {
	bits, err := bitPrecision(len(seq))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: got %d", ErrWrongWordCount, len(seq))
	}
	index, err := toIndex(seq)
	if err != nil {
		return Coordinate{}, err
	}
	return fromCell(transformCell(index, key, bits), bits), nil
}

// ThreeWords encodes coordinate text as a three-word address ("-"-joined).
// Three words resolve to roughly city-block-sized cells; see SixWords for
// the finest grid.
func ThreeWords(coordText, key string) (string, error) {
	return encodeText(coordText, key, 3)
}

// FourWords encodes coordinate text as a four-word address.
func FourWords(coordText, key string) (string, error) {
	return encodeText(coordText, key, 4)
}

// SixWords encodes coordinate text as a six-word address.
func SixWords(coordText, key string) (string, error) {
	return encodeText(coordText, key, 6)
}

func encodeText(coordText, key string, wordCount int) (string, error) {
	c, err := ParseCoordinate(coordText)
	if err != nil {
		return "", err
	}
	seq, err := Encode(c, key, wordCount)
	if err != nil {
		return "", err
	}
	return strings.Join(seq, WordSeparator), nil
}

// DecodeWords decodes a delimited word address. Words may be separated by
// "-" or "."; input is lowercased and trimmed before lookup, so
// "Red-Three-Speaker" and "red.three.speaker" decode identically.
func DecodeWords(wordsText, key string) (Coordinate, error) {
	normalized := strings.ToLower(strings.TrimSpace(wordsText))
	normalized = strings.ReplaceAll(normalized, ".", WordSeparator)

	parts := strings.Split(normalized, WordSeparator)
	seq := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			seq = append(seq, p)
		}
	}
	return Decode(seq, key)
}
