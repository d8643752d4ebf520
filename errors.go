package geowords

import "errors"

// Error kinds returned by the codec. Callers should match with errors.Is;
// returned errors wrap one of these sentinels with detail about the input.
var (
	// ErrOutOfRange indicates a latitude outside [-90, 90] or a longitude
	// outside [-180, 180], including NaN and infinite values.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrUnsupportedWordCount indicates a requested word count other than
	// 3, 4 or 6.
	ErrUnsupportedWordCount = errors.New("unsupported word count")

	// ErrUnknownWord indicates a word that is not in the wordlist.
	ErrUnknownWord = errors.New("unknown word")

	// ErrWrongWordCount indicates a word sequence whose length matches no
	// supported word count.
	ErrWrongWordCount = errors.New("wrong number of words")

	// ErrIndexOutOfRange indicates a cell index the wordlist cannot
	// represent. With a correctly configured wordlist this is unreachable
	// per call; it surfaces only as a startup configuration failure when
	// the embedded wordlist and the precision table disagree.
	ErrIndexOutOfRange = errors.New("cell index out of range for wordlist")

	// ErrMalformedCoordinate indicates coordinate text that matches none of
	// the accepted "lat lon" / "lat,lon" / "lat, lon" forms.
	ErrMalformedCoordinate = errors.New("malformed coordinate text")
)
