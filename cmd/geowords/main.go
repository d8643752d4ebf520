// Command geowords encodes geographic coordinates as word addresses and back.
//
// Usage:
//
//	geowords encode [-k key] [-w 3|4|6] "<lat>, <lon>"
//	geowords decode [-k key] "<word-word-word>"
//
// The key defaults to the GEOWORDS_KEY environment variable (a .env file in
// the working directory is honored). With no key the encoding is unkeyed and
// stable across machines.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/andreiashu/geowords"
)

func main() {
	// Optional .env; absence is not an error.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(os.Args[2:])
	case "decode":
		err = runDecode(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage:
  geowords encode [-k key] [-w 3|4|6] "<lat>, <lon>"
  geowords decode [-k key] "<word-word-word>"`)
}

// splitArgs separates flag-style arguments from coordinate tokens. Negative
// latitudes ("-33.86,151.20") would otherwise be eaten by flag parsing, so
// anything numeric or coordinate-shaped is treated as positional.
func splitArgs(args []string) (flags, positional []string) {
	i := 0
	for i < len(args) {
		arg := args[i]
		if looksLikeCoordinate(arg) || !strings.HasPrefix(arg, "-") {
			positional = append(positional, arg)
			i++
			continue
		}
		flags = append(flags, arg)
		i++
		// A flag that doesn't use the -name=value form consumes the next
		// argument as its value.
		if !strings.Contains(arg, "=") && i < len(args) {
			flags = append(flags, args[i])
			i++
		}
	}
	return flags, positional
}

func looksLikeCoordinate(arg string) bool {
	if _, err := strconv.ParseFloat(strings.TrimSuffix(arg, ","), 64); err == nil {
		return true
	}
	_, err := geowords.ParseCoordinate(arg)
	return err == nil
}

func runEncode(args []string) error {
	flagArgs, positional := splitArgs(args)
	key, wordCount, err := parseFlags("encode", flagArgs)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return fmt.Errorf("encode: missing coordinate argument")
	}

	coord, err := geowords.ParseCoordinate(strings.Join(positional, " "))
	if err != nil {
		return err
	}
	seq, err := geowords.Encode(coord, key, wordCount)
	if err != nil {
		return err
	}
	fmt.Println(strings.Join(seq, geowords.WordSeparator))
	return nil
}

func runDecode(args []string) error {
	flagArgs, positional := splitArgs(args)
	key, _, err := parseFlags("decode", flagArgs)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("decode: expected exactly one word address argument")
	}

	coord, err := geowords.DecodeWords(positional[0], key)
	if err != nil {
		if errors.Is(err, geowords.ErrUnknownWord) {
			suggestUnknown(positional[0])
		}
		return err
	}
	fmt.Println(coord)
	return nil
}

// parseFlags handles -k/-key and -w/-words for both subcommands. The stdlib
// flag package is bypassed so splitArgs can keep negative coordinates out of
// flag parsing.
func parseFlags(cmd string, flagArgs []string) (key string, wordCount int, err error) {
	key = os.Getenv("GEOWORDS_KEY")
	wordCount = 3

	for i := 0; i < len(flagArgs); i++ {
		name, value := flagArgs[i], ""
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			name, value = name[:eq], name[eq+1:]
		} else if i+1 < len(flagArgs) {
			i++
			value = flagArgs[i]
		}
		switch strings.TrimLeft(name, "-") {
		case "k", "key":
			key = value
		case "w", "words":
			n, convErr := strconv.Atoi(value)
			if convErr != nil {
				return "", 0, fmt.Errorf("%s: bad -words value %q", cmd, value)
			}
			wordCount = n
		default:
			return "", 0, fmt.Errorf("%s: unknown flag %s", cmd, name)
		}
	}
	return key, wordCount, nil
}

// suggestUnknown prints "did you mean" hints for words that are not in the
// vocabulary. The words themselves are printed; the key never is.
func suggestUnknown(wordsText string) {
	normalized := strings.ToLower(strings.ReplaceAll(wordsText, ".", "-"))
	for _, w := range strings.Split(normalized, "-") {
		w = strings.TrimSpace(w)
		if w == "" || geowords.IsWord(w) {
			continue
		}
		if hints := geowords.SuggestWords(w, 3); len(hints) > 0 {
			fmt.Fprintf(os.Stderr, "unknown word %q, did you mean: %s\n", w, strings.Join(hints, ", "))
		}
	}
}
