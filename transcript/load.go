package transcript

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ReadFile loads a transcript. Decoding never fails: see Decode.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("read transcript %s: %w", path, err)
	}
	defer f.Close()

	text, err := Decode(f)
	if err != nil {
		return "", fmt.Errorf("read transcript %s: %w", path, err)
	}
	return text, nil
}

// Decode reads r as UTF-8, or as UTF-16 when a UTF-16 byte order mark is
// present. A leading BOM is stripped, ill-formed byte sequences are dropped
// and line endings are normalized to "\n". Only errors from r are returned.
func Decode(r io.Reader) (string, error) {
	data, err := io.ReadAll(transform.NewReader(r, decoder()))
	if err != nil {
		return "", err
	}
	return newlines.Replace(string(data)), nil
}

func decoder() transform.Transformer {
	return transform.Chain(
		unicode.BOMOverride(runes.ReplaceIllFormed()),
		runes.Remove(runes.Predicate(func(r rune) bool { return r == utf8.RuneError })),
	)
}
