// Package transcript extracts speaker turns and utterance text from CHAT
// (.cha) transcripts.
//
// A turn starts at a line "*CODE:" and runs, across line breaks, until the
// next turn marker, a "%" dependent tier, an "@" header or the end of the
// document. Nothing else of the format is interpreted.
package transcript

import (
	"iter"
	"strings"
)

// Matcher reports whether a turn marker's speaker code should be returned.
// It receives the code exactly as written between '*' and ':'.
type Matcher func(code string) bool

// AllowList accepts codes equal to one of speakers, ignoring case.
func AllowList(speakers ...string) Matcher {
	return func(code string) bool {
		for _, s := range speakers {
			if strings.EqualFold(code, s) {
				return true
			}
		}
		return false
	}
}

// Capitalized accepts any code of two or more characters starting with an
// uppercase letter.
func Capitalized() Matcher {
	return func(code string) bool {
		return len(code) > 1 && code[0] >= 'A' && code[0] <= 'Z'
	}
}

// Segment returns the turns of text whose speaker code is accepted by match,
// in document order. Markers rejected by match still close the open turn.
// The sequence is lazy and may be ranged over more than once.
func Segment(text string, match Matcher) iter.Seq[Turn] {
	return func(yield func(Turn) bool) {
		var (
			inTurn bool
			turn   Turn
			buf    strings.Builder
			index  int
		)
		flush := func() bool {
			if !inTurn {
				return true
			}
			inTurn = false
			turn.Text = strings.TrimSpace(buf.String())
			buf.Reset()
			return yield(turn)
		}

		for line := range strings.Lines(text) {
			if isTierLine(line) {
				if !flush() {
					return
				}
				continue
			}
			code, rest, ok := parseMarker(line)
			if !ok {
				if inTurn {
					buf.WriteString(line)
				}
				continue
			}
			if !flush() {
				return
			}
			if !match(code) {
				continue
			}
			index++
			inTurn = true
			turn = Turn{Index: index, Speaker: strings.TrimSpace(code)}
			buf.WriteString(rest)
		}
		flush()
	}
}

func isTierLine(line string) bool {
	return strings.HasPrefix(line, "%") || strings.HasPrefix(line, "@")
}

// parseMarker splits "*CODE: rest" into its code and the text after the
// first colon. The code must start with a letter and hold only letters and
// spaces.
func parseMarker(line string) (code, rest string, ok bool) {
	if !strings.HasPrefix(line, "*") {
		return "", "", false
	}
	i := strings.IndexByte(line, ':')
	if i < 2 {
		return "", "", false
	}
	code = line[1:i]
	if !isLetter(code[0]) {
		return "", "", false
	}
	for j := 1; j < len(code); j++ {
		if !isLetter(code[j]) && code[j] != ' ' {
			return "", "", false
		}
	}
	return code, line[i+1:], true
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
