package prompt

import (
	"math"
	"strconv"
	"strings"
)

// Format normalizes a prompt without changing its meaning:
//
//   - runs of three or more newlines collapse to two
//   - a comma is followed by exactly one space
//   - other whitespace runs collapse to a single space, except indentation
//     right after a newline, which is kept verbatim
//   - weight scalars are re-rendered minimally ("2::", "1.5::")
//   - "::" gets a leading space unless one is already there
//
// Formatting an already formatted prompt is a no-op.
func Format(input string) string {
	res := Tokenize(input)

	var out strings.Builder
	out.Grow(len(input))

	newlines := 0
	prevKind := Kind(-1)
	var last byte

	write := func(s string) {
		out.WriteString(s)
		if s != "" {
			last = s[len(s)-1]
		}
	}

	for _, tok := range res.Tokens {
		switch tok.Kind {
		case KindNewline:
			newlines++
			if newlines <= 2 {
				write("\n")
			}
			prevKind = tok.Kind
			continue

		case KindWhitespace:
			if newlines > 0 {
				// Indentation after a line break is the author's.
				write(tok.Value)
			} else {
				write(" ")
			}

		case KindComma:
			write(",")

		case KindText:
			if prevKind == KindComma && last == ',' {
				write(" ")
			}
			write(tok.Value)

		case KindSnippetRef:
			if prevKind == KindComma && last == ',' {
				write(" ")
			}
			write(snippetRefPrefix + tok.Value + ">")

		case KindBraceOpen:
			write("{")
		case KindBraceClose:
			write("}")
		case KindBracketOpen:
			write("[")
		case KindBracketClose:
			write("]")

		case KindWeightStart:
			write(formatWeight(tok.Weight) + "::")

		case KindWeightEnd:
			if last != ' ' && last != '\n' && out.Len() > 0 {
				write(" ")
			}
			write("::")

		case KindComment:
			write("//" + tok.Value + "//")
		}

		newlines = 0
		prevKind = tok.Kind
	}

	return out.String()
}

// formatWeight renders a scalar the short way: no trailing ".0" for whole
// numbers, minimal digits otherwise.
func formatWeight(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
