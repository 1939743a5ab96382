package prompt

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const snippetRefPrefix = "<snippet:"

// Tokenize splits the input into prompt tokens. It never fails: anything
// that does not match a structural rule is text, and unbalanced braces,
// brackets or weight scopes are reported in the result instead of aborting.
func Tokenize(input string) ParseResult {
	n := len(input)
	tokens := make([]Token, 0, n/4+1)

	braceDepth := 0
	bracketDepth := 0
	scalar := 1.0
	scoped := false

	i := 0
	for i < n {
		b := input[i]

		// Comments bind tighter than everything else. Unterminated
		// comments fall through and are scanned as ordinary text.
		if b == '/' && i+1 < n && input[i+1] == '/' {
			if end, ok := commentEnd(input, i); ok {
				tokens = append(tokens, Token{
					Kind:  KindComment,
					Start: i,
					End:   end,
					Value: input[i+2 : end-2],
				})
				i = end
				continue
			}
		}

		if b == '\n' {
			tokens = append(tokens, Token{Kind: KindNewline, Start: i, End: i + 1})
			i++
			continue
		}
		if b == '\r' {
			end := i + 1
			if end < n && input[end] == '\n' {
				end++
			}
			tokens = append(tokens, Token{Kind: KindNewline, Start: i, End: end})
			i = end
			continue
		}

		if isNumStart(b) {
			if val, end, ok := scanWeightStart(input, i); ok {
				tokens = append(tokens, Token{Kind: KindWeightStart, Start: i, End: end, Weight: val})
				scalar = val
				scoped = true
				i = end
				continue
			}
		}

		// A bare "::" only closes a scope; without one it is text.
		if b == ':' && i+1 < n && input[i+1] == ':' && scoped {
			tokens = append(tokens, Token{Kind: KindWeightEnd, Start: i, End: i + 2})
			scalar = 1.0
			scoped = false
			i += 2
			continue
		}

		switch b {
		case '{':
			braceDepth++
			tokens = append(tokens, Token{Kind: KindBraceOpen, Start: i, End: i + 1, Depth: braceDepth})
			i++
			continue
		case '}':
			if braceDepth > 0 {
				braceDepth--
			}
			tokens = append(tokens, Token{Kind: KindBraceClose, Start: i, End: i + 1, Depth: braceDepth})
			i++
			continue
		case '[':
			bracketDepth++
			tokens = append(tokens, Token{Kind: KindBracketOpen, Start: i, End: i + 1, Depth: bracketDepth})
			i++
			continue
		case ']':
			if bracketDepth > 0 {
				bracketDepth--
			}
			tokens = append(tokens, Token{Kind: KindBracketClose, Start: i, End: i + 1, Depth: bracketDepth})
			i++
			continue
		case ',':
			tokens = append(tokens, Token{Kind: KindComma, Start: i, End: i + 1})
			i++
			continue
		}

		if r, w := utf8.DecodeRuneInString(input[i:]); isInlineSpace(r) {
			start := i
			i += w
			for i < n {
				r, w = utf8.DecodeRuneInString(input[i:])
				if !isInlineSpace(r) {
					break
				}
				i += w
			}
			tokens = append(tokens, Token{Kind: KindWhitespace, Start: start, End: i, Value: input[start:i]})
			continue
		}

		if b == '<' {
			if name, end, ok := scanSnippetRef(input, i); ok {
				tokens = append(tokens, Token{
					Kind:   KindSnippetRef,
					Start:  i,
					End:    end,
					Value:  name,
					Weight: weightAt(braceDepth, bracketDepth, scalar, scoped),
				})
				i = end
				continue
			}
		}

		// Text. The first rune is consumed unconditionally so a stray '<'
		// or '::' outside a weight scope cannot stall the scan.
		start := i
		_, w := utf8.DecodeRuneInString(input[i:])
		i += w
		for i < n && !isTextBoundary(input, i, scoped) {
			_, w = utf8.DecodeRuneInString(input[i:])
			i += w
		}
		tokens = append(tokens, Token{
			Kind:   KindText,
			Start:  start,
			End:    i,
			Value:  input[start:i],
			Weight: weightAt(braceDepth, bracketDepth, scalar, scoped),
		})
	}

	return ParseResult{
		Tokens:           tokens,
		UnclosedBraces:   braceDepth,
		UnclosedBrackets: bracketDepth,
		UnclosedWeight:   scoped,
	}
}

func isInlineSpace(r rune) bool {
	return r != '\n' && r != '\r' && unicode.IsSpace(r)
}

func isNumStart(b byte) bool {
	return b == '-' || b == '.' || (b >= '0' && b <= '9')
}

// scanWeightStart tries to read "NUM::" at i, where NUM is an optional minus,
// digits and at most one dot. Reports the parsed value and the offset past
// the "::".
func scanWeightStart(input string, i int) (float64, int, bool) {
	n := len(input)
	j := i

	if j < n && input[j] == '-' {
		j++
	}

	hasDigit := false
	hasDot := false
num:
	for j < n {
		c := input[j]
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
		case c == '.' && !hasDot:
			hasDot = true
		default:
			break num
		}
		j++
	}

	if !hasDigit {
		return 0, 0, false
	}
	if j+1 >= n || input[j] != ':' || input[j+1] != ':' {
		return 0, 0, false
	}

	val, err := strconv.ParseFloat(input[i:j], 64)
	if err != nil {
		return 0, 0, false
	}

	return val, j + 2, true
}

// scanSnippetRef tries to read "<snippet:NAME>" at i. The name may not
// contain '<' or a newline and must be closed with '>'.
func scanSnippetRef(input string, i int) (string, int, bool) {
	if !strings.HasPrefix(input[i:], snippetRefPrefix) {
		return "", 0, false
	}

	j := i + len(snippetRefPrefix)
	for j < len(input) {
		switch input[j] {
		case '>':
			return input[i+len(snippetRefPrefix) : j], j + 1, true
		case '<', '\n':
			return "", 0, false
		}
		j++
	}

	return "", 0, false
}

// isTextBoundary reports whether the byte at i starts something that ends a
// text run: a structural character, a comment opener, a weight scope close
// (only while a scope is open) or a valid weight start.
func isTextBoundary(input string, i int, scoped bool) bool {
	b := input[i]

	switch b {
	case '{', '}', '[', ']', ',', '\n', '\r', '<':
		return true
	}

	if b == '/' && i+1 < len(input) && input[i+1] == '/' {
		return true
	}
	if b == ':' && i+1 < len(input) && input[i+1] == ':' && scoped {
		return true
	}
	if isNumStart(b) {
		if _, _, ok := scanWeightStart(input, i); ok {
			return true
		}
	}

	return false
}
