// Package prompt implements the prompt language used across the app:
// tokenizing, formatting, comment handling, weight math, preset rewriting
// and snippet expansion.
package prompt

// Kind identifies the class of a token.
type Kind int

const (
	// KindText is a run of ordinary characters, including inner spaces.
	KindText Kind = iota
	// KindComma is a single ','.
	KindComma
	// KindWhitespace is a run of non-newline whitespace.
	KindWhitespace
	// KindNewline is "\n", "\r" or "\r\n", always one token.
	KindNewline
	// KindBraceOpen is '{', emphasis up.
	KindBraceOpen
	// KindBraceClose is '}'.
	KindBraceClose
	// KindBracketOpen is '[', emphasis down.
	KindBracketOpen
	// KindBracketClose is ']'.
	KindBracketClose
	// KindWeightStart is a numeric scalar followed by "::", e.g. "1.5::".
	KindWeightStart
	// KindWeightEnd is a bare "::" closing an open weight scope.
	KindWeightEnd
	// KindSnippetRef is "<snippet:NAME>".
	KindSnippetRef
	// KindComment is "//...//".
	KindComment
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindComma:
		return "comma"
	case KindWhitespace:
		return "whitespace"
	case KindNewline:
		return "newline"
	case KindBraceOpen, KindBraceClose:
		return "brace"
	case KindBracketOpen, KindBracketClose:
		return "bracket"
	case KindWeightStart:
		return "weight_num"
	case KindWeightEnd:
		return "weight_end"
	case KindSnippetRef:
		return "snippet"
	case KindComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Token is a single lexical element of a prompt. Start and End are byte
// offsets into the source; Input[Start:End] is always the exact source span,
// so concatenating the spans of all tokens reproduces the input.
type Token struct {
	Kind  Kind
	Start int
	End   int

	// Value holds the semantic payload where the span alone is not enough:
	// the literal run for Text and Whitespace, the inner content for Comment,
	// and the name for SnippetRef.
	Value string

	// Weight is the effective emphasis for Text and SnippetRef tokens, and
	// the parsed scalar for WeightStart tokens.
	Weight float64

	// Depth is the nesting depth after applying a brace or bracket token.
	Depth int
}

// ParseResult is the output of Tokenize. The unclosed fields describe the
// state left at end of input; they are diagnostics, not errors.
type ParseResult struct {
	Tokens           []Token
	UnclosedBraces   int
	UnclosedBrackets int
	UnclosedWeight   bool
}
