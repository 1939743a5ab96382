package prompt

import "math"

// HighlightSpan is the editor-facing view of a token: a byte range, a CSS-ish
// class name and the effective weight at that span.
type HighlightSpan struct {
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Weight float64 `json:"weight"`
	Type   string  `json:"type"`
}

// HighlightSpans tokenizes the input and maps every token to a span. Brace
// and bracket tokens carry the weight of the region they delimit, so an
// editor can tint the pair like the content between them.
func HighlightSpans(input string) []HighlightSpan {
	res := Tokenize(input)
	spans := make([]HighlightSpan, 0, len(res.Tokens))

	for _, tok := range res.Tokens {
		weight := 1.0

		switch tok.Kind {
		case KindText, KindSnippetRef, KindWeightStart:
			weight = tok.Weight
		case KindBraceOpen:
			weight = math.Pow(weightMultiplier, float64(tok.Depth))
		case KindBraceClose:
			weight = math.Pow(weightMultiplier, float64(tok.Depth+1))
		case KindBracketOpen:
			weight = 1 / math.Pow(weightMultiplier, float64(tok.Depth))
		case KindBracketClose:
			weight = 1 / math.Pow(weightMultiplier, float64(tok.Depth+1))
		}

		spans = append(spans, HighlightSpan{
			Start:  tok.Start,
			End:    tok.End,
			Weight: weight,
			Type:   tok.Kind.String(),
		})
	}

	return spans
}
