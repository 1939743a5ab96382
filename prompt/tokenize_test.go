package prompt

import (
	"math"
	"testing"
)

func kinds(res ParseResult) []Kind {
	out := make([]Kind, len(res.Tokens))
	for i, tok := range res.Tokens {
		out[i] = tok.Kind
	}
	return out
}

func sameKinds(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Kind
	}{
		{
			name:  "tags with comma",
			input: "1girl, blue hair",
			want:  []Kind{KindText, KindComma, KindWhitespace, KindText},
		},
		{
			name:  "braces",
			input: "{{good}}",
			want:  []Kind{KindBraceOpen, KindBraceOpen, KindText, KindBraceClose, KindBraceClose},
		},
		{
			name:  "brackets",
			input: "[bad]",
			want:  []Kind{KindBracketOpen, KindText, KindBracketClose},
		},
		{
			name:  "weight scope",
			input: "1.5::tag::",
			want:  []Kind{KindWeightStart, KindText, KindWeightEnd},
		},
		{
			name:  "bare double colon is text",
			input: "a::b",
			want:  []Kind{KindText},
		},
		{
			name:  "comment",
			input: "a//note//b",
			want:  []Kind{KindText, KindComment, KindText},
		},
		{
			name:  "unterminated comment scans as text",
			input: "a //oops",
			want:  []Kind{KindText, KindText},
		},
		{
			name:  "crlf is one newline",
			input: "a\r\nb",
			want:  []Kind{KindText, KindNewline, KindText},
		},
		{
			name:  "snippet ref",
			input: "<snippet:quality>",
			want:  []Kind{KindSnippetRef},
		},
		{
			name:  "angle token without prefix is text",
			input: "<copyright>",
			want:  []Kind{KindText},
		},
		{
			name:  "snippet ref broken by newline is text",
			input: "<snippet:a\nb>",
			want:  []Kind{KindText, KindNewline, KindText},
		},
		{
			name:  "number without double colon is text",
			input: "1girl",
			want:  []Kind{KindText},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Tokenize(tt.input)
			got := kinds(res)
			if !sameKinds(got, tt.want) {
				t.Errorf("got kinds %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenizeLossless(t *testing.T) {
	inputs := []string{
		"",
		"1girl, blue hair, {detailed eyes}",
		"{{a}} [b] 1.5::c:: //d//",
		"unbalanced {{{ and [[ and 2::open",
		"::stray colons:: and <not a ref> and //unclosed",
		"multi\nline\r\nwith \t tabs",
		"<snippet:quality>, <snippet:bad name>",
		"-0.8::feet::, rating:general",
		"weird 1.2.3:: numbers",
		"<",
		"::",
	}

	for _, input := range inputs {
		res := Tokenize(input)
		var rebuilt []byte
		prevEnd := 0
		for _, tok := range res.Tokens {
			if tok.Start != prevEnd {
				t.Fatalf("input %q: token gap at %d (prev end %d)", input, tok.Start, prevEnd)
			}
			rebuilt = append(rebuilt, input[tok.Start:tok.End]...)
			prevEnd = tok.End
		}
		if string(rebuilt) != input {
			t.Errorf("input %q: rebuilt %q", input, rebuilt)
		}
		if prevEnd != len(input) {
			t.Errorf("input %q: tokens end at %d, want %d", input, prevEnd, len(input))
		}
	}
}

func TestTokenizeWeights(t *testing.T) {
	tests := []struct {
		name  string
		input string
		// weight of the first Text token
		want float64
	}{
		{name: "plain", input: "tag", want: 1.0},
		{name: "one brace", input: "{tag}", want: 1.05},
		{name: "two braces", input: "{{tag}}", want: 1.05 * 1.05},
		{name: "one bracket", input: "[tag]", want: 1 / 1.05},
		{name: "scalar", input: "1.5::tag::", want: 1.5},
		{name: "negative scalar", input: "-0.8::feet::", want: -0.8},
		{name: "scalar inside brace", input: "{1.5::tag::}", want: 1.05 * 1.5},
		{name: "after closed scope", input: "2::a::tag", want: 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Tokenize(tt.input)
			var got float64
			found := false
			for _, tok := range res.Tokens {
				if tok.Kind == KindText {
					got = tok.Weight
					found = true
					break
				}
			}
			if !found {
				t.Fatal("no text token")
			}
			if tt.name == "after closed scope" {
				// here the interesting token is the one after the scope
				last := res.Tokens[len(res.Tokens)-1]
				if last.Kind != KindText || !closeTo(last.Weight, 1.0) {
					t.Errorf("after scope: got %v weight %v, want text weight 1.0", last.Kind, last.Weight)
				}
				return
			}
			if !closeTo(got, tt.want) {
				t.Errorf("got weight %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenizeScalarLastOneWins(t *testing.T) {
	res := Tokenize("2::a 3::b")

	var texts []Token
	for _, tok := range res.Tokens {
		if tok.Kind == KindText {
			texts = append(texts, tok)
		}
	}
	if len(texts) != 2 {
		t.Fatalf("got %d text tokens, want 2", len(texts))
	}
	if !closeTo(texts[0].Weight, 2.0) {
		t.Errorf("first text weight %v, want 2", texts[0].Weight)
	}
	if !closeTo(texts[1].Weight, 3.0) {
		t.Errorf("second text weight %v, want 3", texts[1].Weight)
	}
	if !res.UnclosedWeight {
		t.Error("want unclosed weight scope")
	}
}

func TestTokenizeUnclosedCounts(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantBraces   int
		wantBrackets int
		wantWeight   bool
	}{
		{name: "balanced", input: "{a} [b] 1::c::"},
		{name: "open braces", input: "{{[a", wantBraces: 2, wantBrackets: 1},
		{name: "extra closers clamp", input: "}}]]a"},
		{name: "open scope", input: "2::a", wantWeight: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Tokenize(tt.input)
			if res.UnclosedBraces != tt.wantBraces {
				t.Errorf("braces: got %d, want %d", res.UnclosedBraces, tt.wantBraces)
			}
			if res.UnclosedBrackets != tt.wantBrackets {
				t.Errorf("brackets: got %d, want %d", res.UnclosedBrackets, tt.wantBrackets)
			}
			if res.UnclosedWeight != tt.wantWeight {
				t.Errorf("weight: got %v, want %v", res.UnclosedWeight, tt.wantWeight)
			}
		})
	}
}

func TestTokenizeValues(t *testing.T) {
	res := Tokenize("//note//<snippet:quality>")
	if len(res.Tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(res.Tokens))
	}
	if res.Tokens[0].Kind != KindComment || res.Tokens[0].Value != "note" {
		t.Errorf("comment: got %v %q", res.Tokens[0].Kind, res.Tokens[0].Value)
	}
	if res.Tokens[1].Kind != KindSnippetRef || res.Tokens[1].Value != "quality" {
		t.Errorf("snippet: got %v %q", res.Tokens[1].Kind, res.Tokens[1].Value)
	}
}

func TestTokenizeTripleSlashComment(t *testing.T) {
	res := Tokenize("///content//")
	if len(res.Tokens) != 1 || res.Tokens[0].Kind != KindComment {
		t.Fatalf("got %v, want one comment", kinds(res))
	}
	if res.Tokens[0].Value != "/content" {
		t.Errorf("got content %q, want %q", res.Tokens[0].Value, "/content")
	}
}

func TestTokenizeTextKeepsInnerSpaces(t *testing.T) {
	res := Tokenize("blue hair, long dress")
	if res.Tokens[0].Kind != KindText || res.Tokens[0].Value != "blue hair" {
		t.Errorf("got %v %q, want text %q", res.Tokens[0].Kind, res.Tokens[0].Value, "blue hair")
	}
}
