package prompt

import "testing"

func TestHighlightSpans(t *testing.T) {
	spans := HighlightSpans("{a}, [b], 1.5::c::")

	types := make([]string, len(spans))
	for i, s := range spans {
		types[i] = s.Type
	}

	want := []string{
		"brace", "text", "brace", "comma", "whitespace",
		"bracket", "text", "bracket", "comma", "whitespace",
		"weight_num", "text", "weight_end",
	}
	if len(types) != len(want) {
		t.Fatalf("got %d spans %v, want %d", len(types), types, len(want))
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("span %d: got %q, want %q (all: %v)", i, types[i], want[i], types)
		}
	}

	// the brace pair carries the weight of its region
	if !closeTo(spans[0].Weight, 1.05) || !closeTo(spans[2].Weight, 1.05) {
		t.Errorf("brace weights: open %v close %v, want 1.05", spans[0].Weight, spans[2].Weight)
	}
	if !closeTo(spans[5].Weight, 1/1.05) || !closeTo(spans[7].Weight, 1/1.05) {
		t.Errorf("bracket weights: open %v close %v, want %v", spans[5].Weight, spans[7].Weight, 1/1.05)
	}
	if !closeTo(spans[10].Weight, 1.5) {
		t.Errorf("weight_num: got %v, want 1.5", spans[10].Weight)
	}
	if !closeTo(spans[11].Weight, 1.5) {
		t.Errorf("scoped text: got %v, want 1.5", spans[11].Weight)
	}
	if !closeTo(spans[3].Weight, 1.0) {
		t.Errorf("comma: got %v, want 1.0", spans[3].Weight)
	}
}

func TestHighlightSpansCoverInput(t *testing.T) {
	input := "{{a}}, //c//, <snippet:q>\nrest"
	spans := HighlightSpans(input)

	prev := 0
	for _, s := range spans {
		if s.Start != prev {
			t.Fatalf("gap before %d", s.Start)
		}
		prev = s.End
	}
	if prev != len(input) {
		t.Errorf("spans end at %d, want %d", prev, len(input))
	}
}
