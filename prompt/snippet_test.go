package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func mapLookup(snippets map[string]string) SnippetLookup {
	return func(name string) (string, bool, error) {
		content, ok := snippets[name]
		return content, ok, nil
	}
}

func TestExpandSnippets(t *testing.T) {
	snippets := map[string]string{
		"quality": "masterpiece, best quality",
		"nested":  "a, <snippet:quality>",
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text untouched",
			input: "1girl, blue hair",
			want:  "1girl, blue hair",
		},
		{
			name:  "single ref",
			input: "<snippet:quality>, 1girl",
			want:  "masterpiece, best quality, 1girl",
		},
		{
			name:  "unknown angle token passes through",
			input: "<copyright>, 1girl",
			want:  "<copyright>, 1girl",
		},
		{
			name:  "expansion is single pass",
			input: "<snippet:nested>",
			want:  "a, <snippet:quality>",
		},
		{
			name:  "ref used twice",
			input: "<snippet:quality> and <snippet:quality>",
			want:  "masterpiece, best quality and masterpiece, best quality",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandSnippets(tt.input, mapLookup(snippets))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestExpandSnippetsMissing(t *testing.T) {
	_, err := ExpandSnippets("<snippet:nope>", mapLookup(nil))
	require.Error(t, err)

	var notFound *SnippetNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "nope", notFound.Name)
}

func TestExpandSnippetsInvalidName(t *testing.T) {
	_, err := ExpandSnippets("<snippet:bad name>", mapLookup(nil))
	require.ErrorIs(t, err, ErrInvalidSnippetName)
}

func TestExpandSnippetsLookupFailure(t *testing.T) {
	boom := errors.New("storage down")
	lookup := func(string) (string, bool, error) { return "", false, boom }

	_, err := ExpandSnippets("<snippet:quality>", lookup)
	require.ErrorIs(t, err, boom)
}

func TestValidateSnippetName(t *testing.T) {
	require.NoError(t, ValidateSnippetName("quality"))
	require.NoError(t, ValidateSnippetName("char-v2_final"))

	bad := []string{"", "a b", "a,b", "a<b", "a>b", "a{b", "a}b", "a(b", "a)b", "a[b", "a]b"}
	for _, name := range bad {
		require.ErrorIs(t, ValidateSnippetName(name), ErrInvalidSnippetName, "name %q", name)
	}
}
