package prompt

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSnippetName is returned for names containing structural prompt
// characters, which could never round-trip through a "<snippet:NAME>" ref.
var ErrInvalidSnippetName = errors.New("invalid snippet name")

const snippetNameForbidden = "<>, {}()[]"

// ValidateSnippetName rejects empty names and names containing any of
// '<' '>' ',' ' ' '{' '}' '(' ')' '[' ']'.
func ValidateSnippetName(name string) error {
	if name == "" || strings.ContainsAny(name, snippetNameForbidden) {
		return fmt.Errorf("%w: %q", ErrInvalidSnippetName, name)
	}
	return nil
}

// SnippetNotFoundError aborts an expansion that references an unknown snippet.
type SnippetNotFoundError struct {
	Name string
}

func (e *SnippetNotFoundError) Error() string {
	return fmt.Sprintf("snippet not found: %s", e.Name)
}

// SnippetLookup resolves a snippet name to its content. The bool reports
// whether the snippet exists; the error is for lookup failures only.
type SnippetLookup func(name string) (content string, ok bool, err error)

// ExpandSnippets replaces every "<snippet:NAME>" in the text with the
// snippet's content in a single pass. Expansion is not recursive: refs inside
// the spliced content are left as-is. Angle tokens without the "snippet:"
// prefix pass through literally, so model tags like "<copyright>" survive. A
// reference to a missing snippet fails the whole expansion.
func ExpandSnippets(text string, lookup SnippetLookup) (string, error) {
	var b strings.Builder
	b.Grow(len(text))

	n := len(text)
	for i := 0; i < n; {
		if text[i] != '<' {
			b.WriteByte(text[i])
			i++
			continue
		}

		j := i + 1
		for j < n && text[j] != '>' {
			j++
		}

		token := text[i+1 : j]
		next := j
		if j < n {
			next++ // consume '>'
		}

		name, isRef := strings.CutPrefix(token, "snippet:")
		if !isRef {
			b.WriteByte('<')
			b.WriteString(token)
			b.WriteByte('>')
			i = next
			continue
		}

		if err := ValidateSnippetName(name); err != nil {
			return "", err
		}
		content, ok, err := lookup(name)
		if err != nil {
			return "", fmt.Errorf("look up snippet %q: %w", name, err)
		}
		if !ok {
			return "", &SnippetNotFoundError{Name: name}
		}

		b.WriteString(content)
		i = next
	}

	return b.String(), nil
}
